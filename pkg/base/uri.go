package base

import (
	"net/url"
	"strings"
)

// BaseStringURI reduces a request URL to the base string URI per RFC 5849
// Section 3.4.1.2.
//
// Reduction Rules:
//   - Scheme and host are lowercased
//   - The port is dropped when it is the default for the scheme
//     (80 for http, 443 for https), kept otherwise
//   - The path keeps its original percent-encoding; an empty path
//     becomes "/"
//   - Query and fragment are excluded entirely
//
// Example:
//
//	HTTP://EXAMPLE.COM:80/r%20v/X?id=123  ->  http://example.com/r%20v/X
//	https://www.example.net:8080/?q=1     ->  https://www.example.net:8080/
func BaseStringURI(u *url.URL) string {
	scheme := strings.ToLower(u.Scheme)
	host := strings.ToLower(u.Host)

	switch {
	case scheme == "http" && strings.HasSuffix(host, ":80"):
		host = strings.TrimSuffix(host, ":80")
	case scheme == "https" && strings.HasSuffix(host, ":443"):
		host = strings.TrimSuffix(host, ":443")
	}

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}

	var sb strings.Builder
	sb.Grow(len(scheme) + 3 + len(host) + len(path))
	sb.WriteString(scheme)
	sb.WriteString("://")
	sb.WriteString(host)
	sb.WriteString(path)
	return sb.String()
}
