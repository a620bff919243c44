package oauth

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"

	"github.com/forcebit/oauth1-request-signing-rfc5849-go/pkg/base"
)

const formContentType = "application/x-www-form-urlencoded"

// isFormEncoded reports whether the request declares a form-encoded body.
func isFormEncoded(req *http.Request) bool {
	ct := req.Header.Get("Content-Type")
	if ct == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return false
	}
	return mediaType == formContentType
}

// effectiveURL returns the request URL as seen by the client. Server-side
// requests carry only the path and query in req.URL, so the scheme and
// host are filled in from the connection state and the Host header, which
// is what RFC 5849 Section 3.4.1.2 prescribes for the base string URI.
func effectiveURL(req *http.Request) *url.URL {
	if req.URL.Scheme != "" && req.URL.Host != "" {
		return req.URL
	}

	u := *req.URL
	if u.Scheme == "" {
		if req.TLS != nil {
			u.Scheme = "https"
		} else {
			u.Scheme = "http"
		}
	}
	if u.Host == "" {
		u.Host = req.Host
	}
	return &u
}

// collectRequestParameters gathers the request parameters covered by the
// signature per RFC 5849 Section 3.4.1.3.1: the query component plus, for
// form-encoded requests, the entity body. A body, when present, is read
// fully and replaced with an equivalent reader so the request stays
// usable; the raw bytes are returned for body hash handling.
func collectRequestParameters(req *http.Request) (params base.Parameters, body []byte, form bool, err error) {
	query, err := url.ParseQuery(req.URL.RawQuery)
	if err != nil {
		return nil, nil, false, fmt.Errorf("failed to parse query string: %w", err)
	}
	params = base.FromValues(query)

	form = isFormEncoded(req)

	if req.Body != nil && req.Body != http.NoBody {
		body, err = io.ReadAll(req.Body)
		req.Body.Close()
		if err != nil {
			return nil, nil, false, fmt.Errorf("failed to read request body: %w", err)
		}
		req.Body = io.NopCloser(bytes.NewReader(body))

		if form && len(body) > 0 {
			formValues, err := url.ParseQuery(string(body))
			if err != nil {
				return nil, nil, false, fmt.Errorf("failed to parse form body: %w", err)
			}
			params = append(params, base.FromValues(formValues)...)
		}
	}

	return params, body, form, nil
}
