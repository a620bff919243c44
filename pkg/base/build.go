// Package base constructs the OAuth 1.0 signature base string per
// RFC 5849 Section 3.4.1.
//
// The signature base string is the canonical, deterministic text that
// HMAC-SHA1 and RSA-SHA1 family signers operate on. It concatenates the
// uppercased request method, the reduced base string URI, and the
// normalized request parameters, each percent-encoded, with "&".
package base

import (
	"net/url"
	"strings"
)

// Build constructs the signature base string per RFC 5849 Section 3.4.1.
//
// Parameters:
//   - method: The HTTP request method; lowercased input is uppercased
//   - u: The request URL, reduced per Section 3.4.1.2
//   - params: Collected query, body, and protocol parameters, normalized
//     per Section 3.4.1.3 (oauth_signature and realm must not be included)
//
// Returns the base string ready for signing.
//
// RFC 5849 Section 3.4.1.1 Format:
//
//	METHOD&enc(base-string-uri)&enc(normalized-parameters)
//
// The three parts are themselves percent-encoded before joining, so the
// "&" separators are unambiguous: exactly two unescaped ampersands appear
// in the output.
//
// Example:
//
//	u, _ := url.Parse("http://example.com/request?b5=%3D%253D&a3=a&c%40=&a2=r%20b")
//	base.Build("POST", u, params)
//	// POST&http%3A%2F%2Fexample.com%2Frequest&a2%3Dr%2520b%26a3%3D...
//
// Output is deterministic for the same inputs: collection order of
// params never changes the result.
func Build(method string, u *url.URL, params Parameters) string {
	encodedURI := PercentEncode(BaseStringURI(u))
	encodedParams := PercentEncode(params.Normalize())
	method = strings.ToUpper(method)

	var sb strings.Builder
	sb.Grow(len(method) + len(encodedURI) + len(encodedParams) + 2)
	sb.WriteString(method)
	sb.WriteString("&")
	sb.WriteString(encodedURI)
	sb.WriteString("&")
	sb.WriteString(encodedParams)
	return sb.String()
}
