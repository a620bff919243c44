package oauth

import (
	"strings"

	"github.com/forcebit/oauth1-request-signing-rfc5849-go/pkg/base"
)

// BuildAuthorizationHeader serializes protocol parameters into an
// Authorization header value per RFC 5849 Section 3.5.1.
//
// The realm parameter, when non-empty, comes first and is emitted
// verbatim; it must not contain a double quote. Protocol parameter names
// and values are percent-encoded per Section 3.6 and wrapped in double
// quotes, with parameters separated by ", ".
//
// Parameters are emitted in the order given. The protocol does not
// require any particular order in the header; signature verification
// depends only on the parameter set.
func BuildAuthorizationHeader(realm string, params base.Parameters) string {
	parts := make([]string, 0, len(params)+1)

	if realm != "" {
		parts = append(parts, `realm="`+realm+`"`)
	}
	for _, p := range params {
		parts = append(parts, base.PercentEncode(p.Name)+`="`+base.PercentEncode(p.Value)+`"`)
	}

	if len(parts) == 0 {
		return "OAuth"
	}
	return "OAuth " + strings.Join(parts, ", ")
}
