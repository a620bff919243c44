package base

import (
	"net/url"
	"sort"
	"strings"
)

// Parameter is a single name/value pair collected for signing. Names and
// values are held in decoded form; encoding happens during normalization.
type Parameter struct {
	Name  string
	Value string
}

// Parameters is the ordered collection of pairs covered by a signature:
// query parameters, form body parameters, and protocol parameters.
// Collection order is irrelevant to the output because normalization
// sorts; duplicates are preserved, not collapsed.
type Parameters []Parameter

// FromValues flattens url.Values into Parameters. Multiple values for the
// same name become one pair each. Map iteration order does not matter
// since normalization sorts.
func FromValues(values url.Values) Parameters {
	params := make(Parameters, 0, len(values))
	for name, vs := range values {
		for _, value := range vs {
			params = append(params, Parameter{Name: name, Value: value})
		}
	}
	return params
}

// With returns a copy of params with the given pair appended. The
// receiver is never modified.
func (p Parameters) With(name, value string) Parameters {
	out := make(Parameters, len(p), len(p)+1)
	copy(out, p)
	return append(out, Parameter{Name: name, Value: value})
}

// Normalize produces the normalized parameter string per RFC 5849
// Section 3.4.1.3.2.
//
// Each name and value is percent-encoded first, then the encoded pairs
// are sorted by name using ascending byte ordering, with ties broken by
// value. The sorted pairs are concatenated as name=value joined by "&".
// A parameter with an empty value still contributes "name=".
//
// Example:
//
//	a2=r%20b&a3=2%20q&a3=a&b5=%3D%253D&c%40=&c2=
func (p Parameters) Normalize() string {
	encoded := make([]Parameter, len(p))
	for i, param := range p {
		encoded[i] = Parameter{
			Name:  PercentEncode(param.Name),
			Value: PercentEncode(param.Value),
		}
	}

	sort.Slice(encoded, func(i, j int) bool {
		if encoded[i].Name != encoded[j].Name {
			return encoded[i].Name < encoded[j].Name
		}
		return encoded[i].Value < encoded[j].Value
	})

	size := 0
	for _, param := range encoded {
		size += len(param.Name) + len(param.Value) + 2
	}

	var sb strings.Builder
	sb.Grow(size)
	for i, param := range encoded {
		if i > 0 {
			sb.WriteString("&")
		}
		sb.WriteString(param.Name)
		sb.WriteString("=")
		sb.WriteString(param.Value)
	}
	return sb.String()
}
