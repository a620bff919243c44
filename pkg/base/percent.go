package base

import "strings"

const upperhex = "0123456789ABCDEF"

// PercentEncode encodes a string per RFC 5849 Section 3.6.
//
// This encoding is stricter than net/url's: every byte outside the
// unreserved set (ALPHA, DIGIT, "-", ".", "_", "~") is escaped, hex
// digits are uppercase, and spaces become %20, never "+". Text is
// encoded as UTF-8 bytes before escaping.
//
// The same encoding is applied to parameter names, parameter values,
// the base string URI, and the parts of the HMAC and PLAINTEXT keys, so
// two strings that differ before encoding always differ after it.
func PercentEncode(input string) string {
	var escape int
	for i := 0; i < len(input); i++ {
		if !isUnreserved(input[i]) {
			escape++
		}
	}
	if escape == 0 {
		return input
	}

	var sb strings.Builder
	sb.Grow(len(input) + 2*escape)
	for i := 0; i < len(input); i++ {
		b := input[i]
		if isUnreserved(b) {
			sb.WriteByte(b)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(upperhex[b>>4])
		sb.WriteByte(upperhex[b&0x0f])
	}
	return sb.String()
}

// isUnreserved reports whether b may appear unescaped, per the
// unreserved set of RFC 3986 Section 2.3 referenced by RFC 5849.
func isUnreserved(b byte) bool {
	switch {
	case 'A' <= b && b <= 'Z', 'a' <= b && b <= 'z', '0' <= b && b <= '9':
		return true
	case b == '-', b == '.', b == '_', b == '~':
		return true
	}
	return false
}
