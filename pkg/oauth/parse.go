package oauth

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/forcebit/oauth1-request-signing-rfc5849-go/pkg/base"
)

// ParseError represents an Authorization header parsing error with
// location context.
type ParseError struct {
	Offset  int    // character position where error occurred
	Message string // human-readable description
	Context string // surrounding input for debugging
}

// Error returns a formatted error message.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s (near: %q)", e.Offset, e.Message, e.Context)
}

// AuthorizationHeader is the decoded form of an "Authorization: OAuth ..."
// header value.
type AuthorizationHeader struct {
	// Realm is the realm parameter value, if present. realm is not a
	// protocol parameter; its value is taken verbatim from between the
	// quotes and never percent-decoded.
	Realm string

	// Parameters holds the decoded protocol parameters in the order
	// they appeared in the header. Names and values are percent-decoded
	// and the quoting syntax is removed.
	Parameters base.Parameters
}

// Get returns the value of the first parameter with the given name and
// whether it was present.
func (h *AuthorizationHeader) Get(name string) (string, bool) {
	for _, p := range h.Parameters {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// headerParser is a character-based scanner for the OAuth Authorization
// header syntax of RFC 5849 Section 3.5.1. It maintains an immutable
// input string and a current position offset.
type headerParser struct {
	data   string // immutable input
	offset int    // current position
	limits Limits // size limits for DoS prevention
}

// peek returns the current byte without advancing the offset.
// Returns 0 (EOF marker) if at or past end of input.
func (p *headerParser) peek() byte {
	if p.offset >= len(p.data) {
		return 0 // EOF
	}
	return p.data[p.offset]
}

// consume checks if the current byte matches the expected byte.
// If it matches, advances the offset and returns true.
func (p *headerParser) consume(expected byte) bool {
	if p.peek() == expected {
		p.offset++
		return true
	}
	return false
}

// skipOWS skips optional whitespace: SP (0x20) or HTAB (0x09).
func (p *headerParser) skipOWS() {
	for p.offset < len(p.data) {
		c := p.data[p.offset]
		if c == ' ' || c == '\t' {
			p.offset++
		} else {
			break
		}
	}
}

// isEOF returns true if the parser is at or past the end of input.
func (p *headerParser) isEOF() bool {
	return p.offset >= len(p.data)
}

// getContext returns a snippet of the input around the current offset
// for error reporting (up to 40 characters).
func (p *headerParser) getContext() string {
	start := p.offset - 20
	if start < 0 {
		start = 0
	}
	end := p.offset + 20
	if end > len(p.data) {
		end = len(p.data)
	}

	context := p.data[start:end]
	if start > 0 {
		context = "..." + context
	}
	if end < len(p.data) {
		context = context + "..."
	}

	return context
}

// newParseError creates a ParseError at the current parser offset.
func (p *headerParser) newParseError(message string) *ParseError {
	return &ParseError{
		Offset:  p.offset,
		Message: message,
		Context: p.getContext(),
	}
}

// consumeScheme consumes the "OAuth" auth-scheme token. The scheme is
// case-insensitive and must be followed by whitespace or end of input,
// so "OAuth2" and similar schemes are rejected.
func (p *headerParser) consumeScheme() bool {
	const scheme = "OAuth"
	if len(p.data)-p.offset < len(scheme) {
		return false
	}
	if !strings.EqualFold(p.data[p.offset:p.offset+len(scheme)], scheme) {
		return false
	}
	next := p.offset + len(scheme)
	if next < len(p.data) && p.data[next] != ' ' && p.data[next] != '\t' {
		return false
	}
	p.offset = next
	return true
}

// parseName consumes a parameter name up to the "=" separator and
// returns it percent-decoded.
func (p *headerParser) parseName() (string, error) {
	start := p.offset
	for !p.isEOF() {
		c := p.data[p.offset]
		if c == '=' {
			break
		}
		if c == ',' || c == ' ' || c == '\t' || c == '"' {
			return "", p.newParseError("malformed parameter name")
		}
		p.offset++
	}

	raw := p.data[start:p.offset]
	if raw == "" {
		return "", p.newParseError("empty parameter name")
	}
	if p.limits.MaxKeyLength > 0 && len(raw) > p.limits.MaxKeyLength {
		return "", p.newParseError(fmt.Sprintf("parameter name length %d exceeds limit %d", len(raw), p.limits.MaxKeyLength))
	}

	name, err := url.PathUnescape(raw)
	if err != nil {
		return "", p.newParseError(fmt.Sprintf("invalid percent encoding in parameter name %q", raw))
	}
	return name, nil
}

// parseQuotedValue consumes a DQUOTE-delimited value and returns the raw
// bytes between the quotes, undecoded.
func (p *headerParser) parseQuotedValue(name string) (string, error) {
	if !p.consume('"') {
		return "", p.newParseError(fmt.Sprintf("expected quoted value for parameter %s", name))
	}

	start := p.offset
	for !p.isEOF() && p.data[p.offset] != '"' {
		p.offset++
	}
	if p.isEOF() {
		return "", p.newParseError(fmt.Sprintf("unterminated quoted value for parameter %s", name))
	}

	raw := p.data[start:p.offset]
	p.offset++ // closing quote

	if p.limits.MaxValueLength > 0 && len(raw) > p.limits.MaxValueLength {
		return "", p.newParseError(fmt.Sprintf("value length %d exceeds limit %d", len(raw), p.limits.MaxValueLength))
	}
	return raw, nil
}

// ParseAuthorizationHeader parses an OAuth Authorization header value per
// RFC 5849 Section 3.5.1.
//
// The input is the header value only, without the "Authorization:" field
// name. The "OAuth" auth-scheme is matched case-insensitively. Protocol
// parameters are returned in order with names and values percent-decoded;
// the realm parameter, when present, is reported separately and left
// undecoded.
//
// Section 3.1 forbids protocol parameters from appearing more than once,
// so any repeated parameter name is rejected.
//
// Error Conditions (all reported as *ParseError with offset and context):
//   - The auth-scheme is not "OAuth"
//   - Malformed parameter syntax (missing "=", unquoted or unterminated
//     values, trailing commas, whitespace around "=")
//   - Invalid percent encoding in a name or value
//   - A parameter appears more than once
//   - A configured limit is exceeded
func ParseAuthorizationHeader(value string, limits Limits) (*AuthorizationHeader, error) {
	p := &headerParser{data: value, limits: limits}

	if limits.MaxHeaderLength > 0 && len(value) > limits.MaxHeaderLength {
		return nil, p.newParseError(fmt.Sprintf("header length %d exceeds limit %d", len(value), limits.MaxHeaderLength))
	}

	p.skipOWS()
	if !p.consumeScheme() {
		return nil, p.newParseError(`authorization scheme is not "OAuth"`)
	}
	p.skipOWS()

	header := &AuthorizationHeader{}
	seen := make(map[string]struct{})
	realmSeen := false
	count := 0

	for !p.isEOF() {
		if limits.MaxParameters > 0 && count >= limits.MaxParameters {
			return nil, p.newParseError(fmt.Sprintf("parameter count exceeds limit %d", limits.MaxParameters))
		}

		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		if !p.consume('=') {
			return nil, p.newParseError(fmt.Sprintf(`expected "=" after parameter name %s`, name))
		}
		raw, err := p.parseQuotedValue(name)
		if err != nil {
			return nil, err
		}
		count++

		if strings.EqualFold(name, "realm") {
			if realmSeen {
				return nil, p.newParseError("parameter realm appears more than once")
			}
			realmSeen = true
			header.Realm = raw
		} else {
			if _, dup := seen[name]; dup {
				return nil, p.newParseError(fmt.Sprintf("parameter %s appears more than once", name))
			}
			seen[name] = struct{}{}

			decoded, err := url.PathUnescape(raw)
			if err != nil {
				return nil, p.newParseError(fmt.Sprintf("invalid percent encoding in parameter %s", name))
			}
			header.Parameters = append(header.Parameters, base.Parameter{Name: name, Value: decoded})
		}

		p.skipOWS()
		if p.isEOF() {
			break
		}
		if !p.consume(',') {
			return nil, p.newParseError(`expected "," between parameters`)
		}
		p.skipOWS()
		if p.isEOF() {
			return nil, p.newParseError("expected parameter after comma")
		}
	}

	return header, nil
}
