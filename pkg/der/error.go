package der

import (
	"encoding/hex"
	"fmt"
)

// DecodeError represents a decoding failure with location context.
// Position is the cursor offset at which the failing operation began,
// which is not necessarily the offset of the malformed byte itself.
type DecodeError struct {
	Position int    // byte offset where the failure was detected
	Message  string // human-readable description
	Context  string // hex snippet of surrounding input for debugging
	Cause    error  // optional wrapped lower-level cause
}

// Error returns a formatted error message with offset and hex context.
func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("decode error at offset %d: %s", e.Position, e.Message)
	if e.Context != "" {
		msg += fmt.Sprintf(" (near: %s)", e.Context)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the wrapped cause, if any, so that errors.Is and
// errors.As can reach through a DecodeError.
func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// NewDecodeError builds a DecodeError stamped with the cursor's current
// position and context window. Callers driving the cursor through a
// higher-level grammar use it to report semantic violations (wrong OID,
// wrong version byte) in the same shape as the cursor's structural errors.
func (c *Cursor) NewDecodeError(message string) *DecodeError {
	return &DecodeError{
		Position: c.offset,
		Message:  message,
		Context:  c.contextAt(c.offset),
	}
}

// errorAt restores the cursor to the offset at which the failing operation
// began and returns a DecodeError anchored there. Keeping the restore and
// the error construction in one place is what guarantees that operations
// consume bytes only on success.
func (c *Cursor) errorAt(start int, message string) *DecodeError {
	c.offset = start
	return &DecodeError{
		Position: start,
		Message:  message,
		Context:  c.contextAt(start),
	}
}

// contextAt returns a hex snippet of the input around pos for error
// reporting (up to 16 bytes).
func (c *Cursor) contextAt(pos int) string {
	start := pos - 8
	if start < 0 {
		start = 0
	}
	end := pos + 8
	if end > len(c.data) {
		end = len(c.data)
	}

	context := hex.EncodeToString(c.data[start:end])
	if start > 0 {
		context = "..." + context
	}
	if end < len(c.data) {
		context = context + "..."
	}

	return context
}
