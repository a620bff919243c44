// Package der implements decoding of DER (Distinguished Encoding Rules)
// binary structures. It covers the definite-length subset sufficient for
// private key containers: SEQUENCE, INTEGER, OCTET STRING, OBJECT
// IDENTIFIER, and NULL, with short- and long-form length octets.
// BER indefinite lengths are rejected.
package der

// Cursor is a bounds-checked reader over a DER byte stream.
// It borrows the input slice and advances an offset; the input is never
// mutated. Every operation either consumes its complete encoding or
// consumes nothing: on failure the offset is restored and the returned
// DecodeError carries the offset at which the operation began.
type Cursor struct {
	data   []byte // borrowed input, never mutated
	offset int    // current position
}

// NewCursor creates a cursor over data. The slice is borrowed for the
// duration of the decode session and must not be mutated by the caller
// while the cursor or any returned value slices are in use.
func NewCursor(data []byte) *Cursor {
	return &Cursor{
		data:   data,
		offset: 0,
	}
}

// Position returns the number of bytes consumed so far.
func (c *Cursor) Position() int {
	return c.offset
}

// Remaining returns the number of bytes not yet consumed.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.offset
}

// peek returns the current byte without advancing the offset.
// Returns 0 (EOF marker) if at or past end of input.
func (c *Cursor) peek() byte {
	if c.offset >= len(c.data) {
		return 0 // EOF
	}
	return c.data[c.offset]
}

// consume checks if the current byte matches the expected byte.
// If it matches, advances the offset and returns true.
// Otherwise, returns false without advancing.
func (c *Cursor) consume(expected byte) bool {
	if c.isEOF() {
		return false
	}
	if c.peek() == expected {
		c.offset++
		return true
	}
	return false
}

// isEOF returns true if the cursor is at or past the end of input.
func (c *Cursor) isEOF() bool {
	return c.offset >= len(c.data)
}

// PeekTagIs reports whether the next tag octet equals tag, without
// consuming it. Returns false on empty input; it never fails.
func (c *Cursor) PeekTagIs(tag byte) bool {
	return !c.isEOF() && c.peek() == tag
}

// NextOctet consumes and returns exactly one byte.
// Fails with "Incorrect Size" if the buffer is empty.
func (c *Cursor) NextOctet() (byte, error) {
	if c.isEOF() {
		return 0, c.errorAt(c.offset, "Incorrect Size")
	}
	b := c.data[c.offset]
	c.offset++
	return b, nil
}

// ReadLength decodes and consumes one DER length field.
// A single octet with the high bit clear is the length itself (0-127).
// A single octet with the high bit set announces, in its low 7 bits, a
// count of subsequent big-endian length octets; the count must be 1 to 4,
// anything else fails with "Invalid Length Encoding". The indefinite-length
// marker 0x80 falls under the same rejection.
func (c *Cursor) ReadLength() (int, error) {
	length, derr := c.readLength()
	if derr != nil {
		return 0, derr
	}
	return length, nil
}

// readLength is the typed-error form of ReadLength shared by the TLV
// operations. It restores the offset itself on failure; compound
// operations re-anchor the reported position to their own start.
func (c *Cursor) readLength() (int, *DecodeError) {
	start := c.offset
	if c.isEOF() {
		return 0, c.errorAt(start, "Incorrect Size")
	}
	first := c.data[c.offset]
	c.offset++

	if first&0x80 == 0 {
		return int(first), nil
	}

	count := int(first & 0x7f)
	if count < 1 || count > 4 {
		return 0, c.errorAt(start, "Invalid Length Encoding")
	}

	length := 0
	for i := 0; i < count; i++ {
		if c.isEOF() {
			return 0, c.errorAt(start, "Incorrect Size")
		}
		length = length<<8 | int(c.data[c.offset])
		c.offset++
	}
	return length, nil
}

// nextOctets consumes exactly n bytes and returns them as a subslice of
// the borrowed input. The bounds check runs strictly before any
// consumption; an underrun fails with "Incorrect Size".
func (c *Cursor) nextOctets(n int) ([]byte, *DecodeError) {
	if n > c.Remaining() {
		return nil, c.errorAt(c.offset, "Incorrect Size")
	}
	value := c.data[c.offset : c.offset+n]
	c.offset += n
	return value, nil
}
