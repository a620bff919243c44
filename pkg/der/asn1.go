package der

// ASN.1 tag octets for the DER subset this package decodes.
const (
	TagInteger     byte = 0x02
	TagOctetString byte = 0x04
	TagNull        byte = 0x05
	TagOID         byte = 0x06
	TagSequence    byte = 0x30
)

// NextSequence consumes a SEQUENCE tag and its length field and returns
// the declared content length; the content itself is left for the caller
// to consume element by element.
// Fails with "Expected Sequence" on a tag mismatch and with
// "Incorrect Sequence Size" when the declared length exceeds the bytes
// remaining after the header.
func (c *Cursor) NextSequence() (int, error) {
	start := c.offset
	if !c.consume(TagSequence) {
		return 0, c.errorAt(start, "Expected Sequence")
	}
	length, derr := c.readLength()
	if derr != nil {
		return 0, c.errorAt(start, derr.Message)
	}
	if length > c.Remaining() {
		return 0, c.errorAt(start, "Incorrect Sequence Size")
	}
	return length, nil
}

// NextInteger consumes an INTEGER TLV and returns its content octets in
// DER's big-endian two's-complement form, leading zero byte included if
// present. Fails with "Expected Integer" on a tag mismatch.
func (c *Cursor) NextInteger() ([]byte, error) {
	start := c.offset
	if !c.consume(TagInteger) {
		return nil, c.errorAt(start, "Expected Integer")
	}
	length, derr := c.readLength()
	if derr != nil {
		return nil, c.errorAt(start, derr.Message)
	}
	value, derr := c.nextOctets(length)
	if derr != nil {
		return nil, c.errorAt(start, derr.Message)
	}
	return value, nil
}

// NextOctetString consumes an OCTET STRING tag and length field and
// returns the declared content length without consuming the content.
// Used where the payload is itself a nested TLV grammar.
// Fails with "Expected Octet String" on a tag mismatch and with
// "Incorrect Octet String Size" when the declared length exceeds the
// remaining bytes.
func (c *Cursor) NextOctetString() (int, error) {
	start := c.offset
	if !c.consume(TagOctetString) {
		return 0, c.errorAt(start, "Expected Octet String")
	}
	length, derr := c.readLength()
	if derr != nil {
		return 0, c.errorAt(start, derr.Message)
	}
	if length > c.Remaining() {
		return 0, c.errorAt(start, "Incorrect Octet String Size")
	}
	return length, nil
}

// NextOID consumes an OBJECT IDENTIFIER TLV and returns the raw encoded
// OID bytes. The bytes are not decoded into dotted-integer form; byte-wise
// comparison is sufficient for algorithm matching.
// Fails with "Expected Object Identifier" on a tag mismatch.
func (c *Cursor) NextOID() ([]byte, error) {
	start := c.offset
	if !c.consume(TagOID) {
		return nil, c.errorAt(start, "Expected Object Identifier")
	}
	length, derr := c.readLength()
	if derr != nil {
		return nil, c.errorAt(start, derr.Message)
	}
	value, derr := c.nextOctets(length)
	if derr != nil {
		return nil, c.errorAt(start, derr.Message)
	}
	return value, nil
}

// IsNextNull reports whether the next tag octet is NULL.
// Returns false on empty input; it never fails.
func (c *Cursor) IsNextNull() bool {
	return c.PeekTagIs(TagNull)
}

// NextNull consumes a NULL TLV, which must carry a zero length.
// Fails with "Expected Null" on a tag mismatch and with
// "Null has non-zero size" when the length field is not zero.
func (c *Cursor) NextNull() error {
	start := c.offset
	if !c.consume(TagNull) {
		return c.errorAt(start, "Expected Null")
	}
	length, derr := c.readLength()
	if derr != nil {
		return c.errorAt(start, derr.Message)
	}
	if length != 0 {
		return c.errorAt(start, "Null has non-zero size")
	}
	return nil
}

// SkipNext consumes one complete TLV regardless of tag and returns its
// content octets. Used for optional fields the grammar ignores, such as
// non-NULL AlgorithmIdentifier parameters.
func (c *Cursor) SkipNext() ([]byte, error) {
	start := c.offset
	if c.isEOF() {
		return nil, c.errorAt(start, "Incorrect Size")
	}
	c.offset++ // tag octet, any value
	length, derr := c.readLength()
	if derr != nil {
		return nil, c.errorAt(start, derr.Message)
	}
	value, derr := c.nextOctets(length)
	if derr != nil {
		return nil, c.errorAt(start, derr.Message)
	}
	return value, nil
}
