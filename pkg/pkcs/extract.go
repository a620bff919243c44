// Package pkcs extracts RSA private key material from DER-encoded PKCS#1
// (RFC 8017) and PKCS#8 (RFC 5208) structures.
//
// The package decodes exactly the grammar of an RSA private key container:
// an optional PrivateKeyInfo envelope carrying the rsaEncryption algorithm
// identifier, around the RSAPrivateKey sequence of nine INTEGERs. It does
// not construct or encode ASN.1, does not validate cryptographic
// properties of the key, and does not support encrypted containers or
// BER indefinite lengths.
package pkcs

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/forcebit/oauth1-request-signing-rfc5849-go/pkg/der"
)

// rsaEncryptionOID is the DER content encoding of 1.2.840.113549.1.1.1,
// the rsaEncryption algorithm identifier. OIDs are compared byte-wise;
// dotted-integer decoding is never needed for this grammar.
var rsaEncryptionOID = []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x01}

// RSAPrivateKey holds the eight components of an RSA private key as
// minimal unsigned big-endian byte sequences: DER's sign-disambiguation
// leading zero byte is stripped. Field names follow RFC 8017 Appendix A.1.2.
type RSAPrivateKey struct {
	Modulus         []byte // n
	PublicExponent  []byte // e
	PrivateExponent []byte // d
	Prime1          []byte // p
	Prime2          []byte // q
	Exponent1       []byte // d mod (p-1)
	Exponent2       []byte // d mod (q-1)
	Coefficient     []byte // (inverse of q) mod p
}

// ExtractRSAPrivateKey decodes a DER-encoded RSA private key.
//
// The input may be a PKCS#8 PrivateKeyInfo wrapping an rsaEncryption key,
// or a bare PKCS#1 RSAPrivateKey; the two are distinguished by the element
// following the version INTEGER (an AlgorithmIdentifier SEQUENCE for
// PKCS#8, the modulus INTEGER for PKCS#1). Decoding is a single pass over
// the buffer: the first structural violation aborts with a
// *der.DecodeError carrying the byte offset, and nothing is retried.
//
// The returned record aliases the input buffer; the caller must keep the
// buffer unmodified while the record is in use.
func ExtractRSAPrivateKey(data []byte) (*RSAPrivateKey, error) {
	cur := der.NewCursor(data)

	length, err := cur.NextSequence()
	if err != nil {
		return nil, err
	}
	// The outermost frame must fill the buffer exactly. Trailing or
	// missing data is an error here even though nested frames only
	// require their declared length to fit the remaining bytes.
	if length != cur.Remaining() {
		return nil, cur.NewDecodeError("Incorrect PrivateKeyInfo Size")
	}

	version, err := cur.NextInteger()
	if err != nil {
		return nil, err
	}

	if cur.PeekTagIs(der.TagSequence) {
		// PKCS#8 path: version, AlgorithmIdentifier, PrivateKey
		// OCTET STRING whose content is the RSAPrivateKey sequence.
		if err := checkVersion(cur, version, "PrivateKeyInfo"); err != nil {
			return nil, err
		}
		if err := readAlgorithmIdentifier(cur); err != nil {
			return nil, err
		}
		if _, err := cur.NextOctetString(); err != nil {
			return nil, err
		}
		if _, err := cur.NextSequence(); err != nil {
			return nil, err
		}
		if version, err = cur.NextInteger(); err != nil {
			return nil, err
		}
	}

	if err := checkVersion(cur, version, "RSAPrivateKey"); err != nil {
		return nil, err
	}

	key, err := readKeyIntegers(cur)
	if err != nil {
		return nil, err
	}

	// A well-formed key consumes the buffer completely; surplus bytes
	// mean the declared structure and the supplied data disagree.
	if cur.Remaining() != 0 {
		return nil, cur.NewDecodeError("Unexpected trailing bytes")
	}

	return key, nil
}

// checkVersion enforces version 0: the INTEGER's first content byte must
// be 0x00. The offending value is rendered in decimal, which is the only
// job math/big has in this package.
func checkVersion(cur *der.Cursor, version []byte, structure string) error {
	if len(version) == 0 || version[0] != 0x00 {
		value := new(big.Int).SetBytes(version)
		return cur.NewDecodeError(fmt.Sprintf("Incorrect %s Version %s", structure, value))
	}
	return nil
}

// readAlgorithmIdentifier consumes the AlgorithmIdentifier SEQUENCE and
// requires the rsaEncryption OID. Optional parameters within the
// identifier frame are consumed as NULL when NULL, otherwise one TLV is
// skipped generically and discarded.
func readAlgorithmIdentifier(cur *der.Cursor) error {
	length, err := cur.NextSequence()
	if err != nil {
		return err
	}
	end := cur.Position() + length

	oid, err := cur.NextOID()
	if err != nil {
		return err
	}
	if !bytes.Equal(oid, rsaEncryptionOID) {
		return cur.NewDecodeError("Expected OID 1.2.840.113549.1.1.1")
	}

	if cur.Position() < end {
		if cur.IsNextNull() {
			if err := cur.NextNull(); err != nil {
				return err
			}
		} else if _, err := cur.SkipNext(); err != nil {
			return err
		}
	}
	return nil
}

// readKeyIntegers reads the eight INTEGER fields of an RSAPrivateKey in
// their fixed order: modulus, publicExponent, privateExponent, prime1,
// prime2, exponent1, exponent2, coefficient.
func readKeyIntegers(cur *der.Cursor) (*RSAPrivateKey, error) {
	var fields [8][]byte
	for i := range fields {
		value, err := cur.NextInteger()
		if err != nil {
			return nil, err
		}
		fields[i] = stripLeadingZero(value)
	}

	return &RSAPrivateKey{
		Modulus:         fields[0],
		PublicExponent:  fields[1],
		PrivateExponent: fields[2],
		Prime1:          fields[3],
		Prime2:          fields[4],
		Exponent1:       fields[5],
		Exponent2:       fields[6],
		Coefficient:     fields[7],
	}, nil
}

// stripLeadingZero undoes DER's sign-disambiguation padding: a 0x00 first
// byte is dropped when more than one byte is present, yielding the minimal
// unsigned big-endian magnitude.
func stripLeadingZero(value []byte) []byte {
	if len(value) > 1 && value[0] == 0x00 {
		return value[1:]
	}
	return value
}
