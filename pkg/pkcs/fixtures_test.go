package pkcs

import (
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// loadDER reads a DER fixture generated by openssl, see testdata/.
func loadDER(tb testing.TB, name string) []byte {
	tb.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		tb.Fatalf("reading fixture %s: %v", name, err)
	}
	return data
}

// tinyTestKey returns a structurally valid record with nonsense values.
// The extractor checks grammar, not number theory, so single-byte fields
// keep fixtures small. 0xa1 has the high bit set and exercises the
// sign-padding round trip.
func tinyTestKey() *RSAPrivateKey {
	return &RSAPrivateKey{
		Modulus:         []byte{0xa1},
		PublicExponent:  []byte{0x03},
		PrivateExponent: []byte{0x0b},
		Prime1:          []byte{0x0d},
		Prime2:          []byte{0x11},
		Exponent1:       []byte{0x05},
		Exponent2:       []byte{0x07},
		Coefficient:     []byte{0x02},
	}
}

// encodeSeq builds a DER SEQUENCE whose content is produced by f.
func encodeSeq(tb testing.TB, f func(b *cryptobyte.Builder)) []byte {
	tb.Helper()
	var b cryptobyte.Builder
	b.AddASN1(cbasn1.SEQUENCE, f)
	out, err := b.Bytes()
	if err != nil {
		tb.Fatalf("building fixture: %v", err)
	}
	return out
}

// encodePKCS1 builds an RSAPrivateKey structure from a record. Encoding a
// record extracted from minimal DER reproduces the original bytes, since
// AddASN1BigInt reinstates the sign-disambiguation zero the extractor
// strips.
func encodePKCS1(tb testing.TB, version int64, key *RSAPrivateKey) []byte {
	tb.Helper()
	return encodeSeq(tb, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(version)
		fields := [][]byte{
			key.Modulus,
			key.PublicExponent,
			key.PrivateExponent,
			key.Prime1,
			key.Prime2,
			key.Exponent1,
			key.Exponent2,
			key.Coefficient,
		}
		for _, field := range fields {
			b.AddASN1BigInt(new(big.Int).SetBytes(field))
		}
	})
}

// Parameter shapes for the AlgorithmIdentifier in encodePKCS8.
const (
	algParamsNull = iota
	algParamsAbsent
	algParamsOctetString
)

// encodePKCS8 wraps an already encoded RSAPrivateKey in a PrivateKeyInfo
// envelope with the given algorithm OID content bytes and parameter shape.
func encodePKCS8(tb testing.TB, version int64, oid []byte, params int, privateKey []byte) []byte {
	tb.Helper()
	return encodeSeq(tb, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(version)
		b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
			b.AddASN1(cbasn1.OBJECT_IDENTIFIER, func(b *cryptobyte.Builder) {
				b.AddBytes(oid)
			})
			switch params {
			case algParamsNull:
				b.AddASN1(cbasn1.NULL, func(b *cryptobyte.Builder) {})
			case algParamsOctetString:
				b.AddASN1OctetString([]byte{0xde, 0xad})
			}
		})
		b.AddASN1OctetString(privateKey)
	})
}
