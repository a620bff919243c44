package signing

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"fmt"
)

// rsaAlgorithm implements the Algorithm interface for the RSA family.
//
// RFC 5849 Section 3.4.3: RSA-SHA1 uses RSASSA-PKCS1-v1_5 per RFC 3447
// (PKCS #1). The SHA-256 and SHA-512 variants substitute the digest and
// keep the signature scheme. The token shared secret plays no part; the
// client proves possession of the private key alone.
//
// Security properties:
//   - Deterministic: PKCS#1 v1.5 signatures involve no salt, so the same
//     base string and key always produce identical signature bytes
//   - Requires minimum 2048-bit RSA keys
//   - SHA-1 survives here for protocol compatibility only; prefer the
//     SHA-256 variant when both ends support it
type rsaAlgorithm struct {
	id   string
	hash crypto.Hash
}

// ID returns the oauth_signature_method value for this RSA variant.
func (a *rsaAlgorithm) ID() string {
	return a.id
}

// Sign generates an RSASSA-PKCS1-v1_5 signature over the signature base
// string and returns it base64-encoded.
//
// Parameters:
//
//	signatureBase - The signature base string from pkg/base.Build
//	key - Must be *rsa.PrivateKey with at least 2048 bits
//
// Errors:
//   - signatureBase is empty
//   - key is not *rsa.PrivateKey
//   - key size is less than 2048 bits
//   - RSA signing operation fails
func (a *rsaAlgorithm) Sign(signatureBase []byte, key interface{}) (string, error) {
	if len(signatureBase) == 0 {
		return "", fmt.Errorf("signature base is empty")
	}

	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return "", fmt.Errorf("invalid key type for %s: expected *rsa.PrivateKey, got %T", a.id, key)
	}

	keySize := rsaKey.N.BitLen()
	if keySize < 2048 {
		return "", fmt.Errorf("RSA key size %d bits is too small (minimum 2048 bits required)", keySize)
	}

	h := a.hash.New()
	h.Write(signatureBase)

	signature, err := rsa.SignPKCS1v15(rand.Reader, rsaKey, a.hash, h.Sum(nil))
	if err != nil {
		return "", fmt.Errorf("%s signing failed: %w", a.id, err)
	}

	return base64.StdEncoding.EncodeToString(signature), nil
}

// Verify validates an RSASSA-PKCS1-v1_5 signature.
//
// Parameters:
//
//	signatureBase - The signature base string from pkg/base.Build
//	signature - base64-encoded signature from the oauth_signature parameter
//	key - Must be *rsa.PublicKey with at least 2048 bits
//
// Errors:
//   - signatureBase is empty
//   - signature is empty or not valid base64
//   - key is not *rsa.PublicKey
//   - key size is less than 2048 bits
//   - signature is cryptographically invalid
func (a *rsaAlgorithm) Verify(signatureBase []byte, signature string, key interface{}) error {
	if len(signatureBase) == 0 {
		return fmt.Errorf("signature base is empty")
	}
	if signature == "" {
		return fmt.Errorf("signature is empty")
	}

	rsaKey, ok := key.(*rsa.PublicKey)
	if !ok {
		return fmt.Errorf("invalid key type for %s: expected *rsa.PublicKey, got %T", a.id, key)
	}

	keySize := rsaKey.N.BitLen()
	if keySize < 2048 {
		return fmt.Errorf("RSA key size %d bits is too small (minimum 2048 bits required)", keySize)
	}

	rawSignature, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return fmt.Errorf("failed to decode %s signature: %w", a.id, err)
	}

	h := a.hash.New()
	h.Write(signatureBase)

	if err := rsa.VerifyPKCS1v15(rsaKey, a.hash, h.Sum(nil), rawSignature); err != nil {
		return fmt.Errorf("%s signature verification failed", a.id)
	}

	return nil
}

// init registers the RSA family in the global algorithm registry.
func init() {
	RegisterAlgorithm(&rsaAlgorithm{id: "RSA-SHA1", hash: crypto.SHA1})
	RegisterAlgorithm(&rsaAlgorithm{id: "RSA-SHA256", hash: crypto.SHA256})
	RegisterAlgorithm(&rsaAlgorithm{id: "RSA-SHA512", hash: crypto.SHA512})
}
