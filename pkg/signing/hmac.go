package signing

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"hash"
)

// hmacAlgorithm implements the Algorithm interface for the HMAC family.
//
// RFC 5849 Section 3.4.2: HMAC-SHA1. The SHA-256 and SHA-512 variants
// keep the same key derivation and differ only in the hash function.
// The signature is the base64 encoding of the MAC.
//
// Security Notes:
//   - Symmetric: the same secrets sign and verify
//   - Deterministic: same base string + secrets always yields the same MAC
//   - Verification uses constant-time comparison (timing attack prevention)
//   - Empty secrets are permitted by the protocol (two-legged requests
//     before a token is issued) but weaken the MAC accordingly
type hmacAlgorithm struct {
	id   string
	hash func() hash.Hash
}

// ID returns the oauth_signature_method value for this HMAC variant.
func (a *hmacAlgorithm) ID() string {
	return a.id
}

// Sign computes the MAC over the signature base string, keyed per
// RFC 5849 Section 3.4.2, and returns it base64-encoded.
//
// Error Conditions:
//   - signatureBase is empty (contract violation)
//   - key is nil or not *Secrets
func (a *hmacAlgorithm) Sign(signatureBase []byte, key interface{}) (string, error) {
	if len(signatureBase) == 0 {
		return "", fmt.Errorf("signature base is empty")
	}

	secrets, ok := key.(*Secrets)
	if !ok || secrets == nil {
		return "", fmt.Errorf("invalid key type for %s: expected *signing.Secrets, got %T", a.id, key)
	}

	mac := hmac.New(a.hash, []byte(secrets.SigningKey()))
	mac.Write(signatureBase)

	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}

// Verify recomputes the MAC and compares it with the received signature
// in constant time.
//
// Error Conditions:
//   - signatureBase is empty (contract violation)
//   - signature is empty
//   - key is nil or not *Secrets
//   - signature does not match the computed MAC
func (a *hmacAlgorithm) Verify(signatureBase []byte, signature string, key interface{}) error {
	if len(signatureBase) == 0 {
		return fmt.Errorf("signature base is empty")
	}
	if signature == "" {
		return fmt.Errorf("signature is empty")
	}

	expected, err := a.Sign(signatureBase, key)
	if err != nil {
		return err
	}

	if subtle.ConstantTimeCompare([]byte(signature), []byte(expected)) != 1 {
		return fmt.Errorf("%s signature verification failed", a.id)
	}

	return nil
}

// init registers the HMAC family in the global algorithm registry.
func init() {
	RegisterAlgorithm(&hmacAlgorithm{id: "HMAC-SHA1", hash: sha1.New})
	RegisterAlgorithm(&hmacAlgorithm{id: "HMAC-SHA256", hash: sha256.New})
	RegisterAlgorithm(&hmacAlgorithm{id: "HMAC-SHA512", hash: sha512.New})
}
