package signing

import (
	"crypto/subtle"
	"fmt"
)

// plaintextAlgorithm implements the Algorithm interface for PLAINTEXT.
//
// RFC 5849 Section 3.4.4: the method does not employ the signature base
// string or a digest at all. The oauth_signature value is simply the key
// string of Section 3.4.2, and the transport layer (TLS) carries the
// entire burden of protecting it.
type plaintextAlgorithm struct{}

// ID returns the oauth_signature_method value for PLAINTEXT.
func (a *plaintextAlgorithm) ID() string {
	return "PLAINTEXT"
}

// Sign returns the key string. The signature base string is ignored,
// which is the one place in the protocol where it may legitimately be
// empty.
func (a *plaintextAlgorithm) Sign(signatureBase []byte, key interface{}) (string, error) {
	secrets, ok := key.(*Secrets)
	if !ok || secrets == nil {
		return "", fmt.Errorf("invalid key type for PLAINTEXT: expected *signing.Secrets, got %T", key)
	}
	return secrets.SigningKey(), nil
}

// Verify compares the received signature with the key string in constant
// time.
func (a *plaintextAlgorithm) Verify(signatureBase []byte, signature string, key interface{}) error {
	if signature == "" {
		return fmt.Errorf("signature is empty")
	}

	expected, err := a.Sign(signatureBase, key)
	if err != nil {
		return err
	}

	if subtle.ConstantTimeCompare([]byte(signature), []byte(expected)) != 1 {
		return fmt.Errorf("PLAINTEXT signature verification failed")
	}

	return nil
}

// init registers PLAINTEXT in the global algorithm registry.
func init() {
	RegisterAlgorithm(&plaintextAlgorithm{})
}
