// Package signing implements the OAuth 1.0 signature methods of RFC 5849
// Section 3.4.
//
// This package provides signature generation and verification for the
// three methods defined by the RFC plus the SHA-256 and SHA-512 variants
// deployed by OAuth providers as drop-in upgrades:
//   - HMAC-SHA1 (RFC 5849 Section 3.4.2)
//   - HMAC-SHA256, HMAC-SHA512 (extension)
//   - RSA-SHA1 (RFC 5849 Section 3.4.3, RSASSA-PKCS1-v1_5)
//   - RSA-SHA256, RSA-SHA512 (extension)
//   - PLAINTEXT (RFC 5849 Section 3.4.4)
//
// # Basic Usage
//
// Sign a signature base string with HMAC-SHA1:
//
//	alg, _ := signing.GetAlgorithm("HMAC-SHA1")
//	secrets := &signing.Secrets{ConsumerSecret: "kd94hf93k423kf44", TokenSecret: "pfkkdhi9sl3r4s00"}
//	signature, _ := alg.Sign([]byte(signatureBase), secrets)
//
// Verify a received signature:
//
//	err := alg.Verify([]byte(signatureBase), signature, secrets)
//	if err != nil {
//	    // Signature invalid
//	}
//
// # Key Material
//
// HMAC and PLAINTEXT methods take *Secrets, the pair of shared secrets
// joined per RFC 5849 Section 3.4.2. RSA methods take *rsa.PrivateKey to
// sign and *rsa.PublicKey to verify; keys load through pkg/keys.
//
// # Security
//
//   - HMAC and PLAINTEXT verification uses constant-time comparison
//   - RSA signatures use RSASSA-PKCS1-v1_5 and are deterministic
//   - RSA keys below 2048 bits are rejected
package signing

import (
	"fmt"
	"strings"

	"github.com/forcebit/oauth1-request-signing-rfc5849-go/pkg/base"
)

// Algorithm represents an OAuth 1.0 signature method per RFC 5849
// Section 3.4.
//
// Each implementation is stateless: key material is passed per call, and
// the same inputs always produce the same error behavior. Sign returns
// the oauth_signature parameter value before percent-encoding, which is
// base64 for the digest-backed methods and the literal key string for
// PLAINTEXT.
type Algorithm interface {
	// ID returns the oauth_signature_method value, e.g. "HMAC-SHA1".
	// Identifiers are case-sensitive per RFC 5849 Section 3.1.
	ID() string

	// Sign produces the oauth_signature value over the signature base
	// string from pkg/base.Build.
	//
	// Key Type Requirements:
	//   HMAC methods:  *Secrets
	//   RSA methods:   *rsa.PrivateKey (minimum 2048 bits)
	//   PLAINTEXT:     *Secrets
	Sign(signatureBase []byte, key interface{}) (string, error)

	// Verify validates an oauth_signature value against the signature
	// base string.
	//
	// Key Type Requirements:
	//   HMAC methods:  *Secrets (same secrets used for signing)
	//   RSA methods:   *rsa.PublicKey (minimum 2048 bits)
	//   PLAINTEXT:     *Secrets
	//
	// Returns nil if the signature is valid. Comparison of symmetric
	// signatures is constant-time.
	Verify(signatureBase []byte, signature string, key interface{}) error
}

// Secrets is the symmetric key material shared between client and server:
// the consumer (client) secret and the token secret. Either part may be
// empty, which is common for the temporary-credentials leg of the flow.
type Secrets struct {
	ConsumerSecret string
	TokenSecret    string
}

// SigningKey derives the key string per RFC 5849 Section 3.4.2: each
// secret is percent-encoded, then the two are joined with "&". The
// separator appears even when the token secret is empty.
func (s *Secrets) SigningKey() string {
	var sb strings.Builder
	sb.WriteString(base.PercentEncode(s.ConsumerSecret))
	sb.WriteString("&")
	sb.WriteString(base.PercentEncode(s.TokenSecret))
	return sb.String()
}

// algorithmRegistry is the global registry of all supported signature
// methods. Methods register themselves in their init() functions.
var algorithmRegistry = make(map[string]Algorithm)

// RegisterAlgorithm registers a signature method in the global registry.
// This is called by each method's init() function.
// Panics if the method ID is already registered (programming error).
func RegisterAlgorithm(alg Algorithm) {
	id := alg.ID()
	if _, exists := algorithmRegistry[id]; exists {
		panic(fmt.Sprintf("algorithm %q already registered", id))
	}
	algorithmRegistry[id] = alg
}

// GetAlgorithm retrieves a signature method by its
// oauth_signature_method value (case-sensitive).
//
// Supported IDs:
//   - "HMAC-SHA1", "HMAC-SHA256", "HMAC-SHA512"
//   - "RSA-SHA1", "RSA-SHA256", "RSA-SHA512"
//   - "PLAINTEXT"
//
// Example:
//
//	alg, err := signing.GetAlgorithm("HMAC-SHA1")
//	if err != nil {
//	    return fmt.Errorf("unsupported signature method: %w", err)
//	}
func GetAlgorithm(id string) (Algorithm, error) {
	if id == "" {
		return nil, fmt.Errorf("signature method cannot be empty")
	}

	alg, exists := algorithmRegistry[id]
	if !exists {
		return nil, fmt.Errorf("unsupported signature method: %q", id)
	}

	return alg, nil
}

// SupportedAlgorithms returns all registered signature method identifiers.
func SupportedAlgorithms() []string {
	algorithms := make([]string, 0, len(algorithmRegistry))
	for id := range algorithmRegistry {
		algorithms = append(algorithms, id)
	}
	return algorithms
}
