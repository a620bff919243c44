package oauth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateNonce returns a random nonce for the oauth_nonce parameter.
//
// The value is 128 bits from crypto/rand, encoded with the unpadded
// URL-safe base64 alphabet so it consists entirely of unreserved
// characters and never needs percent-encoding.
func GenerateNonce() (string, error) {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf[:]), nil
}
