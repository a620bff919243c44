package digest

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
)

// Verify checks a received oauth_body_hash value against the body.
// Comparison is constant-time over the base64 forms.
//
// Returns an error if:
//   - bodyHash is empty
//   - the signature method has no defined body hash algorithm
//   - the computed hash does not match bodyHash
func Verify(body []byte, bodyHash string, signatureMethod string) error {
	if bodyHash == "" {
		return fmt.Errorf("body hash is empty")
	}

	computed, err := Compute(body, signatureMethod)
	if err != nil {
		return err
	}

	if subtle.ConstantTimeCompare([]byte(computed), []byte(bodyHash)) != 1 {
		return fmt.Errorf("body hash mismatch for %s", signatureMethod)
	}

	return nil
}

// VerifyReader is the streaming form of Verify. The reader is consumed
// in a single pass with constant memory.
func VerifyReader(reader io.Reader, bodyHash string, signatureMethod string) error {
	if bodyHash == "" {
		return fmt.Errorf("body hash is empty")
	}

	h, err := NewDigester(signatureMethod)
	if err != nil {
		return err
	}

	if _, err := io.Copy(h, reader); err != nil {
		return fmt.Errorf("failed to read body: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(h.Sum(nil))
	if subtle.ConstantTimeCompare([]byte(encoded), []byte(bodyHash)) != 1 {
		return fmt.Errorf("body hash mismatch for %s", signatureMethod)
	}

	return nil
}
