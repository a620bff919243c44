package signing

import (
	"strings"
	"testing"
)

// TestHMAC_KnownVectors tests each HMAC variant against signatures computed
// independently over the photos.example.net base string.
func TestHMAC_KnownVectors(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"HMAC-SHA1", "bfULx5HEBbwXtNSY36wj7fj3nUs="},
		{"HMAC-SHA256", "C8E9TYqrU7y9BjFHBykF0qraPFmAC2i/YXjneBqNbq8="},
		{"HMAC-SHA512", "fjqao9ELi7MPgQSh57gX1qHUaHuBMJjlqRnjLM5tyldmSwNpC/UjLoZX6lEt5yOtvagReR32zPcrSSWs0XIH7w=="},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			alg, err := GetAlgorithm(tt.id)
			if err != nil {
				t.Fatalf("GetAlgorithm() error = %v", err)
			}

			got, err := alg.Sign([]byte(photosBase), photosSecrets)
			if err != nil {
				t.Fatalf("Sign() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Sign() = %q, want %q", got, tt.want)
			}

			if err := alg.Verify([]byte(photosBase), got, photosSecrets); err != nil {
				t.Errorf("Verify() error = %v", err)
			}
		})
	}
}

// TestHMAC_EmptyTokenSecret tests signing with only a consumer secret, as in
// the temporary credential request phase.
func TestHMAC_EmptyTokenSecret(t *testing.T) {
	alg, err := GetAlgorithm("HMAC-SHA1")
	if err != nil {
		t.Fatalf("GetAlgorithm() error = %v", err)
	}

	secrets := &Secrets{ConsumerSecret: "kd94hf93k423kf44"}
	got, err := alg.Sign([]byte(photosBase), secrets)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	want := "iuUiFRUzRZOCkKErTlSnc3WrTok="
	if got != want {
		t.Errorf("Sign() = %q, want %q", got, want)
	}
}

// TestHMAC_SmallBase tests a minimal base string against an independently
// computed signature.
func TestHMAC_SmallBase(t *testing.T) {
	alg, err := GetAlgorithm("HMAC-SHA1")
	if err != nil {
		t.Fatalf("GetAlgorithm() error = %v", err)
	}

	signatureBase := "POST&http%3A%2F%2Fexample.com%2Frequest&a%3D1"
	got, err := alg.Sign([]byte(signatureBase), &Secrets{ConsumerSecret: "secret"})
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	want := "lsJ5M6zCO/SYPV+TQrl0Jx2A42A="
	if got != want {
		t.Errorf("Sign() = %q, want %q", got, want)
	}
}

// TestHMAC_VerifyRejectsTampered tests that verification fails when the
// signature or the credentials do not match the base string.
func TestHMAC_VerifyRejectsTampered(t *testing.T) {
	alg, err := GetAlgorithm("HMAC-SHA256")
	if err != nil {
		t.Fatalf("GetAlgorithm() error = %v", err)
	}

	signature, err := alg.Sign([]byte(photosBase), photosSecrets)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	t.Run("modified base string", func(t *testing.T) {
		modified := strings.Replace(photosBase, "vacation", "vacatioN", 1)
		if err := alg.Verify([]byte(modified), signature, photosSecrets); err == nil {
			t.Error("expected verification failure for modified base string, got nil")
		}
	})

	t.Run("modified signature", func(t *testing.T) {
		tampered := "A" + signature[1:]
		if err := alg.Verify([]byte(photosBase), tampered, photosSecrets); err == nil {
			t.Error("expected verification failure for tampered signature, got nil")
		}
	})

	t.Run("wrong secrets", func(t *testing.T) {
		wrong := &Secrets{ConsumerSecret: "other", TokenSecret: "secrets"}
		if err := alg.Verify([]byte(photosBase), signature, wrong); err == nil {
			t.Error("expected verification failure for wrong secrets, got nil")
		}
	})
}

// TestHMAC_InvalidInput tests the input guards shared by the HMAC variants.
func TestHMAC_InvalidInput(t *testing.T) {
	alg, err := GetAlgorithm("HMAC-SHA1")
	if err != nil {
		t.Fatalf("GetAlgorithm() error = %v", err)
	}

	t.Run("empty base string", func(t *testing.T) {
		_, err := alg.Sign(nil, photosSecrets)
		if err == nil {
			t.Fatal("expected error for empty signature base, got nil")
		}
		if !strings.Contains(err.Error(), "signature base is empty") {
			t.Errorf("expected empty base error, got: %v", err)
		}
	})

	t.Run("wrong key type", func(t *testing.T) {
		_, err := alg.Sign([]byte(photosBase), "not-a-secrets-struct")
		if err == nil {
			t.Fatal("expected error for wrong key type, got nil")
		}
		if !strings.Contains(err.Error(), "invalid key type") {
			t.Errorf("expected key type error, got: %v", err)
		}
	})

	t.Run("nil secrets", func(t *testing.T) {
		_, err := alg.Sign([]byte(photosBase), (*Secrets)(nil))
		if err == nil {
			t.Fatal("expected error for nil secrets, got nil")
		}
	})

	t.Run("empty signature on verify", func(t *testing.T) {
		err := alg.Verify([]byte(photosBase), "", photosSecrets)
		if err == nil {
			t.Fatal("expected error for empty signature, got nil")
		}
	})
}
