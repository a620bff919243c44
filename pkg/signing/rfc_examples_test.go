package signing

import (
	"net/url"
	"testing"

	"github.com/forcebit/oauth1-request-signing-rfc5849-go/pkg/base"
)

// photosBase is the signature base string for the canonical photos.example.net
// request used throughout the OAuth 1.0 literature (consumer dpf43f3p2l4k5c0mz,
// token nnch734d00sl2jdk, timestamp 1191242096, nonce kllo9940pd9333jh).
const photosBase = "GET&http%3A%2F%2Fphotos.example.net%2Fphotos&file%3Dvacation.jpg%26oauth_consumer_key%3Ddpf43f3p2l4k5c0mz%26oauth_nonce%3Dkllo9940pd9333jh%26oauth_signature_method%3DHMAC-SHA1%26oauth_timestamp%3D1191242096%26oauth_token%3Dnnch734d00sl2jdk%26oauth_version%3D1.0%26size%3Doriginal"

// photosSecrets is the credential pair matching photosBase.
var photosSecrets = &Secrets{
	ConsumerSecret: "kd94hf93k423kf44",
	TokenSecret:    "pfkkdhi9sl3r4s00",
}

// TestPhotosExample_FullChain tests the complete signing pipeline on the
// photos.example.net request: parameter collection, base string construction,
// and HMAC-SHA1 signature computation.
func TestPhotosExample_FullChain(t *testing.T) {
	u, err := url.Parse("http://photos.example.net/photos?file=vacation.jpg&size=original")
	if err != nil {
		t.Fatalf("url.Parse() error = %v", err)
	}

	params := base.FromValues(u.Query()).
		With("oauth_consumer_key", "dpf43f3p2l4k5c0mz").
		With("oauth_token", "nnch734d00sl2jdk").
		With("oauth_signature_method", "HMAC-SHA1").
		With("oauth_timestamp", "1191242096").
		With("oauth_nonce", "kllo9940pd9333jh").
		With("oauth_version", "1.0")

	signatureBase := base.Build("GET", u, params)
	if signatureBase != photosBase {
		t.Fatalf("Build() = %q, want %q", signatureBase, photosBase)
	}

	alg, err := GetAlgorithm("HMAC-SHA1")
	if err != nil {
		t.Fatalf("GetAlgorithm() error = %v", err)
	}

	signature, err := alg.Sign([]byte(signatureBase), photosSecrets)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	want := "bfULx5HEBbwXtNSY36wj7fj3nUs="
	if signature != want {
		t.Errorf("Sign() = %q, want %q", signature, want)
	}

	if err := alg.Verify([]byte(signatureBase), signature, photosSecrets); err != nil {
		t.Errorf("Verify() error = %v", err)
	}
}
