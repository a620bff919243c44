package comparison

import (
	"crypto/rand"
	"crypto/rsa"
	"net/http"
	"net/url"
	"strings"
)

// Shared test credentials - RSA key generated once at init
var (
	testRSAPrivKey *rsa.PrivateKey
	testRSAPubKey  *rsa.PublicKey
)

const (
	testConsumerKey    = "dpf43f3p2l4k5c0mz"
	testConsumerSecret = "kd94hf93k423kf44"
	testToken          = "nnch734d00sl2jdk"
	testTokenSecret    = "pfkkdhi9sl3r4s00"

	testRequestURL  = "https://api.example.com/1/statuses/update.json?include_entities=true"
	testRequestBody = "status=Hello%20Ladies%20%2B%20Gentlemen"
	formContentType = "application/x-www-form-urlencoded"
)

func init() {
	var err error

	// Generate RSA 2048-bit key pair
	testRSAPrivKey, err = rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		panic("failed to generate RSA key: " + err.Error())
	}
	testRSAPubKey = &testRSAPrivKey.PublicKey
}

// createTestRequest creates a standard HTTP request for benchmarking
func createTestRequest() *http.Request {
	req, _ := http.NewRequest(
		http.MethodPost,
		testRequestURL,
		strings.NewReader(testRequestBody),
	)
	req.Header.Set("Content-Type", formContentType)
	return req
}

// testFormValues returns the request body as form values, for libraries
// that take the form separately from the request.
func testFormValues() url.Values {
	values, err := url.ParseQuery(testRequestBody)
	if err != nil {
		panic("failed to parse form fixture: " + err.Error())
	}
	return values
}

// mustParseURL parses the benchmark URL once per call site.
func mustParseURL(rawURL string) *url.URL {
	u, err := url.Parse(rawURL)
	if err != nil {
		panic("failed to parse URL fixture: " + err.Error())
	}
	return u
}

// discardTransport terminates a client transport chain without network
// I/O, so transport-based signers can be measured in isolation.
type discardTransport struct {
	lastRequest *http.Request
}

func (t *discardTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.lastRequest = req
	return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
}
