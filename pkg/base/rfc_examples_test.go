package base

import (
	"net/url"
	"testing"
)

// TestRFC5849_Section3411_SignatureBase reproduces the worked example of
// RFC 5849 Section 3.4.1.1 (with the parameter ordering fixed by errata
// 2550): a POST to http://example.com/request with parameters arriving
// from the query string, a form-encoded body, and the Authorization
// header.
func TestRFC5849_Section3411_SignatureBase(t *testing.T) {
	u, err := url.Parse("http://example.com/request?b5=%3D%253D&a3=a&c%40=&a2=r%20b")
	if err != nil {
		t.Fatalf("url.Parse() error = %v", err)
	}

	query, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		t.Fatalf("url.ParseQuery() error = %v", err)
	}
	body, err := url.ParseQuery("c2&a3=2+q")
	if err != nil {
		t.Fatalf("url.ParseQuery() error = %v", err)
	}

	params := append(FromValues(query), FromValues(body)...)
	params = append(params, Parameters{
		{Name: "oauth_consumer_key", Value: "9djdj82h48djs9d2"},
		{Name: "oauth_token", Value: "kkk9d7dh3k39sjv7"},
		{Name: "oauth_signature_method", Value: "HMAC-SHA1"},
		{Name: "oauth_timestamp", Value: "137131201"},
		{Name: "oauth_nonce", Value: "7d8f3e4a"},
	}...)

	want := "POST&http%3A%2F%2Fexample.com%2Frequest&a2%3Dr%2520b%26" +
		"a3%3D2%2520q%26a3%3Da%26b5%3D%253D%25253D%26c%2540%3D%26c2%3D%26" +
		"oauth_consumer_key%3D9djdj82h48djs9d2%26oauth_nonce%3D7d8f3e4a%26" +
		"oauth_signature_method%3DHMAC-SHA1%26oauth_timestamp%3D137131201%26" +
		"oauth_token%3Dkkk9d7dh3k39sjv7"

	if got := Build("POST", u, params); got != want {
		t.Errorf("Build() =\n%s\nwant\n%s", got, want)
	}
}

// TestOAuthCore_PhotosExample_SignatureBase reproduces the photo-sharing
// walkthrough of OAuth Core 1.0 Appendix A: a GET for a protected
// resource with two query parameters and a full set of protocol
// parameters including oauth_version.
func TestOAuthCore_PhotosExample_SignatureBase(t *testing.T) {
	u, err := url.Parse("http://photos.example.net/photos?file=vacation.jpg&size=original")
	if err != nil {
		t.Fatalf("url.Parse() error = %v", err)
	}

	query, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		t.Fatalf("url.ParseQuery() error = %v", err)
	}

	params := append(FromValues(query), Parameters{
		{Name: "oauth_consumer_key", Value: "dpf43f3p2l4k5c0mz"},
		{Name: "oauth_token", Value: "nnch734d00sl2jdk"},
		{Name: "oauth_signature_method", Value: "HMAC-SHA1"},
		{Name: "oauth_timestamp", Value: "1191242096"},
		{Name: "oauth_nonce", Value: "kllo9940pd9333jh"},
		{Name: "oauth_version", Value: "1.0"},
	}...)

	want := "GET&http%3A%2F%2Fphotos.example.net%2Fphotos&file%3Dvacation.jpg%26" +
		"oauth_consumer_key%3Ddpf43f3p2l4k5c0mz%26oauth_nonce%3Dkllo9940pd9333jh%26" +
		"oauth_signature_method%3DHMAC-SHA1%26oauth_timestamp%3D1191242096%26" +
		"oauth_token%3Dnnch734d00sl2jdk%26oauth_version%3D1.0%26size%3Doriginal"

	if got := Build("GET", u, params); got != want {
		t.Errorf("Build() =\n%s\nwant\n%s", got, want)
	}
}
