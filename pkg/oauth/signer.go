package oauth

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/forcebit/oauth1-request-signing-rfc5849-go/pkg/base"
	"github.com/forcebit/oauth1-request-signing-rfc5849-go/pkg/digest"
	"github.com/forcebit/oauth1-request-signing-rfc5849-go/pkg/signing"
)

// DefaultSignatureMethod is used when SignerOptions does not name one.
const DefaultSignatureMethod = "HMAC-SHA1"

// SignerOptions configures a high-level signing operation.
type SignerOptions struct {
	// ConsumerKey is the client identifier (oauth_consumer_key). Required.
	ConsumerKey string

	// ConsumerSecret and TokenSecret form the signing key for the HMAC
	// and PLAINTEXT methods. Empty values are valid per the protocol.
	ConsumerSecret string

	// Token is the access token (oauth_token). Omitted from the request
	// when empty, as in the temporary credential phase.
	Token string

	// TokenSecret is the shared secret paired with Token.
	TokenSecret string

	// Key is the *rsa.PrivateKey for the RSA methods. Required for RSA
	// methods, must be nil for the others.
	Key interface{}

	// SignatureMethod selects the signature algorithm.
	// Default: HMAC-SHA1.
	SignatureMethod string

	// Realm, when non-empty, is emitted as the realm parameter. It is
	// not covered by the signature.
	Realm string

	// Nonce fixes the oauth_nonce value for every signed request.
	// Intended for tests and worked examples; mutually exclusive with
	// NonceGenerator.
	Nonce string

	// IncludeVersion adds oauth_version="1.0", which the protocol makes
	// optional.
	IncludeVersion bool

	// IncludeBodyHash adds oauth_body_hash over non-form bodies per the
	// OAuth Request Body Hash extension. Form-encoded bodies are covered
	// by parameter normalization and never hashed.
	IncludeBodyHash bool

	// Now supplies oauth_timestamp values. Default: time.Now.
	Now func() time.Time

	// NonceGenerator supplies oauth_nonce values. Default: GenerateNonce.
	NonceGenerator func() (string, error)
}

// Signer signs HTTP requests and attaches the Authorization header.
type Signer struct {
	consumerKey     string
	token           string
	method          string
	alg             signing.Algorithm
	key             interface{}
	realm           string
	nonce           string
	includeVersion  bool
	includeBodyHash bool
	now             func() time.Time
	nonceGen        func() (string, error)
}

// NewSigner creates a Signer with the provided options.
func NewSigner(opts SignerOptions) (*Signer, error) {
	if opts.ConsumerKey == "" {
		return nil, fmt.Errorf("consumer key is required")
	}

	method := opts.SignatureMethod
	if method == "" {
		method = DefaultSignatureMethod
	}

	alg, err := signing.GetAlgorithm(method)
	if err != nil {
		return nil, err
	}

	var key interface{}
	if strings.HasPrefix(method, "RSA-") {
		if opts.Key == nil {
			return nil, fmt.Errorf("signing key is required for %s", method)
		}
		key = opts.Key
	} else {
		if opts.Key != nil {
			return nil, fmt.Errorf("signing key is only used with RSA methods, not %s", method)
		}
		key = &signing.Secrets{
			ConsumerSecret: opts.ConsumerSecret,
			TokenSecret:    opts.TokenSecret,
		}
	}

	if opts.Nonce != "" && opts.NonceGenerator != nil {
		return nil, fmt.Errorf("nonce and nonce generator are mutually exclusive")
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}
	nonceGen := opts.NonceGenerator
	if nonceGen == nil {
		nonceGen = GenerateNonce
	}

	return &Signer{
		consumerKey:     opts.ConsumerKey,
		token:           opts.Token,
		method:          method,
		alg:             alg,
		key:             key,
		realm:           opts.Realm,
		nonce:           opts.Nonce,
		includeVersion:  opts.IncludeVersion,
		includeBodyHash: opts.IncludeBodyHash,
		now:             now,
		nonceGen:        nonceGen,
	}, nil
}

// SignRequest computes the OAuth signature for req and sets its
// Authorization header per RFC 5849 Section 3.5.1. It returns the header
// value that was set.
//
// The signature covers the request method, the base string URI, the
// query component, a form-encoded body, and the emitted protocol
// parameters. A body, when present, is consumed and replaced with an
// equivalent in-memory reader.
func (s *Signer) SignRequest(req *http.Request) (string, error) {
	if req == nil {
		return "", fmt.Errorf("request is required")
	}

	requestParams, body, form, err := collectRequestParameters(req)
	if err != nil {
		return "", err
	}

	nonce := s.nonce
	if nonce == "" {
		nonce, err = s.nonceGen()
		if err != nil {
			return "", err
		}
	}

	protocol := base.Parameters{
		{Name: "oauth_consumer_key", Value: s.consumerKey},
	}
	if s.token != "" {
		protocol = protocol.With("oauth_token", s.token)
	}
	protocol = protocol.
		With("oauth_signature_method", s.method).
		With("oauth_timestamp", strconv.FormatInt(s.now().Unix(), 10)).
		With("oauth_nonce", nonce)

	if s.includeVersion {
		protocol = protocol.With("oauth_version", "1.0")
	}
	if s.includeBodyHash && !form {
		bodyHash, err := digest.Compute(body, s.method)
		if err != nil {
			return "", err
		}
		protocol = protocol.With("oauth_body_hash", bodyHash)
	}

	covered := make(base.Parameters, 0, len(requestParams)+len(protocol))
	covered = append(covered, requestParams...)
	covered = append(covered, protocol...)
	signatureBase := base.Build(req.Method, effectiveURL(req), covered)

	signature, err := s.alg.Sign([]byte(signatureBase), s.key)
	if err != nil {
		return "", err
	}

	header := BuildAuthorizationHeader(s.realm, protocol.With("oauth_signature", signature))
	if req.Header == nil {
		req.Header = make(http.Header)
	}
	req.Header.Set("Authorization", header)

	return header, nil
}
