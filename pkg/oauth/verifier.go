package oauth

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/forcebit/oauth1-request-signing-rfc5849-go/pkg/base"
	"github.com/forcebit/oauth1-request-signing-rfc5849-go/pkg/digest"
	"github.com/forcebit/oauth1-request-signing-rfc5849-go/pkg/signing"
)

// SecretResolver resolves verification key material for a client.
type SecretResolver interface {
	// ResolveSecrets returns the key material registered for the given
	// client credentials: *signing.Secrets for the HMAC and PLAINTEXT
	// methods, *rsa.PublicKey for the RSA methods. Returning an error
	// rejects the request.
	ResolveSecrets(ctx context.Context, consumerKey, token, signatureMethod string) (interface{}, error)
}

// SecretResolverFunc adapts a function to the SecretResolver interface.
type SecretResolverFunc func(ctx context.Context, consumerKey, token, signatureMethod string) (interface{}, error)

// ResolveSecrets implements SecretResolver.
func (f SecretResolverFunc) ResolveSecrets(ctx context.Context, consumerKey, token, signatureMethod string) (interface{}, error) {
	return f(ctx, consumerKey, token, signatureMethod)
}

// VerifyOptions configures signature verification.
type VerifyOptions struct {
	// ConsumerSecret and TokenSecret verify HMAC and PLAINTEXT
	// signatures from a single known client.
	ConsumerSecret string
	TokenSecret    string

	// Key is the *rsa.PublicKey for RSA verification of a single known
	// client.
	Key interface{}

	// Resolver looks up key material by consumer key and token, for
	// servers with more than one registered client. Mutually exclusive
	// with the static credentials above.
	Resolver SecretResolver

	// AllowedMethods restricts acceptable oauth_signature_method values.
	// Empty allows every registered method.
	AllowedMethods []string

	// MaxAge rejects requests whose oauth_timestamp is older than this.
	// Zero disables timestamp checking entirely.
	MaxAge time.Duration

	// ClockSkew is the tolerance for timestamps from the future. Only
	// consulted when MaxAge checking is enabled.
	ClockSkew time.Duration

	// RequireBodyHash rejects non-form requests that do not carry
	// oauth_body_hash. A present oauth_body_hash is always verified,
	// required or not.
	RequireBodyHash bool

	// Limits bounds Authorization header parsing.
	// Default: DefaultLimits().
	Limits *Limits

	// Now supplies the verification time. Default: time.Now.
	Now func() time.Time
}

// VerifyResult contains details about a successful verification.
type VerifyResult struct {
	ConsumerKey     string
	Token           string
	SignatureMethod string
	Timestamp       time.Time // zero when the request carried no oauth_timestamp
	Nonce           string
	Realm           string
	BodyHashChecked bool
	SignatureBase   string
}

// Verifier verifies OAuth-signed HTTP requests using a configured policy.
//
// The Verifier checks the signature, the timestamp window, and the body
// hash. Nonce replay protection needs request history and therefore
// stays with the caller; the verified nonce is reported in VerifyResult
// for that purpose.
type Verifier struct {
	consumerSecret  string
	tokenSecret     string
	key             interface{}
	resolver        SecretResolver
	allowedMethods  map[string]struct{}
	maxAge          time.Duration
	clockSkew       time.Duration
	requireBodyHash bool
	limits          Limits
	now             func() time.Time
}

// NewVerifier creates a Verifier with the provided options.
func NewVerifier(opts VerifyOptions) (*Verifier, error) {
	if opts.Resolver != nil && (opts.Key != nil || opts.ConsumerSecret != "" || opts.TokenSecret != "") {
		return nil, fmt.Errorf("static credentials and resolver are mutually exclusive")
	}
	if opts.Resolver == nil && opts.Key == nil && opts.ConsumerSecret == "" {
		return nil, fmt.Errorf("verification credentials are required")
	}

	limits := DefaultLimits()
	if opts.Limits != nil {
		limits = *opts.Limits
	}

	allowed := make(map[string]struct{}, len(opts.AllowedMethods))
	for _, method := range opts.AllowedMethods {
		allowed[method] = struct{}{}
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Verifier{
		consumerSecret:  opts.ConsumerSecret,
		tokenSecret:     opts.TokenSecret,
		key:             opts.Key,
		resolver:        opts.Resolver,
		allowedMethods:  allowed,
		maxAge:          opts.MaxAge,
		clockSkew:       opts.ClockSkew,
		requireBodyHash: opts.RequireBodyHash,
		limits:          limits,
		now:             now,
	}, nil
}

// VerifyRequest verifies the OAuth signature on an HTTP request.
//
// The Authorization header is parsed, the signature base string is
// rebuilt from the request exactly as a signer would have built it, and
// the signature is checked against the resolved key material. A body,
// when present, is consumed and replaced with an equivalent in-memory
// reader.
func (v *Verifier) VerifyRequest(req *http.Request) (VerifyResult, error) {
	if req == nil {
		return VerifyResult{}, fmt.Errorf("request is required")
	}

	headerValue := req.Header.Get("Authorization")
	if headerValue == "" {
		return VerifyResult{}, fmt.Errorf("header Authorization is empty")
	}

	header, err := ParseAuthorizationHeader(headerValue, v.limits)
	if err != nil {
		return VerifyResult{}, fmt.Errorf("failed to parse Authorization header: %w", err)
	}

	signature, ok := header.Get("oauth_signature")
	if !ok {
		return VerifyResult{}, fmt.Errorf("oauth_signature parameter is missing")
	}
	method, ok := header.Get("oauth_signature_method")
	if !ok {
		return VerifyResult{}, fmt.Errorf("oauth_signature_method parameter is missing")
	}
	consumerKey, ok := header.Get("oauth_consumer_key")
	if !ok {
		return VerifyResult{}, fmt.Errorf("oauth_consumer_key parameter is missing")
	}
	token, _ := header.Get("oauth_token")

	if len(v.allowedMethods) > 0 {
		if _, ok := v.allowedMethods[method]; !ok {
			return VerifyResult{}, fmt.Errorf("signature method %q is not allowed", method)
		}
	}

	alg, err := signing.GetAlgorithm(method)
	if err != nil {
		return VerifyResult{}, err
	}

	if version, ok := header.Get("oauth_version"); ok && version != "1.0" {
		return VerifyResult{}, fmt.Errorf("unsupported oauth_version %q", version)
	}

	timestamp, nonce, err := v.checkTimestampAndNonce(header, method)
	if err != nil {
		return VerifyResult{}, err
	}

	requestParams, body, form, err := collectRequestParameters(req)
	if err != nil {
		return VerifyResult{}, err
	}

	bodyHashChecked := false
	if bodyHash, ok := header.Get("oauth_body_hash"); ok {
		if form {
			return VerifyResult{}, fmt.Errorf("oauth_body_hash must not be used with form-encoded bodies")
		}
		if err := digest.Verify(body, bodyHash, method); err != nil {
			return VerifyResult{}, err
		}
		bodyHashChecked = true
	} else if v.requireBodyHash && !form {
		return VerifyResult{}, fmt.Errorf("oauth_body_hash parameter is missing")
	}

	// Rebuild the base string: request parameters plus every protocol
	// parameter except oauth_signature (Section 3.4.1.3.1; realm is
	// already excluded by the parser).
	covered := make(base.Parameters, 0, len(requestParams)+len(header.Parameters))
	covered = append(covered, requestParams...)
	for _, p := range header.Parameters {
		if p.Name == "oauth_signature" {
			continue
		}
		covered = append(covered, p)
	}
	signatureBase := base.Build(req.Method, effectiveURL(req), covered)

	key, err := v.resolveKey(req.Context(), consumerKey, token, method)
	if err != nil {
		return VerifyResult{}, err
	}

	if err := alg.Verify([]byte(signatureBase), signature, key); err != nil {
		return VerifyResult{}, err
	}

	return VerifyResult{
		ConsumerKey:     consumerKey,
		Token:           token,
		SignatureMethod: method,
		Timestamp:       timestamp,
		Nonce:           nonce,
		Realm:           header.Realm,
		BodyHashChecked: bodyHashChecked,
		SignatureBase:   signatureBase,
	}, nil
}

// checkTimestampAndNonce enforces the presence rules of Section 3.1 and
// the configured timestamp window. Both parameters are optional for
// PLAINTEXT, required otherwise.
func (v *Verifier) checkTimestampAndNonce(header *AuthorizationHeader, method string) (time.Time, string, error) {
	timestampValue, hasTimestamp := header.Get("oauth_timestamp")
	nonce, hasNonce := header.Get("oauth_nonce")

	if method != "PLAINTEXT" {
		if !hasTimestamp {
			return time.Time{}, "", fmt.Errorf("oauth_timestamp parameter is missing")
		}
		if !hasNonce {
			return time.Time{}, "", fmt.Errorf("oauth_nonce parameter is missing")
		}
	}

	var timestamp time.Time
	if hasTimestamp {
		seconds, err := strconv.ParseInt(timestampValue, 10, 64)
		if err != nil || seconds < 0 {
			return time.Time{}, "", fmt.Errorf("invalid oauth_timestamp %q", timestampValue)
		}
		timestamp = time.Unix(seconds, 0)

		if v.maxAge > 0 {
			now := v.now()
			if now.Sub(timestamp) > v.maxAge {
				return time.Time{}, "", fmt.Errorf("oauth_timestamp %d is older than %s", seconds, v.maxAge)
			}
			if timestamp.Sub(now) > v.clockSkew {
				return time.Time{}, "", fmt.Errorf("oauth_timestamp %d is in the future", seconds)
			}
		}
	}

	return timestamp, nonce, nil
}

func (v *Verifier) resolveKey(ctx context.Context, consumerKey, token, method string) (interface{}, error) {
	if v.resolver != nil {
		key, err := v.resolver.ResolveSecrets(ctx, consumerKey, token, method)
		if err != nil {
			return nil, err
		}
		if key == nil {
			return nil, fmt.Errorf("verification key is required")
		}
		return key, nil
	}

	if strings.HasPrefix(method, "RSA-") {
		if v.key == nil {
			return nil, fmt.Errorf("verification key is required for %s", method)
		}
		return v.key, nil
	}

	return &signing.Secrets{
		ConsumerSecret: v.consumerSecret,
		TokenSecret:    v.tokenSecret,
	}, nil
}
