// Package oauth provides a high-level API for signing and verifying HTTP
// requests with OAuth 1.0 protocol signatures (RFC 5849).
//
// It wraps the base string builder, the signing algorithms, and the
// Authorization header codec into a simple Signer/Verifier flow suitable
// for common HTTP client and server usage.
package oauth
