package oauth

// Limits defines configurable size limits for Authorization header parsing
// to prevent DoS attacks. All limits are optional - zero value means no
// limit (unlimited).
type Limits struct {
	// MaxHeaderLength is the maximum total header value length.
	// Default: 8192 (8KB)
	MaxHeaderLength int

	// MaxParameters is the maximum number of parameters in the header.
	// Default: 64
	MaxParameters int

	// MaxKeyLength is the maximum encoded length of a parameter name.
	// Default: 256
	MaxKeyLength int

	// MaxValueLength is the maximum encoded length of a parameter value.
	// Default: 2048
	MaxValueLength int
}

// DefaultLimits returns sensible default limits for production use.
// These limits are generous enough for any RFC 5849 use case while
// preventing memory exhaustion attacks from malicious input.
func DefaultLimits() Limits {
	return Limits{
		MaxHeaderLength: 8192, // 8KB - typical max header size
		MaxParameters:   64,   // the protocol defines ~8 parameters
		MaxKeyLength:    256,  // generous for parameter names
		MaxValueLength:  2048, // fits RSA signatures with room to spare
	}
}

// NoLimits returns a Limits struct with all limits disabled (zero values).
// Use with caution - only for trusted input where DoS is not a concern.
func NoLimits() Limits {
	return Limits{}
}
