package envelope

import "github.com/satisfactorytools/graphtoken/internal/options"

// wrapConfig holds Wrap's configurable knobs. newWrapConfig's default tries
// every registered Algorithm, which is correct for the common case of a
// single, infrequently-generated share token.
type wrapConfig struct {
	candidates []Algorithm
}

// WrapOption configures a Wrap call, using the teacher's generic
// functional-option plumbing (internal/options) the same way
// blob.NumericEncoderOption configures a numeric encoder.
type WrapOption = options.Option[*wrapConfig]

// WithAlgorithms restricts the set of compressors Wrap tries, in case a
// caller already knows e.g. that zstd never helps for its payload shape
// and wants to skip the extra CPU work.
func WithAlgorithms(ids ...Algorithm) WrapOption {
	return options.NoError[*wrapConfig](func(c *wrapConfig) {
		c.candidates = ids
	})
}

func newWrapConfig(opts []WrapOption) *wrapConfig {
	cfg := &wrapConfig{candidates: allAlgorithms}
	_ = options.Apply(cfg, opts...)

	return cfg
}
