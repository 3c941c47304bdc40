// Package fields implements the domain-specific scalar codecs used by the
// node block: recipe identifier, overclock, building count, source item
// kind, and source rate. Each codec is a pair of pure functions over a
// bitio.Writer/Reader, shaped as a prefix code whose first few bits select
// the variant, matching the empirical distribution described in spec §4.2
// (most overclocks are 1.0, most building counts are small, most source
// rates are one of twelve canonical values).
//
// The shape of these codecs — a short "common case" prefix, a handful of
// named shortcuts, and a long-form escape — follows the same idea as the
// teacher's Gorilla float encoder (internal/encoding/numeric_gorilla.go),
// which picks among a zero-bit "unchanged" case, a reused-block case, and a
// full leading/length/mantissa escape. Here the distributions are static
// and domain-known rather than derived from the previous value, so the
// codecs are simpler: no running state, just value-in / bits-out.
package fields
