// Package graphcodec implements the node block, the edge coder, and the
// top-level Encode/Decode entry points described in spec §4.3-§4.5 and §6.
//
// This is the component with no real teacher analogue: mebo never needs to
// rank an edge against a shrinking pool of typed endpoints. Its shape
// instead follows the teacher's top-level encoder/decoder split
// (blob/numeric_encoder.go + blob/numeric_decoder.go: a single forward pass
// that writes a header, then an index, then payloads; the decoder mirrors
// each step in the same order) and its error style (errs sentinel values
// wrapped with positional context, section/numeric_header.go's Parse).
package graphcodec
