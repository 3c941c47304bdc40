// Package errs defines the sentinel errors returned by graphtoken's decode
// path. Errors are never constructed ad-hoc; callers wrap one of these with
// fmt.Errorf("...: %w", ...) to attach positional context.
package errs

import "errors"

var (
	// ErrTruncatedRead is returned when a read_bits call runs past the end
	// of the input buffer.
	ErrTruncatedRead = errors.New("graphtoken: truncated read past end of buffer")

	// ErrLengthTooLarge is returned when a length varint is >= 32768.
	ErrLengthTooLarge = errors.New("graphtoken: length varint out of range")

	// ErrInvalidTag is returned when a 3-bit node tag is not in {0,1,2,3}.
	ErrInvalidTag = errors.New("graphtoken: invalid node tag")

	// ErrRecipeOutOfRange is returned when a decoded recipe id has no entry
	// in the recipe table.
	ErrRecipeOutOfRange = errors.New("graphtoken: recipe id out of range")

	// ErrSourceItemOutOfRange is returned when a decoded source item id has
	// no entry in the item table.
	ErrSourceItemOutOfRange = errors.New("graphtoken: source item id out of range")

	// ErrZeroBuildingCount is returned when a decoded building count is zero.
	ErrZeroBuildingCount = errors.New("graphtoken: building count must be non-zero")

	// ErrEdgeRankOutOfBounds is returned when a decoded edge-coder rank is
	// not smaller than its computed bound.
	ErrEdgeRankOutOfBounds = errors.New("graphtoken: edge rank out of bounds")

	// ErrEdgeBoundZero is returned when a target's computed option bound is
	// zero (no legal endpoint remains).
	ErrEdgeBoundZero = errors.New("graphtoken: edge coder bound is zero")

	// ErrNodeIndexOutOfRange is returned when an edge endpoint references a
	// node index >= node count.
	ErrNodeIndexOutOfRange = errors.New("graphtoken: node index out of range")

	// ErrPositionMisaligned is an encode-time precondition violation: a
	// node position is not a multiple of the grid constant.
	ErrPositionMisaligned = errors.New("graphtoken: node position not grid-aligned")

	// ErrOverclockOutOfRange is an encode-time precondition violation: an
	// overclock value falls outside [0.01, 2.50].
	ErrOverclockOutOfRange = errors.New("graphtoken: overclock out of range")

	// ErrEdgeEndpointInUse is an encode-time precondition violation: two
	// edges claim the same (node, handle) endpoint.
	ErrEdgeEndpointInUse = errors.New("graphtoken: handle already used by another edge")

	// ErrEdgeTypeMismatch is an encode-time precondition violation: an
	// edge connects two typed endpoints carrying different items.
	ErrEdgeTypeMismatch = errors.New("graphtoken: edge endpoints carry incompatible items")

	// ErrEdgeEndpointKind is an encode-time precondition violation: an edge
	// source is not an output handle, or its target is not an input handle.
	ErrEdgeEndpointKind = errors.New("graphtoken: edge endpoint is not the expected handle kind")

	// ErrOverclockPrecision is an encode-time precondition violation: an
	// overclock value has more than 4 decimal digits of precision.
	ErrOverclockPrecision = errors.New("graphtoken: overclock has more than 4 decimal digits")

	// ErrUnknownAlgorithm is returned when a token's leading algorithm tag
	// does not name a registered envelope codec.
	ErrUnknownAlgorithm = errors.New("graphtoken: unknown envelope algorithm")

	// ErrEmptyToken is returned when a token decodes to zero bytes, too
	// short to carry even the algorithm tag.
	ErrEmptyToken = errors.New("graphtoken: token too short to carry an algorithm tag")

	// ErrUnknownNodeID is returned when a JSON edge references a node id
	// absent from the node map.
	ErrUnknownNodeID = errors.New("graphtoken: edge references unknown node id")

	// ErrUnknownNodeType is returned when a JSON node's "type" field is not
	// one of recipe, merger, splitter, source.
	ErrUnknownNodeType = errors.New("graphtoken: unknown node type")
)
