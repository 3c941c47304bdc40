// Package transport is the JSON front end the codec itself does not own
// (spec §1 "Out of scope", §6 "JSON interface"): it maps the public,
// arbitrary-NodeId-keyed schema to and from a graph.Input, and scales
// overclock between its decimal wire form and the codec's micro-unit
// integer.
//
// NodeId keys carry no meaning to the codec (spec §3 "Identifier
// remapping"), but assigning them positional indices has to be
// deterministic for a given key set — two Encode calls on the same graph
// must produce option pools in the same order, or the edge coder's ranks
// would come out differently every run for no reason. Rather than sort
// keys lexically (which would bias the ordering toward whatever naming
// convention the caller happens to use), indices are assigned by sorting
// on the xxHash64 of each key, using internal/hash.ID exactly as the
// teacher's internal/hash package assigns stable numeric ids to metric
// name strings.
package transport
