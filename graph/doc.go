// Package graph defines the in-memory data model the codec operates on:
// Input, Graph, Node (a closed four-case variant), Edge, and the Pos/Endpoint
// value types plus per-kind handle helpers, matching spec §3.
//
// Node is modeled as a discriminated union via the Kind tag plus
// kind-specific payload fields, not an inheritance hierarchy — the same
// shape the teacher uses for its own closed enums (format.EncodingType,
// format.CompressionType in format/types.go), scaled up from a single byte
// tag to a tagged struct since a node also carries a variant-specific
// payload.
package graph
