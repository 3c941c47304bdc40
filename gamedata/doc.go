// Package gamedata provides the read-only recipe/item lookup tables the
// codec consults to validate decoded identifiers and to know each recipe's
// input/output item counts (spec §3 "Recipe metadata", §6).
//
// The real table is owned by the game client and is, per spec §1, an
// external dependency the codec only needs the interface of
// (graph.RecipeTable, graph.ItemTable). This package supplies one concrete,
// in-memory table — a representative slice of Satisfactory's smelting and
// aluminum-processing chain — suitable for tests, the CLI demo, and any
// caller that doesn't plug in its own.
package gamedata
