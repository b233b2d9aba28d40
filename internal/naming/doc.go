// Package naming derives the identifiers of generated literal helpers from
// the names of the annotated types.
//
// The derivation is a plain case-fold/word-split transform:
//   - "Stack" -> "stack"
//   - "OrderedSet" -> "ordered_set"
//   - "HTTPHeaderMap" -> "http_header_map"
//
// No registry lives here; collision detection is done by the planner.
package naming
