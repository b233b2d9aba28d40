// Package gen provides deterministic Go code generation for literal helpers.
//
// Generation approach uses text/template + go/format, one file per package.
//
// Codegen patterns:
//   - Sequence helpers: variadic elements, one mutation call per element
//   - Pairwise helpers: a generated pair struct, one two-argument call per pair
//   - Constructor called exactly once, result returned after all calls
package gen
