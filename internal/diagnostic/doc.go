// Package diagnostic provides structured, positioned errors and warnings
// for the literal helper generator.
//
// Key capabilities:
//   - Unsupported shape and generic type rejections
//   - Duplicate and conflicting helper names
//   - Missing or mismatched constructor and mutator methods (strict mode)
//   - Unknown marker directives
package diagnostic
