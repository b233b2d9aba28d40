// Package analyze provides package loading and discovery of annotated types.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to find
// struct declarations carrying literal markers:
//
//	//lit:vec        helper calls Push(e) per element
//	//lit:vec-front  helper calls PushFront(e) per element
//	//lit:set        helper calls Insert(e) per element
//	//lit:map        helper calls Insert(k, v) per pair
//
// Key types:
//   - Target: an annotated declaration with its shape, markers and position
//   - Shape: the structural category of a declaration (only struct is accepted)
//   - Variant: which literal helper a marker asks for
package analyze
