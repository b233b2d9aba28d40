package analyze

import (
	"go/token"
	"go/types"
)

//go:generate go tool stringer -type=Shape -linecomment -output=shape_string.go
//go:generate go tool stringer -type=Variant -linecomment -output=variant_string.go

// Shape is the structural category of a type declaration.
type Shape int

const (
	ShapeUnknown   Shape = iota // unknown
	ShapeStruct                 // struct
	ShapeInterface              // interface
	ShapeAlias                  // alias
	ShapeBasic                  // basic
	ShapePointer                // pointer
	ShapeSlice                  // slice
	ShapeArray                  // array
	ShapeMap                    // map
	ShapeFunc                   // func
	ShapeChan                   // chan
)

// Variant selects which literal helper is generated for a target.
type Variant int

const (
	_ Variant = iota // skip zero value, it marks an unset variant

	VariantVec      // vec
	VariantVecFront // vec-front
	VariantSet      // set
	VariantMap      // map
)

// GeneratedHeader is the first line of every file litgen writes.
const GeneratedHeader = "// Code generated by litgen. DO NOT EDIT."

// MarkerPrefix starts every literal directive comment.
const MarkerPrefix = "//lit:"

// Variants lists all variants in declaration order.
func Variants() []Variant {
	return []Variant{VariantVec, VariantVecFront, VariantSet, VariantMap}
}

// ParseVariant returns the variant named by a marker suffix such as "vec-front".
func ParseVariant(s string) (Variant, bool) {
	for _, v := range Variants() {
		if v.String() == s {
			return v, true
		}
	}

	return 0, false
}

// Marker returns the directive comment that requests v.
func (v Variant) Marker() string {
	return MarkerPrefix + v.String()
}

// Method returns the mutation method the helper of v calls.
func (v Variant) Method() string {
	switch v {
	case VariantVec:
		return "Push"
	case VariantVecFront:
		return "PushFront"
	case VariantSet, VariantMap:
		return "Insert"
	default:
		return ""
	}
}

// Arity returns the number of arguments passed to Method per literal entry.
func (v Variant) Arity() int {
	if v == VariantMap {
		return 2
	}

	return 1
}

// Target is an annotated type declaration.
type Target struct {
	Name     string          // Declared type name
	Shape    Shape           // Structural category
	Variants []Variant       // Requested helpers, in marker order
	Unknown  []string        // Unrecognized //lit: directives, verbatim
	Generic  bool            // Declaration has type parameters
	Pos      token.Position  // Position of the type name
	Obj      *types.TypeName // Type-checked object, nil when unavailable
}

// Package holds the annotated targets of one loaded package.
type Package struct {
	PkgPath string         // Import path
	Name    string         // Package name
	Dir     string         // Directory holding the package sources
	Fset    *token.FileSet // File set used for all positions
	Types   *types.Package // Type-checked package (possibly incomplete)
	Targets []Target       // Annotated declarations, in source order
	// TypeErrors are tolerated type-check errors. Sources commonly call
	// helpers that have not been generated yet.
	TypeErrors []error
	// Imports are the file-scope import names of the hand-written files.
	Imports []Import
	// Generated are the paths of files written by an earlier litgen run,
	// whatever output name was used then.
	Generated []string
}

// Import is one import declaration of a hand-written file.
type Import struct {
	Name string         // Local name the import declares in its file
	Path string         // Import path
	Pos  token.Position // Position of the import spec
}

// ConstructorName returns the zero-argument constructor expected for Target.
func (t *Target) ConstructorName() string {
	return "New" + t.Name
}
