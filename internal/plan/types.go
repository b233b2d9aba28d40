package plan

import (
	"go/token"

	"litgen/internal/analyze"
)

// Plan is everything needed to emit the helper file of one package.
type Plan struct {
	// PackageName is the package clause of the generated file.
	PackageName string
	// Dir is the directory the file is written to.
	Dir string
	// Output is the file name of the generated file.
	Output string
	// Helpers are the literal helpers, in source order of their types.
	Helpers []Helper
	// Imports are the packages referenced by helper signatures, sorted by path.
	Imports []Import
}

// IsEmpty returns true if the plan emits no helpers.
func (p *Plan) IsEmpty() bool {
	return len(p.Helpers) == 0
}

// Helper describes one generated literal-construction function.
type Helper struct {
	// Name is the derived helper identifier (e.g. "ordered_set").
	Name string
	// PairName names the key/value struct of pairwise helpers.
	PairName string
	// TypeName is the annotated type.
	TypeName string
	// Variant selects the literal surface and mutation method.
	Variant analyze.Variant
	// Constructor is the zero-argument constructor called once.
	Constructor string
	// Method is the mutation method called per entry.
	Method string
	// ResultType is the helper's return type (the constructor's result).
	ResultType string
	// ElemType is the element parameter type of single-argument variants.
	ElemType string
	// KeyType and ValueType are the pair field types of pairwise helpers.
	KeyType   string
	ValueType string
	// Pos is the position of the annotated declaration.
	Pos token.Position
}

// IsPairwise returns true if the helper takes key/value pairs.
func (h Helper) IsPairwise() bool {
	return h.Variant == analyze.VariantMap
}

// Import represents an import statement of the generated file.
type Import struct {
	Alias string // Set only when the local name differs from the package name
	Path  string
}

// Options control resolution.
type Options struct {
	// Output is the generated file name. Identifiers already declared in
	// it are not treated as conflicts.
	Output string
	// Strict reports missing or mismatched constructor and mutation
	// methods as errors instead of leaving them to the compiler.
	Strict bool
	// Include filters targets by type name. Nil includes every target.
	Include func(typeName string) bool
}
