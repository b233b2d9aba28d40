package plan

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"litgen/internal/analyze"
	"litgen/internal/diagnostic"
)

func loadSource(t *testing.T, src string) *analyze.Package {
	t.Helper()

	pkg, err := analyze.NewLoader("").LoadSource("/work/demo/demo.go", []byte(src))
	require.NoError(t, err)

	return pkg
}

func helpersByName(p *Plan) map[string]Helper {
	byName := make(map[string]Helper, len(p.Helpers))
	for _, h := range p.Helpers {
		byName[h.Name] = h
	}

	return byName
}

func TestResolver_Collections(t *testing.T) {
	pkgs, err := analyze.NewLoader("").LoadPackages("./testdata/collections")
	require.NoError(t, err)
	require.Len(t, pkgs, 1)

	p, diags := NewResolver(Options{Output: "lit_generated.go"}).Resolve(pkgs[0])
	require.True(t, diags.IsValid(), spew.Sdump(diags))

	assert.Equal(t, "collections", p.PackageName)
	assert.Equal(t, "lit_generated.go", p.Output)
	assert.Equal(t, pkgs[0].Dir, p.Dir)

	names := make([]string, 0, len(p.Helpers))
	for _, h := range p.Helpers {
		names = append(names, h.Name)
	}

	assert.Equal(t, []string{"stack", "deque", "tag_set", "schedule", "sources", "empty"}, names)

	byName := helpersByName(p)

	stack := byName["stack"]
	assert.Equal(t, "Stack", stack.TypeName)
	assert.Equal(t, "NewStack", stack.Constructor)
	assert.Equal(t, "Push", stack.Method)
	assert.Equal(t, "*Stack", stack.ResultType)
	assert.Equal(t, "int", stack.ElemType)
	assert.False(t, stack.IsPairwise())

	deque := byName["deque"]
	assert.Equal(t, "PushFront", deque.Method)
	assert.Equal(t, "Deque", deque.ResultType, "value constructors keep their result type")
	assert.Equal(t, "string", deque.ElemType)

	tagSet := byName["tag_set"]
	assert.Equal(t, "Insert", tagSet.Method)
	assert.Equal(t, "string", tagSet.ElemType, "variadic parameters contribute their element type")

	schedule := byName["schedule"]
	assert.True(t, schedule.IsPairwise())
	assert.Equal(t, "schedule_pair", schedule.PairName)
	assert.Equal(t, "time.Time", schedule.KeyType)
	assert.Equal(t, "time.Duration", schedule.ValueType)

	sources := byName["sources"]
	assert.Equal(t, "*rand.Rand", sources.KeyType)
	assert.Equal(t, "*rand2.Rand", sources.ValueType)

	empty := byName["empty"]
	assert.Equal(t, "*Empty", empty.ResultType)
	assert.Equal(t, "any", empty.ElemType)

	assert.Equal(t, []Import{
		{Path: "math/rand"},
		{Alias: "rand2", Path: "math/rand/v2"},
		{Path: "time"},
	}, p.Imports)

	// Missing methods are left to the compiler outside strict mode.
	require.Len(t, diags.Infos, 2, spew.Sdump(diags.Infos))
	assert.Equal(t, diagnostic.CodeMissingConstructor, diags.Infos[0].Code)
	assert.Equal(t, diagnostic.CodeMissingMethod, diags.Infos[1].Code)
}

func TestResolver_StrictReportsMissingMethods(t *testing.T) {
	pkg := loadSource(t, `package demo

//lit:vec
type Empty struct{}
`)

	p, diags := NewResolver(Options{Strict: true}).Resolve(pkg)

	require.True(t, diags.HasErrors())
	assert.True(t, diags.HasCode(diagnostic.CodeMissingConstructor))
	assert.True(t, diags.HasCode(diagnostic.CodeMissingMethod))
	assert.True(t, p.IsEmpty())
}

func TestResolver_BadSignature(t *testing.T) {
	src := `package demo

//lit:map
type Pairs struct{}

func NewPairs() (*Pairs, error) { return &Pairs{}, nil }

func (p *Pairs) Insert(k string) {}
`

	t.Run("strict", func(t *testing.T) {
		_, diags := NewResolver(Options{Strict: true}).Resolve(loadSource(t, src))

		require.Len(t, diags.Errors, 2, spew.Sdump(diags.Errors))
		assert.Equal(t, diagnostic.CodeBadSignature, diags.Errors[0].Code)
		assert.Equal(t, diagnostic.CodeBadSignature, diags.Errors[1].Code)
	})

	t.Run("deferred", func(t *testing.T) {
		p, diags := NewResolver(Options{}).Resolve(loadSource(t, src))

		require.True(t, diags.IsValid())
		require.Len(t, p.Helpers, 1)
		assert.Equal(t, "*Pairs", p.Helpers[0].ResultType)
		assert.Equal(t, "any", p.Helpers[0].KeyType)
		assert.Equal(t, "any", p.Helpers[0].ValueType)
	})
}

func TestResolver_RejectsNonStructShapes(t *testing.T) {
	pkg := loadSource(t, `package demo

//lit:vec
type Color int

const (
	Red Color = iota
	Green
)

//lit:set
type Shape interface{ Area() float64 }

//lit:map
type Lookup map[string]int
`)

	p, diags := NewResolver(Options{}).Resolve(pkg)

	require.Len(t, diags.Errors, 3)

	for _, d := range diags.Errors {
		assert.Equal(t, diagnostic.CodeUnsupportedShape, d.Code)
		assert.Equal(t, "/work/demo/demo.go", d.Pos.Filename)
	}

	assert.Equal(t, "Color", diags.Errors[0].TypeName)
	assert.Equal(t, 4, diags.Errors[0].Pos.Line)
	assert.Contains(t, diags.Errors[0].Message, "basic")
	assert.True(t, p.IsEmpty(), "no helper is planned for rejected types")
}

func TestResolver_AcceptsAnyFieldLayout(t *testing.T) {
	pkg := loadSource(t, `package demo

//lit:vec
type Named struct{ items []int }

//lit:vec
type Embedded struct{ Named }

//lit:vec
type Bare struct{}
`)

	p, diags := NewResolver(Options{}).Resolve(pkg)

	require.True(t, diags.IsValid(), spew.Sdump(diags))
	assert.Len(t, p.Helpers, 3)
}

func TestResolver_RejectsGenericTypes(t *testing.T) {
	pkg := loadSource(t, `package demo

//lit:vec
type Stack[T any] struct{ items []T }
`)

	_, diags := NewResolver(Options{}).Resolve(pkg)

	require.Len(t, diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeGenericType, diags.Errors[0].Code)
}

func TestResolver_UnknownMarker(t *testing.T) {
	pkg := loadSource(t, `package demo

//lit:list
type Items struct{}
`)

	_, diags := NewResolver(Options{}).Resolve(pkg)

	require.Len(t, diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeUnknownMarker, diags.Errors[0].Code)
	assert.Contains(t, diags.Errors[0].Message, "//lit:vec-front")
}

func TestResolver_UnknownMarkerSuggestion(t *testing.T) {
	pkg := loadSource(t, `package demo

//lit:vec_front
type Items struct{}
`)

	_, diags := NewResolver(Options{}).Resolve(pkg)

	require.Len(t, diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeUnknownMarker, diags.Errors[0].Code)
	assert.Contains(t, diags.Errors[0].Message, "did you mean //lit:vec-front?")
	assert.NotContains(t, diags.Errors[0].Message, "expected one of")
}

func TestResolver_DuplicateNames(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "types folding to the same name",
			src: `package demo

//lit:vec
type AbcDef struct{}

//lit:set
type Abc_Def struct{}
`,
		},
		{
			name: "several markers on one type",
			src: `package demo

//lit:vec
//lit:set
type Bag struct{}
`,
		},
		{
			name: "pair struct name",
			src: `package demo

//lit:map
type Dict struct{}

//lit:vec
type DictPair struct{}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, diags := NewResolver(Options{}).Resolve(loadSource(t, tt.src))

			require.Len(t, diags.Errors, 1, spew.Sdump(diags.Errors))
			assert.Equal(t, diagnostic.CodeDuplicateName, diags.Errors[0].Code)
			assert.Len(t, p.Helpers, 1, "the first claim still plans its helper")
		})
	}
}

func TestResolver_NameConflict(t *testing.T) {
	src := `package demo

//lit:vec
type Stack struct{}

func stack() {}
`

	t.Run("declared by hand", func(t *testing.T) {
		_, diags := NewResolver(Options{Output: "lit_generated.go"}).Resolve(loadSource(t, src))

		require.Len(t, diags.Errors, 1)
		assert.Equal(t, diagnostic.CodeNameConflict, diags.Errors[0].Code)
	})

	t.Run("declared by a previous run", func(t *testing.T) {
		pkg, err := analyze.NewLoader("").LoadSource("/work/demo/lit_generated.go", []byte(src))
		require.NoError(t, err)

		_, diags := NewResolver(Options{Output: "lit_generated.go"}).Resolve(pkg)
		assert.True(t, diags.IsValid(), spew.Sdump(diags))
	})
}

func TestResolver_ReservedAndPredeclaredNames(t *testing.T) {
	pkg := loadSource(t, `package demo

//lit:vec
type Func struct{}

//lit:vec
type New struct{}
`)

	p, diags := NewResolver(Options{}).Resolve(pkg)

	require.Len(t, diags.Errors, 2, spew.Sdump(diags))
	assert.Equal(t, diagnostic.CodeReservedName, diags.Errors[0].Code)
	assert.Equal(t, "Func", diags.Errors[0].TypeName)
	assert.Equal(t, diagnostic.CodePredeclaredName, diags.Errors[1].Code)
	assert.Equal(t, "New", diags.Errors[1].TypeName)
	assert.Empty(t, p.Helpers)
}

func TestResolver_PredeclaredNames(t *testing.T) {
	tests := []struct {
		typeName string
		helper   string
	}{
		{"String", "string"},
		{"Error", "error"},
		{"Append", "append"},
		{"Len", "len"},
		{"Nil", "nil"},
	}

	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			pkg := loadSource(t, `package demo

//lit:vec
type `+tt.typeName+` struct{ parts []string }

func New`+tt.typeName+`() *`+tt.typeName+` { return &`+tt.typeName+`{} }

func (s *`+tt.typeName+`) Push(v string) { s.parts = append(s.parts, v) }
`)

			p, diags := NewResolver(Options{}).Resolve(pkg)

			require.Len(t, diags.Errors, 1)
			assert.Equal(t, diagnostic.CodePredeclaredName, diags.Errors[0].Code)
			assert.Contains(t, diags.Errors[0].Message, "predeclared identifier "+tt.helper)
			assert.Equal(t, 4, diags.Errors[0].Pos.Line)
			assert.Empty(t, p.Helpers)
		})
	}
}

func TestResolver_ImportNameConflict(t *testing.T) {
	pkg := loadSource(t, `package demo

import (
	"time"
	str "strings"
)

//lit:vec
type Time struct{ at []time.Time }

//lit:map
type Str struct{}

//lit:set
type Strings struct{}

var _ = str.ToUpper
`)

	p, diags := NewResolver(Options{}).Resolve(pkg)

	require.Len(t, diags.Errors, 2, spew.Sdump(diags))

	for _, d := range diags.Errors {
		assert.Equal(t, diagnostic.CodeNameConflict, d.Code)
	}

	assert.Equal(t, "Time", diags.Errors[0].TypeName)
	assert.Contains(t, diags.Errors[0].Message, `import of "time"`)
	assert.Equal(t, "Str", diags.Errors[1].TypeName)
	assert.Contains(t, diags.Errors[1].Message, `import of "strings"`)

	require.Len(t, p.Helpers, 1, "the unaliased import name strings is not taken")
	assert.Equal(t, "strings", p.Helpers[0].Name)
}

func TestResolver_PreviousOutputUnderOtherName(t *testing.T) {
	pkgs, err := analyze.NewLoader("").LoadPackages("../analyze/testdata/generated")
	require.NoError(t, err)
	require.Len(t, pkgs, 1)

	p, diags := NewResolver(Options{Output: "lit_generated.go"}).Resolve(pkgs[0])
	require.True(t, diags.IsValid(), spew.Sdump(diags))
	require.Len(t, p.Helpers, 1)
	assert.Equal(t, "ticks", p.Helpers[0].Name)
	assert.Equal(t, "time.Time", p.Helpers[0].ElemType)
}

func TestResolver_IncludeFilter(t *testing.T) {
	pkg := loadSource(t, `package demo

//lit:vec
type Keep struct{}

//lit:vec
type Color int
`)

	p, diags := NewResolver(Options{
		Include: func(name string) bool { return name == "Keep" },
	}).Resolve(pkg)

	assert.True(t, diags.IsValid(), "excluded types are not validated")
	require.Len(t, p.Helpers, 1)
	assert.Equal(t, "keep", p.Helpers[0].Name)
}
