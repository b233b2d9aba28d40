package plan

import (
	"fmt"
	"go/types"
	"path/filepath"
	"slices"
	"strings"

	"litgen/internal/analyze"
	"litgen/internal/diagnostic"
	"litgen/internal/naming"
)

// anyTypeStr is used for parameters whose method could not be resolved.
// The generated call then fails to compile at the helper, which is where a
// missing method surfaces in deferred mode.
const anyTypeStr = "any"

// Resolver builds helper plans from analyzed packages.
type Resolver struct {
	opts Options
}

// NewResolver creates a Resolver with the given options.
func NewResolver(opts Options) *Resolver {
	return &Resolver{opts: opts}
}

// candidate is a target variant that passed validation and received a name.
type candidate struct {
	target   *analyze.Target
	variant  analyze.Variant
	name     string
	pairName string
}

// Resolve validates the targets of pkg and plans their helpers. The plan is
// only meaningful when the returned diagnostics hold no errors.
func (r *Resolver) Resolve(pkg *analyze.Package) (*Plan, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	p := &Plan{
		PackageName: pkg.Name,
		Dir:         pkg.Dir,
		Output:      r.opts.Output,
	}

	registry := NewRegistry()

	var candidates []candidate

	for i := range pkg.Targets {
		t := &pkg.Targets[i]
		if r.opts.Include != nil && !r.opts.Include(t.Name) {
			continue
		}

		if !r.validate(t, &diags) {
			continue
		}

		candidates = append(candidates, r.claim(pkg, t, registry, &diags)...)
	}

	imports := newImportSet(pkg.Types, func(name string) bool {
		_, ok := registry.Owner(name)

		return ok
	})

	for _, c := range candidates {
		helper, ok := r.resolveHelper(pkg, c, imports, &diags)
		if ok {
			p.Helpers = append(p.Helpers, helper)
		}
	}

	p.Imports = imports.imports()
	diags.Sort()

	return p, diags
}

// validate checks markers, shape and type parameters of t.
func (r *Resolver) validate(t *analyze.Target, diags *diagnostic.Diagnostics) bool {
	ok := true

	for _, directive := range t.Unknown {
		msg := fmt.Sprintf("unknown directive %q on %s", directive, t.Name)
		if guess, found := suggestMarker(directive); found {
			msg += fmt.Sprintf(", did you mean %s?", guess)
		} else {
			msg += ", expected one of " + markerList()
		}

		diags.AddError(diagnostic.CodeUnknownMarker, msg, t.Name, t.Pos)

		ok = false
	}

	if t.Shape != analyze.ShapeStruct {
		diags.AddError(diagnostic.CodeUnsupportedShape,
			fmt.Sprintf("%s is a %s type; literal markers are only supported on struct types", t.Name, t.Shape),
			t.Name, t.Pos)

		return false
	}

	if t.Generic {
		diags.AddError(diagnostic.CodeGenericType,
			fmt.Sprintf("%s has type parameters; literal markers are not supported on generic types", t.Name),
			t.Name, t.Pos)

		return false
	}

	return ok
}

// claim derives the helper names for every variant of t and records them.
func (r *Resolver) claim(
	pkg *analyze.Package,
	t *analyze.Target,
	registry *Registry,
	diags *diagnostic.Diagnostics,
) []candidate {
	name := naming.SnakeCase(t.Name)

	if !naming.IsValidIdent(name) || naming.IsReserved(name) {
		diags.AddError(diagnostic.CodeReservedName,
			fmt.Sprintf("helper name %q derived from %s is not a usable identifier", name, t.Name),
			t.Name, t.Pos)

		return nil
	}

	// A package-level helper named like a builtin hides it from every file
	// of the package.
	if naming.IsPredeclared(name) {
		diags.AddError(diagnostic.CodePredeclaredName,
			fmt.Sprintf("helper %s derived from %s would shadow the predeclared identifier %s", name, t.Name, name),
			t.Name, t.Pos)

		return nil
	}

	var result []candidate

	for _, v := range t.Variants {
		c := candidate{target: t, variant: v, name: name}
		if v == analyze.VariantMap {
			c.pairName = naming.PairName(name)
		}

		if r.claimName(pkg, t, c.name, registry, diags) && (c.pairName == "" ||
			r.claimName(pkg, t, c.pairName, registry, diags)) {
			result = append(result, c)
		}
	}

	return result
}

func (r *Resolver) claimName(
	pkg *analyze.Package,
	t *analyze.Target,
	name string,
	registry *Registry,
	diags *diagnostic.Diagnostics,
) bool {
	if prev, ok := registry.Claim(name, t.Name); !ok {
		msg := fmt.Sprintf("helper %s derived from %s is already generated for %s", name, t.Name, prev)
		if prev == t.Name {
			msg = fmt.Sprintf("helper %s is requested more than once by the markers of %s", name, t.Name)
		}

		diags.AddError(diagnostic.CodeDuplicateName, msg, t.Name, t.Pos)

		return false
	}

	for _, imp := range pkg.Imports {
		if imp.Name == name {
			diags.AddError(diagnostic.CodeNameConflict,
				fmt.Sprintf("helper %s derived from %s conflicts with the import of %q at %s",
					name, t.Name, imp.Path, imp.Pos),
				t.Name, t.Pos)

			return false
		}
	}

	if pkg.Types == nil {
		return true
	}

	obj := pkg.Types.Scope().Lookup(name)
	if obj == nil || r.declaredInOutput(pkg, obj) {
		return true
	}

	diags.AddError(diagnostic.CodeNameConflict,
		fmt.Sprintf("helper %s derived from %s conflicts with %s declared at %s",
			name, t.Name, name, pkg.Fset.Position(obj.Pos())),
		t.Name, t.Pos)

	return false
}

// declaredInOutput reports whether obj comes from a previous run's output,
// either the current output file or a litgen file written under another name.
func (r *Resolver) declaredInOutput(pkg *analyze.Package, obj types.Object) bool {
	if pkg.Fset == nil {
		return false
	}

	pos := pkg.Fset.Position(obj.Pos())
	if slices.Contains(pkg.Generated, pos.Filename) {
		return true
	}

	return r.opts.Output != "" &&
		filepath.Base(pos.Filename) == r.opts.Output && filepath.Dir(pos.Filename) == pkg.Dir
}

// resolveHelper fills in constructor, method and parameter types of c.
func (r *Resolver) resolveHelper(
	pkg *analyze.Package,
	c candidate,
	imports *importSet,
	diags *diagnostic.Diagnostics,
) (Helper, bool) {
	t := c.target

	h := Helper{
		Name:        c.name,
		PairName:    c.pairName,
		TypeName:    t.Name,
		Variant:     c.variant,
		Constructor: t.ConstructorName(),
		Method:      c.variant.Method(),
		ResultType:  "*" + t.Name,
		Pos:         t.Pos,
	}

	ok := true

	if result, found := r.constructorResult(pkg, t, diags); found {
		h.ResultType = imports.typeString(result)
	} else if r.opts.Strict {
		ok = false
	}

	params, found := r.methodParams(pkg, t, c.variant, diags)
	if !found && r.opts.Strict {
		ok = false
	}

	paramStrs := make([]string, c.variant.Arity())
	for i := range paramStrs {
		paramStrs[i] = anyTypeStr
		if found {
			paramStrs[i] = imports.typeString(params[i])
		}
	}

	if h.IsPairwise() {
		h.KeyType, h.ValueType = paramStrs[0], paramStrs[1]
	} else {
		h.ElemType = paramStrs[0]
	}

	return h, ok
}

// constructorResult looks up New<Type>() and returns its single result type.
func (r *Resolver) constructorResult(
	pkg *analyze.Package,
	t *analyze.Target,
	diags *diagnostic.Diagnostics,
) (types.Type, bool) {
	name := t.ConstructorName()

	var fn *types.Func
	if pkg.Types != nil {
		fn, _ = pkg.Types.Scope().Lookup(name).(*types.Func)
	}

	if fn == nil {
		r.report(diags, diagnostic.CodeMissingConstructor,
			fmt.Sprintf("%s has no constructor func %s()", t.Name, name), t)

		return nil, false
	}

	sig, _ := fn.Type().(*types.Signature)
	if sig == nil || sig.Params().Len() != 0 || sig.Results().Len() != 1 || sig.TypeParams().Len() != 0 {
		r.report(diags, diagnostic.CodeBadSignature,
			fmt.Sprintf("constructor %s must take no arguments and return one value, got %s",
				name, types.TypeString(fn.Type(), types.RelativeTo(pkg.Types))), t)

		return nil, false
	}

	return sig.Results().At(0).Type(), true
}

// methodParams looks up the mutation method of v in the method set of *T
// and returns the types of its first Arity parameters. A variadic last
// parameter contributes its element type.
func (r *Resolver) methodParams(
	pkg *analyze.Package,
	t *analyze.Target,
	v analyze.Variant,
	diags *diagnostic.Diagnostics,
) ([]types.Type, bool) {
	method := v.Method()

	if t.Obj == nil {
		r.report(diags, diagnostic.CodeMissingMethod,
			fmt.Sprintf("%s could not be type-checked; %s is unresolved", t.Name, method), t)

		return nil, false
	}

	obj, _, _ := types.LookupFieldOrMethod(types.NewPointer(t.Obj.Type()), true, pkg.Types, method)

	fn, _ := obj.(*types.Func)
	if fn == nil {
		r.report(diags, diagnostic.CodeMissingMethod,
			fmt.Sprintf("%s has no method %s required by %s", t.Name, method, v.Marker()), t)

		return nil, false
	}

	sig := fn.Type().(*types.Signature)
	params := sig.Params()
	arity := v.Arity()

	if params.Len() != arity && !(sig.Variadic() && params.Len() == arity+1) {
		r.report(diags, diagnostic.CodeBadSignature,
			fmt.Sprintf("method %s.%s must take %d argument(s) for %s, got %s",
				t.Name, method, arity, v.Marker(), types.TypeString(sig, types.RelativeTo(pkg.Types))), t)

		return nil, false
	}

	result := make([]types.Type, arity)
	for i := range arity {
		pt := params.At(i).Type()
		if sig.Variadic() && i == params.Len()-1 {
			pt = pt.(*types.Slice).Elem()
		}

		result[i] = pt
	}

	return result, true
}

// report records a method contract problem: an error in strict mode, an
// info otherwise since the compiler reports it at the generated helper.
func (r *Resolver) report(diags *diagnostic.Diagnostics, code, msg string, t *analyze.Target) {
	if r.opts.Strict {
		diags.AddError(code, msg, t.Name, t.Pos)

		return
	}

	diags.AddInfo(code, msg, t.Name, t.Pos)
}

func markerList() string {
	markers := make([]string, 0, len(analyze.Variants()))
	for _, v := range analyze.Variants() {
		markers = append(markers, v.Marker())
	}

	return strings.Join(markers, ", ")
}

// suggestMarker returns the known marker closest to a misspelled directive.
func suggestMarker(directive string) (string, bool) {
	name := strings.TrimPrefix(directive, analyze.MarkerPrefix)
	if fields := strings.Fields(name); len(fields) > 0 {
		name = fields[0]
	}

	known := make([]string, 0, len(analyze.Variants()))
	for _, v := range analyze.Variants() {
		known = append(known, v.String())
	}

	guess, ok := naming.Closest(name, known, 2)
	if !ok {
		return "", false
	}

	return analyze.MarkerPrefix + guess, true
}
