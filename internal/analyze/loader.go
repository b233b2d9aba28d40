package analyze

import (
	"errors"
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// Loader loads Go packages and collects their annotated types.
type Loader struct {
	// Dir is the directory patterns are resolved in. Empty means the
	// current working directory.
	Dir string
	// OnSkip, when set, is called for each matched package that has no
	// buildable Go files, such as a directory holding only tests.
	OnSkip func(pkgPath string)
}

// NewLoader creates a Loader resolving patterns relative to dir.
func NewLoader(dir string) *Loader {
	return &Loader{Dir: dir}
}

// LoadPackages loads the packages matched by patterns (e.g. ".", "./...",
// "litgen/examples/vec"). Listing and syntax errors are fatal; type errors
// are kept on the package and otherwise ignored.
func (l *Loader) LoadPackages(patterns ...string) ([]*Package, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  l.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error

	result := make([]*Package, 0, len(pkgs))

	for _, pkg := range pkgs {
		loaded, fatal := l.processPackage(pkg)
		if len(fatal) > 0 {
			errs = append(errs, fatal...)

			continue
		}

		if loaded == nil {
			if l.OnSkip != nil {
				l.OnSkip(pkg.PkgPath)
			}

			continue
		}

		result = append(result, loaded)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	return result, nil
}

// processPackage converts a loaded package, splitting its errors into fatal
// and tolerated ones. Packages without buildable files yield nil, nil.
func (l *Loader) processPackage(pkg *packages.Package) (*Package, []error) {
	if len(pkg.GoFiles) == 0 && onlyNoGoFiles(pkg.Errors) {
		return nil, nil
	}

	result := &Package{
		PkgPath: pkg.PkgPath,
		Name:    pkg.Name,
		Fset:    pkg.Fset,
		Types:   pkg.Types,
	}

	var fatal []error

	for _, e := range pkg.Errors {
		if e.Kind == packages.TypeError {
			result.TypeErrors = append(result.TypeErrors, e)

			continue
		}

		fatal = append(fatal, e)
	}

	if len(fatal) > 0 {
		return nil, fatal
	}

	result.Dir = filepath.Dir(pkg.GoFiles[0])

	for _, file := range pkg.Syntax {
		result.scan(file, pkg.TypesInfo)
	}

	return result, nil
}

// LoadSource type-checks a single in-memory file. Only standard library
// imports can be resolved. Type errors are tolerated like in LoadPackages.
func (l *Loader) LoadSource(filename string, src []byte) (*Package, error) {
	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}

	result := &Package{
		PkgPath: file.Name.Name,
		Name:    file.Name.Name,
		Dir:     filepath.Dir(filename),
		Fset:    fset,
	}

	info := &types.Info{
		Defs:      make(map[*ast.Ident]types.Object),
		Implicits: make(map[ast.Node]types.Object),
	}

	conf := types.Config{
		Importer: importer.Default(),
		Error: func(err error) {
			result.TypeErrors = append(result.TypeErrors, err)
		},
	}

	// The returned error repeats the first collected type error.
	result.Types, _ = conf.Check(result.PkgPath, fset, []*ast.File{file}, info)
	result.scan(file, info)

	return result, nil
}

// scan records the targets and imports of file, or its path when it is
// litgen output. Other generated files are skipped.
func (p *Package) scan(file *ast.File, info *types.Info) {
	if isOutput(file) {
		p.Generated = append(p.Generated, p.Fset.Position(file.Package).Filename)

		return
	}

	if ast.IsGenerated(file) {
		return
	}

	p.Targets = append(p.Targets, scanFile(p.Fset, file, info)...)
	p.Imports = append(p.Imports, fileImports(p.Fset, file, info)...)
}

// onlyNoGoFiles reports whether errs only say that a directory has no
// buildable Go files. The go command skips such packages under ./...
func onlyNoGoFiles(errs []packages.Error) bool {
	for _, e := range errs {
		if e.Kind != packages.ListError {
			return false
		}

		if !strings.Contains(e.Msg, "no Go files") &&
			!strings.Contains(e.Msg, "no non-test Go files") &&
			!strings.Contains(e.Msg, "build constraints exclude all Go files") {
			return false
		}
	}

	return true
}
