package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"litgen/internal/analyze"
	"litgen/internal/diagnostic"
	"litgen/internal/gen"
	"litgen/internal/plan"
)

// errDiagnostics is returned once error diagnostics have been printed.
var errDiagnostics = errors.New("generation aborted, no files written")

// result is the plan of one loaded package.
type result struct {
	pkg  *analyze.Package
	plan *plan.Plan
	file *gen.GeneratedFile
}

// loader returns a package loader that logs skipped packages.
func (a *app) loader() *analyze.Loader {
	loader := analyze.NewLoader(a.opts.dir)
	loader.OnSkip = func(pkgPath string) {
		a.logger.Debug("skipped package without buildable files", "path", pkgPath)
	}

	return loader
}

// leftovers returns litgen files of pkg written under another output name.
func (a *app) leftovers(pkg *analyze.Package) []string {
	var paths []string

	for _, path := range pkg.Generated {
		if filepath.Base(path) != a.cfg.Output {
			paths = append(paths, path)
		}
	}

	return paths
}

func patternsOrDefault(args []string) []string {
	if len(args) == 0 {
		return []string{"."}
	}

	return args
}

// build loads, resolves and renders every package matched by args. Any
// error diagnostic in any package fails the whole run before anything is
// rendered.
func (a *app) build(args []string) ([]result, error) {
	pkgs, err := a.loader().LoadPackages(patternsOrDefault(args)...)
	if err != nil {
		return nil, err
	}

	resolver := plan.NewResolver(plan.Options{
		Output:  a.cfg.Output,
		Strict:  a.cfg.Strict,
		Include: a.cfg.ShouldIncludeType,
	})

	var (
		all     diagnostic.Diagnostics
		results = make([]result, 0, len(pkgs))
	)

	for _, pkg := range pkgs {
		a.logger.Debug("loaded package", "path", pkg.PkgPath, "targets", len(pkg.Targets))

		for _, typeErr := range pkg.TypeErrors {
			a.logger.Debug("tolerated type error", "package", pkg.PkgPath, "err", typeErr)
		}

		p, diags := resolver.Resolve(pkg)
		all.Merge(diags)

		results = append(results, result{pkg: pkg, plan: p})
	}

	a.report(all)

	if all.HasErrors() {
		return nil, fmt.Errorf("%d error(s): %w", len(all.Errors), errDiagnostics)
	}

	generator := gen.NewGenerator(gen.DefaultGeneratorConfig())

	for i := range results {
		file, err := generator.Generate(results[i].plan)
		if err != nil {
			return nil, fmt.Errorf("package %s: %w", results[i].pkg.PkgPath, err)
		}

		results[i].file = file
	}

	return results, nil
}

// report prints error and warning diagnostics to stderr. Infos are only
// logged at debug level.
func (a *app) report(diags diagnostic.Diagnostics) {
	for _, d := range diags.Errors {
		fmt.Fprintln(a.stderr, d.String())
	}

	for _, d := range diags.Warnings {
		fmt.Fprintln(a.stderr, "warning: "+d.String())
	}

	for _, d := range diags.Infos {
		a.logger.Debug("deferred check", "type", d.TypeName, "code", d.Code, "msg", d.Message)
	}
}
