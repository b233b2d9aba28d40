package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"litgen/internal/analyze"
	"litgen/internal/naming"
)

// list prints every annotated type without validating or generating.
func (a *app) list(_ *cobra.Command, args []string) error {
	pkgs, err := a.loader().LoadPackages(patternsOrDefault(args)...)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)

	for _, pkg := range pkgs {
		if len(pkg.Targets) == 0 {
			continue
		}

		fmt.Fprintln(w, pkg.PkgPath)

		for _, t := range pkg.Targets {
			markers := make([]string, 0, len(t.Variants)+len(t.Unknown))
			for _, v := range t.Variants {
				markers = append(markers, v.Marker())
			}

			markers = append(markers, t.Unknown...)

			note := ""

			switch {
			case !a.cfg.ShouldIncludeType(t.Name):
				note = "excluded"
			case t.Shape != analyze.ShapeStruct:
				note = "unsupported shape: " + t.Shape.String()
			case t.Generic:
				note = "generic"
			}

			fmt.Fprintf(w, "\t%s\t%s\t%s\t%s\n", t.Name, strings.Join(markers, " "), naming.SnakeCase(t.Name), note)
		}
	}

	return w.Flush()
}
