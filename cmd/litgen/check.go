package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"litgen/internal/gen"
)

func (a *app) check(_ *cobra.Command, args []string) error {
	results, err := a.build(args)
	if err != nil {
		return err
	}

	stale := 0

	for _, r := range results {
		for _, path := range a.leftovers(r.pkg) {
			fmt.Fprintln(a.stdout, "stale:", path)

			stale++
		}

		if r.file == nil {
			path := filepath.Join(r.pkg.Dir, a.cfg.Output)

			content, err := os.ReadFile(path)
			if err == nil && gen.IsGenerated(content) {
				fmt.Fprintln(a.stdout, "stale:", path)

				stale++
			}

			continue
		}

		upToDate, err := gen.IsUpToDate(*r.file)
		if err != nil {
			return err
		}

		if !upToDate {
			fmt.Fprintln(a.stdout, "stale:", r.file.Path())

			stale++
		}
	}

	if stale > 0 {
		return fmt.Errorf("%d generated file(s) out of date, run litgen gen", stale)
	}

	return nil
}
