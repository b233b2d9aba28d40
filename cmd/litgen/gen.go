package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"litgen/internal/gen"
)

func (a *app) gen(_ *cobra.Command, args []string) error {
	results, err := a.build(args)
	if err != nil {
		return err
	}

	var files []gen.GeneratedFile

	for _, r := range results {
		for _, path := range a.leftovers(r.pkg) {
			removed, err := gen.RemoveStale(filepath.Dir(path), filepath.Base(path))
			if err != nil {
				return err
			}

			if removed {
				a.logger.Info("removed previous output", "package", r.pkg.PkgPath, "file", filepath.Base(path))
			}
		}

		if r.file == nil {
			removed, err := gen.RemoveStale(r.pkg.Dir, a.cfg.Output)
			if err != nil {
				return err
			}

			if removed {
				a.logger.Info("removed stale file", "package", r.pkg.PkgPath, "file", a.cfg.Output)
			}

			continue
		}

		upToDate, err := gen.IsUpToDate(*r.file)
		if err != nil {
			return err
		}

		if upToDate {
			a.logger.Debug("up to date", "file", r.file.Path())

			continue
		}

		files = append(files, *r.file)
	}

	if err := gen.WriteFiles(files); err != nil {
		return err
	}

	for _, f := range files {
		a.logger.Debug("wrote file", "file", f.Path())
	}

	return nil
}
