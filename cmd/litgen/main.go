// Package main provides the CLI entrypoint for litgen.
//
// litgen reads struct declarations annotated with a //lit: marker and
// writes a literal-construction helper for each of them:
//   - //lit:vec       name(e1, e2, ...) calling Push per element
//   - //lit:vec-front name(e1, e2, ...) calling PushFront per element
//   - //lit:set       name(e1, e2, ...) calling Insert per element
//   - //lit:map       name(name_pair{k1, v1}, ...) calling Insert per pair
//
// It is meant to run from a go:generate directive:
//
//	//go:generate go run litgen/cmd/litgen
package main

import (
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		newLogger(stderr, false).Error(err)

		return 1
	}

	return 0
}
