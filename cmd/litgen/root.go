package main

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"litgen/internal/config"
)

// options holds the values of the persistent flags.
type options struct {
	output     string
	strict     bool
	configPath string
	verbose    bool
	dir        string
}

// app carries the state shared by all subcommands.
type app struct {
	opts   options
	stdout io.Writer
	stderr io.Writer
	logger *log.Logger
	cfg    *config.Config
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "litgen",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	return logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "litgen [packages]",
		Short: "Generate literal-construction helpers for annotated structs",
		Long: `litgen scans Go packages for struct types annotated with //lit:vec,
//lit:vec-front, //lit:set or //lit:map and writes one helper function
per annotation into a generated file next to the sources.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.gen(cmd, args)
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.opts.output, "output", "o", config.DefaultOutput, "generated file name in each package")
	flags.BoolVar(&a.opts.strict, "strict", false, "report missing constructors and methods as errors")
	flags.StringVarP(&a.opts.configPath, "config", "c", "", "config file (default "+config.DefaultFile+" when present)")
	flags.BoolVarP(&a.opts.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVarP(&a.opts.dir, "dir", "C", "", "directory to resolve packages and the default config in")

	root.AddCommand(
		&cobra.Command{
			Use:   "gen [packages]",
			Short: "Write helper files (default command)",
			RunE:  a.gen,
		},
		&cobra.Command{
			Use:   "check [packages]",
			Short: "Fail if any helper file is missing or out of date",
			RunE:  a.check,
		},
		&cobra.Command{
			Use:   "list [packages]",
			Short: "Print annotated types and their helper names",
			RunE:  a.list,
		},
	)

	return root
}

// setup builds the logger and the effective configuration. Flags given on
// the command line override values from the config file.
func (a *app) setup(cmd *cobra.Command) error {
	a.logger = newLogger(a.stderr, a.opts.verbose)
	a.cfg = config.New()

	if a.opts.configPath != "" {
		if err := a.cfg.LoadFile(a.opts.configPath); err != nil {
			return err
		}

		a.logger.Debug("loaded config", "path", a.opts.configPath)
	} else {
		dir := a.opts.dir
		if dir == "" {
			dir = "."
		}

		found, err := a.cfg.LoadDefault(dir)
		if err != nil {
			return err
		}

		if found {
			a.logger.Debug("loaded config", "path", config.DefaultFile, "dir", dir)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		a.cfg.Output = a.opts.output
	}

	if flags.Changed("strict") {
		a.cfg.Strict = a.opts.strict
	}

	return a.cfg.Validate()
}
