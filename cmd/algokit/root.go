package main

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries state shared by all subcommands.
type app struct {
	log    *zap.Logger // replaced in PersistentPreRunE once flags are parsed
	stderr io.Writer   // log destination
}

// newApp returns an app that logs warnings and errors to stderr until the
// log flags are applied.
func newApp(stderr io.Writer) *app {
	log, err := newLogger("warn", formatConsole, stderr)
	if err != nil {
		log = zap.NewNop()
	}

	return &app{log: log, stderr: stderr}
}

// rootCmd assembles the command tree.
func (a *app) rootCmd() *cobra.Command {
	var level, format string

	root := &cobra.Command{
		Use:   "algokit",
		Short: "Classic array and graph algorithms from the command line",
		Long: `algokit runs union-find, partitioning, quickselect, range sums,
longest increasing subsequence and topological sort on numbers passed as
arguments or on YAML documents. Use "--" before negative numbers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log, err := newLogger(level, format, a.stderr)
			if err != nil {
				return err
			}
			a.log = log.With(zap.String("command", cmd.Name()))

			return nil
		},
	}
	root.PersistentFlags().StringVar(&level, "log-level", "warn", "log level: debug, info, warn or error")
	root.PersistentFlags().StringVar(&format, "log-format", formatConsole, "log format: console or json")

	root.AddCommand(
		a.toposortCmd(),
		a.lisCmd(),
		a.selectCmd(),
		a.partitionCmd(),
		a.rangesumCmd(),
		a.dsuCmd(),
	)

	return root
}
