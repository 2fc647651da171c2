// Package cli implements the mazeroute command-line interface.
//
// Commands:
//   - route: read a TOML problem description, plan and commit every net, and
//     write the text report.
//
// All commands accept --verbose (-v) for debug-level logging. The logger
// travels through the command context.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// New returns the root command. Logs go to stderr, reports default to stdout.
func New(stdout, stderr io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "mazeroute",
		Short:         "mazeroute routes nets across a multi-layer grid",
		Long:          `mazeroute connects the pins of every net on a layered grid, avoiding obstacles and earlier wiring while minimizing bends and vias.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(stderr, level)))
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRouteCmd())

	return root
}

// Execute builds the root command and runs it with args.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := New(stdout, stderr)
	root.SetArgs(args)

	return root.ExecuteContext(ctx)
}
