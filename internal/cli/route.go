package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazeroute/planner"
	"github.com/katalvlaran/mazeroute/problem"
	"github.com/katalvlaran/mazeroute/report"
)

type routeOpts struct {
	output         string
	workers        int
	dropUnroutable bool
}

func newRouteCmd() *cobra.Command {
	var opts routeOpts

	cmd := &cobra.Command{
		Use:   "route <problem.toml>",
		Short: "Route every net of a problem description and write the report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoute(cmd, args[0], opts)
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "report file (default stdout)")
	cmd.Flags().IntVar(&opts.workers, "workers", 1, "goroutines for the dry pass")
	cmd.Flags().BoolVar(&opts.dropUnroutable, "drop-unroutable", false, "skip nets that fail the dry pass")

	return cmd
}

func runRoute(cmd *cobra.Command, path string, opts routeOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	d, err := problem.Load(path)
	if err != nil {
		return err
	}
	g, m, nets, err := d.Build()
	if err != nil {
		return err
	}
	logger.Debug("loaded problem",
		"file", path,
		"size", fmt.Sprintf("%d×%d×%d", d.Width, d.Height, d.Layers),
		"obstacles", g.ObstacleCount(),
		"nets", len(nets))

	planOpts := []planner.Option{
		planner.WithContext(ctx),
		planner.WithLogger(logger),
		planner.WithDryPassWorkers(opts.workers),
	}
	if opts.dropUnroutable {
		planOpts = append(planOpts, planner.WithDropUnroutable())
	}

	prog := newProgress(logger)
	run, err := planner.Plan(g, m, nets, planOpts...)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Routed %d of %d nets", run.Summary.Routed, len(nets)))

	var w io.Writer = cmd.OutOrStdout()
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("create report: %w", err)
		}
		defer f.Close()
		w = f
	}
	if err := report.Write(w, d, run); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if opts.output != "" {
		logger.Info("Wrote report", "file", opts.output)
	}

	return nil
}
