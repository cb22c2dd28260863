package main

import (
	"fmt"
	"log/slog"

	"github.com/milk9111/cartpole/prefabs"
	"github.com/milk9111/cartpole/sim"
	"github.com/milk9111/cartpole/telemetry"
	"github.com/spf13/cobra"
)

func newHeadlessCmd() *cobra.Command {
	var (
		opts sim.HeadlessOptions
		plot bool
	)

	cmd := &cobra.Command{
		Use:   "headless",
		Short: "step the simulation without a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			specs, err := prefabs.LoadSpecs()
			if err != nil {
				return err
			}

			samples, err := sim.RunHeadless(specs, opts, slog.Default())
			if err != nil {
				return err
			}
			if opts.Trace != "" {
				slog.Info("trace written", "path", opts.Trace, "samples", len(samples))
			}

			out := cmd.OutOrStdout()
			if plot {
				fmt.Fprintln(out, sim.PlotAngles(samples, 80, 12))
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, sim.RenderSummary(telemetry.Summarize(samples)))
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Ticks, "ticks", 600, "number of ticks to simulate")
	cmd.Flags().StringVar(&opts.Script, "script", "", "key timeline, e.g. left:0-120,down:120-240")
	cmd.Flags().StringVar(&opts.Trace, "trace", "", "write every sample to this CSV file")
	cmd.Flags().BoolVar(&plot, "plot", false, "plot the pendulum angle")
	return cmd
}
