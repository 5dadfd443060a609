package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFlattenCmd(opts *options) *cobra.Command {
	var mountAll bool
	cmd := &cobra.Command{
		Use:   "flatten <scene.yaml>",
		Short: "Print the flattened outputs of a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sim := newSimulation(args[0], opts.cfg, opts.log)
			defer sim.tree.Release()

			state, err := sim.reload(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			writeOutputs(out, state.Outputs())
			fmt.Fprintln(out, summary(state))
			fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("measures=%d", sim.rec.Measures)))

			if mountAll {
				sim.viewport = state.Height()
				sim.scrollTo(0)
				fmt.Fprintln(out, statsLine(sim.tree.MountState().Stats()))
				fmt.Fprintln(out, mutedStyle.Render("created "+sim.rec.CreateSummary()))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&mountAll, "mount", false, "mount every output and report lifecycle counts")
	return cmd
}
