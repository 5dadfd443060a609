package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newScrollCmd(opts *options) *cobra.Command {
	var (
		step     int
		viewport int
	)
	cmd := &cobra.Command{
		Use:   "scroll <scene.yaml>",
		Short: "Scroll a scene top to bottom, reporting mounts at every step",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if step <= 0 {
				return fmt.Errorf("step must be positive, got %d", step)
			}
			sim := newSimulation(args[0], opts.cfg, opts.log)
			defer sim.tree.Release()

			if _, err := sim.reload(cmd.Context()); err != nil {
				return err
			}
			if viewport > 0 {
				sim.viewport = viewport
			}

			out := cmd.OutOrStdout()
			for y := 0; ; y += step {
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				sim.scrollTo(y)
				fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf(
					"viewport %s: %d mounted", sim.viewportRect(), sim.tree.MountState().MountedCount())))
				writeEvents(out, sim.rec.TakeEvents())
				if sim.offset >= sim.maxOffset() {
					break
				}
			}
			fmt.Fprintln(out, statsLine(sim.tree.MountState().Stats()))
			fmt.Fprintln(out, mutedStyle.Render("created "+sim.rec.CreateSummary()))
			return nil
		},
	}
	cmd.Flags().IntVarP(&step, "step", "s", 1, "rows scrolled per step")
	cmd.Flags().IntVar(&viewport, "viewport", 0, "viewport height, overriding the scene")
	return cmd
}
