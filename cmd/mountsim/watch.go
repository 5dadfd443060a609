package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func newWatchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <scene.yaml>",
		Short: "Reflatten a scene every time the file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sim := newSimulation(args[0], opts.cfg, opts.log)
			defer sim.tree.Release()

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("failed to create watcher: %w", err)
			}
			defer watcher.Close()

			// Editors replace files on save, so watch the directory.
			if err := watcher.Add(filepath.Dir(sim.path)); err != nil {
				return fmt.Errorf("failed to watch %s: %w", sim.path, err)
			}

			out := cmd.OutOrStdout()
			sim.reloadAndReport(cmd, out)

			ctx := cmd.Context()
			name := filepath.Clean(sim.path)
			for {
				select {
				case <-ctx.Done():
					return nil
				case ev, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if filepath.Clean(ev.Name) != name || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
						continue
					}
					opts.log.Debug("scene changed", "path", ev.Name, "op", ev.Op.String())
					sim.reloadAndReport(cmd, out)
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					opts.log.Warn("watch error", "error", err)
				}
			}
		},
	}
}

// reloadAndReport reloads the scene and prints what changed. Scene errors
// are reported without stopping the watch.
func (s *simulation) reloadAndReport(cmd *cobra.Command, out io.Writer) {
	before := s.rec.Measures
	state, err := s.reload(cmd.Context())
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
		return
	}
	s.scrollTo(s.offset)
	fmt.Fprintln(out, summary(state))
	fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("measured %d, %d mounted",
		s.rec.Measures-before, s.tree.MountState().MountedCount())))
}
