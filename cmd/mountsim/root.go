package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/grindlemire/go-mount/internal/config"
	"github.com/grindlemire/go-mount/internal/debug"
)

// options holds the global flags and the configuration they resolve to.
type options struct {
	configFile string
	debugFile  string

	cfg *config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "mountsim",
		Short: "Flatten, mount and scroll scene files",
		Long: `mountsim builds a component tree from a YAML scene file, flattens it
into mountable outputs and drives incremental mounting through a simulated
viewport.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return debug.Close()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "config file (yaml)")
	flags.StringVar(&opts.debugFile, "debug", "", "write debug logs to this file")
	flags.Bool("incremental", true, "mount only outputs inside the viewport")
	flags.Int("pool-size", 3, "recycled content instances kept per type")
	flags.Bool("foreground-on-host", false, "draw foregrounds on their host")

	cmd.AddCommand(
		newFlattenCmd(opts),
		newScrollCmd(opts),
		newWatchCmd(opts),
		newViewCmd(opts),
	)
	return cmd
}

// load resolves configuration from defaults, the config file, MOUNT_
// environment variables and explicitly set flags, in increasing priority.
func (o *options) load(cmd *cobra.Command) error {
	v, err := config.New(o.configFile)
	if err != nil {
		return err
	}
	bindings := map[string]string{
		"incremental":        "mount.incremental",
		"pool-size":          "mount.pool_size",
		"foreground-on-host": "mount.foreground_on_host",
	}
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key, ok := bindings[f.Name]
		if !ok || bindErr != nil {
			return
		}
		if err := v.BindPFlag(key, f); err != nil {
			bindErr = fmt.Errorf("failed to bind flag %s: %w", f.Name, err)
		}
	})
	if bindErr != nil {
		return bindErr
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	o.cfg = cfg

	if o.debugFile != "" {
		if err := debug.Init(o.debugFile); err != nil {
			return err
		}
	}
	debug.SetLevel(cfg.Logging.Level)
	o.log = debug.Logger()
	return nil
}
