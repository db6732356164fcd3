// Command gol runs Conway's Game of Life on a bit-packed torus with an
// immediate-mode or instanced renderer.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"bitlife/internal/app"
	"bitlife/internal/config"
	"bitlife/internal/glview"
	"bitlife/internal/render"
	"bitlife/internal/statsview"
	"bitlife/internal/tui"
)

type options struct {
	cfg        *config.Config
	configFile string
	logLevel   string
	stats      bool
	log        *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{cfg: config.DefaultConfig()}

	rootCmd := &cobra.Command{
		Use:           "gol",
		Short:         "Conway's Game of Life on a bit-packed torus",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.prepare(cmd)
		},
	}
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&opts.configFile, "config", "f", "", "YAML configuration file")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	opts.cfg.Bind(pf)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "open an ebiten window (needs the ebiten build tag)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.launchStats()
			return app.Run(opts.cfg, opts.log)
		},
	}
	glCmd := &cobra.Command{
		Use:   "gl",
		Short: "open an SDL2/OpenGL window with instanced rendering (needs the gl build tag)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.launchStats()
			return glview.Run(opts.cfg, opts.log)
		},
	}
	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.launchStats()
			return tui.Run(opts.cfg, opts.log)
		},
	}
	for _, c := range []*cobra.Command{runCmd, glCmd, tuiCmd} {
		c.Flags().BoolVar(&opts.stats, "stats", false, "serve runtime statistics (needs the statsview build tag)")
	}

	rootCmd.AddCommand(runCmd, glCmd, tuiCmd, newSnapshotCmd(opts), newInspectCmd(opts))
	return rootCmd
}

// prepare merges the config file under the flags, validates the result and
// installs the logger.
func (o *options) prepare(cmd *cobra.Command) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(o.logLevel))); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", o.logLevel, err)
	}
	o.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	render.SetLogger(o.log.With("component", "render"))

	if o.configFile != "" {
		if err := o.cfg.Merge(o.configFile, cmd.Flags()); err != nil {
			return err
		}
	}
	if err := o.cfg.Validate(); err != nil {
		return err
	}
	o.log.Debug("configuration loaded",
		"width", o.cfg.Width,
		"height", o.cfg.Height,
		"renderer", o.cfg.Renderer,
		"seed_policy", o.cfg.SeedPolicy,
		"ticks", o.cfg.Ticks)
	return nil
}

func (o *options) launchStats() {
	if o.stats {
		statsview.Launch(os.Stderr)
	}
}
