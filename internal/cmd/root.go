// Package cmd implements the grist command tree.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/sky-flux/grist/internal/config"
	"github.com/sky-flux/grist/internal/style"
	"github.com/spf13/cobra"
)

// globals holds the persistent flags and the config loaded from them.
type globals struct {
	configPath string
	debug      bool
	cfg        config.Config
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	root := &cobra.Command{
		Use:   "grist",
		Short: "Brewing calculations: bitterness, gravity, alcohol and yeast starters",
		Long: `grist estimates brewing quantities from recipe numbers.

Volumes are US gallons unless a command takes --liters. Cell counts are
billions of cells.

Defaults for the starter planner and the brewhouse come from a TOML file at
$GRIST_CONFIG, or grist/config.toml in the user config directory:

  [starter]
  gravity = 1.036
  max_gallons = 1
  max_growth_per_step = 6

  [brewhouse]
  gallons = 5
  efficiency = 72
  pitch_rate = 0.75`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFlags(cmd); err != nil {
				return err
			}

			level := slog.LevelInfo
			if g.debug {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

			path := g.configPath
			if path == "" {
				path = config.Path()
			}
			cfg, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			slog.Debug("config loaded", "path", path, "starter", cfg.Starter, "brewhouse", cfg.Brewhouse)
			g.cfg = cfg
			return nil
		},
	}

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usagef("%v", err)
	})

	root.PersistentFlags().StringVar(&g.configPath, "config", "", "Config file (default $GRIST_CONFIG or user config dir)")
	root.PersistentFlags().BoolVar(&g.debug, "debug", false, "Log debug detail to stderr")

	root.AddCommand(
		newStarterCmd(g),
		newViabilityCmd(),
		newPitchCmd(g),
		newIBUCmd(g),
		newGravityCmd(g),
		newABVCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the command tree and returns the process exit code.
func Execute() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.Execute()
	if err == nil {
		return 0
	}
	if code, ok := IsSilentExit(err); ok {
		return code
	}
	style.Fprintf(root.ErrOrStderr(), style.ErrorPrefix, "%v", err)
	var ue *usageError
	if errors.As(err, &ue) {
		return ExitUsage
	}
	return ExitFailure
}
