// Package cli wires the shade command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/renato0307/shade/internal/config"
	"github.com/renato0307/shade/internal/logging"
)

// runtime is shared by the commands of one invocation.
type runtime struct {
	cfgFile string
	app     *AppContext
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	rt := &runtime{}

	root := &cobra.Command{
		Use:   "shade",
		Short: "Derive complete light and dark color themes from a few seed colors",
		Long: `shade edits color themes for component libraries built on CSS custom
properties. Change a seed color and every derived role, in both light and
dark mode, follows.

The theme is persisted between runs; every command works on the saved theme.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return rt.open(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			defer logging.Shutdown()
			return rt.app.Close()
		},
	}
	root.PersistentFlags().StringVar(&rt.cfgFile, "config", "", "config file (default is ./shade.yaml)")

	root.AddCommand(
		newEditCmd(rt),
		newShowCmd(rt),
		newSetCmd(rt),
		newModeCmd(rt),
		newRandomCmd(rt),
		newRadiusCmd(rt),
		newFontsCmd(rt),
		newPresetCmd(rt),
		newCSSCmd(rt),
		newShareCmd(rt),
		newImportCmd(rt),
		newInstallCmd(rt),
		newResetCmd(rt),
	)
	return root
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (rt *runtime) open(cmd *cobra.Command) error {
	v, err := config.New(rt.cfgFile)
	if err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	if err := logging.Init(cfg.LoggingConfig()); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logging.Debug("starting", "command", cmd.CommandPath(), "config", v.ConfigFileUsed())

	app, err := NewAppContext(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	rt.app = app
	return nil
}
