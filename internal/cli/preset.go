package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/renato0307/shade/internal/theme"
	"github.com/renato0307/shade/internal/types"
)

func newPresetCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "preset",
		Aliases: []string{"presets"},
		Short:   "Manage theme presets",
	}
	cmd.AddCommand(
		newPresetListCmd(rt),
		newPresetSearchCmd(rt),
		newPresetApplyCmd(rt),
		newPresetSaveCmd(rt),
		newPresetDeleteCmd(rt),
		newPresetExportCmd(rt),
	)
	return cmd
}

func newPresetListCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List built-in, file and saved presets",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			listPresets(cmd.OutOrStdout(), rt.app.Theme.Presets(), rt.app.Theme.State().ThemeName)
			return nil
		},
	}
}

func newPresetSearchCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Fuzzy search presets, prefix the query with ! to exclude matches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			found := rt.app.Theme.FindPresets(args[0])
			if len(found) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no matching presets")
				return nil
			}
			listPresets(cmd.OutOrStdout(), found, rt.app.Theme.State().ThemeName)
			return nil
		},
	}
}

func listPresets(w io.Writer, presets []types.Preset, current string) {
	for _, p := range presets {
		marker := " "
		if strings.EqualFold(p.Name, current) {
			marker = "*"
		}
		origin := "saved"
		if theme.IsBuiltin(p.Name) {
			origin = "built-in"
		}
		fmt.Fprintf(w, "%s %-16s %s\n", marker, p.Name, origin)
	}
}

func newPresetApplyCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:     "apply <name>",
		Aliases: []string{"use"},
		Short:   "Replace the theme with a preset",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !rt.app.Theme.SelectPreset(args[0]) {
				return fmt.Errorf("preset %q not found", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "applied preset %s\n", rt.app.Theme.State().ThemeName)
			return nil
		},
	}
}

func newPresetSaveCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "save <name>",
		Short: "Save the current theme as a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.app.Theme.SavePreset(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved preset %s\n", strings.TrimSpace(args[0]))
			return nil
		},
	}
}

func newPresetDeleteCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"rm"},
		Short:   "Delete a saved preset",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !rt.app.Theme.DeletePreset(args[0]) {
				return fmt.Errorf("no saved preset named %q", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted preset %s\n", args[0])
			return nil
		},
	}
}

func newPresetExportCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write saved presets to a YAML preset file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			saved := rt.app.Theme.State().Presets
			if len(saved) == 0 {
				return errors.New("no saved presets to export")
			}
			if err := theme.SavePresetFile(args[0], saved); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d presets to %s\n", len(saved), args[0])
			return nil
		},
	}
}
