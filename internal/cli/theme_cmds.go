package cli

import (
	"fmt"
	"io"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/renato0307/shade/internal/app"
	"github.com/renato0307/shade/internal/css"
	"github.com/renato0307/shade/internal/palette"
	"github.com/renato0307/shade/internal/registry"
	"github.com/renato0307/shade/internal/types"
	"github.com/renato0307/shade/internal/ui"
)

func newEditCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Open the interactive theme editor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := rt.app.Config
			format, err := css.ParseFormat(cfg.CSS.Format)
			if err != nil {
				return err
			}

			model := app.NewModel(rt.app.Theme, app.Config{
				CSSFormat:      format,
				RegistryURL:    cfg.Registry.BaseURL,
				PackageManager: registry.NPM,
				Token:          rt.app.Link.Token,
			})
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			stop := app.Watch(rt.app.Theme, p.Send)
			defer stop()

			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running editor: %w", err)
			}
			return nil
		},
	}
}

func newShowCmd(rt *runtime) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the current theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printTheme(cmd.OutOrStdout(), rt.app.Theme.State(), all)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "show derived roles too")
	return cmd
}

func printTheme(w io.Writer, st types.State, all bool) {
	roles := append(append([]palette.Role{}, palette.SeedRoles...), palette.Destructive)
	if all {
		roles = palette.Roles()
	}

	active := "light"
	if st.DarkMode {
		active = "dark"
	}
	fmt.Fprintf(w, "theme:   %s\n", st.ThemeName)
	fmt.Fprintf(w, "mode:    %s\n", active)
	fmt.Fprintf(w, "harmony: %s\n", st.Harmony)
	fmt.Fprintf(w, "radius:  %s\n", css.FormatRadius(st.Radius))
	fmt.Fprintf(w, "fonts:   %s / %s\n", st.Fonts.Heading, st.Fonts.Body)
	fmt.Fprintf(w, "\nlight\n%s\n", ui.RenderPalette(st.Light, roles))
	fmt.Fprintf(w, "\ndark\n%s\n", ui.RenderPalette(st.Dark, roles))
}

func newSetCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "set <role> <hex>",
		Short: "Set a role color in the active palette",
		Long: `Set a role color in the active palette. Seed roles (background,
foreground, primary, secondary, accent) propagate to their derived roles.
In light mode the dark palette follows; in dark mode only dark changes.`,
		Example: "  shade set primary '#2563eb'\n  shade set --chart-3 '#f59e0b'",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := palette.ParseRole(args[0])
			if err != nil {
				return err
			}
			if err := rt.app.Theme.UpdateColor(role, args[1]); err != nil {
				return err
			}
			c := rt.app.Theme.State().Active()[role]
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", role.Key(), c, c.Hex())
			return nil
		},
	}
}

func newModeCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:       "mode <light|dark>",
		Short:     "Select the active palette",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"light", "dark"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "light":
				rt.app.Theme.SetDarkMode(false)
			case "dark":
				rt.app.Theme.SetDarkMode(true)
			default:
				return fmt.Errorf("unknown mode %q (want light or dark)", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "mode: %s\n", args[0])
			return nil
		},
	}
}

func newRandomCmd(rt *runtime) *cobra.Command {
	var harmony string
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate a new random palette pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("harmony") {
				mode, err := palette.ParseHarmony(harmony)
				if err != nil {
					return err
				}
				rt.app.Theme.SetHarmony(mode)
			}
			rt.app.Theme.GenerateHarmony()
			printTheme(cmd.OutOrStdout(), rt.app.Theme.State(), false)
			return nil
		},
	}
	cmd.Flags().StringVar(&harmony, "harmony", "", "monochromatic, analogous, complementary or triadic")
	return cmd
}

func newRadiusCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "radius <rem>",
		Short: "Set the border radius in rem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rem, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid radius %q: %w", args[0], err)
			}
			if err := rt.app.Theme.SetRadius(rem); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "radius: %s\n", css.FormatRadius(rem))
			return nil
		},
	}
}

func newFontsCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "fonts <heading> <body>",
		Short: "Set the heading and body font families",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.app.Theme.SetFonts(types.Fonts{Heading: args[0], Body: args[1]}); err != nil {
				return err
			}
			f := rt.app.Theme.State().Fonts
			fmt.Fprintf(cmd.OutOrStdout(), "fonts: %s / %s\n", f.Heading, f.Body)
			return nil
		},
	}
}

func newResetCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the default theme, keeping saved presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt.app.Theme.Reset()
			fmt.Fprintln(cmd.OutOrStdout(), "theme reset to default")
			return nil
		},
	}
}
