package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/renato0307/shade/internal/css"
	"github.com/renato0307/shade/internal/registry"
)

func newCSSCmd(rt *runtime) *cobra.Command {
	var (
		format string
		output string
	)
	cmd := &cobra.Command{
		Use:   "css",
		Short: "Print the theme as a stylesheet with :root and .dark blocks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("format") {
				format = rt.app.Config.CSS.Format
			}
			f, err := css.ParseFormat(format)
			if err != nil {
				return err
			}

			sheet := rt.app.Theme.Stylesheet(f)
			if output == "" {
				fmt.Fprint(cmd.OutOrStdout(), sheet)
				return nil
			}
			if err := os.WriteFile(output, []byte(sheet), 0o644); err != nil {
				return fmt.Errorf("write stylesheet: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "legacy (H S% L%) or modern (oklch)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of stdout")
	return cmd
}

func newShareCmd(rt *runtime) *cobra.Command {
	var asURL bool
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Print a share token for the current theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token := rt.app.Link.Token()
			if asURL {
				fmt.Fprintln(cmd.OutOrStdout(), registry.TokenURL(token, rt.app.Config.Registry.BaseURL))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asURL, "url", false, "print the registry URL instead of the bare token")
	return cmd
}

func newImportCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "import <token>",
		Short: "Replace the theme with one from a share token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.app.Theme.Import(args[0]); err != nil {
				return fmt.Errorf("invalid share token: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported theme %s\n", rt.app.Theme.State().ThemeName)
			return nil
		},
	}
}

func newInstallCmd(rt *runtime) *cobra.Command {
	var pm string
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Print the shadcn command that installs the theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manager, err := registry.ParsePackageManager(pm)
			if err != nil {
				return err
			}
			line, err := registry.TokenCommand(manager, rt.app.Link.Token(), rt.app.Config.Registry.BaseURL)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}
	cmd.Flags().StringVar(&pm, "pm", "npm", "package manager: npm, pnpm or bun")
	return cmd
}
