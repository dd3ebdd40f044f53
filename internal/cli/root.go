// Package cli defines the sundial command tree.
package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/colmreid/sundial/internal/app"
)

// App carries the persistent flag values into the subcommands.
type App struct {
	ConfigPath string
	PrefsPath  string
	ThemesDir  string
}

func (a *App) options() app.Options {
	return app.Options{
		ConfigPath: a.ConfigPath,
		PrefsPath:  a.PrefsPath,
		ThemesDir:  a.ThemesDir,
	}
}

// NewRootCmd builds the root command. No subcommand starts the interactive
// session.
func NewRootCmd() *cobra.Command {
	a := &App{}

	cmd := &cobra.Command{
		Use:           "sundial",
		Short:         "Keep the terminal theme in step with the OS appearance",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive session
  sundial

  # One sync pass from a script or a login hook
  sundial sync

  # Choose the themes to apply on dark and light
  sundial configure
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return app.Run(cmd.Context(), a.options())
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&a.ConfigPath, "config", "", "Path to the sync overrides file (default ~/.config/sundial/sync.json)")
	cmd.PersistentFlags().StringVar(&a.PrefsPath, "prefs", "", "Path to the preferences file (default ~/.config/sundial/prefs.toml)")
	cmd.PersistentFlags().StringVar(&a.ThemesDir, "themes", "", "Path to the user theme directory (default ~/.config/sundial/themes)")

	cmd.AddCommand(newDetectCmd(a))
	cmd.AddCommand(newSyncCmd(a))
	cmd.AddCommand(newConfigureCmd(a))
	cmd.AddCommand(newThemesCmd(a))

	return cmd
}
