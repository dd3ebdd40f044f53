package cli

import (
	"github.com/spf13/cobra"

	"github.com/colmreid/sundial/internal/app"
)

func newThemesCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the available themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.ListThemes(a.options(), cmd.OutOrStdout())
		},
	}
}
