package cli

import (
	"github.com/spf13/cobra"

	"github.com/colmreid/sundial/internal/app"
)

func newConfigureCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "configure",
		Short: "Edit the sync settings from the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Configure(cmd.Context(), a.options(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
