package cli

import (
	"github.com/spf13/cobra"

	"github.com/colmreid/sundial/internal/app"
)

func newSyncCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Run one sync pass and exit",
		Long: "Detect the OS appearance, apply the matching theme, and exit.\n" +
			"Useful from login hooks or scripts; the interactive session polls\n" +
			"on its own.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunOnce(cmd.Context(), a.options(), cmd.OutOrStdout())
		},
	}
}
