package cli

import (
	"github.com/spf13/cobra"

	"github.com/colmreid/sundial/internal/app"
)

func newDetectCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "Print the detected OS appearance",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Detect(cmd.Context(), cmd.OutOrStdout())
		},
	}
}
