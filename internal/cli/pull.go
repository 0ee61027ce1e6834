package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// NewPullCmd creates the pull command
func NewPullCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Pull the configured image without touching the container",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := app.controller()
			if err != nil {
				return err
			}
			return ctrl.Pull(context.Background())
		},
	}
}
