package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// NewStartCmd creates the start command
func NewStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Create and start the container",
		Long: `Start brings the configured container to the running state.

If the container does not exist it is created: the persistence strategy is
resolved, the image pulled, and the container created and started. If it
exists but is stopped it is started. If it is already running nothing
happens.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := app.controller()
			if err != nil {
				return err
			}
			return ctrl.Start(context.Background())
		},
	}
}
