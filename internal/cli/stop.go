package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// NewStopCmd creates the stop command
func NewStopCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the container if it is running",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := app.controller()
			if err != nil {
				return err
			}
			return ctrl.Stop(context.Background())
		},
	}
}

// NewRestartCmd creates the restart command
func NewRestartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "restart",
		Short: "Stop the container, then start it again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := app.controller()
			if err != nil {
				return err
			}
			return ctrl.Restart(context.Background())
		},
	}
}
