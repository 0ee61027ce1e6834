package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

// LogsOptions holds flags for the logs command
type LogsOptions struct {
	NoFollow bool
}

// NewLogsCmd creates the logs command
func NewLogsCmd(app *App) *cobra.Command {
	opts := LogsOptions{}

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Stream container logs until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := app.controller()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			handler := NewSignalHandler(cancel)
			handler.Start()
			defer handler.Stop()

			return ctrl.Logs(ctx, os.Stdout, !opts.NoFollow)
		},
	}

	cmd.Flags().BoolVar(&opts.NoFollow, "no-follow", false, "Dump logs and exit instead of following")

	return cmd
}
