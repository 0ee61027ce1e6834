package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// RmOptions holds flags for the rm command
type RmOptions struct {
	Yes bool
}

// NewRmCmd creates the rm command
func NewRmCmd(app *App) *cobra.Command {
	opts := RmOptions{}

	cmd := &cobra.Command{
		Use:   "rm",
		Short: "Remove the container and optionally its data",
		Long: `Rm stops the container (best-effort) and removes it. When a named
volume or host directory holds the container's data, vessel asks before
destroying it; any answer other than an explicit yes keeps the data.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := app.controller()
			if err != nil {
				return err
			}
			return ctrl.Remove(context.Background(), opts.Yes)
		},
	}

	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "Delete persistent data without asking")

	return cmd
}
