package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// NewExecCmd creates the exec command
func NewExecCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec [command...]",
		Short: "Open an interactive session in the running container",
		Long: `Exec allocates an interactive session inside the running container and
blocks until the remote command exits. Without arguments a shell is opened.

Examples:
  vessel exec                 # interactive shell
  vessel exec sqlplus / as sysdba`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := app.controller()
			if err != nil {
				return err
			}
			return ctrl.Exec(context.Background(), args)
		},
	}

	// Everything after the verb belongs to the remote command.
	cmd.Flags().SetInterspersed(false)

	return cmd
}
