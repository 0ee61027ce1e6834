package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"vessel/internal/lifecycle"
	"vessel/internal/runtime"
)

// NewStatusCmd creates the status command
func NewStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the container's state and port",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := app.controller()
			if err != nil {
				return err
			}
			report, err := ctrl.Status(context.Background())
			if err != nil {
				return err
			}
			renderStatus(cmd.OutOrStdout(), report)
			return nil
		},
	}
}

// renderStatus prints a styled one-container report.
func renderStatus(w io.Writer, r lifecycle.Report) {
	styles := DefaultStyles()

	icon, stateStyle := styles.ForState(r.State)
	fmt.Fprintf(w, "%s %s  %s\n",
		stateStyle.Render(icon),
		styles.Name.Render(r.Name),
		stateStyle.Render(string(r.State)))

	fmt.Fprintf(w, "  %s %s\n", styles.Label.Render("image:"), r.Image)
	if r.State == runtime.StateRunning {
		fmt.Fprintf(w, "  %s localhost:%s\n", styles.Label.Render("port: "), r.HostPort)
	}
	fmt.Fprintf(w, "  %s %s\n", styles.Label.Render("data: "), r.Volume.Describe())
}
