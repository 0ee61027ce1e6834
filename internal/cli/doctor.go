package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"vessel/internal/runtime"
)

// NewDoctorCmd creates the doctor command
func NewDoctorCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check runtime availability and configuration health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Doctor(cmd.OutOrStdout())
		},
	}
}

// Doctor reports on each collaborator the tool depends on. Findings are
// informational; the command fails only when no runtime is available at
// all, since nothing works without one.
func (a *App) Doctor(w io.Writer) error {
	styles := DefaultStyles()

	ok := func(format string, args ...any) {
		fmt.Fprintf(w, "%s %s\n", styles.OK.Render(IconOK), fmt.Sprintf(format, args...))
	}
	fail := func(format string, args ...any) {
		fmt.Fprintf(w, "%s %s\n", styles.Fail.Render(IconFail), fmt.Sprintf(format, args...))
	}

	bin, err := runtime.DetectRuntime()
	if err != nil {
		fail("container runtime: %v", err)
		return err
	}
	ok("container runtime: %s", bin)

	cfg, err := a.loadConfig()
	if err != nil {
		fail("config %s: %v", a.configPath, err)
		return nil
	}
	ok("config %s: valid", a.configPath)

	if cfg.Runtime != "" && cfg.Runtime != bin {
		fmt.Fprintf(w, "%s runtime pinned to %s in config\n", styles.Warn.Render("!"), cfg.Runtime)
		bin = cfg.Runtime
	}

	client := runtime.NewCLIClient(bin, nil)
	state, err := client.Status(context.Background(), cfg.ContainerName)
	if err != nil {
		fail("container %s: %v", cfg.ContainerName, err)
		return nil
	}
	ok("container %s: %s", cfg.ContainerName, runtime.Describe(state, cfg.HostPort))

	return nil
}
