package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"vessel/internal/config"
	"vessel/internal/lifecycle"
	"vessel/internal/runtime"
)

// App represents the CLI application with all wired dependencies
type App struct {
	// Root command
	rootCmd *cobra.Command

	// Path to the container config file (persistent flag)
	configPath string

	// Version information
	version string
	commit  string
	date    string
}

// New creates a new CLI application
func New() *App {
	app := &App{}
	app.setupRootCmd()
	return app
}

// Execute runs the CLI application
func (a *App) Execute() error {
	err := a.rootCmd.Execute()
	if err != nil && strings.HasPrefix(err.Error(), "unknown command") {
		// An unrecognized verb gets the usage summary, not just the error.
		_ = a.rootCmd.Usage()
	}
	return err
}

// SetVersion sets the version string for the version command
func (a *App) SetVersion(version, commit, date string) {
	a.version = version
	a.commit = commit
	a.date = date
}

// setupRootCmd configures the root Cobra command
func (a *App) setupRootCmd() {
	a.rootCmd = &cobra.Command{
		Use:   "vessel",
		Short: "Manage the lifecycle of a named database container",
		Long: `Vessel starts, stops, inspects and removes one named database
container through the local container runtime (docker or podman),
configured by a key=value file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	configPath := config.DefaultFile
	if v := os.Getenv("VESSEL_CONFIG"); v != "" {
		configPath = v
	}
	a.rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", configPath,
		"Path to the container config file")

	a.rootCmd.AddCommand(
		NewStartCmd(a),
		NewStopCmd(a),
		NewRestartCmd(a),
		NewStatusCmd(a),
		NewLogsCmd(a),
		NewExecCmd(a),
		NewRmCmd(a),
		NewPullCmd(a),
		NewDoctorCmd(a),
		NewInitCmd(a),
		NewVersionCmd(a),
	)
}

// loadConfig loads and validates the config file behind the --config flag.
func (a *App) loadConfig() (*config.Config, error) {
	return config.Load(a.configPath)
}

// runtimeBinary returns the configured runtime binary, auto-detecting one
// when the config does not pin it.
func runtimeBinary(cfg *config.Config) (string, error) {
	if cfg.Runtime != "" {
		return cfg.Runtime, nil
	}
	return runtime.DetectRuntime()
}

// controller loads configuration and wires a lifecycle controller against
// the real runtime. Each invocation is a fresh load; nothing is cached
// across commands.
func (a *App) controller() (*lifecycle.Controller, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}

	bin, err := runtimeBinary(cfg)
	if err != nil {
		return nil, err
	}

	client := runtime.NewCLIClient(bin, nil)
	return lifecycle.New(cfg, client, terminalConfirmer, os.Stdout), nil
}
