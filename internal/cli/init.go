package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// sampleConfig is written by `vessel init`. It documents every key the
// loader understands.
const sampleConfig = `# vessel container configuration
# Required keys
CONTAINER_NAME=mydb
IMAGE=gvenzl/oracle-free:23-slim
HOST_PORT=1521

# Optional keys
#CONTAINER_PORT=1521
#PASSWORD=changeme
#PDB_NAME=pdb1
#CHARACTER_SET=AL32UTF8

# Persistence: VOLUME (named volume), HOST_DIR (bind mount) or NONE
VOLUME_TYPE=VOLUME
#HOST_DATA_PATH=./data
#MOUNT_PATH=/var/lib/data

# Resource limits (runtime syntax)
#MEMORY_LIMIT=4g
#CPU_LIMIT=2

# Runtime binary override; auto-detected when unset
#RUNTIME=podman
#STOP_TIMEOUT=30
`

// NewInitCmd creates the init command
func NewInitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a commented sample config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Init(cmd.OutOrStdout())
		},
	}
}

// Init writes the sample config to the --config path. It refuses to
// overwrite an existing file.
func (a *App) Init(w io.Writer) error {
	if _, err := os.Stat(a.configPath); err == nil {
		return fmt.Errorf("%s already exists; refusing to overwrite", a.configPath)
	}

	if err := os.WriteFile(a.configPath, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", a.configPath, err)
	}

	fmt.Fprintf(w, "wrote %s; edit it and run 'vessel start'\n", a.configPath)
	return nil
}
