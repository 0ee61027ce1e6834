package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config describes the one container this tool manages.
// It is immutable after creation via Load().
type Config struct {
	// ContainerName is the runtime-unique name of the managed container
	ContainerName string `yaml:"container_name"`

	// Image is the container image reference (e.g., "gvenzl/oracle-free:23")
	Image string `yaml:"image"`

	// HostPort is the host port published to the container's service port
	HostPort string `yaml:"host_port"`

	// ContainerPort is the container-side port; defaults to HostPort
	ContainerPort string `yaml:"container_port"`

	// Password is handed to the container as DB_PASSWORD
	Password string `yaml:"password"`

	// PDBName is handed to the container as DB_PDB_NAME
	PDBName string `yaml:"pdb_name"`

	// CharacterSet is handed to the container as DB_CHARACTER_SET
	CharacterSet string `yaml:"character_set"`

	// VolumeType selects the persistence strategy: VOLUME, HOST_DIR or NONE
	VolumeType string `yaml:"volume_type"`

	// HostDataPath is the host directory mounted when VolumeType is HOST_DIR
	HostDataPath string `yaml:"host_data_path"`

	// MountPath is the container-side data directory
	MountPath string `yaml:"mount_path"`

	// MemoryLimit caps container memory (runtime syntax, e.g., "4g")
	MemoryLimit string `yaml:"memory_limit"`

	// CPULimit caps container CPUs (runtime syntax, e.g., "2")
	CPULimit string `yaml:"cpu_limit"`

	// Runtime overrides runtime binary auto-detection (e.g., "podman")
	Runtime string `yaml:"runtime"`

	// StopTimeout is the grace period in seconds before the runtime kills
	// the container on stop
	StopTimeout int `yaml:"stop_timeout"`
}

// Load reads configuration from path, applies defaults, environment
// overrides, then validates.
//
// The file is key=value, one per line, optionally quoted. Files ending in
// .yaml or .yml are parsed as YAML with the same keys in lower_snake form.
// A missing file is an error: the tool manages exactly one container and
// cannot guess which.
func Load(path string) (*Config, error) {
	cfg := Default()

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, &MissingFileError{Path: path}
			}
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	default:
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, &MissingFileError{Path: path}
		}
		values, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
		cfg.applyValues(values)
	}

	applyEnvOverrides(cfg)

	if cfg.ContainerPort == "" {
		cfg.ContainerPort = cfg.HostPort
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyValues maps key=value pairs from a dotenv file onto the config.
// Unknown keys are ignored so the file can carry unrelated variables.
func (c *Config) applyValues(values map[string]string) {
	for key, value := range values {
		switch key {
		case "CONTAINER_NAME":
			c.ContainerName = value
		case "IMAGE":
			c.Image = value
		case "HOST_PORT":
			c.HostPort = value
		case "CONTAINER_PORT":
			c.ContainerPort = value
		case "PASSWORD":
			c.Password = value
		case "PDB_NAME":
			c.PDBName = value
		case "CHARACTER_SET":
			c.CharacterSet = value
		case "VOLUME_TYPE":
			c.VolumeType = value
		case "HOST_DATA_PATH":
			c.HostDataPath = value
		case "MOUNT_PATH":
			c.MountPath = value
		case "MEMORY_LIMIT":
			c.MemoryLimit = value
		case "CPU_LIMIT":
			c.CPULimit = value
		case "RUNTIME":
			c.Runtime = value
		case "STOP_TIMEOUT":
			if n, err := strconv.Atoi(value); err == nil {
				c.StopTimeout = n
			}
		}
	}
}

// ContainerEnv returns the environment variables passed to the container
// at creation. Only configured values are included.
func (c *Config) ContainerEnv() map[string]string {
	env := make(map[string]string)
	if c.Password != "" {
		env["DB_PASSWORD"] = c.Password
	}
	if c.PDBName != "" {
		env["DB_PDB_NAME"] = c.PDBName
	}
	if c.CharacterSet != "" {
		env["DB_CHARACTER_SET"] = c.CharacterSet
	}
	return env
}
