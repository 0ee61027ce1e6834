// Package volume decides how the managed container's data persists.
package volume

import (
	"fmt"

	"vessel/internal/config"
)

// Kind selects a persistence strategy.
type Kind int

const (
	// None means the container keeps data in its writable layer only.
	None Kind = iota

	// Named is a runtime-managed named volume that outlives the container.
	Named

	// HostDir binds a directory on the host into the container.
	HostDir
)

func (k Kind) String() string {
	switch k {
	case Named:
		return "named volume"
	case HostDir:
		return "host directory"
	default:
		return "none"
	}
}

// Spec is the resolved persistence strategy. Derived once per invocation
// from the configuration; immutable afterwards.
type Spec struct {
	Kind Kind

	// Name is the volume name when Kind is Named.
	Name string

	// Path is the host directory when Kind is HostDir.
	Path string

	// Warning is surfaced to the user when data will not persist.
	Warning string
}

// Resolve derives the persistence strategy from the configuration.
// Pure: identical config yields an identical Spec.
//
// VOLUME maps to a named volume "<container>-data". HOST_DIR requires
// HOST_DATA_PATH. Anything else resolves to no persistence with a warning.
func Resolve(cfg *config.Config) (Spec, error) {
	switch cfg.VolumeType {
	case "VOLUME":
		return Spec{Kind: Named, Name: cfg.ContainerName + "-data"}, nil
	case "HOST_DIR":
		if cfg.HostDataPath == "" {
			return Spec{}, &config.MissingKeyError{Key: "HOST_DATA_PATH"}
		}
		return Spec{Kind: HostDir, Path: cfg.HostDataPath}, nil
	case "", "NONE":
		return Spec{Warning: "no volume configured; data will not survive container removal"}, nil
	default:
		return Spec{Warning: fmt.Sprintf("unrecognized VOLUME_TYPE %q; data will not survive container removal", cfg.VolumeType)}, nil
	}
}

// Describe returns a short human-readable summary for status output.
func (s Spec) Describe() string {
	switch s.Kind {
	case Named:
		return fmt.Sprintf("named volume %s", s.Name)
	case HostDir:
		return fmt.Sprintf("host directory %s", s.Path)
	default:
		return "none (ephemeral)"
	}
}
