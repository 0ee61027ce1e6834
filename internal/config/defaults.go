package config

const (
	// DefaultFile is the config file looked up when --config is not given.
	DefaultFile = "vessel.env"

	DefaultMountPath   = "/var/lib/data"
	DefaultStopTimeout = 30 // seconds
)

// Default returns a Config with all default values applied.
func Default() *Config {
	return &Config{
		MountPath:   DefaultMountPath,
		StopTimeout: DefaultStopTimeout,
	}
}
