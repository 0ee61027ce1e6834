package config

import (
	"os"
	"strconv"
)

// envOverrides maps environment variables to config field setters.
var envOverrides = []struct {
	envVar string
	apply  func(*Config, string)
}{
	{
		envVar: "VESSEL_RUNTIME",
		apply: func(c *Config, v string) {
			c.Runtime = v
		},
	},
	{
		envVar: "VESSEL_STOP_TIMEOUT",
		apply: func(c *Config, v string) {
			if n, err := strconv.Atoi(v); err == nil {
				c.StopTimeout = n
			}
		},
	},
}

// applyEnvOverrides modifies config in place with environment variable values.
func applyEnvOverrides(cfg *Config) {
	for _, override := range envOverrides {
		if val := os.Getenv(override.envVar); val != "" {
			override.apply(cfg, val)
		}
	}
}
