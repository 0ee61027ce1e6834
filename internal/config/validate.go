package config

import (
	"errors"
	"strconv"
)

// validate checks all config values for validity.
// Returns nil if valid, or joined errors for all validation failures.
func validate(cfg *Config) error {
	var errs []error

	// Required keys. Each missing key is reported individually so the user
	// can fix the file in one pass.
	if cfg.ContainerName == "" {
		errs = append(errs, &MissingKeyError{Key: "CONTAINER_NAME"})
	}
	if cfg.Image == "" {
		errs = append(errs, &MissingKeyError{Key: "IMAGE"})
	}
	if cfg.HostPort == "" {
		errs = append(errs, &MissingKeyError{Key: "HOST_PORT"})
	}

	if cfg.HostPort != "" {
		if _, err := strconv.Atoi(cfg.HostPort); err != nil {
			errs = append(errs, &ValidationError{
				Field:   "HOST_PORT",
				Value:   cfg.HostPort,
				Message: "must be a port number",
			})
		}
	}

	if cfg.ContainerPort != "" {
		if _, err := strconv.Atoi(cfg.ContainerPort); err != nil {
			errs = append(errs, &ValidationError{
				Field:   "CONTAINER_PORT",
				Value:   cfg.ContainerPort,
				Message: "must be a port number",
			})
		}
	}

	if cfg.StopTimeout < 0 {
		errs = append(errs, &ValidationError{
			Field:   "STOP_TIMEOUT",
			Value:   cfg.StopTimeout,
			Message: "must be non-negative",
		})
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
