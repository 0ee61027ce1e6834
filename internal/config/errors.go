package config

import "fmt"

// MissingFileError indicates the configuration file does not exist.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("config file not found: %s (run 'vessel init' to create one)", e.Path)
}

// MissingKeyError indicates a required configuration key is absent or empty.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("missing required config key %s", e.Key)
}

// ValidationError contains details about a config value that failed validation.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config.%s: %s (got: %v)", e.Field, e.Message, e.Value)
}
