package config

import (
	"fmt"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}

	if c.Nexus.APIKey == "" && c.Nexus.APIKeyFile == "" {
		errs = append(errs, "nexus: either api_key or api_key_file must be set")
	}

	if c.Download.Dir == "" {
		errs = append(errs, "download.dir: required")
	}

	return errs
}
