// Package config handles TOML configuration loading with environment
// variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Nexus    NexusConfig    `toml:"nexus"`
	Download DownloadConfig `toml:"download"`
	Database DatabaseConfig `toml:"database"`
	Log      LogConfig      `toml:"log"`
}

type NexusConfig struct {
	APIKey     string `toml:"api_key"`
	APIKeyFile string `toml:"api_key_file"`
	BaseURL    string `toml:"base_url"`
}

type DownloadConfig struct {
	Dir string `toml:"dir"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when no config file exists. The
// tool works out of the box with just a key.txt next to it.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Substitute environment variables
	content := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &ConfigError{Path: path, Errors: errs}
	}
	return &cfg, nil
}

// LoadOrDefault loads the config file if it exists and falls back to the
// defaults when it doesn't. Any other failure is still reported.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

func (c *Config) applyDefaults() {
	if c.Nexus.APIKeyFile == "" {
		c.Nexus.APIKeyFile = "key.txt"
	}
	if c.Download.Dir == "" {
		c.Download.Dir = "downloads"
	}
	if c.Database.Path == "" {
		c.Database.Path = "./data/nexusdl.db"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// ResolveAPIKey returns the API key, either inline from the config or read
// from the key file. An empty key is an error either way.
func (c *Config) ResolveAPIKey() (string, error) {
	if k := strings.TrimSpace(c.Nexus.APIKey); k != "" {
		return k, nil
	}

	data, err := os.ReadFile(c.Nexus.APIKeyFile)
	if err != nil {
		return "", fmt.Errorf("reading api key file %s: %w", c.Nexus.APIKeyFile, err)
	}
	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", fmt.Errorf("api key file %s is empty", c.Nexus.APIKeyFile)
	}
	return key, nil
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match // Leave unchanged if not found
	})
}
