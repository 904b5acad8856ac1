package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/vmunix/nexusdl/internal/config"
	"github.com/vmunix/nexusdl/internal/nexus"
)

// loadConfig loads the config file. Without an explicit --config the
// standard search order applies, and a missing config falls back to
// defaults so the tool works with just a key.txt.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadOrDefault(configPath)
	}
	path, err := config.Discover()
	if err != nil {
		return config.Default(), nil
	}
	return config.Load(path)
}

func newLogger(cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newAPIClient builds the Nexus client from the config.
func newAPIClient(cfg *config.Config) (*nexus.Client, error) {
	key, err := cfg.ResolveAPIKey()
	if err != nil {
		return nil, fmt.Errorf("api key: %w (create the key file or set nexus.api_key)", err)
	}

	opts := []nexus.Option{nexus.WithUserAgent(userAgent())}
	if cfg.Nexus.BaseURL != "" {
		opts = append(opts, nexus.WithBaseURL(cfg.Nexus.BaseURL))
	}
	return nexus.NewClient(key, opts...), nil
}

func userAgent() string {
	return "nexusdl/" + version
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
}

func formatSize(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)
	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.1f GB", float64(bytes)/GB)
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/MB)
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/KB)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
