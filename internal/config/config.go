// Package config resolves client configuration from defaults, an optional
// YAML file, and the environment, in that order.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/maartenv/kampeer/internal/errors"
)

// Environment variables recognized by the client.
const (
	EnvAPIBaseURL = "KAMPEER_API_URL"
	EnvStateDir   = "KAMPEER_STATE_DIR"
	EnvLogLevel   = "KAMPEER_LOG_LEVEL"
)

// DefaultAPIBaseURL is the local development backend.
const DefaultAPIBaseURL = "http://localhost:3001/api"

// Config holds the client configuration.
type Config struct {
	// APIBaseURL is the backend's base URL, including the /api prefix.
	APIBaseURL string `yaml:"api_base_url"`

	// StateDir holds durable client state (stored credentials).
	StateDir string `yaml:"state_dir"`

	// LogLevel is the minimum diagnostic log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		APIBaseURL: DefaultAPIBaseURL,
		StateDir:   defaultStateDir(),
		LogLevel:   "warn",
	}
}

// Load resolves the effective configuration: defaults, then the config file
// under the state directory if present, then environment overrides.
func Load() (Config, error) {
	cfg := Default()

	// KAMPEER_STATE_DIR decides where the config file itself lives, so it
	// applies before the file is read.
	if dir := os.Getenv(EnvStateDir); dir != "" {
		cfg.StateDir = dir
	}

	path := filepath.Join(cfg.StateDir, "config.yaml")
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeConfigInvalid, "invalid config file "+path, err).
				WithSuggestion("Fix the YAML syntax or delete the file to use defaults")
		}
	} else if !os.IsNotExist(err) {
		return Config{}, errors.Wrap(errors.ErrCodeConfigReadFail, "failed to read config file "+path, err)
	}

	if url := os.Getenv(EnvAPIBaseURL); url != "" {
		cfg.APIBaseURL = url
	}
	if dir := os.Getenv(EnvStateDir); dir != "" {
		cfg.StateDir = dir
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.LogLevel = level
	}

	return cfg, nil
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".kampeer"
	}
	return filepath.Join(home, ".kampeer")
}
