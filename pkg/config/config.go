// Package config loads the console configuration: a yaml file for
// preferences plus .env/environment for the backend base URL, the one
// value the console cannot run without.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/yasith-1/zentask-admin/pkg/models"
)

const (
	// FileName is the config file looked up in the working directory.
	FileName = "zentask-admin.yaml"

	// EnvBaseURL overrides the configured backend base URL.
	EnvBaseURL = "ZENTASK_BASE_URL"
)

// Load reads the configuration in precedence order: defaults, then the
// yaml file (working directory, falling back to the user config dir),
// then .env, then the process environment. A missing base URL is a
// startup configuration error, not something resolved at call time.
func Load() (*models.Settings, error) {
	settings := models.DefaultSettings()

	path, err := findConfigFile()
	if err != nil {
		return nil, err
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	// .env is optional; a present environment variable wins either way.
	_ = godotenv.Load()
	if v := os.Getenv(EnvBaseURL); v != "" {
		settings.API.BaseURL = v
	}

	if settings.API.BaseURL == "" {
		return nil, fmt.Errorf("backend base URL is not configured: set %s or api.base_url in %s", EnvBaseURL, FileName)
	}
	if settings.UI.PageSize <= 0 {
		settings.UI.PageSize = models.DefaultSettings().UI.PageSize
	}
	return settings, nil
}

// Write saves settings to the config file in the working directory.
// Used by `zentask-admin init` to scaffold a starting point.
func Write(settings *models.Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(FileName, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", FileName, err)
	}
	return nil
}

// findConfigFile returns the first config file present, or "" when
// none exists (defaults + environment then carry the load).
func findConfigFile() (string, error) {
	if _, err := os.Stat(FileName); err == nil {
		return FileName, nil
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("stat config %s: %w", FileName, err)
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", nil
	}
	path := filepath.Join(dir, "zentask-admin", FileName)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	return "", nil
}
