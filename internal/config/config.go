// Package config holds all vitrine configuration. Values come from a YAML
// file layered over built-in defaults, with environment variables taking
// precedence over both.
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	UI      UIConfig      `yaml:"ui"`
	Login   LoginConfig   `yaml:"login"`
	Logging LoggingConfig `yaml:"logging"`
}

// APIConfig configures the store API client.
type APIConfig struct {
	BaseURL string        `yaml:"base_url" env:"VITRINE_API_BASE_URL, overwrite"`
	Timeout time.Duration `yaml:"timeout" env:"VITRINE_API_TIMEOUT, overwrite"`

	// UserID is the profile fetched after login. The login endpoint does
	// not return a user id, so the profile is fixed.
	UserID int `yaml:"user_id" env:"VITRINE_API_USER_ID, overwrite"`
}

// UIConfig configures presentation.
type UIConfig struct {
	PageSize int  `yaml:"page_size" env:"VITRINE_UI_PAGE_SIZE, overwrite"`
	DarkMode bool `yaml:"dark_mode" env:"VITRINE_DARK_MODE, overwrite"`
}

// LoginConfig pre-fills the login form with the API's sample account.
type LoginConfig struct {
	Username string `yaml:"username" env:"VITRINE_LOGIN_USERNAME, overwrite"`
	Password string `yaml:"password" env:"VITRINE_LOGIN_PASSWORD, overwrite"`
}

// LoggingConfig configures the file logger. Logging is off by default so
// a fresh install writes nothing.
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled" env:"VITRINE_LOG_ENABLED, overwrite"`
	Level   string `yaml:"level" env:"VITRINE_LOG_LEVEL, overwrite"`
	File    string `yaml:"file" env:"VITRINE_LOG_FILE, overwrite"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL: "https://fakestoreapi.com",
			Timeout: 15 * time.Second,
			UserID:  1,
		},
		UI: UIConfig{
			PageSize: 8,
		},
		Login: LoginConfig{
			Username: "mor_2314",
			Password: "83r5^_",
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
			File:    "vitrine.log",
		},
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(dir, "vitrine", "config.yaml")
}

// Load reads the config file at path (missing file is fine: defaults are
// used) and applies environment overrides.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// No file yet; keep defaults.
	default:
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return Config{}, fmt.Errorf("config: environment overrides: %w", err)
	}
	return cfg, nil
}

// Save writes the config as YAML, creating parent directories as needed.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
