// Package config persists the credential and default organization list
// between runs.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ErrNotAuthenticated is returned when no token has been stored yet.
var ErrNotAuthenticated = errors.New("Not authenticated. Run `gitorg auth` first.")

// Config is the on-disk configuration, stored as TOML under the user config
// directory.
type Config struct {
	Auth     Auth     `toml:"auth"`
	Defaults Defaults `toml:"defaults"`
}

// Auth holds the GitHub personal access token.
type Auth struct {
	Token string `toml:"token"`
}

// Defaults holds the fallbacks applied when command flags are absent.
type Defaults struct {
	Orgs []string `toml:"orgs"`
}

// Token returns the stored credential, or ErrNotAuthenticated when none is
// saved. The value must never end up in logs.
func (c Config) Token() (string, error) {
	if c.Auth.Token == "" {
		return "", ErrNotAuthenticated
	}
	return c.Auth.Token, nil
}

// Path returns the config file location, honoring XDG_CONFIG_HOME where the
// platform uses it.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, "gitorg", "config.toml"), nil
}

// Load reads the config file. A missing file is not an error: it loads as
// the zero Config, whose Token accessor reports ErrNotAuthenticated.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config file with owner-only permissions. The explicit
// Chmod also covers a file that already existed with a looser mode.
func Save(cfg Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Chmod(path, 0600); err != nil {
		return fmt.Errorf("failed to restrict config file permissions: %w", err)
	}
	return nil
}
