// Package config handles TOML-based configuration loading and validation.
// The file holds defaults for flags the user would otherwise repeat on
// every invocation; TOML is parsed as data only.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"vidl/internal/media"
)

// Config holds all application configuration.
type Config struct {
	Quality     string `toml:"quality"`
	DownloadDir string `toml:"download_dir"`
	Cookies     string `toml:"cookies"`
	Format      string `toml:"format"`
	Debug       bool   `toml:"debug"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Quality:     "best",
		DownloadDir: ".",
	}
}

// configDir returns the XDG-compliant config directory.
func configDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "vidl"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", "vidl"), nil
}

// ConfigPath returns the path to the config file.
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file and merges with defaults.
// If the config file doesn't exist, defaults are returned.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks config values are within acceptable bounds. The format
// field is intentionally not validated here: an unrecognized format is a
// per-run warning with a fallback, not a reason to refuse startup.
func (c *Config) Validate() error {
	if _, err := media.ParseTier(c.Quality); err != nil {
		return fmt.Errorf("unsupported quality %q (valid: 360, 480, 720, 1080, best)", c.Quality)
	}
	if c.DownloadDir == "" {
		return fmt.Errorf("download_dir cannot be empty")
	}
	return nil
}

// ExpandDownloadDir resolves ~ in the download directory path.
func (c *Config) ExpandDownloadDir() (string, error) {
	dir, err := expandHome(c.DownloadDir)
	if err != nil {
		return "", err
	}
	return filepath.Abs(dir)
}

// ExpandCookies resolves ~ in the cookies file path. Empty stays empty.
func (c *Config) ExpandCookies() (string, error) {
	if c.Cookies == "" {
		return "", nil
	}
	return expandHome(c.Cookies)
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expanding home dir: %w", err)
	}
	return filepath.Join(home, path[2:]), nil
}
