// Package file persists everfind configuration as a TOML document.
// Configuration lives in a single file within the everfind config
// directory, defaulting to ~/.everfind/config.toml.
package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	defaultDirName  = ".everfind"
	defaultFileName = "config.toml"
)

// Config is the on-disk configuration. Zero values fall back to each
// transport's built-in defaults. It is an explicit value handed to
// the transport factory; nothing here is process-global.
type Config struct {
	// Transport selects the adapter: auto, cli, sdk or http.
	Transport string `toml:"transport"`

	// Verbose enables debug logging without the --verbose flag.
	Verbose bool `toml:"verbose"`

	CLI  CLIConfig  `toml:"cli"`
	SDK  SDKConfig  `toml:"sdk"`
	HTTP HTTPConfig `toml:"http"`
}

// CLIConfig configures the spawned-process transport.
type CLIConfig struct {
	// Executable is the command-line client path or name.
	Executable string `toml:"executable"`

	// PollSeconds overrides the monitoring tick period.
	PollSeconds int `toml:"poll_seconds"`
}

// SDKConfig configures the native-library transport.
type SDKConfig struct {
	// Library is the shared library path or name.
	Library string `toml:"library"`

	// PollSeconds overrides the monitoring tick period.
	PollSeconds int `toml:"poll_seconds"`
}

// HTTPConfig configures the HTTP transport.
type HTTPConfig struct {
	// BaseURL is the engine HTTP server root.
	BaseURL string `toml:"base_url"`

	// Username and Password enable Basic Authentication.
	Username string `toml:"username"`
	Password string `toml:"password"`

	// TimeoutSeconds bounds each round-trip.
	TimeoutSeconds int `toml:"timeout_seconds"`

	// RequestsPerSecond enables client-side rate limiting when
	// positive.
	RequestsPerSecond float64 `toml:"requests_per_second"`

	// PollSeconds overrides the monitoring tick period.
	PollSeconds int `toml:"poll_seconds"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{Transport: "auto"}
}

// DefaultPath returns the default config file location,
// ~/.everfind/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, defaultDirName, defaultFileName), nil
}

// Load reads the TOML config at path. An empty path means the default
// location; a missing file yields DefaultConfig rather than an error.
func Load(path string) (Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, err
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path (the default location when empty), creating
// the directory with owner-only permissions.
func Save(cfg Config, path string) error {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}

// PollInterval converts a poll_seconds value into a duration, with 0
// meaning "use the transport default".
func PollInterval(seconds int) time.Duration {
	if seconds <= 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}
