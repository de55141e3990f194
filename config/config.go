// Copyright 2026 Stencil Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package config loads the server configuration from YAML, with sane
// defaults for every field so a missing file is not an error.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable that overrides config
// file discovery.
const EnvConfigPath = "STENCIL_CONFIG"

var (
	// ErrInvalidConfig indicates that a configuration value is out of range.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrMalformedConfig indicates that the config file could not be parsed.
	ErrMalformedConfig = errors.New("malformed configuration file")
)

// Duration wraps time.Duration so YAML values can use the usual "30s"
// notation as well as plain nanosecond integers.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedConfig, err)
		}
		*d = Duration(parsed)
		return nil
	}

	var n int64
	if err := value.Decode(&n); err != nil {
		return fmt.Errorf("%w: bad duration %q", ErrMalformedConfig, value.Value)
	}
	*d = Duration(n)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Config holds the server and cache settings.
type Config struct {
	// Listen is the TCP address the RPC server binds to. Empty means the
	// server speaks JSON-RPC over stdio instead.
	Listen string `yaml:"listen"`

	// DataDir is the directory for the BadgerDB cache. Empty picks a
	// per-user default under the OS cache directory.
	DataDir string `yaml:"dataDir"`

	// AssetTimeout bounds a single preview download.
	AssetTimeout Duration `yaml:"assetTimeout"`

	// PrefetchWorkers sizes the preview prefetch pool.
	PrefetchWorkers int `yaml:"prefetchWorkers"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"logLevel"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		AssetTimeout:    Duration(30 * time.Second),
		PrefetchWorkers: 4,
		LogLevel:        "info",
	}
}

// Validate checks every field against its allowed range.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.AssetTimeout <= 0 {
		return fmt.Errorf("%w: asset timeout must be positive", ErrInvalidConfig)
	}
	if c.PrefetchWorkers < 1 {
		return fmt.Errorf("%w: prefetch workers must be at least 1", ErrInvalidConfig)
	}
	return nil
}

// CacheDir resolves the BadgerDB directory, falling back to the per-user
// OS cache directory when DataDir is unset.
func (c *Config) CacheDir() (string, error) {
	if c.DataDir != "" {
		return c.DataDir, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "stencil"), nil
}

// Load reads a config file and merges it over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Discover resolves the config file path: the STENCIL_CONFIG environment
// variable wins, then the per-user config directory. Returns an empty
// path when no file exists.
func Discover() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(base, "stencil", "config.yaml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// LoadDiscovered loads the discovered config file, or the defaults when
// none exists.
func LoadDiscovered() (*Config, error) {
	path := Discover()
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
