// Package config loads the YAML configuration file and applies environment
// overrides on top.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/halmos/timely/internal/domain"
	"github.com/halmos/timely/internal/ports"
)

// envOverrides are the environment knobs layered over the file config.
type envOverrides struct {
	ConfigPath string `env:"TIMELY_CONFIG"`
	APIBase    string `env:"TIMELY_API_BASE"`
	Language   string `env:"TIMELY_LANG"`
	Quiet      bool   `env:"TIMELY_QUIET"`
}

// FileLoader loads YAML configuration from ~/.timely/config.yaml
// (overridable via TIMELY_CONFIG). A missing file is seeded with defaults.
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader. path, when non-empty, pins the config
// location (used by tests).
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return domain.Config{}, fmt.Errorf("parse environment: %w", err)
	}

	path := l.resolvePath(overrides.ConfigPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return domain.Config{}, err
	}

	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := writeDefault(path, cfg); err != nil {
			return domain.Config{}, err
		}
	case err != nil:
		return domain.Config{}, err
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return domain.Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
		cfg = hydrateDefaults(cfg)
	}

	return applyOverrides(cfg, overrides), nil
}

func (l *FileLoader) resolvePath(envPath string) string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if envPath != "" {
		return expandPath(envPath)
	}
	return filepath.Join(userHomeDir(), ".timely", "config.yaml")
}

func writeDefault(path string, cfg domain.Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o600)
}

func defaultConfig() domain.Config {
	return domain.Config{
		DefaultLanguage: "en",
		DefaultCategory: "events",
		CacheTTL:        "24h",
		Quiet:           false,
		MinWidth:        40,
	}
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	def := defaultConfig()
	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = def.DefaultLanguage
	}
	if cfg.DefaultCategory == "" {
		cfg.DefaultCategory = def.DefaultCategory
	}
	if cfg.CacheTTL == "" {
		cfg.CacheTTL = def.CacheTTL
	}
	if cfg.MinWidth == 0 {
		cfg.MinWidth = def.MinWidth
	}
	return cfg
}

func applyOverrides(cfg domain.Config, overrides envOverrides) domain.Config {
	cfg.APIBase = overrides.APIBase
	if overrides.Language != "" {
		cfg.DefaultLanguage = overrides.Language
	}
	if overrides.Quiet {
		cfg.Quiet = true
	}
	return cfg
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(userHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

func userHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
