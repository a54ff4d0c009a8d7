package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/ha-assist/assets"
	"github.com/doeshing/ha-assist/internal/domain"
	"github.com/doeshing/ha-assist/internal/pkg/filesystem"
	"github.com/doeshing/ha-assist/internal/ports"
)

// Environment variables that take priority over the config file.
const (
	EnvURL   = "HA_ASSIST_URL"
	EnvToken = "HA_ASSIST_TOKEN"
)

// FileLoader loads YAML configuration from <config-dir>/ha-assist.yaml.
type FileLoader struct {
	dir string
}

// NewFileLoader builds a new loader. An empty dir resolves via filesystem.ConfigDir.
func NewFileLoader(dir string) *FileLoader {
	return &FileLoader{dir: dir}
}

// Dir returns the resolved config directory.
func (l *FileLoader) Dir() string {
	if l.dir != "" {
		return filesystem.ExpandPath(l.dir)
	}
	return filesystem.ConfigDir()
}

// Path returns the config file path.
func (l *FileLoader) Path() string {
	return filepath.Join(l.Dir(), domain.ConfigFileName)
}

// Load implements ports.ConfigProvider. A missing file is an error; there is
// no usable default for the Home Assistant address and token.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.Path()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Config{}, fmt.Errorf("%w: %s", domain.ErrConfigNotFound, path)
		}
		return domain.Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	return applyEnvOverrides(hydrateDefaults(cfg)), nil
}

// WriteDefault writes the embedded default config unless a file already exists.
// It returns the path written.
func (l *FileLoader) WriteDefault(force bool) (string, error) {
	path := l.Path()
	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, fmt.Errorf("config already exists at %s", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return path, err
	}
	return path, os.WriteFile(path, assets.DefaultConfigYAML, domain.SecureFilePermissions)
}

// DefaultConfig parses the embedded default config.
func DefaultConfig() (domain.Config, error) {
	var cfg domain.Config
	if err := yaml.Unmarshal(assets.DefaultConfigYAML, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse embedded default config: %w", err)
	}
	return hydrateDefaults(cfg), nil
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	cfg.Prefix = cfg.PrefixOrDefault()
	cfg.Language = cfg.LanguageOrDefault()
	return cfg
}

func applyEnvOverrides(cfg domain.Config) domain.Config {
	if v := os.Getenv(EnvURL); v != "" {
		cfg.URL = v
	}
	if v := os.Getenv(EnvToken); v != "" {
		cfg.Token = v
	}
	return cfg
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
