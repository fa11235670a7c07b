// Package config loads shell configuration. Precedence, lowest to
// highest: built-in defaults, an rc file in the state directory
// (termos.yaml or termos.toml), then TERMOS_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
)

// Config holds all shell configuration.
type Config struct {
	State   StateConfig
	Shell   ShellConfig
	Logging LogConfig
}

// StateConfig controls where and how state is persisted.
type StateConfig struct {
	Dir             string `envconfig:"TERMOS_STATE_DIR"`
	FilesystemFile  string `envconfig:"TERMOS_FS_FILE"`
	EnvironmentFile string `envconfig:"TERMOS_ENV_FILE"`
	Compress        bool   `envconfig:"TERMOS_COMPRESS"`
	Autosave        bool   `envconfig:"TERMOS_AUTOSAVE"`
}

// ShellConfig controls interactive behavior.
type ShellConfig struct {
	User         string `envconfig:"TERMOS_USER"`
	HistoryLimit int    `envconfig:"TERMOS_HISTORY_LIMIT"`
	Color        string `envconfig:"TERMOS_COLOR"` // auto, always, never
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level       string `envconfig:"TERMOS_LOG_LEVEL"`
	File        string `envconfig:"TERMOS_LOG_FILE"`
	Development bool   `envconfig:"TERMOS_LOG_DEV"`
}

// Default returns the built-in configuration. The state directory
// defaults to ~/.termos.
func Default() *Config {
	dir := ".termos"
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".termos")
	}
	return &Config{
		State: StateConfig{
			Dir:             dir,
			FilesystemFile:  "filesystem.json",
			EnvironmentFile: "environment.json",
			Autosave:        true,
		},
		Shell: ShellConfig{
			User:         "user",
			HistoryLimit: 1000,
			Color:        "auto",
		},
		Logging: LogConfig{
			Level: "info",
			File:  "termos.log",
		},
	}
}

// Load builds the effective configuration from defaults, the rc file,
// and the environment.
func Load() (*Config, error) {
	cfg := Default()

	// The state dir can itself come from the environment, and decides
	// where the rc file lives.
	if dir := os.Getenv("TERMOS_STATE_DIR"); dir != "" {
		cfg.State.Dir = dir
	}
	if err := cfg.applyFile(); err != nil {
		return nil, err
	}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("load config from environment: %w", err)
	}
	return cfg, nil
}

// FilesystemPath returns the snapshot file path, with a .gz suffix
// when compression is on.
func (c *Config) FilesystemPath() string {
	name := c.State.FilesystemFile
	if c.State.Compress {
		name += ".gz"
	}
	return filepath.Join(c.State.Dir, name)
}

// EnvironmentPath returns the environment file path.
func (c *Config) EnvironmentPath() string {
	return filepath.Join(c.State.Dir, c.State.EnvironmentFile)
}

// HistoryPath returns the readline history file path.
func (c *Config) HistoryPath() string {
	return filepath.Join(c.State.Dir, "history")
}

// LogPath returns the log file path.
func (c *Config) LogPath() string {
	return filepath.Join(c.State.Dir, c.Logging.File)
}

// fileConfig is the sparse rc-file schema. Pointer fields distinguish
// "unset" from zero values.
type fileConfig struct {
	FilesystemFile  *string `yaml:"filesystem_file" toml:"filesystem_file"`
	EnvironmentFile *string `yaml:"environment_file" toml:"environment_file"`
	Compress        *bool   `yaml:"compress" toml:"compress"`
	Autosave        *bool   `yaml:"autosave" toml:"autosave"`
	User            *string `yaml:"user" toml:"user"`
	HistoryLimit    *int    `yaml:"history_limit" toml:"history_limit"`
	Color           *string `yaml:"color" toml:"color"`
	LogLevel        *string `yaml:"log_level" toml:"log_level"`
	LogFile         *string `yaml:"log_file" toml:"log_file"`
	LogDevelopment  *bool   `yaml:"log_development" toml:"log_development"`
}

func (c *Config) applyFile() error {
	for _, candidate := range []struct {
		name      string
		unmarshal func([]byte, any) error
	}{
		{"termos.yaml", func(b []byte, v any) error { return yaml.Unmarshal(b, v) }},
		{"termos.toml", func(b []byte, v any) error { return toml.Unmarshal(b, v) }},
	} {
		path := filepath.Join(c.State.Dir, candidate.name)
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		var fc fileConfig
		if err := candidate.unmarshal(data, &fc); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		fc.apply(c)
		return nil
	}
	return nil
}

func (fc *fileConfig) apply(c *Config) {
	setString(&c.State.FilesystemFile, fc.FilesystemFile)
	setString(&c.State.EnvironmentFile, fc.EnvironmentFile)
	setBool(&c.State.Compress, fc.Compress)
	setBool(&c.State.Autosave, fc.Autosave)
	setString(&c.Shell.User, fc.User)
	setInt(&c.Shell.HistoryLimit, fc.HistoryLimit)
	setString(&c.Shell.Color, fc.Color)
	setString(&c.Logging.Level, fc.LogLevel)
	setString(&c.Logging.File, fc.LogFile)
	setBool(&c.Logging.Development, fc.LogDevelopment)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
