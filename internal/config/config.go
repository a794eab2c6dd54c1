// Package config loads pagestack settings.
//
// Settings come from three layers, lowest priority first: built-in defaults,
// a TOML file, and PAGESTACK_* environment variables. A Watcher reloads the
// file when it changes on disk.
//
// Example file:
//
//	[logging]
//	level = "debug"
//	file = "/tmp/pagestack.log"
//
//	[keys]
//	"edit.undo" = "ctrl+z"
//
//	[document]
//	path = "~/scans/book.yaml"
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/pagestack/internal/logging"
)

// Config holds every pagestack setting.
type Config struct {
	Logging  LoggingConfig     `toml:"logging"`
	Keys     map[string]string `toml:"keys"` // action ID -> key
	Document DocumentConfig    `toml:"document"`
}

// LoggingConfig configures the application log.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// DocumentConfig configures the document opened at startup.
type DocumentConfig struct {
	Path string `toml:"path"`
}

// DefaultKeys returns the built-in key bindings.
func DefaultKeys() map[string]string {
	return map[string]string{
		"edit.undo":        "u",
		"edit.redo":        "ctrl+r",
		"page.delete":      "d",
		"page.rotateRight": "r",
		"page.rotateLeft":  "R",
		"page.duplicate":   "D",
		"page.moveDown":    "J",
		"page.moveUp":      "K",
		"page.reverse":     "v",
		"file.save":        "w",
		"app.quit":         "q",
	}
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(os.TempDir(), "pagestack.log"),
		},
		Keys: DefaultKeys(),
	}
}

// Load reads the TOML file at path over the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if err := cfg.merge(path, data); err != nil {
				return nil, err
			}
		}
	}

	cfg.ApplyEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse reads TOML data over the defaults without consulting the
// environment.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := cfg.merge("<data>", data); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// merge decodes data and overlays it on c. Key bindings are merged per
// action; other values replace the defaults when set.
func (c *Config) merge(source string, data []byte) error {
	var file Config
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return newParseError(source, err)
	}

	if file.Logging.Level != "" {
		c.Logging.Level = file.Logging.Level
	}
	if file.Logging.File != "" {
		c.Logging.File = expandHome(file.Logging.File)
	}
	if file.Document.Path != "" {
		c.Document.Path = expandHome(file.Document.Path)
	}
	for id, key := range file.Keys {
		c.Keys[id] = key
	}
	return nil
}

// Environment variables read by ApplyEnv.
const (
	EnvLogLevel = "PAGESTACK_LOG_LEVEL"
	EnvLogFile  = "PAGESTACK_LOG_FILE"
	EnvDocument = "PAGESTACK_DOCUMENT"
)

// ApplyEnv overrides settings from environment variables. Empty values are
// treated as set.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvLogLevel); ok {
		c.Logging.Level = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		c.Logging.File = expandHome(v)
	}
	if v, ok := lookup(EnvDocument); ok {
		c.Document.Path = expandHome(v)
	}
}

// Validate checks that settings are usable.
func (c *Config) Validate() error {
	var errs []error
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, &ValidationError{Path: "logging.level", Message: err.Error()})
	}

	seen := make(map[string]string, len(c.Keys))
	for id, key := range c.Keys {
		if strings.TrimSpace(key) == "" {
			errs = append(errs, &ValidationError{Path: "keys." + id, Message: "empty key"})
			continue
		}
		key = NormalizeKey(key)
		if other, dup := seen[key]; dup {
			first, second := other, id
			if second < first {
				first, second = second, first
			}
			errs = append(errs, &ValidationError{
				Path:    "keys." + second,
				Message: fmt.Sprintf("key %q already bound to %s", key, first),
			})
			continue
		}
		seen[key] = id
	}
	return errors.Join(errs...)
}

// LogLevel returns the parsed logging level.
func (c *Config) LogLevel() logging.Level {
	level, _ := logging.ParseLevel(c.Logging.Level)
	return level
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
