// Package config loads render settings from a YAML, JSON or TOML file with
// environment overrides.
//
// Keys use snake_case. Environment variables prefixed with SITEGRID_ override
// file values; a double underscore separates nesting levels, so
// SITEGRID_CALENDAR__COLUMNS=5 sets calendar.columns.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/matzehuels/sitegrid/pkg/errors"
)

// EnvPrefix marks environment variables read as overrides.
const EnvPrefix = "SITEGRID_"

// Config is the on-disk form of the render settings.
type Config struct {
	Page        PageConfig       `json:"page"`
	Calendar    CalendarConfig   `json:"calendar"`
	Colors      ColorConfig      `json:"colors"`
	Contractors ContractorConfig `json:"contractors"`
	Text        TextConfig       `json:"text"`
	Fonts       FontConfig       `json:"fonts"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	cfg.SetDefaults()
	return &cfg
}

// Load reads path, applies environment overrides, fills defaults and
// validates. An empty path loads only the environment.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "environment overrides")
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	case ".toml":
		return TOMLParser(), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unsupported config format: %q", ext)
	}
}

// envKey maps SITEGRID_CALENDAR__COLUMNS to calendar.columns.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// SetDefaults fills every unset field.
func (c *Config) SetDefaults() {
	c.Page.SetDefaults()
	c.Calendar.SetDefaults()
	c.Colors.SetDefaults()
	c.Contractors.SetDefaults()
	c.Text.SetDefaults()
	c.Fonts.SetDefaults()
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Page.Validate(); err != nil {
		return err
	}
	if err := c.Calendar.Validate(); err != nil {
		return err
	}
	if err := c.Colors.Validate(); err != nil {
		return err
	}
	return c.Contractors.Validate()
}
