// Package config loads huestep settings from defaults, an optional config
// file and HUESTEP_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/viper"

	"github.com/jmylchreest/huestep/internal/colour"
	"github.com/jmylchreest/huestep/internal/export"
)

// ErrInvalidConfig is returned when a loaded setting fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// EnvPrefix prefixes every environment override, e.g. HUESTEP_SERVER_ADDR.
const EnvPrefix = "HUESTEP"

// Preview modes for terminal swatches.
const (
	PreviewAuto   = "auto"
	PreviewAlways = "always"
	PreviewNever  = "never"
)

// Config holds resolved settings.
type Config struct {
	Format      colour.Format
	Dark        bool
	Preview     string
	Encoding    export.Encoding
	PresetsFile string
	LogLevel    string
	Server      ServerConfig

	// File is the config file that was read, empty when none was.
	File string
}

// ServerConfig holds settings for the HTTP API.
type ServerConfig struct {
	Addr        string
	ReadTimeout time.Duration
}

// Default returns the built-in settings with HUESTEP_* environment
// overrides applied but no config file read.
func Default() (*Config, error) {
	return fromViper(newViper())
}

// Load resolves settings. An explicit path must exist; with no path the
// per-user config file is read when present.
func Load(path string) (*Config, error) {
	v := newViper()

	file := path
	if file == "" {
		file = defaultPath()
		if file != "" {
			if _, err := os.Stat(file); err != nil {
				file = ""
			}
		}
	}

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", file, err)
		}
	}

	cfg, err := fromViper(v)
	if err != nil {
		return nil, err
	}
	cfg.File = file
	return cfg, nil
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	return defaultPath()
}

func defaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "huestep", "config.yaml")
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Output defaults
	v.SetDefault("format", string(colour.FormatHex))
	v.SetDefault("dark", false)
	v.SetDefault("preview", PreviewAuto)
	v.SetDefault("encoding", string(export.EncodingText))
	v.SetDefault("presets_file", "")

	// Logging defaults
	v.SetDefault("log_level", "info")

	// Server defaults
	v.SetDefault("server.addr", "127.0.0.1:8080")
	v.SetDefault("server.read_timeout", "5s")
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Format:      colour.Format(v.GetString("format")),
		Dark:        v.GetBool("dark"),
		Preview:     v.GetString("preview"),
		Encoding:    export.Encoding(v.GetString("encoding")),
		PresetsFile: v.GetString("presets_file"),
		LogLevel:    v.GetString("log_level"),
		Server: ServerConfig{
			Addr:        v.GetString("server.addr"),
			ReadTimeout: v.GetDuration("server.read_timeout"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every setting and normalises case.
func (c *Config) Validate() error {
	format, err := colour.ParseFormat(c.Format.String())
	if err != nil {
		return fmt.Errorf("%w: format: %w", ErrInvalidConfig, err)
	}
	c.Format = format

	enc, err := export.ParseEncoding(string(c.Encoding))
	if err != nil {
		return fmt.Errorf("%w: encoding: %w", ErrInvalidConfig, err)
	}
	c.Encoding = enc

	c.Preview = strings.ToLower(strings.TrimSpace(c.Preview))
	switch c.Preview {
	case "":
		c.Preview = PreviewAuto
	case PreviewAuto, PreviewAlways, PreviewNever:
	default:
		return fmt.Errorf("%w: preview must be auto, always or never, got %q", ErrInvalidConfig, c.Preview)
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}

	if c.Server.Addr == "" {
		return fmt.Errorf("%w: server.addr must not be empty", ErrInvalidConfig)
	}
	if c.Server.ReadTimeout < 0 {
		return fmt.Errorf("%w: server.read_timeout must not be negative", ErrInvalidConfig)
	}

	return nil
}
