package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth        = 800
	DefaultHeight       = 600
	DefaultTickInterval = time.Millisecond
	DefaultTheme        = "cyberpunk"
	MaxCanvasSide       = 4096
)

var (
	ErrInvalidCanvas       = errors.New("canvas size out of range")
	ErrInvalidTickInterval = errors.New("tick interval must be positive")
	ErrInvalidLogFormat    = errors.New("log format must be console or json")
	ErrUnsupportedFormat   = errors.New("unsupported config format")
)

type Config struct {
	Width        int           `yaml:"width" toml:"width"`
	Height       int           `yaml:"height" toml:"height"`
	TickInterval time.Duration `yaml:"tick_interval" toml:"tick_interval"`
	// Seed 0 picks one from the clock.
	Seed    int64         `yaml:"seed" toml:"seed"`
	Theme   string        `yaml:"theme" toml:"theme"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`
	File   string `yaml:"file" toml:"file"`
	Format string `yaml:"format" toml:"format"` // "console" or "json"
}

func DefaultConfig() *Config {
	return &Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		TickInterval: DefaultTickInterval,
		Theme:        DefaultTheme,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a YAML (.yaml, .yml) or TOML (.toml) file over the defaults and
// validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 || c.Width > MaxCanvasSide || c.Height > MaxCanvasSide {
		return fmt.Errorf("%dx%d: %w", c.Width, c.Height, ErrInvalidCanvas)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%s: %w", c.TickInterval, ErrInvalidTickInterval)
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("%q: %w", c.Logging.Format, ErrInvalidLogFormat)
	}
	return nil
}

// Canvas returns the drawing size in surface units.
func (c *Config) Canvas() (float64, float64) {
	return float64(c.Width), float64(c.Height)
}
