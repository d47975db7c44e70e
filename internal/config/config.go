// Package config holds the geomkit configuration: which logger sink shapes
// report to, and how the batch demo runs. Configuration is loaded once at
// startup from a YAML file with environment overrides; there is no runtime
// reloading.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"geomkit/internal/logging"
)

// Sink names accepted by LoggingConfig.Sink.
const (
	SinkConsole = "console"
	SinkFile    = "file"
	SinkNone    = "none"
)

// Config holds all geomkit configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Demo    DemoConfig    `yaml:"demo"`
}

// LoggingConfig selects the event sink injected into shapes.
type LoggingConfig struct {
	Sink string `yaml:"sink"` // console, file, none
	File string `yaml:"file"` // log file path when sink is "file"
}

// DemoConfig drives the batch measurement demo.
type DemoConfig struct {
	Parallel bool `yaml:"parallel"`
	Workers  int  `yaml:"workers"`
}

// DefaultConfig returns the configuration used when no file is present:
// console sink, default log file path, four batch workers.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Sink: SinkConsole,
			File: logging.DefaultLogFile,
		},
		Demo: DemoConfig{
			Parallel: true,
			Workers:  4,
		},
	}
}

// Load reads the config file at path, applies env overrides, and validates.
// A missing file is not an error: defaults (plus overrides) are returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as YAML, creating parent directories as needed.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// applyEnvOverrides lets the environment win over the file:
// GEOMKIT_LOG_SINK, GEOMKIT_LOG_FILE, GEOMKIT_WORKERS.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("GEOMKIT_LOG_SINK"); v != "" {
		c.Logging.Sink = v
	}
	if v := os.Getenv("GEOMKIT_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
	if v := os.Getenv("GEOMKIT_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Demo.Workers = n
		}
	}
}

// Validate rejects unknown sinks and nonsensical worker counts.
func (c *Config) Validate() error {
	switch c.Logging.Sink {
	case SinkConsole, SinkFile, SinkNone:
	default:
		return fmt.Errorf("unknown logging sink %q (want console, file, or none)", c.Logging.Sink)
	}
	if c.Logging.Sink == SinkFile && c.Logging.File == "" {
		return fmt.Errorf("logging sink %q requires a file path", SinkFile)
	}
	if c.Demo.Workers < 1 {
		return fmt.Errorf("demo workers must be at least 1, got %d", c.Demo.Workers)
	}
	return nil
}

// NewShapeLogger builds the event sink shapes are constructed with. The
// caller owns the returned closer (nil for sinks without resources).
func NewShapeLogger(cfg LoggingConfig) (logging.Logger, func() error, error) {
	switch cfg.Sink {
	case SinkFile:
		fl, err := logging.NewFileLogger(cfg.File)
		if err != nil {
			return nil, nil, err
		}
		return fl, fl.Close, nil
	case SinkNone:
		return logging.NewNopLogger(), nil, nil
	default:
		return logging.NewConsoleLogger(), nil, nil
	}
}
