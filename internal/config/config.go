package config

import (
	"os"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	latex "github.com/eolymp/go-latex-preview"
)

// Config represents the application configuration.
type Config struct {
	Limits   LimitsConfig      `yaml:"limits"`
	Classes  map[string]string `yaml:"classes,omitempty"`
	Sanitize bool              `yaml:"sanitize"`
	Logging  LoggingConfig     `yaml:"logging"`
}

// LimitsConfig bounds the work done per document.
type LimitsConfig struct {
	MaxInputSize int `yaml:"max_input_size"`
	MaxNodes     int `yaml:"max_nodes"`
	MaxDepth     int `yaml:"max_depth"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console or json
}

// Default returns configuration used when no file is given.
func Default() (cfg Config) {
	cfg = Config{
		Limits: LimitsConfig{
			MaxInputSize: latex.DefaultMaxInputSize,
			MaxNodes:     latex.DefaultMaxNodes,
			MaxDepth:     latex.DefaultMaxDepth,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
	return cfg
}

// Load reads configuration from YAML file, values missing in the file keep their defaults.
func Load(path string) (cfg Config, err error) {
	cfg = Default()
	if path == "" {
		return cfg, err
	}

	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read config file: %s", path)
		return cfg, err
	}

	cfg, err = Parse(data)
	if err != nil {
		err = errors.Wrapf(err, "invalid config file: %s", path)
		return cfg, err
	}

	return cfg, err
}

// Parse decodes YAML configuration on top of defaults and validates it.
func Parse(data []byte) (cfg Config, err error) {
	cfg = Default()

	// an empty document (or one with comments only) decodes as null and would reset the defaults
	var doc any
	err = yaml.Unmarshal(data, &doc)
	if err != nil {
		err = errors.Wrap(err, "failed to parse config")
		return cfg, err
	}

	if doc == nil {
		err = cfg.Validate()
		return cfg, err
	}

	err = yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict())
	if err != nil {
		err = errors.Wrap(err, "failed to parse config")
		return cfg, err
	}

	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

// Validate checks configuration values.
func (c *Config) Validate() (err error) {
	if c.Limits.MaxInputSize < 0 || c.Limits.MaxNodes < 0 || c.Limits.MaxDepth < 0 {
		err = errors.New("limits must not be negative")
		return err
	}

	for key := range c.Classes {
		if _, ok := latex.DefaultClasses[key]; !ok {
			err = errors.Errorf("unknown element in classes: %s", key)
			return err
		}
	}

	_, err = zap.ParseAtomicLevel(c.Logging.Level)
	if err != nil {
		err = errors.Wrapf(err, "invalid logging level: %s", c.Logging.Level)
		return err
	}

	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		err = errors.Errorf("logging format must be console or json, got: %s", c.Logging.Format)
		return err
	}

	return err
}

// Options converts configuration into conversion options.
func (c *Config) Options(log *zap.Logger) (opts latex.Options) {
	opts = latex.Options{
		Limits: latex.Limits{
			MaxInputSize: c.Limits.MaxInputSize,
			MaxNodes:     c.Limits.MaxNodes,
			MaxDepth:     c.Limits.MaxDepth,
		},
		Classes:  c.Classes,
		Sanitize: c.Sanitize,
		Logger:   log,
	}
	return opts
}
