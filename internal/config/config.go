// Package config loads retrofx render settings and custom style presets
// from a YAML file.
//
// A minimal file:
//
//	render:
//	  mode: full
//	  bit_depth: 16
//	  output_dir: out
//	log:
//	  level: info
//	  format: text
//	presets:
//	  walkie_talkie:
//	    description: Handheld radio
//	    cutoff_freq: 2800
//	    bandpass: true
//	    bandpass_range: [400, 2800]
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	retrofx "github.com/tphakala/go-retro-voice"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a configuration value out of range.
var ErrInvalidConfig = errors.New("invalid retrofx configuration")

// Config is the root of the YAML document.
type Config struct {
	Render  RenderConfig              `yaml:"render"`
	Log     LogConfig                 `yaml:"log"`
	Presets map[string]map[string]any `yaml:"presets,omitempty"`
}

// RenderConfig holds batch render defaults. CLI flags override them.
type RenderConfig struct {
	Mode      string   `yaml:"mode"`
	BitDepth  int      `yaml:"bit_depth"`
	Workers   int      `yaml:"workers"`
	OutputDir string   `yaml:"output_dir"`
	Seed      uint64   `yaml:"seed"`
	Styles    []string `yaml:"styles,omitempty"`
}

// LogConfig selects the logrus level and formatter.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Mode:      DefaultMode,
			BitDepth:  DefaultBitDepth,
			Workers:   runtime.NumCPU(),
			OutputDir: DefaultOutputDir,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: FormatText,
		},
	}
}

// Load reads path over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML document over the defaults and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks render and log settings. Preset records are checked
// when converted by CustomPresets.
func (c *Config) Validate() error {
	if _, err := retrofx.ParseMode(c.Render.Mode); err != nil {
		return fmt.Errorf("%w: render.mode: %w", ErrInvalidConfig, err)
	}
	switch c.Render.BitDepth {
	case 8, 16, 24, 32:
	default:
		return fmt.Errorf("%w: render.bit_depth must be 8, 16, 24 or 32, got %d", ErrInvalidConfig, c.Render.BitDepth)
	}
	if c.Render.Workers < 0 {
		return fmt.Errorf("%w: render.workers must not be negative", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.Render.OutputDir) == "" {
		return fmt.Errorf("%w: render.output_dir is empty", ErrInvalidConfig)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}
	if f := strings.ToLower(c.Log.Format); f != FormatText && f != FormatJSON {
		return fmt.Errorf("%w: log.format must be %q or %q, got %q", ErrInvalidConfig, FormatText, FormatJSON, c.Log.Format)
	}
	return nil
}

// Mode returns the parsed render mode.
func (c *Config) Mode() retrofx.Mode {
	m, err := retrofx.ParseMode(c.Render.Mode)
	if err != nil {
		return retrofx.ModeFull
	}
	return m
}

// CustomPresets converts the presets section into typed presets sorted by
// identifier. Each record is merged over the custom preset defaults, so a
// file only lists the keys it changes.
func (c *Config) CustomPresets() ([]retrofx.StylePreset, error) {
	ids := make([]string, 0, len(c.Presets))
	for id := range c.Presets {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	presets := make([]retrofx.StylePreset, 0, len(ids))
	for _, id := range ids {
		p, err := retrofx.BuildCustom(id, "", c.Presets[id])
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", id, err)
		}
		presets = append(presets, p)
	}
	return presets, nil
}

// Registry returns the built-in registry extended with the custom presets.
// A nil logger means the logrus standard logger.
func (c *Config) Registry(logger *logrus.Logger) (*retrofx.Registry, error) {
	custom, err := c.CustomPresets()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	base := retrofx.DefaultRegistry(retrofx.WithLogger(logger))
	if len(custom) == 0 {
		return base, nil
	}
	return base.With(custom...)
}

// Logger returns a logrus logger configured from the log section.
func (c *Config) Logger() (*logrus.Logger, error) {
	logger := logrus.New()
	if err := c.ConfigureLogger(logger); err != nil {
		return nil, err
	}
	return logger, nil
}

// ConfigureLogger applies the log section to an existing logger.
func (c *Config) ConfigureLogger(logger *logrus.Logger) error {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}
	logger.SetLevel(level)

	switch strings.ToLower(c.Log.Format) {
	case FormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{})
	case FormatText:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}
