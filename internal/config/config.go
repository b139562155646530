package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dshills/strokemap/internal/input/classify"
	"github.com/dshills/strokemap/internal/input/gesture"
	"github.com/dshills/strokemap/internal/input/mouse"
)

// Format is a configuration file encoding.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFor returns the format implied by the extension of path.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// Config is the complete strokemap configuration.
type Config struct {
	Gesture  GestureConfig   `toml:"gesture" yaml:"gesture"`
	Logging  LoggingConfig   `toml:"logging" yaml:"logging"`
	Scripts  ScriptsConfig   `toml:"scripts" yaml:"scripts"`
	Bindings []BindingConfig `toml:"bindings" yaml:"bindings"`

	// path is the file the configuration was loaded from.
	path string
}

// GestureConfig controls recognition.
type GestureConfig struct {
	// Trigger names the press that starts a gesture.
	Trigger string `toml:"trigger" yaml:"trigger"`

	// NoiseRatio drops segments shorter than this fraction of the path.
	NoiseRatio float64 `toml:"noise_ratio" yaml:"noise_ratio"`
}

// LoggingConfig controls the logger.
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Prefix string `toml:"prefix" yaml:"prefix"`
}

// ScriptsConfig lists Lua gesture scripts.
type ScriptsConfig struct {
	Paths []string `toml:"paths" yaml:"paths"`

	// Timeout is a Go duration string bounding each script call.
	Timeout string `toml:"timeout" yaml:"timeout"`
}

// BindingConfig binds a gesture to a named action.
type BindingConfig struct {
	Gesture     string `toml:"gesture" yaml:"gesture"`
	Action      string `toml:"action" yaml:"action"`
	Description string `toml:"description,omitempty" yaml:"description,omitempty"`
	Overwrite   bool   `toml:"overwrite,omitempty" yaml:"overwrite,omitempty"`
}

// Spec returns the binding's gesture as a spec. Strings starting with
// "0x" are codes; everything else is text.
func (b BindingConfig) Spec() (gesture.Spec, error) {
	s := strings.TrimSpace(b.Gesture)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		n, err := strconv.ParseUint(s[2:], 16, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", gesture.ErrInvalidCode, b.Gesture)
		}
		return gesture.Code(n), nil
	}
	return gesture.Text(s), nil
}

// Combo resolves the binding's gesture.
func (b BindingConfig) Combo() (gesture.Combo, error) {
	spec, err := b.Spec()
	if err != nil {
		return gesture.Empty, err
	}
	return gesture.Resolve(spec)
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Gesture: GestureConfig{
			Trigger:    mouse.TriggerRightClick.Name,
			NoiseRatio: classify.DefaultNoiseRatio,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Prefix: "strokemap",
		},
		Scripts: ScriptsConfig{
			Timeout: "2s",
		},
	}
}

// Load reads, decodes and validates the file at path. Settings missing
// from the file keep their defaults.
func Load(path string) (*Config, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg, err := Parse(path, data, format)
	if err != nil {
		return nil, err
	}
	cfg.path = path
	return cfg, nil
}

// Parse decodes data over the defaults and validates the result.
// source names the data in errors.
func Parse(source string, data []byte, format Format) (*Config, error) {
	cfg := Default()

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, cfg); err != nil {
			pe := &ParseError{Path: source, Message: err.Error(), Err: err}
			var derr *toml.DecodeError
			if errors.As(err, &derr) {
				pe.Line, _ = derr.Position()
			}
			return nil, pe
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, &ParseError{Path: source, Message: err.Error(), Err: err}
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Path returns the file the configuration was loaded from, if any.
func (c *Config) Path() string {
	return c.path
}

// Trigger returns the configured trigger.
func (c *Config) Trigger() (mouse.Trigger, error) {
	return mouse.ParseTrigger(c.Gesture.Trigger)
}

// ScriptTimeout returns the parsed script timeout. Empty means no limit.
func (c *Config) ScriptTimeout() (time.Duration, error) {
	if c.Scripts.Timeout == "" {
		return 0, nil
	}
	return time.ParseDuration(c.Scripts.Timeout)
}

// ScriptPaths returns the script paths with relative entries resolved
// against the configuration file's directory.
func (c *Config) ScriptPaths() []string {
	base := ""
	if c.path != "" {
		base = filepath.Dir(c.path)
	}
	paths := make([]string, len(c.Scripts.Paths))
	for i, p := range c.Scripts.Paths {
		if base != "" && !filepath.IsAbs(p) {
			p = filepath.Join(base, p)
		}
		paths[i] = p
	}
	return paths
}

// Encode writes the configuration in the given format.
func (c *Config) Encode(format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		return toml.Marshal(c)
	case FormatYAML:
		return yaml.Marshal(c)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}
