package config

import (
	"os"
	"strconv"
)

// Environment variables that override the file.
const (
	EnvTrigger    = "STROKEMAP_TRIGGER"
	EnvNoiseRatio = "STROKEMAP_NOISE_RATIO"
	EnvLogLevel   = "STROKEMAP_LOG_LEVEL"
)

// LookupFunc reports the value of an environment variable.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides settings from the process environment and validates
// the result.
func (c *Config) ApplyEnv() error {
	return c.ApplyEnvFrom(os.LookupEnv)
}

// ApplyEnvFrom overrides settings using lookup. Empty values are ignored.
func (c *Config) ApplyEnvFrom(lookup LookupFunc) error {
	if v, ok := lookup(EnvTrigger); ok && v != "" {
		c.Gesture.Trigger = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookup(EnvNoiseRatio); ok && v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return ValidationErrors{{Path: "gesture.noise_ratio", Message: "not a number", Value: v}}
		}
		c.Gesture.NoiseRatio = r
	}
	return c.Validate()
}
