package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/dshills/strokemap/internal/input/mouse"
)

// MaxNoiseRatio is the exclusive upper bound for gesture.noise_ratio.
const MaxNoiseRatio = 0.5

var logLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks every setting and returns ValidationErrors listing all
// problems, or nil.
func (c *Config) Validate() error {
	var errs ValidationErrors
	add := func(path, msg string, value any) {
		errs = append(errs, &ValidationError{Path: path, Message: msg, Value: value})
	}

	if _, err := mouse.ParseTrigger(c.Gesture.Trigger); err != nil {
		add("gesture.trigger", "must be rightclick, ctrl or shift", c.Gesture.Trigger)
	}
	if r := c.Gesture.NoiseRatio; r <= 0 || r >= MaxNoiseRatio {
		add("gesture.noise_ratio", fmt.Sprintf("must be in (0, %v)", MaxNoiseRatio), r)
	}
	if !logLevels[strings.ToLower(c.Logging.Level)] {
		add("logging.level", "must be debug, info, warn or error", c.Logging.Level)
	}
	if c.Scripts.Timeout != "" {
		if d, err := time.ParseDuration(c.Scripts.Timeout); err != nil || d < 0 {
			add("scripts.timeout", "must be a non-negative duration", c.Scripts.Timeout)
		}
	}
	for i, p := range c.Scripts.Paths {
		if strings.TrimSpace(p) == "" {
			add(fmt.Sprintf("scripts.paths[%d]", i), "must not be empty", p)
		}
	}

	seen := make(map[uint64]int)
	for i, b := range c.Bindings {
		path := fmt.Sprintf("bindings[%d]", i)
		combo, err := b.Combo()
		if err != nil {
			add(path+".gesture", err.Error(), b.Gesture)
			continue
		}
		if combo.IsEmpty() {
			add(path+".gesture", "must not be empty", b.Gesture)
			continue
		}
		if b.Action == "" {
			add(path+".action", "is required", b.Action)
		}
		if prev, ok := seen[combo.Code()]; ok && !b.Overwrite {
			add(path+".gesture", fmt.Sprintf("%s already bound by bindings[%d]", combo.Words(), prev), b.Gesture)
		}
		seen[combo.Code()] = i
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
