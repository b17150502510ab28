// Package config holds runtime configuration: defaults, CLI flag parsing,
// and validation.
package config

import (
	"errors"
	"fmt"

	"presetconv/internal/preset"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to the
// packages that need it.
type Config struct {
	// Input is the file or directory to scan for .mp4 inputs.
	Input string
	// PresetName selects the conversion preset from the catalog.
	PresetName string

	// ListPresets prints the catalog and exits instead of converting.
	ListPresets bool

	// Behavior flags.
	DryRun       bool
	SkipExisting bool // Default: true. Cleared by --force.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode
	LogFile   string // Optional log file path.
}

// DefaultConfig returns a Config with all defaults applied. Used as the
// base before [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		PresetName:   preset.Default().Name,
		SkipExisting: true,
		ColorMode:    ColorAuto,
	}
}

// Validate checks that the preset name resolves and that an input path was
// given. List-presets mode needs neither.
func (c *Config) Validate() error {
	if c.ListPresets {
		return nil
	}
	if _, ok := preset.Lookup(c.PresetName); !ok {
		return fmt.Errorf("unknown preset %q (see --list-presets)", c.PresetName)
	}
	if c.Input == "" {
		return errors.New("need an input file or directory (-i)")
	}
	return nil
}

// Preset returns the resolved preset. Only valid after Validate succeeds.
func (c *Config) Preset() preset.Preset {
	p, _ := preset.Lookup(c.PresetName)
	return p
}
