// Package config defines core configuration types for mdlive.
// These types are pure data structures with no dependency on any config
// loader.
package config

import (
	"fmt"
	"time"
)

// ColorMode controls colorized terminal output.
type ColorMode string

// Color modes.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid reports whether the color mode is one of the known values.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	}
	return false
}

// Flavor selects the markdown flavor for the export path.
type Flavor string

// Export flavors.
const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// Config is the resolved mdlive configuration.
type Config struct {
	// DebounceMS is the quiet period, in milliseconds, before a locally
	// authored change is reported to the host document store.
	DebounceMS int `yaml:"debounce_ms"`

	// Flavor is the markdown flavor used when exporting to final HTML.
	Flavor Flavor `yaml:"flavor"`

	// Color controls colorized terminal output.
	Color ColorMode `yaml:"color"`

	// ExportTitle is the page title for standalone HTML exports; empty
	// means the document's first heading, falling back to the file name.
	ExportTitle string `yaml:"export_title"`
}

// NewConfig returns the default configuration.
func NewConfig() *Config {
	return &Config{
		DebounceMS: 300,
		Flavor:     FlavorGFM,
		Color:      ColorAuto,
	}
}

// Debounce returns the debounce interval as a duration.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.DebounceMS < 0 {
		return fmt.Errorf("debounce_ms must be non-negative, got %d", c.DebounceMS)
	}
	if !c.Color.IsValid() {
		return fmt.Errorf("color must be auto, always, or never, got %q", c.Color)
	}
	switch c.Flavor {
	case FlavorCommonMark, FlavorGFM:
	default:
		return fmt.Errorf("flavor must be commonmark or gfm, got %q", c.Flavor)
	}
	return nil
}
