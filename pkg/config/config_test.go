package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdlive/pkg/config"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	assert.Equal(t, 300, cfg.DebounceMS)
	assert.Equal(t, config.FlavorGFM, cfg.Flavor)
	assert.Equal(t, config.ColorAuto, cfg.Color)
	assert.Empty(t, cfg.ExportTitle)
	require.NoError(t, cfg.Validate())
}

func TestDebounce(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.DebounceMS = 150
	assert.Equal(t, 150*time.Millisecond, cfg.Debounce())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{"negative debounce", func(c *config.Config) { c.DebounceMS = -1 }, "debounce_ms"},
		{"zero debounce is allowed", func(c *config.Config) { c.DebounceMS = 0 }, ""},
		{"bad color", func(c *config.Config) { c.Color = "sometimes" }, "color"},
		{"bad flavor", func(c *config.Config) { c.Flavor = "pandoc" }, "flavor"},
		{"commonmark flavor", func(c *config.Config) { c.Flavor = config.FlavorCommonMark }, ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.NewConfig()
			testCase.mutate(cfg)

			err := cfg.Validate()
			if testCase.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), testCase.wantErr)
		})
	}
}

func TestColorModeIsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, config.ColorAuto.IsValid())
	assert.True(t, config.ColorAlways.IsValid())
	assert.True(t, config.ColorNever.IsValid())
	assert.False(t, config.ColorMode("").IsValid())
	assert.False(t, config.ColorMode("yes").IsValid())
}
