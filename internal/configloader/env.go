package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yaklabco/mdlive/pkg/config"
)

// envVarPrefix is the prefix for all mdlive environment variables.
const envVarPrefix = "MDLIVE_"

// LoadFromEnv applies environment variable overrides to the configuration.
// Variables are prefixed with MDLIVE_ (e.g., MDLIVE_DEBOUNCE_MS).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if v := os.Getenv(envVarPrefix + "DEBOUNCE_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %sDEBOUNCE_MS %q: %w", envVarPrefix, v, err)
		}
		cfg.DebounceMS = ms
	}
	if v := os.Getenv(envVarPrefix + "FLAVOR"); v != "" {
		cfg.Flavor = config.Flavor(v)
	}
	if v := os.Getenv(envVarPrefix + "COLOR"); v != "" {
		cfg.Color = config.ColorMode(v)
	}
	if v := os.Getenv(envVarPrefix + "EXPORT_TITLE"); v != "" {
		cfg.ExportTitle = v
	}
	return nil
}
