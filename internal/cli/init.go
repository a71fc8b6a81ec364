package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdlive/internal/logging"
	"github.com/yaklabco/mdlive/pkg/config"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new mdlive configuration file",
		Long: `Create a new .mdlive.yml configuration file in the current directory
with sensible, commented defaults.

Examples:
  mdlive init                     Create .mdlive.yml
  mdlive init --output custom.yml Write to a custom file path`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .mdlive.yml)")

	return cmd
}

func runInit(flags *initFlags) error {
	outputPath := flags.output
	if outputPath == "" {
		outputPath = ".mdlive.yml"
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil && !flags.force {
		return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
	}

	if err := os.WriteFile(absPath, []byte(config.StarterTemplate), configFilePermissions); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	logging.NewInteractive().Info("created configuration", logging.FieldPath, outputPath)
	return nil
}
