// Package cli provides the Cobra command structure for mdlive.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdlive/internal/configloader"
	"github.com/yaklabco/mdlive/internal/logging"
	"github.com/yaklabco/mdlive/pkg/config"
	"github.com/yaklabco/mdlive/pkg/fsutil"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root mdlive command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "mdlive",
		Short: "A live markdown styling engine",
		Long: `mdlive renders markdown to a styled, losslessly-editable surface.

The surface keeps every raw character visible: syntax markers are dimmed
rather than hidden, so extracted text always round-trips to the original
document. mdlive can also export final HTML, list a document's headings,
and preview the styled surface in the terminal.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
			cmd.SetContext(logging.WithLogger(cmd.Context(), logging.Default()))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newTOCCommand())
	rootCmd.AddCommand(newPreviewCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}

// loadConfig resolves configuration for a command, honoring the root
// command's --config flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	result, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath: configPath,
	})
	if err != nil {
		return nil, err
	}

	if len(result.LoadedFrom) > 0 {
		logging.FromContext(ctx).Debug("loaded configuration",
			logging.FieldPath, result.LoadedFrom)
	}
	return result.Config, nil
}

// colorMode resolves the effective color mode from the --color flag and
// configuration, flag winning when set explicitly.
func colorMode(cmd *cobra.Command, cfg *config.Config) string {
	mode, err := cmd.Flags().GetString("color")
	if err != nil || mode == "" {
		return string(cfg.Color)
	}
	if !cmd.Flags().Changed("color") && cfg.Color != "" {
		return string(cfg.Color)
	}
	return mode
}

// readInput returns the document bytes for a command argument. The argument
// "-" (or none) reads stdin.
func readInput(ctx context.Context, args []string) ([]byte, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return data, "", nil
	}

	data, err := fsutil.ReadFile(ctx, args[0])
	if err != nil {
		return nil, "", err
	}
	return data, args[0], nil
}

// writeOutput writes result to the --output path, or stdout when empty.
// File writes are atomic so a crash never leaves a half-written artifact.
func writeOutput(ctx context.Context, outputPath string, result []byte) error {
	if outputPath == "" {
		_, err := os.Stdout.Write(result)
		return err
	}
	return fsutil.WriteAtomic(ctx, outputPath, result, 0)
}
