package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdlive/internal/ui/pretty"
	"github.com/yaklabco/mdlive/pkg/render"
)

func newPreviewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Preview the styled surface in the terminal",
		Long: `Preview a document's styled surface as ANSI terminal output.

This shows the same classification and inline styling the live surface
would use: dimmed syntax markers, weighted headings, quoted runs, and
fenced code, one terminal line per document line.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runPreview,
	}

	return cmd
}

func runPreview(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	content, _, err := readInput(ctx, args)
	if err != nil {
		return err
	}

	surface := render.Render(string(content))
	styles := pretty.NewStyles(pretty.ColorEnabled(colorMode(cmd, cfg), os.Stdout))
	width := pretty.TerminalWidth(os.Stdout)

	_, err = os.Stdout.WriteString(styles.FormatSurface(surface, width))
	return err
}
