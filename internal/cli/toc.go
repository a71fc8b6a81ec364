package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdlive/internal/ui/pretty"
	"github.com/yaklabco/mdlive/pkg/document"
)

func newTOCCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toc [file]",
		Short: "List a document's headings",
		Long: `List a document's headings as an indented table of contents.

Heading-shaped lines inside fenced code blocks are not headings and do not
appear. Line numbers are 1-based.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runTOC,
	}

	return cmd
}

func runTOC(cmd *cobra.Command, args []string) error {
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

	doc := document.FromText(string(content))
	styles := pretty.NewStyles(pretty.ColorEnabled(colorMode(cmd, cfg), os.Stdout))

	_, err = os.Stdout.WriteString(styles.FormatTOC(doc.Headings()))
	return err
}
