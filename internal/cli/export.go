package cli

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdlive/pkg/document"
	"github.com/yaklabco/mdlive/pkg/export"
)

type exportFlags struct {
	output     string
	flavor     string
	title      string
	standalone bool
}

func newExportCommand() *cobra.Command {
	flags := &exportFlags{}

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export a document to final HTML",
		Long: `Export a markdown document to final HTML via goldmark.

Unlike "render", this is one-way publishing output: syntax markers are
consumed, not styled, and there is no extraction back to markdown.

Examples:
  mdlive export README.md                    # HTML fragment to stdout
  mdlive export doc.md --standalone -o doc.html
  mdlive export doc.md --flavor commonmark`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file path (default: stdout)")
	cmd.Flags().StringVar(&flags.flavor, "flavor", "", "markdown flavor: gfm or commonmark")
	cmd.Flags().StringVar(&flags.title, "title", "", "page title for standalone export")
	cmd.Flags().BoolVar(&flags.standalone, "standalone", false, "wrap output in a full HTML page")

	return cmd
}

func runExport(cmd *cobra.Command, args []string, flags *exportFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	content, path, err := readInput(ctx, args)
	if err != nil {
		return err
	}

	flavor := flags.flavor
	if flavor == "" {
		flavor = string(cfg.Flavor)
	}
	exporter := export.New(flavor)

	if !flags.standalone {
		result, err := exporter.Export(ctx, content)
		if err != nil {
			return err
		}
		return writeOutput(ctx, flags.output, result)
	}

	title := flags.title
	if title == "" {
		title = cfg.ExportTitle
	}
	if title == "" {
		title = documentTitle(string(content), path)
	}

	result, err := exporter.ExportDocument(ctx, title, content)
	if err != nil {
		return err
	}
	return writeOutput(ctx, flags.output, result)
}

// documentTitle picks a page title: the first heading, else the file name,
// else a fixed fallback for stdin input.
func documentTitle(content, path string) string {
	doc := document.FromText(content)
	if headings := doc.Headings(); len(headings) > 0 {
		return headings[0].Text
	}
	if path != "" {
		base := filepath.Base(path)
		return strings.TrimSuffix(base, filepath.Ext(base))
	}
	return "Document"
}
