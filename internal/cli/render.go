package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdlive/internal/logging"
	"github.com/yaklabco/mdlive/pkg/render"
)

type renderFlags struct {
	output string
}

func newRenderCommand() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a document to live-surface markup",
		Long: `Render a markdown document to the styled surface markup.

The surface markup is lossless: every raw character of the document appears
in it, with syntax markers wrapped in dimming spans instead of being
consumed. It is the markup an editing surface would host directly.

Examples:
  mdlive render README.md          # Markup to stdout
  mdlive render - < notes.md       # Read from stdin
  mdlive render doc.md -o doc.html # Write atomically to a file`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file path (default: stdout)")

	return cmd
}

func runRender(cmd *cobra.Command, args []string, flags *renderFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	content, path, err := readInput(ctx, args)
	if err != nil {
		return err
	}

	surface := render.Render(string(content))
	logging.FromContext(ctx).Debug("rendered surface",
		logging.FieldPath, path,
		logging.FieldLines, len(surface.Lines),
	)

	return writeOutput(ctx, flags.output, []byte(surface.HTML()))
}
