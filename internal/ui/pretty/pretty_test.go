package pretty_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdlive/internal/ui/pretty"
	"github.com/yaklabco/mdlive/pkg/document"
	"github.com/yaklabco/mdlive/pkg/render"
)

func TestColorEnabled(t *testing.T) {
	t.Run("always", func(t *testing.T) {
		assert.True(t, pretty.ColorEnabled("always", &bytes.Buffer{}))
	})

	t.Run("never", func(t *testing.T) {
		assert.False(t, pretty.ColorEnabled("never", &bytes.Buffer{}))
	})

	t.Run("auto with non-file writer", func(t *testing.T) {
		assert.False(t, pretty.ColorEnabled("auto", &bytes.Buffer{}))
	})

	t.Run("auto honors NO_COLOR", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.False(t, pretty.ColorEnabled("auto", &bytes.Buffer{}))
	})
}

func TestFormatSurfacePlain(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	surface := render.Render("# Title\n\nbody *em* text\n- item")
	out := styles.FormatSurface(surface, 40)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5, "one terminal line per document line plus trailing newline")
	assert.Equal(t, "# Title", lines[0])
	assert.Equal(t, "", lines[1], "placeholder decorations never print")
	assert.Equal(t, "body *em* text", lines[2])
	assert.Equal(t, "- item", lines[3])
}

func TestFormatSurfaceRule(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	out := styles.FormatSurface(render.Render("---"), 10)
	assert.Equal(t, strings.Repeat("─", 10)+"\n", out)
}

func TestFormatSurfaceCodeVerbatim(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	out := styles.FormatSurface(render.Render("```go\nfmt.Println(\"hi\")\n```"), 80)
	assert.Contains(t, out, "```go\n")
	assert.Contains(t, out, "fmt.Println(\"hi\")\n")
}

func TestFormatSurfaceColorized(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(true)
	out := styles.FormatSurface(render.Render("# Title"), 80)

	// Styled output still carries the text; exact escape sequences depend on
	// the terminal profile.
	assert.Contains(t, out, "Title")
}

func TestFormatSurfaceDefaultWidth(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	out := styles.FormatSurface(render.Render("---"), 0)
	assert.Equal(t, strings.Repeat("─", 80)+"\n", out)
}

func TestFormatTOC(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	t.Run("indents by level and shows one-based lines", func(t *testing.T) {
		t.Parallel()

		out := styles.FormatTOC([]document.Heading{
			{Level: 1, Text: "One", Line: 0},
			{Level: 2, Text: "Two", Line: 4},
			{Level: 3, Text: "Three", Line: 9},
		})

		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "• One (line 1)", lines[0])
		assert.Equal(t, "  • Two (line 5)", lines[1])
		assert.Equal(t, "    • Three (line 10)", lines[2])
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "no headings\n", styles.FormatTOC(nil))
	})
}
