package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdlive/pkg/cursor"
	"github.com/yaklabco/mdlive/pkg/document"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text passes through", "hello", "hello"},
		{"zero-width space removed", "he\u200bllo", "hello"},
		{"bom removed", "\ufeffhello", "hello"},
		{"carriage returns removed", "a\r\nb\r\n", "a\nb\n"},
		{"invalid utf8 dropped", "ok\xc3\x28ok", "ok(ok"},
		{"empty stays empty", "", ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, document.Normalize(testCase.input))
		})
	}
}

func TestDocumentTextRoundTrip(t *testing.T) {
	t.Parallel()

	texts := []string{
		"",
		"one line",
		"a\nb\nc",
		"trailing newline\n",
		"\n\n",
	}
	for _, text := range texts {
		doc := document.FromText(text)
		assert.Equal(t, text, doc.Text())
	}
}

func TestDocumentLines(t *testing.T) {
	t.Parallel()

	doc := document.FromText("a\nb")
	require.Equal(t, 2, doc.LineCount())

	lines := doc.Lines()
	lines[0] = "tampered"
	got, ok := doc.Line(0)
	require.True(t, ok)
	assert.Equal(t, "a", got, "Lines returns a copy")

	_, ok = doc.Line(2)
	assert.False(t, ok)
	_, ok = doc.Line(-1)
	assert.False(t, ok)

	doc.SetLines([]string{"x", "y", "z"})
	assert.Equal(t, "x\ny\nz", doc.Text())
}

func TestHeadings(t *testing.T) {
	t.Parallel()

	doc := document.FromText("# One\n\ntext\n## Two\n```\n# not a heading\n```\n### Three")
	headings := doc.Headings()
	require.Len(t, headings, 3)

	assert.Equal(t, document.Heading{Level: 1, Text: "One", ID: "heading-0", Line: 0}, headings[0])
	assert.Equal(t, document.Heading{Level: 2, Text: "Two", ID: "heading-1", Line: 3}, headings[1])
	assert.Equal(t, document.Heading{Level: 3, Text: "Three", ID: "heading-2", Line: 7}, headings[2])
}

func TestHeadingsNone(t *testing.T) {
	t.Parallel()

	assert.Empty(t, document.FromText("just\nprose").Headings())
}

func TestPositionForOffset(t *testing.T) {
	t.Parallel()

	// Bytes: "aé" is 3 bytes, newline at 3, second line starts at 4.
	doc := document.FromText("aé\nbcd")

	tests := []struct {
		name   string
		offset int
		want   cursor.Position
	}{
		{"start", 0, cursor.Position{Line: 0, Char: 0}},
		{"after multibyte rune", 3, cursor.Position{Line: 0, Char: 2}},
		{"second line start", 4, cursor.Position{Line: 1, Char: 0}},
		{"second line middle", 6, cursor.Position{Line: 1, Char: 2}},
		{"past the end clamps", 99, cursor.Position{Line: 1, Char: 3}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, ok := doc.PositionForOffset(testCase.offset)
			require.True(t, ok)
			assert.Equal(t, testCase.want, got)
		})
	}

	t.Run("negative offset", func(t *testing.T) {
		t.Parallel()

		_, ok := doc.PositionForOffset(-1)
		assert.False(t, ok)
	})
}

func TestOffsetForPosition(t *testing.T) {
	t.Parallel()

	doc := document.FromText("aé\nbcd")

	tests := []struct {
		name string
		pos  cursor.Position
		want int
	}{
		{"start", cursor.Position{Line: 0, Char: 0}, 0},
		{"multibyte rune counts its bytes", cursor.Position{Line: 0, Char: 2}, 3},
		{"second line", cursor.Position{Line: 1, Char: 1}, 5},
		{"char overflow clamps to line end", cursor.Position{Line: 0, Char: 50}, 3},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, ok := doc.OffsetForPosition(testCase.pos)
			require.True(t, ok)
			assert.Equal(t, testCase.want, got)
		})
	}

	t.Run("missing line", func(t *testing.T) {
		t.Parallel()

		_, ok := doc.OffsetForPosition(cursor.Position{Line: 5})
		assert.False(t, ok)
	})
}

func TestOffsetPositionRoundTrip(t *testing.T) {
	t.Parallel()

	doc := document.FromText("first\nsécond\nthird")
	text := doc.Text()
	for offset := 0; offset <= len(text); offset++ {
		if offset < len(text) && text[offset]&0xC0 == 0x80 {
			continue // not a rune boundary
		}
		pos, ok := doc.PositionForOffset(offset)
		require.True(t, ok)
		back, ok := doc.OffsetForPosition(pos)
		require.True(t, ok)
		assert.Equal(t, offset, back, "offset %d", offset)
	}
}
