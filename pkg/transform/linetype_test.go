package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdlive/pkg/classify"
	"github.com/yaklabco/mdlive/pkg/transform"
)

func TestTargetMarker(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target transform.Target
		want   string
	}{
		{"heading 1", transform.Target{Kind: classify.KindHeading, Level: 1}, "# "},
		{"heading 6", transform.Target{Kind: classify.KindHeading, Level: 6}, "###### "},
		{"heading level clamps low", transform.Target{Kind: classify.KindHeading, Level: 0}, "# "},
		{"heading level clamps high", transform.Target{Kind: classify.KindHeading, Level: 9}, "###### "},
		{"bullet", transform.Target{Kind: classify.KindBulletItem}, "- "},
		{"ordered", transform.Target{Kind: classify.KindOrderedItem}, "1. "},
		{"task", transform.Target{Kind: classify.KindTaskItem}, "- [ ] "},
		{"quote", transform.Target{Kind: classify.KindBlockquote}, "> "},
		{"definition", transform.Target{Kind: classify.KindDefinition}, ": "},
		{"paragraph has none", transform.Target{Kind: classify.KindParagraph}, ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, testCase.target.Marker())
		})
	}
}

func TestStripMarker(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line    string
		marker  string
		content string
	}{
		{"## Heading", "## ", "Heading"},
		{"- item", "- ", "item"},
		{"* item", "* ", "item"},
		{"3. item", "3. ", "item"},
		{"- [x] done", "- [x] ", "done"},
		{"* [ ] open task", "* [ ] ", "open task"},
		{"> [!NOTE]", "> [!NOTE]", ""},
		{"> quoted", "> ", "quoted"},
		{": meaning", ": ", "meaning"},
		{"[^n]: note", "[^n]: ", "note"},
		{"plain text", "", "plain text"},
		{"---", "", "---"},
		{"| a | b |", "", "| a | b |"},
	}

	for _, testCase := range tests {
		t.Run(testCase.line, func(t *testing.T) {
			t.Parallel()

			marker, content := transform.StripMarker(testCase.line)
			assert.Equal(t, testCase.marker, marker)
			assert.Equal(t, testCase.content, content)
			assert.Equal(t, testCase.line, marker+content, "strip must be lossless")
		})
	}
}

func TestApplyLineType(t *testing.T) {
	t.Parallel()

	t.Run("converts between marked types", func(t *testing.T) {
		t.Parallel()

		lines := []string{"- item"}
		out := transform.ApplyLineType(lines, 0, transform.Target{Kind: classify.KindHeading, Level: 2})
		assert.Equal(t, []string{"## item"}, out)
		assert.Equal(t, []string{"- item"}, lines, "input slice stays untouched")
	})

	t.Run("converts to paragraph by stripping", func(t *testing.T) {
		t.Parallel()

		out := transform.ApplyLineType([]string{"> quoted"}, 0, transform.Target{Kind: classify.KindParagraph})
		assert.Equal(t, []string{"quoted"}, out)
	})

	t.Run("converting to code expands to a fence", func(t *testing.T) {
		t.Parallel()

		out := transform.ApplyLineType(
			[]string{"before", "- item", "after"},
			1,
			transform.Target{Kind: classify.KindCodeContent},
		)
		require.Equal(t, []string{"before", "```", "item", "```", "after"}, out)
	})

	t.Run("task item keeps its text through conversion", func(t *testing.T) {
		t.Parallel()

		out := transform.ApplyLineType([]string{"- [x] done"}, 0, transform.Target{Kind: classify.KindCodeContent})
		assert.Equal(t, []string{"```", "done", "```"}, out)

		out = transform.ApplyLineType([]string{"- [x] done"}, 0, transform.Target{Kind: classify.KindHeading, Level: 1})
		assert.Equal(t, []string{"# done"}, out)
	})

	t.Run("out of range is a no-op", func(t *testing.T) {
		t.Parallel()

		lines := []string{"a", "b"}
		assert.Equal(t, lines, transform.ApplyLineType(lines, -1, transform.Target{Kind: classify.KindBulletItem}))
		assert.Equal(t, lines, transform.ApplyLineType(lines, 2, transform.Target{Kind: classify.KindBulletItem}))
	})

	t.Run("idempotent on the same target", func(t *testing.T) {
		t.Parallel()

		once := transform.ApplyLineType([]string{"text"}, 0, transform.Target{Kind: classify.KindBlockquote})
		twice := transform.ApplyLineType(once, 0, transform.Target{Kind: classify.KindBlockquote})
		assert.Equal(t, once, twice)
	})
}
