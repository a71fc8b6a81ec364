// Package transform mutates single lines of a document: converting a line's
// block type by rewriting its leading marker, and toggling inline formats
// around a selection.
//
// Marker stripping reuses the classifier's ordered line-type table, so a
// strip is always the exact inverse of classification and the two can never
// drift apart.
package transform

import (
	"strings"

	"github.com/yaklabco/mdlive/pkg/classify"
)

// Target names the block type a line is converted to.
type Target struct {
	Kind classify.Kind

	// Level applies to KindHeading (1..6); other kinds ignore it.
	Level int
}

// Marker returns the canonical leading marker for a target type. Paragraph
// and table-ish kinds have none.
func (t Target) Marker() string {
	switch t.Kind {
	case classify.KindHeading:
		level := t.Level
		if level < 1 {
			level = 1
		}
		if level > 6 {
			level = 6
		}
		return strings.Repeat("#", level) + " "
	case classify.KindBulletItem:
		return "- "
	case classify.KindOrderedItem:
		return "1. "
	case classify.KindTaskItem:
		return "- [ ] "
	case classify.KindBlockquote:
		return "> "
	case classify.KindDefinition:
		return ": "
	default:
		return ""
	}
}

// StripMarker splits a line into its leading marker and remaining content by
// walking the classifier's table in classification order. Lines with no
// marker (paragraphs, rules, table rows) come back whole.
func StripMarker(line string) (marker, content string) {
	for _, lt := range classify.Types() {
		m := lt.Pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		// Group 1 is the full leading marker for every marked kind; the
		// content is whatever follows it. Task items and alert headers carry
		// extra nested captures, so the content cannot be read from a fixed
		// group index.
		if len(m) > 2 {
			return m[1], line[len(m[1]):]
		}
		return "", line
	}
	return "", line
}

// ApplyLineType converts the line at index to the target type and returns the
// resulting line slice. Converting to code wraps the stripped content in a
// three-line fence, expanding one line into three; every other conversion is
// one line to one line. An out-of-range index returns the input unchanged.
func ApplyLineType(lines []string, index int, target Target) []string {
	if index < 0 || index >= len(lines) {
		return lines
	}

	_, content := StripMarker(lines[index])

	if target.Kind == classify.KindCodeContent || target.Kind == classify.KindCodeFence {
		out := make([]string, 0, len(lines)+2)
		out = append(out, lines[:index]...)
		out = append(out, "```", content, "```")
		out = append(out, lines[index+1:]...)
		return out
	}

	out := make([]string, len(lines))
	copy(out, lines)
	out[index] = target.Marker() + content
	return out
}
