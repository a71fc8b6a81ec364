// Package document holds the line-array document model. The raw text is the
// single source of truth: it is re-split into lines wholesale on every change
// and no line carries identity across edits except its positional index.
package document

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdlive/pkg/classify"
)

// Document is an ordered sequence of lines, newline-joined.
type Document struct {
	lines []string
}

// FromText splits raw text into a document. The text is normalized first so
// surface artifacts never persist.
func FromText(text string) *Document {
	return &Document{lines: strings.Split(Normalize(text), "\n")}
}

// Text returns the newline-joined document text.
func (d *Document) Text() string {
	return strings.Join(d.lines, "\n")
}

// Lines returns a copy of the line array. Mutation happens only through
// SetLines, never by editing a line in place.
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	return out
}

// SetLines replaces the whole line array.
func (d *Document) SetLines(lines []string) {
	d.lines = make([]string, len(lines))
	copy(d.lines, lines)
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Line returns the line at index, or ok=false when the index is out of range.
func (d *Document) Line(index int) (string, bool) {
	if index < 0 || index >= len(d.lines) {
		return "", false
	}
	return d.lines[index], true
}

// zero-width characters used by editing surfaces as cursor anchors; they must
// never leak into persisted content.
//
//nolint:gochecknoglobals // Read-only lookup table.
var surfaceArtifacts = strings.NewReplacer(
	"\u200b", "", // zero-width space
	"\ufeff", "", // zero-width no-break space / BOM
	"\r", "", // CR from CRLF surfaces
)

// Normalize strips zero-width cursor anchors, carriage returns, and invalid
// UTF-8 (unpaired surrogates arrive as invalid bytes) from extracted text.
func Normalize(text string) string {
	text = surfaceArtifacts.Replace(text)
	return strings.ToValidUTF8(text, "")
}

// Heading is one document heading, as consumed by a table-of-contents view.
type Heading struct {
	Level int
	Text  string

	// ID is positional ("heading-0", "heading-1", ...) and therefore not
	// stable across insertions or deletions above the heading.
	ID string

	// Line is the heading's line index in the document.
	Line int
}

// Headings scans the document for headings in order. Heading-shaped lines
// inside fenced code blocks are not headings and are skipped.
func (d *Document) Headings() []Heading {
	var out []Heading
	st := classify.State{}
	for i, line := range d.lines {
		var cls classify.Classification
		cls, st = classify.Classify(line, st)
		if cls.Kind != classify.KindHeading {
			continue
		}
		out = append(out, Heading{
			Level: cls.Level,
			Text:  cls.Content,
			ID:    fmt.Sprintf("heading-%d", len(out)),
			Line:  i,
		})
	}
	return out
}
