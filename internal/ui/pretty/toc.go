package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdlive/pkg/document"
)

// FormatTOC renders a document's headings as an indented table of contents.
// Indentation follows heading level; the line number column lets the listing
// double as jump targets.
func (s *Styles) FormatTOC(headings []document.Heading) string {
	if len(headings) == 0 {
		return s.Dim.Render("no headings") + "\n"
	}

	var b strings.Builder
	for _, h := range headings {
		indent := strings.Repeat("  ", h.Level-1)
		b.WriteString(indent)
		b.WriteString(s.TOCBullet.Render("•"))
		b.WriteString(" ")
		b.WriteString(s.TOCText.Render(h.Text))
		b.WriteString(" ")
		b.WriteString(s.TOCLine.Render(fmt.Sprintf("(line %d)", h.Line+1)))
		b.WriteString("\n")
	}
	return b.String()
}
