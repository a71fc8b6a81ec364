package pretty

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/yaklabco/mdlive/pkg/classify"
	"github.com/yaklabco/mdlive/pkg/cursor"
	"github.com/yaklabco/mdlive/pkg/render"
)

// defaultWidth is used when the output is not a terminal.
const defaultWidth = 80

// TerminalWidth returns the width of the terminal behind f, or defaultWidth.
func TerminalWidth(f *os.File) int {
	if f == nil {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// FormatSurface renders the styled surface as ANSI terminal output, one
// terminal line per document line.
func (s *Styles) FormatSurface(surface *render.Surface, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	var b strings.Builder
	for _, line := range surface.Lines {
		b.WriteString(s.formatLine(line, width))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *Styles) formatLine(line render.Line, width int) string {
	cls := line.Classification

	switch cls.Kind {
	case classify.KindHorizontalRule:
		return s.Rule.Render(strings.Repeat("─", width))
	case classify.KindCodeFence, classify.KindCodeContent:
		return s.CodeLine.Render(cls.Raw)
	case classify.KindTableRow, classify.KindTableSeparator:
		return s.TableLine.Render(cls.Raw)
	case classify.KindAlertHeader:
		return s.Alert.Render(cls.Raw)
	}

	var b strings.Builder
	for _, seg := range line.Segments {
		if seg.Decoration {
			continue
		}
		b.WriteString(s.formatSegment(cls, seg))
	}
	return b.String()
}

func (s *Styles) formatSegment(cls classify.Classification, seg cursor.Segment) string {
	if strings.Contains(seg.Class, "md-syntax") {
		return s.Syntax.Render(seg.Text)
	}

	if style, ok := s.segmentStyle(seg.Class); ok {
		return style.Render(seg.Text)
	}

	// Plain content takes the block style of the line.
	switch cls.Kind {
	case classify.KindHeading:
		return s.Heading.Render(seg.Text)
	case classify.KindBlockquote, classify.KindAlertContinue:
		return s.Quote.Render(seg.Text)
	default:
		return seg.Text
	}
}

func (s *Styles) segmentStyle(class string) (lipgloss.Style, bool) {
	switch class {
	case "md-bold":
		return s.Bold, true
	case "md-italic":
		return s.Italic, true
	case "md-bold-italic":
		return s.Bold.Italic(true), true
	case "md-code":
		return s.Code, true
	case "md-strike":
		return s.Strike, true
	case "md-link", "md-image", "md-footnote-ref":
		return s.Link, true
	case "md-math":
		return s.Math, true
	case "md-escape":
		return s.Escape, true
	default:
		return lipgloss.Style{}, false
	}
}
