// Package pretty provides Lipgloss-based styled terminal output for the
// mdlive CLI: an ANSI preview of the styled surface and table-of-contents
// listings.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Block-level line styles
	Heading    lipgloss.Style
	Quote      lipgloss.Style
	Alert      lipgloss.Style
	ListMarker lipgloss.Style
	CodeLine   lipgloss.Style
	Rule       lipgloss.Style
	TableLine  lipgloss.Style

	// Inline span styles
	Bold   lipgloss.Style
	Italic lipgloss.Style
	Code   lipgloss.Style
	Strike lipgloss.Style
	Link   lipgloss.Style
	Math   lipgloss.Style
	Syntax lipgloss.Style
	Escape lipgloss.Style

	// TOC styles
	TOCBullet lipgloss.Style
	TOCText   lipgloss.Style
	TOCLine   lipgloss.Style

	// Misc
	Dim lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		Heading:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Quote:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Alert:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		ListMarker: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		CodeLine:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Rule:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		TableLine:  lipgloss.NewStyle().Foreground(lipgloss.Color("7")),

		Bold:   lipgloss.NewStyle().Bold(true),
		Italic: lipgloss.NewStyle().Italic(true),
		Code:   lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		Strike: lipgloss.NewStyle().Strikethrough(true),
		Link:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Underline(true),
		Math:   lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Italic(true),
		Syntax: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Escape: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		TOCBullet: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		TOCText:   lipgloss.NewStyle(),
		TOCLine:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		Dim: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Heading:    plain,
		Quote:      plain,
		Alert:      plain,
		ListMarker: plain,
		CodeLine:   plain,
		Rule:       plain,
		TableLine:  plain,
		Bold:       plain,
		Italic:     plain,
		Code:       plain,
		Strike:     plain,
		Link:       plain,
		Math:       plain,
		Syntax:     plain,
		Escape:     plain,
		TOCBullet:  plain,
		TOCText:    plain,
		TOCLine:    plain,
		Dim:        plain,
	}
}

// ColorEnabled determines if color output should be used for the writer.
// Mode is one of "auto", "always", "never".
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := w.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
