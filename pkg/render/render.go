// Package render drives line classification across a whole document and
// produces the styled surface.
//
// Rendering is two-pass: the first pass classifies every line while threading
// the cross-line state (fence toggling, alert runs), the second computes
// visual group boundaries and emits one rendered line per input line. The
// surface carries both a segment model (for cursor math and extraction) and a
// deterministic HTML serialization.
package render

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdlive/pkg/classify"
	"github.com/yaklabco/mdlive/pkg/cursor"
	"github.com/yaklabco/mdlive/pkg/escape"
	"github.com/yaklabco/mdlive/pkg/inline"
	"github.com/yaklabco/mdlive/pkg/langdetect"
)

// Line is one rendered line of the surface.
type Line struct {
	Classification classify.Classification

	// Segments is the line's content model. Concatenating the non-decoration
	// segments reproduces the raw line exactly.
	Segments cursor.Line

	// FirstOfGroup and LastOfGroup mark the boundaries of multi-line visual
	// groups (blockquote runs, alert boxes, fenced blocks) for corner
	// rounding and border CSS.
	FirstOfGroup bool
	LastOfGroup  bool
}

// Surface is the fully rendered document.
type Surface struct {
	Lines []Line
}

// Render styles a whole document. It is pure and deterministic: identical
// input always yields a byte-identical surface.
func Render(text string) *Surface {
	raw := strings.Split(text, "\n")

	// Pass 1: classify with cross-line state.
	classes := make([]classify.Classification, len(raw))
	st := classify.State{}
	for i, line := range raw {
		classes[i], st = classify.Classify(line, st)
	}

	// Pass 2: resolve group boundaries and build segments.
	surface := &Surface{Lines: make([]Line, len(raw))}
	for i, cls := range classes {
		surface.Lines[i] = Line{
			Classification: cls,
			Segments:       buildSegments(cls),
			FirstOfGroup:   isGroupStart(classes, i),
			LastOfGroup:    isGroupEnd(classes, i),
		}
	}
	return surface
}

// grouped reports whether a kind participates in multi-line visual grouping.
func grouped(kind classify.Kind) bool {
	switch kind {
	case classify.KindBlockquote, classify.KindAlertHeader, classify.KindAlertContinue,
		classify.KindCodeFence, classify.KindCodeContent:
		return true
	default:
		return false
	}
}

// groupFamily collapses kinds into their visual group: quote, alert, or code.
func groupFamily(kind classify.Kind) string {
	switch kind {
	case classify.KindBlockquote:
		return "quote"
	case classify.KindAlertHeader, classify.KindAlertContinue:
		return "alert"
	case classify.KindCodeFence, classify.KindCodeContent:
		return "code"
	default:
		return ""
	}
}

func isGroupStart(classes []classify.Classification, i int) bool {
	if !grouped(classes[i].Kind) {
		return false
	}
	// An alert header always opens a fresh box, even directly after another.
	if classes[i].Kind == classify.KindAlertHeader {
		return true
	}
	if classes[i].Kind == classify.KindCodeFence && classes[i].FenceOpen {
		return true
	}
	if classes[i].Kind == classify.KindCodeFence || classes[i].Kind == classify.KindCodeContent {
		return false
	}
	return i == 0 || groupFamily(classes[i-1].Kind) != groupFamily(classes[i].Kind)
}

func isGroupEnd(classes []classify.Classification, i int) bool {
	if !grouped(classes[i].Kind) {
		return false
	}
	if classes[i].Kind == classify.KindCodeFence {
		return !classes[i].FenceOpen
	}
	if classes[i].Kind == classify.KindCodeContent {
		return false
	}
	if i == len(classes)-1 {
		return true
	}
	next := classes[i+1]
	if next.Kind == classify.KindAlertHeader {
		return true
	}
	return groupFamily(next.Kind) != groupFamily(classes[i].Kind)
}

// placeholder anchors empty lines so zero-height lines stay clickable. It is
// a decoration run and never leaks into extracted text.
//
//nolint:gochecknoglobals // Read-only sentinel segment.
var placeholder = cursor.Segment{Text: "\u200b", Class: "placeholder", Decoration: true}

// buildSegments produces the content model for one classified line.
func buildSegments(cls classify.Classification) cursor.Line {
	if cls.Raw == "" {
		return cursor.Line{placeholder}
	}

	var segs cursor.Line

	if cls.Kind == classify.KindAlertHeader {
		// The whole header line is marker syntax; the alert icon and label
		// are decoration supplied by the stylesheet.
		return cursor.Line{{Text: cls.Raw, Class: "md-syntax", Decoration: false}}
	}

	if cls.Marker != "" {
		segs = append(segs, cursor.Segment{Text: cls.Marker, Class: "md-syntax"})
	}

	if !cls.HasInlineContent() {
		if cls.Content != "" {
			segs = append(segs, cursor.Segment{Text: cls.Content, Class: literalClass(cls)})
		}
		return segs
	}

	if cls.Content == "" {
		// Marker with nothing after it ("- ", "> "): keep the line focusable.
		return append(segs, placeholder)
	}

	for _, run := range inline.Style(cls.Content) {
		segs = append(segs, cursor.Segment{Text: run.Text, Class: runClass(run)})
	}
	return segs
}

// literalClass styles lines that render their syntax verbatim.
func literalClass(cls classify.Classification) string {
	switch cls.Kind {
	case classify.KindCodeContent:
		return "md-code-line"
	case classify.KindHorizontalRule:
		return "md-hr-line"
	case classify.KindTableSeparator:
		return "md-table-sep"
	default:
		return "md-literal"
	}
}

// runClass maps an inline run to its surface class string.
func runClass(run inline.Run) string {
	if run.Class == "" {
		return ""
	}
	class := "md-" + run.Class
	if run.Syntax {
		class += " md-syntax"
	}
	return class
}

// Extract reverses the surface back to raw document text. For any document D,
// Extract(Render(D).Surface) == D: content segments are raw text by
// construction and decoration segments are dropped.
func (s *Surface) Extract() string {
	lines := make([]string, len(s.Lines))
	for i, line := range s.Lines {
		var b strings.Builder
		for _, seg := range line.Segments {
			if seg.Decoration {
				continue
			}
			b.WriteString(seg.Text)
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}

// SegmentLines exposes the surface's segment model for cursor mapping.
func (s *Surface) SegmentLines() []cursor.Line {
	out := make([]cursor.Line, len(s.Lines))
	for i, line := range s.Lines {
		out[i] = line.Segments
	}
	return out
}

// HTML serializes the surface to styled markup, one block element per line.
func (s *Surface) HTML() string {
	detected := s.detectedLanguages()

	var b strings.Builder
	for i, line := range s.Lines {
		writeLineHTML(&b, i, line, detected[i])
	}
	return b.String()
}

// detectedLanguages guesses a language tag for every unlabeled fenced block
// from its content, keyed by line index. The opening fence and the content
// lines share the guessed tag; closing fences stay bare, matching labeled
// blocks. Blocks whose content resolves to plain text get no entry.
func (s *Surface) detectedLanguages() map[int]string {
	var detected map[int]string

	for i := 0; i < len(s.Lines); i++ {
		cls := s.Lines[i].Classification
		if cls.Kind != classify.KindCodeFence || !cls.FenceOpen || cls.Lang != "" {
			continue
		}

		var content []string
		end := i
		for j := i + 1; j < len(s.Lines); j++ {
			if s.Lines[j].Classification.Kind == classify.KindCodeFence {
				break
			}
			content = append(content, s.Lines[j].Classification.Raw)
			end = j
		}

		tag := langdetect.Detect([]byte(strings.Join(content, "\n")))
		if tag != "text" {
			if detected == nil {
				detected = make(map[int]string)
			}
			for k := i; k <= end; k++ {
				detected[k] = tag
			}
		}
		i = end
	}
	return detected
}

func writeLineHTML(b *strings.Builder, index int, line Line, detectedLang string) {
	fmt.Fprintf(b, `<div class="%s" data-line="%d">`, lineClasses(line, detectedLang), index)
	for _, seg := range line.Segments {
		writeSegmentHTML(b, seg)
	}
	b.WriteString("</div>\n")
}

func writeSegmentHTML(b *strings.Builder, seg cursor.Segment) {
	if seg.Decoration && seg.Class == "placeholder" {
		b.WriteString("<br>")
		return
	}
	if seg.Class == "" {
		b.WriteString(escape.HTML(seg.Text))
		return
	}
	b.WriteString(`<span class="`)
	b.WriteString(seg.Class)
	b.WriteString(`">`)
	b.WriteString(escape.HTML(seg.Text))
	b.WriteString(`</span>`)
}

// lineClasses computes the block element's class list for one line.
func lineClasses(line Line, detectedLang string) string {
	cls := line.Classification
	classes := []string{"line", "md-" + string(cls.Kind)}

	switch cls.Kind {
	case classify.KindHeading:
		classes = append(classes, fmt.Sprintf("md-h%d", cls.Level))
	case classify.KindBlockquote:
		classes = append(classes, fmt.Sprintf("md-quote-%d", cls.StyleDepth()))
	case classify.KindAlertHeader, classify.KindAlertContinue:
		classes = append(classes, "md-alert-"+strings.ToLower(cls.AlertType))
	case classify.KindTaskItem:
		if cls.Checked {
			classes = append(classes, "md-checked")
		}
	case classify.KindCodeFence, classify.KindCodeContent:
		switch {
		case cls.Lang != "":
			classes = append(classes, "language-"+langdetect.Normalize(cls.Lang))
		case detectedLang != "":
			classes = append(classes, "language-"+detectedLang)
		}
	}

	if line.FirstOfGroup {
		classes = append(classes, "group-first")
	}
	if line.LastOfGroup {
		classes = append(classes, "group-last")
	}
	return strings.Join(classes, " ")
}
