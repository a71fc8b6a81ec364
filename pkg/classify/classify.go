// Package classify assigns a semantic line type to each line of a markdown
// document.
//
// Classification is a single ordered decision list over regular expressions
// plus a small amount of cross-line state (inside a code fence, inside an
// alert run). The same table drives marker stripping in pkg/transform, so
// stripping is always the exact inverse of classification.
package classify

import (
	"regexp"
	"strings"
)

// Kind is the semantic type of one line.
type Kind string

// Line kinds, in rough precedence order.
const (
	KindHeading        Kind = "heading"
	KindAlertHeader    Kind = "alert-header"
	KindAlertContinue  Kind = "alert-continuation"
	KindBlockquote     Kind = "blockquote"
	KindTaskItem       Kind = "task-item"
	KindBulletItem     Kind = "bullet-item"
	KindOrderedItem    Kind = "ordered-item"
	KindHorizontalRule Kind = "horizontal-rule"
	KindTableRow       Kind = "table-row"
	KindTableSeparator Kind = "table-separator"
	KindDefinition     Kind = "definition"
	KindFootnoteDef    Kind = "footnote-definition"
	KindCodeFence      Kind = "code-fence"
	KindCodeContent    Kind = "code-content"
	KindParagraph      Kind = "paragraph"
)

// AlertTypes are the recognized GitHub alert type tags, upper-cased.
//
//nolint:gochecknoglobals // Read-only lookup table.
var AlertTypes = []string{"NOTE", "TIP", "IMPORTANT", "WARNING", "CAUTION"}

// maxQuoteStyleDepth caps blockquote depth for styling purposes. Detection
// itself is unlimited.
const maxQuoteStyleDepth = 3

// Classification is the ephemeral result of classifying one line. It is
// recomputed on every render and never stored across edits.
type Classification struct {
	Kind Kind

	// Raw is the unmodified line text. Marker + Content == Raw for every
	// kind that splits the line.
	Raw string

	// Marker is the literal leading syntax ("## ", "- [x] ", ">> ").
	Marker string

	// Content is the inline-stylable remainder after the marker.
	Content string

	// Level is the heading level (1..6) for KindHeading.
	Level int

	// Depth is the blockquote nesting depth for KindBlockquote.
	Depth int

	// Checked reports a completed task item.
	Checked bool

	// AlertType is the upper-cased alert tag for alert header and
	// continuation lines.
	AlertType string

	// FenceOpen distinguishes an opening fence from a closing one.
	FenceOpen bool

	// Lang is the language token of an opening fence, verbatim.
	Lang string
}

// StyleDepth returns the blockquote depth capped for styling.
func (c Classification) StyleDepth() int {
	if c.Depth > maxQuoteStyleDepth {
		return maxQuoteStyleDepth
	}
	return c.Depth
}

// HasInlineContent reports whether the line's content is styled by
// pkg/inline. Fence, rule, separator, and code lines render literally.
func (c Classification) HasInlineContent() bool {
	switch c.Kind {
	case KindCodeFence, KindCodeContent, KindHorizontalRule, KindTableSeparator:
		return false
	default:
		return true
	}
}

// State is the cross-line classification state threaded through a document
// scan. A fresh zero State starts every full render.
type State struct {
	// InsideCodeFence suppresses all content classification until the
	// closing fence.
	InsideCodeFence bool

	// FenceLang is the language token of the currently open fence.
	FenceLang string

	// AlertType is non-empty while inside an alert run.
	AlertType string
}

// Line-start patterns. Order in lineTypes below is the classification policy:
// first match wins.
//
//nolint:gochecknoglobals // Read-only pattern tables.
var (
	reFence       = regexp.MustCompile("^```(.*)$")
	reHeading     = regexp.MustCompile(`^(#{1,6} )(.*)$`)
	reAlertHeader = regexp.MustCompile(`(?i)^(>\s?\[!(NOTE|TIP|IMPORTANT|WARNING|CAUTION)\]\s*)$`)
	reAlertLine   = regexp.MustCompile(`^(>\s?)(.*)$`)
	reBlockquote  = regexp.MustCompile(`^(>+\s?)(.*)$`)
	reTaskItem    = regexp.MustCompile(`^([-*+] \[([ xX])\] )(.*)$`)
	reBulletItem  = regexp.MustCompile(`^([-*+] )(.*)$`)
	reOrderedItem = regexp.MustCompile(`^(\d+\. )(.*)$`)
	reHorizRule   = regexp.MustCompile(`^\s*(-{3,}|_{3,}|\*{3,})\s*$`)
	reTableRow    = regexp.MustCompile(`^\s*\|.*\|\s*$`)
	reSepCell     = regexp.MustCompile(`^[\s:-]+$`)
	reDefinition  = regexp.MustCompile(`^(: )(.*)$`)
	reFootnoteDef = regexp.MustCompile(`^(\[\^[^\]\s]+\]: )(.*)$`)
)

// LineType is one entry of the ordered classification table.
type LineType struct {
	Kind Kind

	// Pattern matches the whole line; group 1 is the marker when the kind
	// has one.
	Pattern *regexp.Regexp

	build func(raw string, m []string) Classification
}

// lineTypes is the shared ordered decision list. pkg/transform iterates the
// same slice when stripping markers.
//
//nolint:gochecknoglobals // Read-only decision list; order is policy.
var lineTypes = []LineType{
	{Kind: KindHeading, Pattern: reHeading, build: buildHeading},
	{Kind: KindAlertHeader, Pattern: reAlertHeader, build: buildAlertHeader},
	{Kind: KindBlockquote, Pattern: reBlockquote, build: buildBlockquote},
	// Task items before bullet items: the task prefix is a superset of the
	// bullet prefix.
	{Kind: KindTaskItem, Pattern: reTaskItem, build: buildTask},
	{Kind: KindBulletItem, Pattern: reBulletItem, build: buildMarked(KindBulletItem)},
	{Kind: KindOrderedItem, Pattern: reOrderedItem, build: buildMarked(KindOrderedItem)},
	{Kind: KindHorizontalRule, Pattern: reHorizRule, build: buildBare(KindHorizontalRule)},
	{Kind: KindTableRow, Pattern: reTableRow, build: buildTableRow},
	{Kind: KindDefinition, Pattern: reDefinition, build: buildMarked(KindDefinition)},
	{Kind: KindFootnoteDef, Pattern: reFootnoteDef, build: buildMarked(KindFootnoteDef)},
}

// Types returns the ordered classification table.
func Types() []LineType {
	return lineTypes
}

func buildHeading(raw string, m []string) Classification {
	marker := m[1]
	return Classification{
		Kind:    KindHeading,
		Raw:     raw,
		Marker:  marker,
		Content: m[2],
		Level:   len(strings.TrimRight(marker, " ")),
	}
}

func buildAlertHeader(raw string, m []string) Classification {
	return Classification{
		Kind:      KindAlertHeader,
		Raw:       raw,
		Marker:    raw,
		AlertType: strings.ToUpper(m[2]),
	}
}

func buildBlockquote(raw string, m []string) Classification {
	return Classification{
		Kind:    KindBlockquote,
		Raw:     raw,
		Marker:  m[1],
		Content: m[2],
		Depth:   strings.Count(m[1], ">"),
	}
}

func buildTask(raw string, m []string) Classification {
	return Classification{
		Kind:    KindTaskItem,
		Raw:     raw,
		Marker:  m[1],
		Content: m[3],
		Checked: m[2] != " ",
	}
}

func buildMarked(kind Kind) func(string, []string) Classification {
	return func(raw string, m []string) Classification {
		return Classification{Kind: kind, Raw: raw, Marker: m[1], Content: m[2]}
	}
}

func buildBare(kind Kind) func(string, []string) Classification {
	return func(raw string, _ []string) Classification {
		return Classification{Kind: kind, Raw: raw, Content: raw}
	}
}

func buildTableRow(raw string, _ []string) Classification {
	kind := KindTableRow
	if isSeparatorRow(raw) {
		kind = KindTableSeparator
	}
	return Classification{Kind: kind, Raw: raw, Content: raw}
}

// isSeparatorRow reports whether every pipe-delimited cell consists solely of
// whitespace, colons, and dashes. Such a row divides the header from data.
func isSeparatorRow(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(trimmed, "|")
	trimmed = strings.TrimSuffix(trimmed, "|")
	cells := strings.Split(trimmed, "|")
	for _, cell := range cells {
		if !reSepCell.MatchString(cell) {
			return false
		}
	}
	return len(cells) > 0
}

// Classify determines one line's semantic type and advances the cross-line
// state. It is a total function: a line matching nothing is a paragraph.
func Classify(line string, st State) (Classification, State) {
	// Fences are detected before everything else; inside a fence every line
	// is code content regardless of its shape, so "# comment" in a fenced
	// block can never classify as a heading.
	if m := reFence.FindStringSubmatch(line); m != nil {
		if st.InsideCodeFence {
			st.InsideCodeFence = false
			st.FenceLang = ""
			return Classification{Kind: KindCodeFence, Raw: line, Marker: line}, st
		}
		lang := strings.TrimSpace(m[1])
		st.InsideCodeFence = true
		st.FenceLang = lang
		st.AlertType = ""
		return Classification{
			Kind:      KindCodeFence,
			Raw:       line,
			Marker:    line,
			FenceOpen: true,
			Lang:      lang,
		}, st
	}
	if st.InsideCodeFence {
		return Classification{Kind: KindCodeContent, Raw: line, Content: line, Lang: st.FenceLang}, st
	}

	// Inside an alert run: a fresh header starts a new alert; any other
	// quoted line continues the current one; the first unquoted line ends it.
	if st.AlertType != "" {
		if m := reAlertHeader.FindStringSubmatch(line); m != nil {
			cls := buildAlertHeader(line, m)
			st.AlertType = cls.AlertType
			return cls, st
		}
		if m := reAlertLine.FindStringSubmatch(line); m != nil {
			return Classification{
				Kind:      KindAlertContinue,
				Raw:       line,
				Marker:    m[1],
				Content:   m[2],
				AlertType: st.AlertType,
			}, st
		}
		st.AlertType = ""
	}

	for _, lt := range lineTypes {
		m := lt.Pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		cls := lt.build(line, m)
		if cls.Kind == KindAlertHeader {
			st.AlertType = cls.AlertType
		}
		return cls, st
	}

	return Classification{Kind: KindParagraph, Raw: line, Content: line}, st
}
