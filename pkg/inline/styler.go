// Package inline converts inline markdown spans within one logical line of
// text into typed style runs.
//
// A Run covers both the literal syntax characters (marked Syntax, rendered
// de-emphasized) and the semantic content, so the styled surface shows
// "**bold**" with bold weight on "bold" and the asterisks dimmed. The
// concatenation of all run texts always equals the input line exactly; the
// raw text is never rewritten, only partitioned.
package inline

import (
	"regexp"
	"strings"

	"github.com/yaklabco/mdlive/pkg/escape"
)

// Run is one styled span of a line.
type Run struct {
	// Text is the raw substring of the input line this run covers.
	Text string

	// Class is the style class ("bold", "italic", "code", ...). Empty for
	// plain text that matched no inline pattern.
	Class string

	// Syntax marks runs covering literal marker characters (the asterisks of
	// "**bold**", a link's brackets and URL) rather than semantic content.
	Syntax bool
}

// Style classes produced by the styler.
const (
	ClassEscape      = "escape"
	ClassImage       = "image"
	ClassFootnoteRef = "footnote-ref"
	ClassLink        = "link"
	ClassBoldItalic  = "bold-italic"
	ClassBold        = "bold"
	ClassItalic      = "italic"
	ClassCode        = "code"
	ClassMath        = "math"
	ClassStrike      = "strike"
)

// Inline patterns. Each pass only ever scans runs still unclaimed by an
// earlier pass, so later patterns cannot re-match markup produced by earlier
// ones. Go regexp has no lookaround; context conditions are explicit guard
// functions over the surrounding text.
//
//nolint:gochecknoglobals // Read-only pattern tables.
var (
	reEscape      = regexp.MustCompile("\\\\([*_`\\[\\]()#+\\-.!\\\\])")
	reImage       = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]*)\)`)
	reFootnoteRef = regexp.MustCompile(`\[\^([^\]\s]+)\]`)
	reLink        = regexp.MustCompile(`\[([^\]]+)\]\(([^)]*)\)`)
	reBoldItalic  = regexp.MustCompile(`\*\*\*([^*]+)\*\*\*`)
	reBold        = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	reItalic      = regexp.MustCompile(`\*([^*]+)\*`)
	reBoldUnder   = regexp.MustCompile(`__([^_]+)__`)
	reItalicUnder = regexp.MustCompile(`_([^_]+)_`)
	reCode        = regexp.MustCompile("`([^`]+)`")
	reMath        = regexp.MustCompile(`\$([^$]+)\$`)
	reStrike      = regexp.MustCompile(`~~([^~]+)~~`)
)

// pass describes one ordered styling pass.
type pass struct {
	re *regexp.Regexp

	// guard rejects a match based on its surrounding text. m is the match's
	// submatch index slice relative to s. Nil accepts every match.
	guard func(s string, m []int) bool

	// build converts one accepted match into runs. m indexes into s.
	build func(s string, m []int) []Run
}

//nolint:gochecknoglobals // Read-only pass table; order is the styling policy.
var passes = []pass{
	// Backslash escapes come first so escaped markers are never read as
	// syntax by any later pass. Both characters stay in the output: the
	// backslash as a dimmed marker, the literal character as content.
	{re: reEscape, build: func(s string, m []int) []Run {
		return []Run{
			{Text: `\`, Class: ClassEscape, Syntax: true},
			{Text: s[m[2]:m[3]], Class: ClassEscape},
		}
	}},

	// Images before links: the image pattern is a superset of link syntax
	// and must win the race.
	{re: reImage, build: func(s string, m []int) []Run {
		return []Run{
			{Text: "![", Class: ClassImage, Syntax: true},
			{Text: s[m[2]:m[3]], Class: ClassImage},
			{Text: "](" + s[m[4]:m[5]] + ")", Class: ClassImage, Syntax: true},
		}
	}},

	{re: reFootnoteRef, build: func(s string, m []int) []Run {
		return []Run{
			{Text: "[^", Class: ClassFootnoteRef, Syntax: true},
			{Text: s[m[2]:m[3]], Class: ClassFootnoteRef},
			{Text: "]", Class: ClassFootnoteRef, Syntax: true},
		}
	}},

	{re: reLink, build: func(s string, m []int) []Run {
		return []Run{
			{Text: "[", Class: ClassLink, Syntax: true},
			{Text: s[m[2]:m[3]], Class: ClassLink},
			{Text: "](" + s[m[4]:m[5]] + ")", Class: ClassLink, Syntax: true},
		}
	}},

	// Longer asterisk runs first, or they fragment into incorrect spans.
	{re: reBoldItalic, build: marker("***", ClassBoldItalic)},
	{re: reBold, build: marker("**", ClassBold)},
	{re: reItalic, guard: notNextTo('*'), build: marker("*", ClassItalic)},

	// Underscore variants additionally require non-alphanumeric context on
	// both sides so identifiers like foo_bar_baz are left alone. The
	// asterisk variants have no such guard.
	{re: reBoldUnder, guard: wordBoundary, build: marker("__", ClassBold)},
	{re: reItalicUnder, guard: andGuard(wordBoundary, notNextTo('_')), build: marker("_", ClassItalic)},

	{re: reCode, build: marker("`", ClassCode)},
	{re: reMath, build: marker("$", ClassMath)},
	{re: reStrike, build: marker("~~", ClassStrike)},
}

// marker builds the common symmetric case: marker, content, marker.
func marker(mark, class string) func(string, []int) []Run {
	return func(s string, m []int) []Run {
		return []Run{
			{Text: mark, Class: class, Syntax: true},
			{Text: s[m[2]:m[3]], Class: class},
			{Text: mark, Class: class, Syntax: true},
		}
	}
}

// notNextTo rejects matches immediately preceded or followed by c, so a
// single-marker pattern never bites into a leftover double-marker run.
func notNextTo(c byte) func(string, []int) bool {
	return func(s string, m []int) bool {
		if m[0] > 0 && s[m[0]-1] == c {
			return false
		}
		if m[1] < len(s) && s[m[1]] == c {
			return false
		}
		return true
	}
}

// wordBoundary rejects matches with an alphanumeric character directly
// outside either end.
func wordBoundary(s string, m []int) bool {
	if m[0] > 0 && isAlnum(s[m[0]-1]) {
		return false
	}
	if m[1] < len(s) && isAlnum(s[m[1]]) {
		return false
	}
	return true
}

func andGuard(guards ...func(string, []int) bool) func(string, []int) bool {
	return func(s string, m []int) bool {
		for _, g := range guards {
			if !g(s, m) {
				return false
			}
		}
		return true
	}
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// Style partitions one line's content into styled runs by applying every
// inline pass in order. It is total and pure: any text yields a run list
// whose concatenated text is the input.
func Style(text string) []Run {
	runs := []Run{{Text: text}}
	for _, p := range passes {
		runs = applyPass(runs, p)
	}
	return runs
}

// applyPass rewrites every still-plain run through one pass, leaving already
// styled runs untouched.
func applyPass(runs []Run, p pass) []Run {
	out := make([]Run, 0, len(runs))
	for _, run := range runs {
		if run.Class != "" || run.Text == "" {
			out = append(out, run)
			continue
		}
		out = append(out, splitRun(run.Text, p)...)
	}
	return out
}

// splitRun applies one pass to a plain text run, splicing accepted matches
// into styled runs and keeping the text between them plain.
func splitRun(text string, p pass) []Run {
	matches := p.re.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return []Run{{Text: text}}
	}

	var out []Run
	last := 0
	for _, m := range matches {
		if p.guard != nil && !p.guard(text, m) {
			continue
		}
		if m[0] > last {
			out = append(out, Run{Text: text[last:m[0]]})
		}
		out = append(out, p.build(text, m)...)
		last = m[1]
	}
	if last < len(text) {
		out = append(out, Run{Text: text[last:]})
	}
	return out
}

// LinkURL returns the destination of a link or image run sequence starting at
// runs[i], or "" when runs[i] does not start a link or image span.
func LinkURL(runs []Run, i int) string {
	if i < 0 || i >= len(runs) {
		return ""
	}
	start := runs[i]
	if start.Class != ClassLink && start.Class != ClassImage {
		return ""
	}
	// The closing syntax run carries "](url)".
	for j := i; j < len(runs) && runs[j].Class == start.Class; j++ {
		t := runs[j].Text
		if runs[j].Syntax && strings.HasPrefix(t, "](") && strings.HasSuffix(t, ")") {
			return t[2 : len(t)-1]
		}
	}
	return ""
}

// HTML serializes runs to markup. Content is HTML-escaped exactly once, here.
func HTML(runs []Run) string {
	var b strings.Builder
	for _, run := range runs {
		writeRun(&b, run)
	}
	return b.String()
}

func writeRun(b *strings.Builder, run Run) {
	if run.Class == "" {
		b.WriteString(escape.HTML(run.Text))
		return
	}
	b.WriteString(`<span class="md-`)
	b.WriteString(run.Class)
	if run.Syntax {
		b.WriteString(" md-syntax")
	}
	b.WriteString(`">`)
	b.WriteString(escape.HTML(run.Text))
	b.WriteString(`</span>`)
}

// Text reassembles the raw text covered by runs.
func Text(runs []Run) string {
	var b strings.Builder
	for _, run := range runs {
		b.WriteString(run.Text)
	}
	return b.String()
}
