package transform

import (
	"regexp"
	"strings"
)

// Format names an inline format that can be toggled around a selection.
type Format string

// Toggleable inline formats.
const (
	FormatBold   Format = "bold"
	FormatItalic Format = "italic"
	FormatCode   Format = "code"
	FormatStrike Format = "strike"
	FormatLink   Format = "link"
)

// formatMarkers maps symmetric formats to their marker text.
//
//nolint:gochecknoglobals // Read-only lookup table.
var formatMarkers = map[Format]string{
	FormatBold:   "**",
	FormatItalic: "*",
	FormatCode:   "`",
	FormatStrike: "~~",
}

// reFullLink matches a selection that is exactly one complete link span.
//
//nolint:gochecknoglobals // Read-only pattern.
var reFullLink = regexp.MustCompile(`^\[([^\]]+)\]\(([^)]*)\)$`)

// ToggleInline toggles format on line between the rune offsets start and end
// (end exclusive). If the format's markers already surround the selection
// (just outside its bounds, or as marker-only overhang inside them) they are
// stripped; otherwise the selection is wrapped. Returns the new line and the
// selection covering the same visible text.
//
// Links are asymmetric: an existing link is detected only when the selected
// text itself is a full [text](url) span, and un-linking keeps just the
// visible text, discarding the URL. This matches long-standing behavior and
// is deliberate.
func ToggleInline(line string, start, end int, format Format) (string, int, int) {
	runes := []rune(line)
	start, end = clampSelection(start, end, len(runes))

	if format == FormatLink {
		return toggleLink(runes, start, end)
	}

	mark, ok := formatMarkers[format]
	if !ok {
		return line, start, end
	}
	return toggleMarked(runes, start, end, mark)
}

func clampSelection(start, end, length int) (int, int) {
	if start < 0 {
		start = 0
	}
	if end > length {
		end = length
	}
	if end < start {
		end = start
	}
	return start, end
}

func toggleMarked(runes []rune, start, end int, mark string) (string, int, int) {
	m := []rune(mark)
	n := len(m)

	// Markers just outside the selection: strip them.
	if start >= n && end+n <= len(runes) &&
		string(runes[start-n:start]) == mark && string(runes[end:end+n]) == mark {
		out := string(runes[:start-n]) + string(runes[start:end]) + string(runes[end+n:])
		return out, start - n, end - n
	}

	// Selection bounds exactly cover the markers (marker-only overhang).
	if end-start >= 2*n &&
		string(runes[start:start+n]) == mark && string(runes[end-n:end]) == mark {
		out := string(runes[:start]) + string(runes[start+n:end-n]) + string(runes[end:])
		return out, start, end - 2*n
	}

	// Not formatted: wrap.
	out := string(runes[:start]) + mark + string(runes[start:end]) + mark + string(runes[end:])
	return out, start + n, end + n
}

func toggleLink(runes []rune, start, end int) (string, int, int) {
	selected := string(runes[start:end])

	// Containment only: the selection itself must be a complete link.
	if m := reFullLink.FindStringSubmatch(selected); m != nil {
		text := m[1]
		out := string(runes[:start]) + text + string(runes[end:])
		return out, start, start + len([]rune(text))
	}

	var b strings.Builder
	b.WriteString(string(runes[:start]))
	b.WriteString("[")
	b.WriteString(selected)
	b.WriteString("]()")
	b.WriteString(string(runes[end:]))
	return b.String(), start + 1, end + 1
}
