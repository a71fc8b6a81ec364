// Package cursor maps between structural document positions and locations in
// the styled surface.
//
// The surface is modeled as lines of typed segments: content runs, which carry
// the line's logical characters, and decoration runs (gutters, placeholders,
// icons), which are skipped entirely when counting offsets. Offset math is a
// fold over a line's segments, independent of how the surface is presented.
package cursor

import "unicode/utf8"

// Segment is one run of surface text within a line.
type Segment struct {
	// Text is the run's text. For content runs this is raw document text;
	// for decoration runs it is presentation-only.
	Text string

	// Class is the style class applied when the run is serialized.
	Class string

	// Decoration marks runs that are not part of the line's logical content.
	Decoration bool
}

// Runes returns the number of runes in the segment's text.
func (s Segment) Runes() int {
	return utf8.RuneCountInString(s.Text)
}

// Position is a structural cursor coordinate: a line index and a rune offset
// into that line's logical (unstyled) content.
type Position struct {
	Line int
	Char int
}

// Location addresses a point inside the surface: a line, a segment index
// within that line, and a rune offset within that segment.
type Location struct {
	Line    int
	Segment int
	Offset  int
}

// Line is the segment sequence for one surface line.
type Line []Segment

// ContentLen returns the total rune count of the line's content runs.
func (l Line) ContentLen() int {
	total := 0
	for _, seg := range l {
		if !seg.Decoration {
			total += seg.Runes()
		}
	}
	return total
}

// ToPosition converts a surface location to a structural position.
// Decoration runs before the location contribute nothing to the offset; a
// location inside a decoration run snaps to the content accumulated so far.
// Returns false if the location's line does not exist.
func ToPosition(surface []Line, loc Location) (Position, bool) {
	if loc.Line < 0 || loc.Line >= len(surface) {
		return Position{}, false
	}

	line := surface[loc.Line]
	char := 0

	for i, seg := range line {
		if i > loc.Segment {
			break
		}
		if seg.Decoration {
			continue
		}
		if i == loc.Segment {
			offset := loc.Offset
			if n := seg.Runes(); offset > n {
				offset = n
			}
			if offset < 0 {
				offset = 0
			}
			char += offset
			break
		}
		char += seg.Runes()
	}

	return Position{Line: loc.Line, Char: char}, true
}

// FromPosition converts a structural position to a surface location.
// An offset past the end of the line's content clamps to end-of-content.
// Returns false if the position's line does not exist (the document shrank);
// callers treat that as a no-op.
func FromPosition(surface []Line, pos Position) (Location, bool) {
	if pos.Line < 0 || pos.Line >= len(surface) {
		return Location{}, false
	}

	line := surface[pos.Line]
	remaining := pos.Char
	if remaining < 0 {
		remaining = 0
	}

	lastContent := -1
	for i, seg := range line {
		if seg.Decoration {
			continue
		}
		lastContent = i
		n := seg.Runes()
		if remaining <= n {
			return Location{Line: pos.Line, Segment: i, Offset: remaining}, true
		}
		remaining -= n
	}

	// Offset exceeds available content: clamp to end of the last content run,
	// or to the start of the line when it has no content at all.
	if lastContent >= 0 {
		return Location{
			Line:    pos.Line,
			Segment: lastContent,
			Offset:  line[lastContent].Runes(),
		}, true
	}
	return Location{Line: pos.Line, Segment: 0, Offset: 0}, true
}
