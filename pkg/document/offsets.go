package document

import (
	"sort"
	"unicode/utf8"

	"github.com/yaklabco/mdlive/pkg/cursor"
)

// lineStarts returns the byte offset of each line's first byte within the
// joined document text.
func (d *Document) lineStarts() []int {
	starts := make([]int, len(d.lines))
	offset := 0
	for i, line := range d.lines {
		starts[i] = offset
		offset += len(line) + 1 // newline separator
	}
	return starts
}

// PositionForOffset converts a byte offset in the document text to a
// structural position. Offsets past the end clamp to the last line's end.
// Returns false only for a negative offset.
func (d *Document) PositionForOffset(offset int) (cursor.Position, bool) {
	if offset < 0 || len(d.lines) == 0 {
		return cursor.Position{}, false
	}

	starts := d.lineStarts()

	// Find the last line starting at or before offset.
	idx := sort.Search(len(starts), func(i int) bool {
		return starts[i] > offset
	}) - 1
	if idx < 0 {
		idx = 0
	}

	line := d.lines[idx]
	byteCol := offset - starts[idx]
	if byteCol > len(line) {
		byteCol = len(line)
	}
	return cursor.Position{
		Line: idx,
		Char: utf8.RuneCountInString(line[:byteCol]),
	}, true
}

// OffsetForPosition converts a structural position to a byte offset in the
// document text. The char offset clamps to the line's length. Returns false
// when the line does not exist.
func (d *Document) OffsetForPosition(pos cursor.Position) (int, bool) {
	if pos.Line < 0 || pos.Line >= len(d.lines) {
		return 0, false
	}

	line := d.lines[pos.Line]
	byteCol := 0
	remaining := pos.Char
	for byteCol < len(line) && remaining > 0 {
		_, size := utf8.DecodeRuneInString(line[byteCol:])
		byteCol += size
		remaining--
	}

	return d.lineStarts()[pos.Line] + byteCol, true
}
