// Package engine wires the document model, renderer, and transformers into a
// live editing controller.
//
// One edit event triggers one synchronous full re-render; the only debounced
// path is the outbound content-changed notification to the host. External
// updates run inside an explicit ApplyingExternalUpdate mode so the engine's
// own output is never misread as a user edit.
package engine

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/mdlive/internal/logging"
	"github.com/yaklabco/mdlive/pkg/cursor"
	"github.com/yaklabco/mdlive/pkg/document"
	"github.com/yaklabco/mdlive/pkg/render"
	"github.com/yaklabco/mdlive/pkg/transform"
)

// Mode is the engine's update state.
type Mode int

// Engine modes. ApplyingExternalUpdate brackets every external content
// application; inbound surface edits are ignored while it is set.
const (
	ModeIdle Mode = iota
	ModeApplyingExternalUpdate
)

// DefaultDebounce is the quiet period for outbound edit notifications.
const DefaultDebounce = 300 * time.Millisecond

// Callbacks are the engine's outbound interfaces to the host.
type Callbacks struct {
	// Edit receives locally-authored content, debounced.
	Edit func(content string)

	// OpenLink receives an activated link target. Remote targets (https://,
	// data:) are passed through untouched for a browser or OS handler;
	// local targets arrive already resolved against the document directory.
	OpenLink func(target string, remote bool)
}

// Options configures an Engine.
type Options struct {
	// Debounce is the edit-notification quiet period. Zero means
	// DefaultDebounce.
	Debounce time.Duration

	// BasePath is the hosting document's directory, used to resolve
	// relative link targets.
	BasePath string

	Logger *log.Logger
}

// Engine is the live-rendering controller. Not safe for concurrent use; the
// host delivers events from a single goroutine.
type Engine struct {
	doc     *document.Document
	surface *render.Surface

	mode        Mode
	lastEmitted string

	debouncer *Debouncer
	callbacks Callbacks
	basePath  string
	logger    *log.Logger
}

// New creates an engine with empty content. Call Init to load a document.
func New(opts Options, callbacks Callbacks) *Engine {
	delay := opts.Debounce
	if delay <= 0 {
		delay = DefaultDebounce
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}

	e := &Engine{
		doc:       document.FromText(""),
		callbacks: callbacks,
		basePath:  opts.BasePath,
		logger:    logger,
	}
	e.surface = render.Render(e.doc.Text())
	e.debouncer = NewDebouncer(delay, e.emitEdit)
	return e
}

// Init loads the initial content and performs the first full render.
func (e *Engine) Init(content string) {
	e.applyExternal(content)
}

// Update re-renders due to an external change. It is skipped when the content
// is identical to the last content this engine itself emitted, which breaks
// the host-notification feedback loop.
func (e *Engine) Update(content string) {
	if content == e.lastEmitted {
		e.logger.Debug("external update skipped", logging.FieldReason, "own edit echoed")
		return
	}
	e.applyExternal(content)
}

func (e *Engine) applyExternal(content string) {
	e.mode = ModeApplyingExternalUpdate
	defer func() { e.mode = ModeIdle }()

	e.doc = document.FromText(content)
	e.rerender()
}

// ApplyEdit ingests content extracted from the surface after a user edit.
// The visual re-render is synchronous; the outbound notification is
// debounced. Edits arriving while an external update is being applied are
// the renderer's own output and are ignored.
func (e *Engine) ApplyEdit(content string) {
	if e.mode == ModeApplyingExternalUpdate {
		return
	}

	e.doc = document.FromText(content)
	e.rerender()
	e.debouncer.Trigger(e.doc.Text())
}

func (e *Engine) rerender() {
	e.surface = render.Render(e.doc.Text())
	e.logger.Debug("rendered",
		logging.FieldLines, e.doc.LineCount(),
		logging.FieldHeadings, len(e.doc.Headings()),
	)
}

func (e *Engine) emitEdit(content string) {
	e.lastEmitted = content
	if e.callbacks.Edit != nil {
		e.callbacks.Edit(content)
	}
}

// Flush fires any pending edit notification immediately.
func (e *Engine) Flush() {
	e.debouncer.Flush()
}

// Close cancels pending notifications.
func (e *Engine) Close() {
	e.debouncer.Stop()
}

// Text returns the current document text.
func (e *Engine) Text() string {
	return e.doc.Text()
}

// Surface returns the current styled surface.
func (e *Engine) Surface() *render.Surface {
	return e.surface
}

// HTML returns the current surface markup.
func (e *Engine) HTML() string {
	return e.surface.HTML()
}

// Mode returns the engine's current update state.
func (e *Engine) Mode() Mode {
	return e.mode
}

// RestoreCursor maps a structural position back onto the current surface,
// clamping overflow. Returns false when the target line no longer exists;
// the caller treats that as a no-op.
func (e *Engine) RestoreCursor(pos cursor.Position) (cursor.Location, bool) {
	return cursor.FromPosition(e.surface.SegmentLines(), pos)
}

// CursorPosition converts a surface location to a structural position.
func (e *Engine) CursorPosition(loc cursor.Location) (cursor.Position, bool) {
	return cursor.ToPosition(e.surface.SegmentLines(), loc)
}

// localEdit replaces the document lines, re-renders, and schedules the
// outbound notification. Used by the structural editing operations below.
func (e *Engine) localEdit(lines []string) {
	e.doc.SetLines(lines)
	e.rerender()
	e.debouncer.Trigger(e.doc.Text())
}

// ApplyLineType converts the line at index to the target block type.
func (e *Engine) ApplyLineType(index int, target transform.Target) {
	e.localEdit(transform.ApplyLineType(e.doc.Lines(), index, target))
}

// ToggleInline toggles an inline format around the rune selection
// [start, end) on the line at index. Returns the updated selection.
func (e *Engine) ToggleInline(index, start, end int, format transform.Format) (int, int) {
	line, ok := e.doc.Line(index)
	if !ok {
		return start, end
	}
	newLine, newStart, newEnd := transform.ToggleInline(line, start, end, format)
	lines := e.doc.Lines()
	lines[index] = newLine
	e.localEdit(lines)
	return newStart, newEnd
}

// SplitLine splits the line at pos into two lines at the given rune offset,
// clamped to the line's length.
func (e *Engine) SplitLine(pos cursor.Position) {
	line, ok := e.doc.Line(pos.Line)
	if !ok {
		return
	}
	runes := []rune(line)
	at := pos.Char
	if at < 0 {
		at = 0
	}
	if at > len(runes) {
		at = len(runes)
	}

	lines := e.doc.Lines()
	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:pos.Line]...)
	out = append(out, string(runes[:at]), string(runes[at:]))
	out = append(out, lines[pos.Line+1:]...)
	e.localEdit(out)
}

// MergeLine joins the line at index onto the previous line. Index 0 and
// out-of-range indexes are no-ops.
func (e *Engine) MergeLine(index int) {
	if index <= 0 || index >= e.doc.LineCount() {
		return
	}
	lines := e.doc.Lines()
	lines[index-1] += lines[index]
	e.localEdit(append(lines[:index], lines[index+1:]...))
}

// Headings lists the document's headings for a table-of-contents view.
func (e *Engine) Headings() []document.Heading {
	return e.doc.Headings()
}

// HeadingPosition maps an activated heading index (by position in the
// Headings list) to a cursor position at the start of that heading's content.
// Out-of-range indexes return false.
func (e *Engine) HeadingPosition(index int) (cursor.Position, bool) {
	headings := e.doc.Headings()
	if index < 0 || index >= len(headings) {
		return cursor.Position{}, false
	}
	h := headings[index]
	return cursor.Position{Line: h.Line, Char: h.Level + 1}, true
}

// OpenLink routes an activated link target. https:// and data: targets are
// remote and handed off untouched; anything else resolves relative to the
// hosting document's directory.
func (e *Engine) OpenLink(target string) {
	if e.callbacks.OpenLink == nil {
		return
	}
	if strings.HasPrefix(target, "https://") || strings.HasPrefix(target, "data:") {
		e.callbacks.OpenLink(target, true)
		return
	}
	resolved := target
	if !filepath.IsAbs(target) && e.basePath != "" {
		resolved = filepath.Join(e.basePath, target)
	}
	e.callbacks.OpenLink(resolved, false)
}
