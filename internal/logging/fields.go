// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldInput  = "input"
	FieldOutput = "output"
	FieldReason = "reason"

	// Document fields.
	FieldLines    = "lines"
	FieldHeadings = "headings"
	FieldBytes    = "bytes"
	FieldLang     = "lang"

	// Engine fields.
	FieldDebounceMS = "debounce_ms"
	FieldMode       = "mode"
	FieldRemote     = "remote"
	FieldTarget     = "target"

	// Configuration fields.
	FieldTheme = "theme"
	FieldColor = "color"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
