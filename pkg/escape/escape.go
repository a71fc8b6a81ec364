// Package escape provides HTML entity escaping for raw markdown spans.
package escape

import "strings"

// replacer escapes the five HTML-significant characters with named entities.
// Ampersand must be replaced first so entities produced for the other four
// characters are not double-escaped; strings.Replacer scans the input once
// and never rescans its own output, which gives exactly that behavior.
//
//nolint:gochecknoglobals // Read-only lookup table.
var replacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// HTML escapes text for inclusion in HTML markup.
// Call it exactly once per raw span; escaping already-escaped output
// corrupts entities.
func HTML(text string) string {
	return replacer.Replace(text)
}
