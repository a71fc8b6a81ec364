// Package langdetect resolves language tags for fenced code blocks.
// It normalizes the fence's language token to a canonical tag for styling
// class names, and uses go-enry to guess a language for unlabeled fences.
package langdetect

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// langText is the fallback tag when nothing better is known.
const langText = "text"

// classifierCandidates bounds the enry classifier to languages that commonly
// appear in fenced blocks.
//
//nolint:gochecknoglobals // Read-only lookup table.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// fenceAliases maps fence tokens that editors commonly use but enry does not
// register as aliases.
//
//nolint:gochecknoglobals // Read-only lookup table.
var fenceAliases = map[string]string{
	"py":  "python",
	"yml": "yaml",
}

// Normalize converts a fence language token to a canonical styling tag.
// Aliases are resolved through the supplemental table first, then enry
// ("golang" -> "go", "sh" -> "shell"); unknown tokens are lower-cased and
// sanitized so they stay safe inside a CSS class name. An empty token
// normalizes to "text".
func Normalize(token string) string {
	token = strings.TrimSpace(token)
	if token == "" {
		return langText
	}
	if lang, ok := fenceAliases[strings.ToLower(token)]; ok {
		return lang
	}
	if lang, ok := enry.GetLanguageByAlias(token); ok {
		return tag(lang)
	}
	return tag(token)
}

// Detect guesses the language of an unlabeled fenced block's content.
// Returns "text" when detection fails or confidence is low.
func Detect(content []byte) string {
	if len(content) == 0 {
		return langText
	}

	// A shebang is the most reliable signal.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return tag(lang)
	}

	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return tag(lang)
	}

	return langText
}

// tag lower-cases a language name and strips characters that are not valid in
// a styling class name.
func tag(lang string) string {
	lang = strings.ToLower(lang)
	var b strings.Builder
	for _, r := range lang {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '+', r == '#':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return langText
	}
	return b.String()
}
