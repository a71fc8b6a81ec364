package escape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdlive/pkg/escape"
)

func TestHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text", "hello world", "hello world"},
		{"empty", "", ""},
		{"ampersand", "a & b", "a &amp; b"},
		{"angle brackets", "<div>", "&lt;div&gt;"},
		{"quotes", `say "hi"`, "say &quot;hi&quot;"},
		{"apostrophe", "it's", "it&#39;s"},
		{"all five", `&<>"'`, "&amp;&lt;&gt;&quot;&#39;"},
		{
			// Ampersand-first ordering: the entity text produced for "<"
			// must not have its own ampersand re-escaped.
			name:     "no double escaping within one call",
			input:    "&lt;",
			expected: "&amp;lt;",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, escape.HTML(testCase.input))
		})
	}
}
