package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdlive/pkg/langdetect"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token string
		want  string
	}{
		{"", "text"},
		{"  ", "text"},
		{"go", "go"},
		{"golang", "go"},
		{"Go", "go"},
		{"py", "python"},
		{"Py", "python"},
		{"python", "python"},
		{"yml", "yaml"},
		{"js", "javascript"},
		{"ts", "typescript"},
		{"sh", "shell"},
		{"c++", "c++"},
		{"made-up-lang", "made-up-lang"},
		{"Weird Token!", "weird-token"},
	}

	for _, testCase := range tests {
		t.Run(testCase.token, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, langdetect.Normalize(testCase.token))
		})
	}
}

func TestDetect(t *testing.T) {
	t.Parallel()

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "text", langdetect.Detect(nil))
		assert.Equal(t, "text", langdetect.Detect([]byte{}))
	})

	t.Run("shebang", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "shell", langdetect.Detect([]byte("#!/bin/bash\necho hi\n")))
		assert.Equal(t, "python", langdetect.Detect([]byte("#!/usr/bin/env python\nprint(1)\n")))
	})

	t.Run("unrecognizable content falls back", func(t *testing.T) {
		t.Parallel()

		got := langdetect.Detect([]byte("zzzz qqqq"))
		assert.NotEmpty(t, got, "detection is total")
	})
}
