package markdown_test

import (
	"testing"

	"github.com/marcelsud/release-notify/message/markdown"
	"github.com/stretchr/testify/assert"
)

func TestConverter_Convert(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text is unchanged",
			input:    "Released {version}!",
			expected: "Released {version}!",
		},
		{
			name:     "strong and emphasis",
			input:    "**bold** and *italic*",
			expected: "*bold* and _italic_",
		},
		{
			name:     "heading becomes bold line",
			input:    "# Release notes",
			expected: "*Release notes*",
		},
		{
			name:     "strikethrough",
			input:    "~~deprecated~~",
			expected: "~deprecated~",
		},
		{
			name:     "inline link",
			input:    "[changelog](https://example.com/changes)",
			expected: "<https://example.com/changes|changelog>",
		},
		{
			name:     "inline code",
			input:    "run `make release`",
			expected: "run `make release`",
		},
		{
			name:     "bullet list",
			input:    "- first\n- second",
			expected: "•   first\n•   second",
		},
		{
			name:     "ordered list",
			input:    "1. one\n2. two",
			expected: "1. one\n2. two",
		},
		{
			name:     "fenced code block",
			input:    "```\nx := 1\n```",
			expected: "```\nx := 1\n```",
		},
		{
			name:     "paragraphs keep blank line",
			input:    "first\n\nsecond",
			expected: "first\n\nsecond",
		},
		{
			name:     "special characters are escaped",
			input:    "a & b",
			expected: "a &amp; b",
		},
		{
			name:     "blockquote",
			input:    "> shipped",
			expected: "> shipped",
		},
	}

	converter := markdown.New()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, converter.Convert(tc.input))
		})
	}
}
