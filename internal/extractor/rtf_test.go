package extractor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for RTFToText:
// - Paragraph marks become newlines and delimiter spaces are consumed
// - Font tables, ignorable destinations and metadata are dropped
// - Hex escapes decode through the document code page
// - Unicode escapes skip their fallback characters
// - Escaped braces and backslashes are literal
// - An unbalanced closing brace is ErrMalformedRTF

func TestRTFToText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "paragraphs",
			src:  `{\rtf1\ansi{\fonttbl\f0\fswiss Helvetica;}\f0\pard Summary:\par Does things.\par}`,
			want: "Summary:\nDoes things.\n",
		},
		{
			name: "ignorable destination",
			src:  `{\rtf1{\*\generator Riched20 10.0;}{\info{\author Someone}}Visible}`,
			want: "Visible",
		},
		{
			name: "hex escape default code page",
			src:  `{\rtf1\ansi caf\'e9}`,
			want: "caf\u00e9",
		},
		{
			name: "hex escape cyrillic code page",
			src:  `{\rtf1\ansi\ansicpg1251 \'cf\'f0\'e8}`,
			want: "\u041f\u0440\u0438",
		},
		{
			name: "unicode escape",
			src:  `{\rtf1 Price \u8364? 5}`,
			want: "Price \u20ac 5",
		},
		{
			name: "negative unicode escape",
			src:  `{\rtf1\uc0 \u-255}`,
			want: "\uff01",
		},
		{
			name: "escaped symbols",
			src:  `{\rtf1 a\{b\}c\\d}`,
			want: `a{b}c\d`,
		},
		{
			name: "tab and line",
			src:  `{\rtf1 a\tab b\line c}`,
			want: "a\tb\nc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RTFToText(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRTFToText_Malformed(t *testing.T) {
	t.Parallel()

	_, err := RTFToText(`{\rtf1 text}}`)
	assert.True(t, errors.Is(err, ErrMalformedRTF))
}
