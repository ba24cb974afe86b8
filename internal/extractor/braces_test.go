package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test Plan for matchBrace:
// - Nested blocks close at the matching brace
// - Braces inside line and block comments are ignored
// - Braces inside char, regular, verbatim, interpolated and raw strings are ignored
// - Interpolation holes are balanced
// - An unterminated block reports false and the last index

func TestMatchBrace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{"nested", `{ a { b } c }`},
		{"line comment", "{ // }\n }"},
		{"block comment", `{ /* } */ }`},
		{"char literal", `{ '}' }`},
		{"escaped char literal", `{ '\'' }`},
		{"string", `{ "\"}" }`},
		{"verbatim string", `{ @"a""}" }`},
		{"interpolated", `{ $"{x} }}" }`},
		{"interpolated hole with string", `{ $"{Format("}")}" }`},
		{"verbatim interpolated", `{ $@"{x}\" }`},
		{"raw string", `{ """ } """ }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end, ok := matchBrace(tt.src, 0)
			assert.True(t, ok)
			assert.Equal(t, len(tt.src)-1, end)
		})
	}
}

func TestMatchBrace_StopsAtOwnBlock(t *testing.T) {
	t.Parallel()

	src := `{ x(); } y(); }`
	end, ok := matchBrace(src, 0)
	assert.True(t, ok)
	assert.Equal(t, 7, end)
}

func TestMatchBrace_Unterminated(t *testing.T) {
	t.Parallel()

	src := `{ if (x) { y(); }`
	end, ok := matchBrace(src, 0)
	assert.False(t, ok)
	assert.Equal(t, len(src)-1, end)
}
