package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test Plan for segmenters:
// HeaderSegmenter
// - Header lines open sections and are discarded; text before the first header is dropped
// - Headers are case-insensitive and accept an ASCII or full-width colon
// - A repeated label keeps its last body
// - Sections come back in label order, only for observed labels
// - "Label: text" on one line is not a header line
// InlineSegmenter
// - "label:" anywhere starts a body that runs to the next "word:" line
// - Matching is case-insensitive and only the first occurrence counts
// - Missing labels are omitted

func TestHeaderSegmenter_Sections(t *testing.T) {
	t.Parallel()

	s := NewHeaderSegmenter([]string{"summary", "description"})
	text := "Sample title\r\nSummary\r\n  line one\r\nline two\r\nDESCRIPTION:\r\nbody\r\n"

	assert.Equal(t, []DocSection{
		{Name: "summary", Body: "line one\nline two"},
		{Name: "description", Body: "body"},
	}, s.Segment(text))
}

func TestHeaderSegmenter_FullWidthColon(t *testing.T) {
	t.Parallel()

	s := NewHeaderSegmenter([]string{"summary"})
	assert.Equal(t, []DocSection{{Name: "summary", Body: "x"}}, s.Segment("  Summary\uFF1A  \nx"))
}

func TestHeaderSegmenter_LastOccurrenceWins(t *testing.T) {
	t.Parallel()

	s := NewHeaderSegmenter([]string{"summary"})
	assert.Equal(t, []DocSection{{Name: "summary", Body: "b"}}, s.Segment("Summary\na\nSummary\nb"))
}

func TestHeaderSegmenter_LabelOrder(t *testing.T) {
	t.Parallel()

	s := NewHeaderSegmenter([]string{"Summary", "Description"})
	got := s.Segment("Description\nsecond\nSummary\nfirst")

	assert.Equal(t, []DocSection{
		{Name: "summary", Body: "first"},
		{Name: "description", Body: "second"},
	}, got)
}

func TestHeaderSegmenter_NoHeaders(t *testing.T) {
	t.Parallel()

	s := NewHeaderSegmenter([]string{"summary", "description"})
	assert.Empty(t, s.Segment("Summary: on one line\nDescription of things"))
	assert.Empty(t, NewHeaderSegmenter(nil).Segment("Summary\nx"))
}

func TestInlineSegmenter_Sections(t *testing.T) {
	t.Parallel()

	s := NewInlineSegmenter([]string{"summary", "description"})
	text := "Title\nSUMMARY: a\nmore\nDescription: b\nNotes: c\nSummary: ignored"

	assert.Equal(t, []DocSection{
		{Name: "summary", Body: "a\nmore"},
		{Name: "description", Body: "b"},
	}, s.Segment(text))
}

func TestInlineSegmenter_SingleLine(t *testing.T) {
	t.Parallel()

	s := NewInlineSegmenter([]string{"summary"})
	assert.Equal(t, []DocSection{{Name: "summary", Body: "does X"}}, s.Segment("Summary: does X"))
}

func TestInlineSegmenter_BodyOnFollowingLines(t *testing.T) {
	t.Parallel()

	s := NewInlineSegmenter([]string{"description"})
	got := s.Segment("Description:\nfirst line\nsecond line\nRemarks: other")
	assert.Equal(t, []DocSection{{Name: "description", Body: "first line\nsecond line"}}, got)
}

func TestInlineSegmenter_MissingLabel(t *testing.T) {
	t.Parallel()

	s := NewInlineSegmenter([]string{"summary", "description"})
	assert.Equal(t, []DocSection{{Name: "description", Body: "only"}}, s.Segment("Description: only"))
	assert.Empty(t, s.Segment("no labels here"))
}
