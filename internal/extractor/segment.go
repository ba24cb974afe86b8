package extractor

import (
	"regexp"
	"strings"
)

// DocSection is a named span of documentation text.
type DocSection struct {
	Name string
	Body string
}

// Segmenter slices plain text into labelled sections. Sections are returned
// in the order of the segmenter's label list and only for labels present in
// the text.
type Segmenter interface {
	Segment(text string) []DocSection
}

func normalizeLabels(labels []string) []string {
	out := make([]string, 0, len(labels))
	seen := make(map[string]bool, len(labels))
	for _, l := range labels {
		l = strings.ToLower(strings.TrimSpace(l))
		if l == "" || seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}

// HeaderSegmenter recognizes header lines: a line holding nothing but a label,
// optionally followed by a colon. Text before the first header is discarded.
type HeaderSegmenter struct {
	labels []string
	header *regexp.Regexp
}

// NewHeaderSegmenter creates a line-oriented segmenter for labels.
func NewHeaderSegmenter(labels []string) *HeaderSegmenter {
	labels = normalizeLabels(labels)
	quoted := make([]string, len(labels))
	for i, l := range labels {
		quoted[i] = regexp.QuoteMeta(l)
	}
	s := &HeaderSegmenter{labels: labels}
	if len(labels) > 0 {
		s.header = regexp.MustCompile(`(?i)^(` + strings.Join(quoted, "|") + `)[:\x{FF1A}]?\s*$`)
	}
	return s
}

// Segment implements Segmenter. A label that appears twice keeps the body of
// its last occurrence.
func (s *HeaderSegmenter) Segment(text string) []DocSection {
	if s.header == nil {
		return []DocSection{}
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")

	bodies := make(map[string][]string)
	current := ""
	for _, line := range strings.Split(text, "\n") {
		if m := s.header.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			current = strings.ToLower(m[1])
			bodies[current] = []string{}
			continue
		}
		if current != "" {
			bodies[current] = append(bodies[current], line)
		}
	}

	sections := []DocSection{}
	for _, label := range s.labels {
		if lines, ok := bodies[label]; ok {
			sections = append(sections, DocSection{
				Name: label,
				Body: strings.TrimSpace(strings.Join(lines, "\n")),
			})
		}
	}
	return sections
}

// nextInlineLabel marks the end of an inline section: a new line starting
// with a word immediately followed by a colon.
var nextInlineLabel = regexp.MustCompile(`\n[\p{L}\p{N}_]+:`)

// InlineSegmenter finds "label:" anywhere in the text; the body runs to the
// next line that starts with "word:" or to the end of the text. Only the
// first occurrence of each label is used.
type InlineSegmenter struct {
	labels []string
	starts []*regexp.Regexp
}

// NewInlineSegmenter creates a colon-delimited segmenter for labels.
func NewInlineSegmenter(labels []string) *InlineSegmenter {
	labels = normalizeLabels(labels)
	starts := make([]*regexp.Regexp, len(labels))
	for i, l := range labels {
		starts[i] = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(l) + `:`)
	}
	return &InlineSegmenter{labels: labels, starts: starts}
}

// Segment implements Segmenter.
func (s *InlineSegmenter) Segment(text string) []DocSection {
	sections := []DocSection{}
	for i, label := range s.labels {
		loc := s.starts[i].FindStringIndex(text)
		if loc == nil {
			continue
		}
		body := text[loc[1]:]
		if end := nextInlineLabel.FindStringIndex(body); end != nil {
			body = body[:end[0]]
		}
		sections = append(sections, DocSection{Name: label, Body: strings.TrimSpace(body)})
	}
	return sections
}
