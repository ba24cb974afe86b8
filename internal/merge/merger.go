// Package merge flattens a cleaned dataset into two parallel block files, one
// holding code fragments and one holding documentation sections, and checks
// that the two files stay in step.
package merge

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gobwas/glob"

	"github.com/mvp-joe/docpair/internal/dataset"
	"github.com/mvp-joe/docpair/internal/extractor"
)

// Block delimiter labels.
const (
	CodeBlockLabel = "CODE_BLOCK"
	DocBlockLabel  = "DOC_BLOCK"
)

// Block is one identifier-tagged unit of an output stream.
type Block struct {
	ID      int
	Payload string
}

// Pair ties a record's code block to its documentation block. Doc is nil
// when no configured section was found in the record's documentation.
type Pair struct {
	ID          int
	ProjectPath string
	Code        Block
	Doc         *Block
}

// Options configures a Merger.
type Options struct {
	// Sections are the labels to pull from each documentation text, in
	// output order. Empty means "summary" and "description".
	Sections []string

	// DocFiles restricts which documentation entries are used. Entries are
	// exact keys or glob patterns, applied in order. Empty means all entries
	// in key order.
	DocFiles []string

	// RequireDocs drops records without a documentation block instead of
	// emitting an unpaired code block.
	RequireDocs bool
}

// DefaultSections are used when Options.Sections is empty.
var DefaultSections = []string{"summary", "description"}

type docFilter struct {
	name string
	glob glob.Glob // nil for exact names
}

// Merger builds block pairs from dataset records.
type Merger struct {
	segmenter   extractor.Segmenter
	filters     []docFilter
	requireDocs bool
}

// New creates a Merger.
func New(opts Options) (*Merger, error) {
	sections := opts.Sections
	if len(sections) == 0 {
		sections = DefaultSections
	}

	filters := make([]docFilter, 0, len(opts.DocFiles))
	for _, name := range opts.DocFiles {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		f := docFilter{name: name}
		if strings.ContainsAny(name, "*?[{") {
			g, err := glob.Compile(name, '/')
			if err != nil {
				return nil, fmt.Errorf("invalid doc file pattern %q: %w", name, err)
			}
			f.glob = g
		}
		filters = append(filters, f)
	}

	return &Merger{
		segmenter:   extractor.NewInlineSegmenter(sections),
		filters:     filters,
		requireDocs: opts.RequireDocs,
	}, nil
}

// Result holds the pairs of one merge run.
type Result struct {
	Pairs []Pair

	// SkippedNoCode counts records without a non-blank code fragment.
	SkippedNoCode int
	// SkippedNoDocs counts records dropped by RequireDocs.
	SkippedNoDocs int
}

// Merge walks records in order and assigns identifiers 1, 2, ... to every
// record that produces a code block. A record whose documentation yields no
// section keeps its identifier with a nil Doc, so later identifiers are
// unaffected.
func (m *Merger) Merge(records []dataset.ProjectRecord) *Result {
	result := &Result{Pairs: []Pair{}}

	for _, record := range records {
		if record.KeyCode == nil {
			result.SkippedNoCode++
			continue
		}
		code := strings.TrimSpace(record.KeyCode.ExecuteMethod)
		if code == "" {
			result.SkippedNoCode++
			continue
		}

		doc := m.docPayload(record.Documentation)
		if doc == "" && m.requireDocs {
			result.SkippedNoDocs++
			continue
		}

		id := len(result.Pairs) + 1
		pair := Pair{
			ID:          id,
			ProjectPath: record.ProjectPath,
			Code:        Block{ID: id, Payload: code},
		}
		if doc != "" {
			pair.Doc = &Block{ID: id, Payload: doc}
		}
		result.Pairs = append(result.Pairs, pair)
	}

	return result
}

// docPayload segments each selected documentation text and joins the found
// sections as "[file][section]:\nbody" entries.
func (m *Merger) docPayload(docs map[string]string) string {
	if len(docs) == 0 {
		return ""
	}

	var parts []string
	for _, name := range m.selectFiles(docs) {
		for _, section := range m.segmenter.Segment(docs[name]) {
			parts = append(parts, fmt.Sprintf("[%s][%s]:\n%s", name, section.Name, section.Body))
		}
	}
	return strings.Join(parts, "\n\n")
}

// selectFiles returns the documentation keys to use, without duplicates.
func (m *Merger) selectFiles(docs map[string]string) []string {
	keys := make([]string, 0, len(docs))
	for k := range docs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if len(m.filters) == 0 {
		return keys
	}

	seen := make(map[string]bool)
	var selected []string
	for _, f := range m.filters {
		if f.glob == nil {
			if _, ok := docs[f.name]; ok && !seen[f.name] {
				seen[f.name] = true
				selected = append(selected, f.name)
			}
			continue
		}
		for _, k := range keys {
			if !seen[k] && f.glob.Match(k) {
				seen[k] = true
				selected = append(selected, k)
			}
		}
	}
	return selected
}

// CodeBlocks returns the code stream in identifier order.
func (r *Result) CodeBlocks() []Block {
	blocks := make([]Block, 0, len(r.Pairs))
	for _, p := range r.Pairs {
		blocks = append(blocks, p.Code)
	}
	return blocks
}

// DocBlocks returns the documentation stream in identifier order.
func (r *Result) DocBlocks() []Block {
	blocks := make([]Block, 0, len(r.Pairs))
	for _, p := range r.Pairs {
		if p.Doc != nil {
			blocks = append(blocks, *p.Doc)
		}
	}
	return blocks
}

// Unpaired returns the identifiers whose code block has no documentation.
func (r *Result) Unpaired() []int {
	var ids []int
	for _, p := range r.Pairs {
		if p.Doc == nil {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// CodeText renders the code stream file content.
func (r *Result) CodeText() string {
	return Render(CodeBlockLabel, r.CodeBlocks())
}

// DocText renders the documentation stream file content.
func (r *Result) DocText() string {
	return Render(DocBlockLabel, r.DocBlocks())
}

// Render writes each block as a delimiter line, its payload and a blank line.
func Render(label string, blocks []Block) string {
	var sb strings.Builder
	for _, b := range blocks {
		fmt.Fprintf(&sb, "=== %s_%04d ===\n", label, b.ID)
		sb.WriteString(b.Payload)
		sb.WriteString("\n\n")
	}
	return sb.String()
}
