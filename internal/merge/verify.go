package merge

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
)

// ErrCountMismatch means the two streams hold different numbers of blocks.
var ErrCountMismatch = errors.New("code and documentation block counts differ")

var delimiterPattern = regexp.MustCompile(`(?m)^=== ([A-Z]+_BLOCK)_(\d{4,}) ===[ \t]*\r?$`)

// BlockIDs returns the identifiers of every delimiter of the given label, in
// file order.
func BlockIDs(text, label string) []int {
	ids := []int{}
	for _, m := range delimiterPattern.FindAllStringSubmatch(text, -1) {
		if m[1] != label {
			continue
		}
		id, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// Report is the outcome of a block-count check.
type Report struct {
	CodeBlocks int
	DocBlocks  int

	// UnpairedCode lists identifiers present only in the code stream;
	// UnpairedDocs those present only in the documentation stream.
	UnpairedCode []int
	UnpairedDocs []int
}

// Healthy reports whether both streams hold the same number of blocks.
// Identifier-level differences are informational only.
func (r *Report) Healthy() bool {
	return r.CodeBlocks == r.DocBlocks
}

// Difference is the absolute difference between the two block counts.
func (r *Report) Difference() int {
	if r.CodeBlocks > r.DocBlocks {
		return r.CodeBlocks - r.DocBlocks
	}
	return r.DocBlocks - r.CodeBlocks
}

// Err returns an ErrCountMismatch error when the report is not healthy.
func (r *Report) Err() error {
	if r.Healthy() {
		return nil
	}
	return fmt.Errorf("%w: %d code blocks, %d documentation blocks (difference %d)",
		ErrCountMismatch, r.CodeBlocks, r.DocBlocks, r.Difference())
}

// Verify counts the delimiters of both streams.
func Verify(codeText, docText string) *Report {
	codeIDs := BlockIDs(codeText, CodeBlockLabel)
	docIDs := BlockIDs(docText, DocBlockLabel)

	return &Report{
		CodeBlocks:   len(codeIDs),
		DocBlocks:    len(docIDs),
		UnpairedCode: difference(codeIDs, docIDs),
		UnpairedDocs: difference(docIDs, codeIDs),
	}
}

// VerifyFiles reads and verifies the two block files.
func VerifyFiles(codePath, docPath string) (*Report, error) {
	code, err := readFile(codePath)
	if err != nil {
		return nil, err
	}
	doc, err := readFile(docPath)
	if err != nil {
		return nil, err
	}
	return Verify(string(code), string(doc)), nil
}

// difference returns the sorted identifiers in a that are not in b.
func difference(a, b []int) []int {
	in := make(map[int]bool, len(b))
	for _, id := range b {
		in[id] = true
	}
	out := []int{}
	for _, id := range a {
		if !in[id] {
			out = append(out, id)
			in[id] = true
		}
	}
	sort.Ints(out)
	return out
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
