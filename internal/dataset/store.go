package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mvp-joe/docpair/internal/fsutil"
)

// ErrNotFound indicates the dataset file does not exist.
var ErrNotFound = errors.New("dataset not found")

// Load reads a JSON array of ProjectRecord from path.
func Load(path string) ([]ProjectRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	var records []ProjectRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}
	return records, nil
}

// Encode renders records as indented UTF-8 JSON. Non-ASCII text and markup
// characters are written as-is rather than escaped.
func Encode(records []ProjectRecord) ([]byte, error) {
	if records == nil {
		records = []ProjectRecord{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, fmt.Errorf("failed to marshal dataset: %w", err)
	}
	return buf.Bytes(), nil
}

// Save replaces the dataset at path with records as a whole-file write.
func Save(path string, records []ProjectRecord) error {
	data, err := Encode(records)
	if err != nil {
		return err
	}
	if err := fsutil.AtomicWrite(path, data); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}
	return nil
}
