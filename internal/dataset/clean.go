package dataset

import (
	"strings"

	"github.com/mvp-joe/docpair/internal/fsutil"
)

// Keep reports whether a record satisfies every cleaning invariant: a
// non-blank execute method, project path and class name, and at least one
// documentation entry.
func Keep(r ProjectRecord) bool {
	if r.KeyCode == nil {
		return false
	}
	if strings.TrimSpace(r.KeyCode.ExecuteMethod) == "" {
		return false
	}
	if strings.TrimSpace(r.ProjectPath) == "" {
		return false
	}
	if strings.TrimSpace(r.KeyCode.ClassName) == "" {
		return false
	}
	return len(r.Documentation) > 0
}

// Clean returns the records that pass Keep, in their original order.
// Records are never rewritten, so Clean(Clean(x)) == Clean(x).
func Clean(records []ProjectRecord) []ProjectRecord {
	cleaned := make([]ProjectRecord, 0, len(records))
	for _, r := range records {
		if Keep(r) {
			cleaned = append(cleaned, r)
		}
	}
	return cleaned
}

// CleanFile cleans the dataset at path and replaces it in place. The file is
// guarded by an advisory lock for the whole read-filter-write cycle.
func CleanFile(path string) (kept, dropped int, err error) {
	lock := fsutil.NewLock(path)
	if err := lock.Lock(); err != nil {
		return 0, 0, err
	}
	defer lock.Unlock()

	records, err := Load(path)
	if err != nil {
		return 0, 0, err
	}

	cleaned := Clean(records)
	if err := Save(path, cleaned); err != nil {
		return 0, 0, err
	}

	return len(cleaned), len(records) - len(cleaned), nil
}
