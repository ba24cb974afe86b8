package extractor

import (
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// DocCollector gathers the documentation files of a project and extracts
// their text.
type DocCollector struct {
	extensions map[string]bool
	excludes   []string
	text       *TextExtractor
}

// NewDocCollector creates a collector for files with the given extensions.
// Any file whose path contains one of excludeSubstrings (case-insensitive) is
// skipped; this is a coarse build-output filter, not a path segment match.
func NewDocCollector(extensions, excludeSubstrings []string, text *TextExtractor) *DocCollector {
	return &DocCollector{
		extensions: extensionSet(extensions),
		excludes:   lowerAll(excludeSubstrings),
		text:       text,
	}
}

// Collect maps each documentation file's path, relative to projectDir, to its
// extracted text. Files that cannot be read or parsed are logged and left
// out; failed reports how many.
func (c *DocCollector) Collect(projectDir string) (docs map[string]string, failed int) {
	docs = make(map[string]string)

	for _, path := range c.candidates(projectDir) {
		relPath, err := filepath.Rel(projectDir, path)
		if err != nil {
			relPath = filepath.Base(path)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			log.Printf("Warning: failed to read %s: %v\n", path, err)
			failed++
			continue
		}

		text, err := c.text.Extract(path, content)
		if err != nil {
			log.Printf("Warning: failed to extract text from %s: %v\n", path, err)
			failed++
			continue
		}
		docs[filepath.ToSlash(relPath)] = text
	}

	return docs, failed
}

func (c *DocCollector) candidates(dir string) []string {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path != dir {
				log.Printf("Warning: failed to read %s: %v\n", path, err)
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !c.extensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		if containsAny(strings.ToLower(path), c.excludes) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		log.Printf("Warning: failed to list documentation in %s: %v\n", dir, err)
	}
	return files
}
