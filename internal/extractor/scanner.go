package extractor

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// compiledPattern holds both the pattern string and compiled glob
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

func compilePatterns(patterns []string) ([]compiledPattern, error) {
	compiled := make([]compiledPattern, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		compiled = append(compiled, compiledPattern{pattern: pattern, glob: g})
	}
	return compiled, nil
}

// matchesAnyPattern checks if a slash-separated relative path matches any
// pattern. A directory also matches a "dir/**" pattern by its bare name.
func matchesAnyPattern(relPath string, patterns []compiledPattern) bool {
	for _, cp := range patterns {
		if cp.glob.Match(relPath) || cp.glob.Match(relPath+"/**") {
			return true
		}
	}
	return false
}

// extensionSet builds a lower-cased lookup set, adding a leading dot where
// the configuration omitted it.
func extensionSet(exts []string) map[string]bool {
	set := make(map[string]bool, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = true
	}
	return set
}

func lowerAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.ToLower(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// Scanner finds project directories: directories that directly contain a
// source file and whose path carries no excluded substring.
type Scanner struct {
	excludes       []string
	extensions     map[string]bool
	ignorePatterns []compiledPattern
}

// NewScanner creates a project scanner.
func NewScanner(excludeSubstrings, sourceExtensions, ignorePatterns []string) (*Scanner, error) {
	ignore, err := compilePatterns(ignorePatterns)
	if err != nil {
		return nil, err
	}
	return &Scanner{
		excludes:       lowerAll(excludeSubstrings),
		extensions:     extensionSet(sourceExtensions),
		ignorePatterns: ignore,
	}, nil
}

// FindProjects walks rootDir and returns every qualifying directory in walk
// order. Nested directories qualify independently of their parents.
func (s *Scanner) FindProjects(rootDir string) ([]string, error) {
	projects := []string{}

	err := filepath.WalkDir(rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == rootDir {
				return err
			}
			log.Printf("Warning: failed to read %s: %v\n", path, err)
			return nil
		}
		if !d.IsDir() {
			return nil
		}

		// A child path contains its parent path, so an excluded or ignored
		// directory excludes its whole subtree.
		if containsAny(strings.ToLower(path), s.excludes) {
			return filepath.SkipDir
		}
		if path != rootDir && len(s.ignorePatterns) > 0 {
			relPath, err := filepath.Rel(rootDir, path)
			if err == nil && matchesAnyPattern(filepath.ToSlash(relPath), s.ignorePatterns) {
				return filepath.SkipDir
			}
		}

		if s.hasSourceFile(path) {
			projects = append(projects, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", rootDir, err)
	}

	return projects, nil
}

// hasSourceFile reports whether dir directly contains a source file.
func (s *Scanner) hasSourceFile(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("Warning: failed to list %s: %v\n", dir, err)
		return false
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if s.extensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			return true
		}
	}
	return false
}
