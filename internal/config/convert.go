package config

import (
	"path/filepath"
	"strings"

	"github.com/mvp-joe/docpair/internal/extractor"
	"github.com/mvp-joe/docpair/internal/merge"
)

// ToExtractorConfig converts a Config to an extractor.Config.
// The rootDir parameter specifies the corpus directory to scan.
func (c *Config) ToExtractorConfig(rootDir string) *extractor.Config {
	return &extractor.Config{
		RootDir:              rootDir,
		ExcludeSubstrings:    c.Scan.ExcludeSubstrings,
		SourceExtensions:     c.Scan.SourceExtensions,
		IgnorePatterns:       c.Scan.Ignore,
		InterfaceName:        c.Code.Interface,
		MethodName:           c.Code.Method,
		BraceMode:            extractor.BraceMode(strings.ToLower(c.Code.BraceMatching)),
		DocExtensions:        c.Docs.Extensions,
		DocExcludeSubstrings: c.Docs.ExcludeSubstrings,
		MaxDocChars:          c.Docs.MaxChars,
		SectionLabels:        c.Docs.Labels,
		FallbackText:         c.Docs.Fallback,
	}
}

// ToMergeOptions converts the merge section to merge.Options.
func (c *Config) ToMergeOptions() merge.Options {
	return merge.Options{
		Sections:    c.Merge.Sections,
		DocFiles:    c.Merge.DocFiles,
		RequireDocs: c.Merge.RequireDocs,
	}
}

// OutputFiles returns the configured block file names.
func (c *Config) OutputFiles() merge.OutputFiles {
	return merge.OutputFiles{
		CodeFile: c.Merge.CodeFile,
		DocFile:  c.Merge.DocFile,
	}
}

// ManifestPath returns the manifest location inside the output directory.
func (c *Config) ManifestPath() string {
	return filepath.Join(c.Merge.OutputDir, merge.ManifestFileName)
}
