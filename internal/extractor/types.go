// Package extractor turns a tree of plugin project directories into dataset
// records: it finds project directories, pulls the command implementation out
// of each project's sources, and extracts text from its documentation files.
package extractor

import "time"

// BraceMode selects how the end of the command method body is located.
type BraceMode string

const (
	// BraceBalanced stops at the brace that closes the method's opening brace,
	// ignoring braces inside comments, strings and character literals.
	BraceBalanced BraceMode = "balanced"

	// BraceGreedy extends the body to the last closing brace in the file.
	// It reproduces datasets built by the older regex-only extraction.
	BraceGreedy BraceMode = "greedy"
)

// Config holds everything the extraction pass needs.
type Config struct {
	RootDir string

	// Project discovery
	ExcludeSubstrings []string // case-insensitive, matched anywhere in a directory path
	SourceExtensions  []string // e.g. ".cs"
	IgnorePatterns    []string // glob patterns relative to RootDir

	// Command implementation
	InterfaceName string // e.g. "IExternalCommand"
	MethodName    string // e.g. "Execute"
	BraceMode     BraceMode

	// Documentation
	DocExtensions        []string // e.g. ".rtf", ".htm"
	DocExcludeSubstrings []string // e.g. "obj", "bin"
	MaxDocChars          int      // truncation length for markup and plain text
	SectionLabels        []string // recognized headers in rich text
	FallbackText         string   // rich-text value when no header is found
}

// Stats summarizes one extraction run.
type Stats struct {
	ProjectsFound         int     `json:"projects_found"`
	RecordsKept           int     `json:"records_kept"`
	ProjectsWithoutCode   int     `json:"projects_without_code"`
	DocsExtracted         int     `json:"docs_extracted"`
	DocsFailed            int     `json:"docs_failed"`
	ProcessingTimeSeconds float64 `json:"processing_time_seconds"`
}

func (s *Stats) finish(start time.Time) {
	s.ProcessingTimeSeconds = time.Since(start).Seconds()
}
