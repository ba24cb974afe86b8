package extractor

import (
	"context"
	"fmt"
	"time"

	"github.com/mvp-joe/docpair/internal/dataset"
)

// Assembler combines the code and documentation of one project into a record.
type Assembler struct {
	code *CodeExtractor
	docs *DocCollector
}

// NewAssembler creates an Assembler from its two collaborators.
func NewAssembler(code *CodeExtractor, docs *DocCollector) *Assembler {
	return &Assembler{code: code, docs: docs}
}

// Assemble builds the record for dir. The record is returned even when no
// key code was found; failed counts documentation files that were skipped.
func (a *Assembler) Assemble(dir string) (record dataset.ProjectRecord, failed int) {
	docs, failed := a.docs.Collect(dir)
	return dataset.ProjectRecord{
		ProjectPath:   dir,
		KeyCode:       a.code.Extract(dir),
		Documentation: docs,
	}, failed
}

// Result is the outcome of an extraction run.
type Result struct {
	Records []dataset.ProjectRecord
	Stats   *Stats
}

// Extractor runs the whole extraction pass over a root directory.
type Extractor struct {
	config    *Config
	scanner   *Scanner
	assembler *Assembler
	progress  ProgressReporter
}

// New creates an Extractor with a no-op progress reporter.
func New(config *Config) (*Extractor, error) {
	return NewWithProgress(config, &NoOpProgressReporter{})
}

// NewWithProgress creates an Extractor reporting to progress.
func NewWithProgress(config *Config, progress ProgressReporter) (*Extractor, error) {
	if config == nil {
		return nil, fmt.Errorf("config is required")
	}

	scanner, err := NewScanner(config.ExcludeSubstrings, config.SourceExtensions, config.IgnorePatterns)
	if err != nil {
		return nil, fmt.Errorf("failed to create project scanner: %w", err)
	}

	code, err := NewCodeExtractor(config.SourceExtensions, config.InterfaceName, config.MethodName, config.BraceMode)
	if err != nil {
		return nil, fmt.Errorf("failed to create code extractor: %w", err)
	}

	text := NewTextExtractor(config.MaxDocChars, config.SectionLabels, config.FallbackText)
	docs := NewDocCollector(config.DocExtensions, config.DocExcludeSubstrings, text)

	if progress == nil {
		progress = &NoOpProgressReporter{}
	}

	return &Extractor{
		config:    config,
		scanner:   scanner,
		assembler: NewAssembler(code, docs),
		progress:  progress,
	}, nil
}

// Run scans the root directory and assembles one record per project that has
// key code, in scan order. Cancellation is checked between projects.
func (e *Extractor) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	stats := &Stats{}

	e.progress.OnScanStart(e.config.RootDir)
	projects, err := e.scanner.FindProjects(e.config.RootDir)
	if err != nil {
		return nil, err
	}
	stats.ProjectsFound = len(projects)
	e.progress.OnScanComplete(len(projects))

	records := []dataset.ProjectRecord{}
	for _, dir := range projects {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, failed := e.assembler.Assemble(dir)
		stats.DocsFailed += failed
		stats.DocsExtracted += len(record.Documentation)

		kept := record.KeyCode != nil
		if kept {
			records = append(records, record)
			stats.RecordsKept++
		} else {
			stats.ProjectsWithoutCode++
		}
		e.progress.OnProjectProcessed(dir, kept)
	}

	stats.finish(start)
	e.progress.OnComplete(stats)

	return &Result{Records: records, Stats: stats}, nil
}
