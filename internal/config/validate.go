package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

var (
	// ErrEmptyExtensions indicates a missing source or documentation extension list
	ErrEmptyExtensions = errors.New("empty extension list")

	// ErrInvalidBraceMode indicates an unsupported brace matching mode
	ErrInvalidBraceMode = errors.New("invalid brace matching mode")

	// ErrInvalidMaxChars indicates a non-positive truncation length
	ErrInvalidMaxChars = errors.New("invalid max chars")

	// ErrEmptyLabels indicates a missing section label list
	ErrEmptyLabels = errors.New("empty section labels")

	// ErrEmptyPattern indicates a missing interface or method name, or an
	// invalid glob pattern
	ErrEmptyPattern = errors.New("empty or invalid pattern")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if err := validateScan(&cfg.Scan); err != nil {
		errs = append(errs, err)
	}

	if err := validateCode(&cfg.Code); err != nil {
		errs = append(errs, err)
	}

	if err := validateDocs(&cfg.Docs); err != nil {
		errs = append(errs, err)
	}

	if err := validateMerge(&cfg.Merge); err != nil {
		errs = append(errs, err)
	}

	if strings.TrimSpace(cfg.Dataset.Path) == "" {
		errs = append(errs, fmt.Errorf("%w: dataset.path is required", ErrEmptyPattern))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validateScan(cfg *ScanConfig) error {
	var errs []error

	if len(nonBlank(cfg.SourceExtensions)) == 0 {
		errs = append(errs, fmt.Errorf("%w: scan.source_extensions needs at least one entry", ErrEmptyExtensions))
	}

	for _, pattern := range cfg.Ignore {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			errs = append(errs, fmt.Errorf("%w: scan.ignore %q: %v", ErrEmptyPattern, pattern, err))
		}
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validateCode(cfg *CodeConfig) error {
	var errs []error

	if strings.TrimSpace(cfg.Interface) == "" {
		errs = append(errs, fmt.Errorf("%w: code.interface is required", ErrEmptyPattern))
	}

	if strings.TrimSpace(cfg.Method) == "" {
		errs = append(errs, fmt.Errorf("%w: code.method is required", ErrEmptyPattern))
	}

	mode := strings.ToLower(cfg.BraceMatching)
	if mode != "balanced" && mode != "greedy" {
		errs = append(errs, fmt.Errorf("%w: must be 'balanced' or 'greedy', got '%s'", ErrInvalidBraceMode, cfg.BraceMatching))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validateDocs(cfg *DocsConfig) error {
	var errs []error

	if len(nonBlank(cfg.Extensions)) == 0 {
		errs = append(errs, fmt.Errorf("%w: docs.extensions needs at least one entry", ErrEmptyExtensions))
	}

	if cfg.MaxChars <= 0 {
		errs = append(errs, fmt.Errorf("%w: docs.max_chars must be positive, got %d", ErrInvalidMaxChars, cfg.MaxChars))
	}

	if len(nonBlank(cfg.Labels)) == 0 {
		errs = append(errs, fmt.Errorf("%w: docs.labels needs at least one entry", ErrEmptyLabels))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validateMerge(cfg *MergeConfig) error {
	var errs []error

	if len(nonBlank(cfg.Sections)) == 0 {
		errs = append(errs, fmt.Errorf("%w: merge.sections needs at least one entry", ErrEmptyLabels))
	}

	if strings.TrimSpace(cfg.OutputDir) == "" {
		errs = append(errs, fmt.Errorf("%w: merge.output_dir is required", ErrEmptyPattern))
	}

	if strings.TrimSpace(cfg.CodeFile) == "" || strings.TrimSpace(cfg.DocFile) == "" {
		errs = append(errs, fmt.Errorf("%w: merge.code_file and merge.doc_file are required", ErrEmptyPattern))
	} else if cfg.CodeFile == cfg.DocFile {
		errs = append(errs, fmt.Errorf("%w: merge.code_file and merge.doc_file must differ", ErrEmptyPattern))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func nonBlank(values []string) []string {
	var out []string
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

// joinErrors combines multiple errors into a single error with clear formatting.
// The sentinel errors stay reachable through errors.Is.
func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	if len(errs) == 1 {
		return errs[0]
	}

	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}

	return &multiError{
		errs: errs,
		msg:  fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - ")),
	}
}

type multiError struct {
	errs []error
	msg  string
}

func (e *multiError) Error() string   { return e.msg }
func (e *multiError) Unwrap() []error { return e.errs }
