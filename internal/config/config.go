package config

// Config represents the complete docpair configuration.
// It can be loaded from .docpair/config.yml with environment variable overrides.
type Config struct {
	Scan    ScanConfig    `yaml:"scan" mapstructure:"scan"`
	Code    CodeConfig    `yaml:"code" mapstructure:"code"`
	Docs    DocsConfig    `yaml:"docs" mapstructure:"docs"`
	Merge   MergeConfig   `yaml:"merge" mapstructure:"merge"`
	Dataset DatasetConfig `yaml:"dataset" mapstructure:"dataset"`
}

// ScanConfig defines which directories count as projects.
type ScanConfig struct {
	ExcludeSubstrings []string `yaml:"exclude_substrings" mapstructure:"exclude_substrings"` // case-insensitive path substrings to skip
	SourceExtensions  []string `yaml:"source_extensions" mapstructure:"source_extensions"`   // e.g. [".cs"]
	Ignore            []string `yaml:"ignore" mapstructure:"ignore"`                         // glob patterns relative to the root
}

// CodeConfig defines how the command implementation is recognized.
type CodeConfig struct {
	Interface     string `yaml:"interface" mapstructure:"interface"`           // implemented interface, e.g. "IExternalCommand"
	Method        string `yaml:"method" mapstructure:"method"`                 // command method, e.g. "Execute"
	BraceMatching string `yaml:"brace_matching" mapstructure:"brace_matching"` // "balanced" or "greedy"
}

// DocsConfig defines which documentation files are read and how.
type DocsConfig struct {
	Extensions        []string `yaml:"extensions" mapstructure:"extensions"`
	ExcludeSubstrings []string `yaml:"exclude_substrings" mapstructure:"exclude_substrings"` // coarse build-output filter
	MaxChars          int      `yaml:"max_chars" mapstructure:"max_chars"`                   // truncation for markup and plain text
	Labels            []string `yaml:"labels" mapstructure:"labels"`                         // rich-text section headers
	Fallback          string   `yaml:"fallback" mapstructure:"fallback"`                     // rich-text value when no header is found
}

// MergeConfig defines the flattened block output.
type MergeConfig struct {
	OutputDir   string   `yaml:"output_dir" mapstructure:"output_dir"`
	Sections    []string `yaml:"sections" mapstructure:"sections"`
	DocFiles    []string `yaml:"doc_files" mapstructure:"doc_files"` // empty means every documentation file
	RequireDocs bool     `yaml:"require_docs" mapstructure:"require_docs"`
	CodeFile    string   `yaml:"code_file" mapstructure:"code_file"`
	DocFile     string   `yaml:"doc_file" mapstructure:"doc_file"`
}

// DatasetConfig locates the dataset file.
type DatasetConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Scan: ScanConfig{
			ExcludeSubstrings: []string{"VB", "VB.NET"},
			SourceExtensions:  []string{".cs"},
			Ignore:            []string{},
		},
		Code: CodeConfig{
			Interface:     "IExternalCommand",
			Method:        "Execute",
			BraceMatching: "balanced",
		},
		Docs: DocsConfig{
			Extensions:        []string{".htm", ".html", ".rtf", ".txt"},
			ExcludeSubstrings: []string{"obj", "bin"},
			MaxChars:          500,
			Labels:            []string{"summary", "description"},
			Fallback:          "No summary or description found",
		},
		Merge: MergeConfig{
			OutputDir:   "extracted_content",
			Sections:    []string{"summary", "description"},
			DocFiles:    []string{},
			RequireDocs: false,
			CodeFile:    "all_codes.txt",
			DocFile:     "all_docs.txt",
		},
		Dataset: DatasetConfig{
			Path: "project_dataset.json",
		},
	}
}
