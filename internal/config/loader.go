package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	rootDir    string
	configFile string
}

// NewLoader creates a new configuration loader for the given root directory.
func NewLoader(rootDir string) Loader {
	return &loader{
		rootDir: rootDir,
	}
}

// NewFileLoader creates a loader that reads one explicit config file. Unlike
// the directory loader, a missing file is an error.
func NewFileLoader(path string) Loader {
	return &loader{
		configFile: path,
	}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (DOCPAIR_*)
// 2. Config file (.docpair/config.yml or .docpair/config.yaml)
// 3. Default values
func (l *loader) Load() (*Config, error) {
	v := viper.New()

	if l.configFile != "" {
		v.SetConfigFile(l.configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Join(l.rootDir, ".docpair"))
	}

	// Replace . with _ in env var names (e.g., DOCPAIR_CODE_BRACE_MATCHING)
	v.SetEnvPrefix("DOCPAIR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	bindEnv(v)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing file in the search path is fine; defaults + env apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || l.configFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// bindEnv binds the scalar keys so they can be set from the environment
// without a config file. List keys take comma-separated values.
func bindEnv(v *viper.Viper) {
	v.BindEnv("scan.exclude_substrings")
	v.BindEnv("scan.source_extensions")
	v.BindEnv("scan.ignore")

	v.BindEnv("code.interface")
	v.BindEnv("code.method")
	v.BindEnv("code.brace_matching")

	v.BindEnv("docs.extensions")
	v.BindEnv("docs.exclude_substrings")
	v.BindEnv("docs.max_chars")
	v.BindEnv("docs.labels")
	v.BindEnv("docs.fallback")

	v.BindEnv("merge.output_dir")
	v.BindEnv("merge.sections")
	v.BindEnv("merge.doc_files")
	v.BindEnv("merge.require_docs")
	v.BindEnv("merge.code_file")
	v.BindEnv("merge.doc_file")

	v.BindEnv("dataset.path")
}

// setDefaults configures viper with default values.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("scan.exclude_substrings", defaults.Scan.ExcludeSubstrings)
	v.SetDefault("scan.source_extensions", defaults.Scan.SourceExtensions)
	v.SetDefault("scan.ignore", defaults.Scan.Ignore)

	v.SetDefault("code.interface", defaults.Code.Interface)
	v.SetDefault("code.method", defaults.Code.Method)
	v.SetDefault("code.brace_matching", defaults.Code.BraceMatching)

	v.SetDefault("docs.extensions", defaults.Docs.Extensions)
	v.SetDefault("docs.exclude_substrings", defaults.Docs.ExcludeSubstrings)
	v.SetDefault("docs.max_chars", defaults.Docs.MaxChars)
	v.SetDefault("docs.labels", defaults.Docs.Labels)
	v.SetDefault("docs.fallback", defaults.Docs.Fallback)

	v.SetDefault("merge.output_dir", defaults.Merge.OutputDir)
	v.SetDefault("merge.sections", defaults.Merge.Sections)
	v.SetDefault("merge.doc_files", defaults.Merge.DocFiles)
	v.SetDefault("merge.require_docs", defaults.Merge.RequireDocs)
	v.SetDefault("merge.code_file", defaults.Merge.CodeFile)
	v.SetDefault("merge.doc_file", defaults.Merge.DocFile)

	v.SetDefault("dataset.path", defaults.Dataset.Path)
}

// LoadConfig is a convenience function that creates a loader and loads config.
// It uses the current working directory as the root.
func LoadConfig() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return NewLoader(wd).Load()
}

// LoadConfigFromDir loads configuration from a specific directory.
func LoadConfigFromDir(rootDir string) (*Config, error) {
	return NewLoader(rootDir).Load()
}
