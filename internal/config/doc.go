// Package config provides configuration loading for docpair.
//
// Configuration is read from .docpair/config.yml (or .yaml) in the working
// directory, or from an explicit file passed with --config.
//
// Configuration Hierarchy (highest to lowest priority):
//  1. Environment variables (DOCPAIR_*)
//  2. Config file
//  3. Built-in defaults
//
// Environment Variable Convention:
//   - Prefix: DOCPAIR_
//   - Nested fields: Use underscores (DOCPAIR_CODE_BRACE_MATCHING)
//   - Lists: comma-separated (DOCPAIR_MERGE_SECTIONS=summary,remarks)
//
// Example config:
//
//	scan:
//	  exclude_substrings: ["VB", "VB.NET"]
//	  source_extensions: [".cs"]
//	code:
//	  interface: IExternalCommand
//	  method: Execute
//	  brace_matching: balanced
//	docs:
//	  extensions: [".htm", ".html", ".rtf", ".txt"]
//	  max_chars: 500
//	merge:
//	  output_dir: extracted_content
//	  sections: ["summary", "description"]
package config
