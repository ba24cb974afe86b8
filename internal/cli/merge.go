package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mvp-joe/docpair/internal/dataset"
	"github.com/mvp-joe/docpair/internal/merge"
)

var (
	mergeInputFlag       string
	mergeOutputDirFlag   string
	mergeDocSectionsFlag string
	mergeDocFilesFlag    string
	mergeRequireDocsFlag bool
	mergeQuietFlag       bool
)

// mergeCmd represents the merge command
var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Flatten the dataset into code and documentation block files",
	Long: `Merge writes every record's command method to the code file and the
selected documentation sections to the documentation file. Both streams use
the same identifier for a record:

  === CODE_BLOCK_0001 ===        === DOC_BLOCK_0001 ===
  <method>                       [ReadMe.rtf][summary]:
                                 <text>

Identifiers are assigned once per record with a command method, in dataset
order. A record whose documentation has none of the requested sections keeps
its identifier in the code file only, unless --require-docs drops it.
A manifest.json describing every identifier is written alongside.

Examples:
  # Merge the configured dataset into extracted_content/
  docpair merge

  # Only summaries, only from the rich-text read-me
  docpair merge --input samples.json --doc-sections summary --doc-files ReadMe.rtf

  # Keep the two files strictly aligned
  docpair merge --require-docs
`,
	Args: cobra.NoArgs,
	RunE: runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)
	mergeCmd.Flags().StringVarP(&mergeInputFlag, "input", "i", "", "Dataset file to read (default from config)")
	mergeCmd.Flags().StringVarP(&mergeOutputDirFlag, "output-dir", "o", "", "Output directory (default from config: extracted_content)")
	mergeCmd.Flags().StringVar(&mergeDocSectionsFlag, "doc-sections", "", "Comma-separated section labels (default: summary,description)")
	mergeCmd.Flags().StringVar(&mergeDocFilesFlag, "doc-files", "", "Comma-separated documentation file names or globs (default: all)")
	mergeCmd.Flags().BoolVar(&mergeRequireDocsFlag, "require-docs", false, "Drop records without a documentation block")
	mergeCmd.Flags().BoolVarP(&mergeQuietFlag, "quiet", "q", false, "Suppress output messages")
}

func runMerge(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	input := cfg.Dataset.Path
	if mergeInputFlag != "" {
		input = mergeInputFlag
	}
	outputDir := cfg.Merge.OutputDir
	if mergeOutputDirFlag != "" {
		outputDir = mergeOutputDirFlag
	}

	opts := cfg.ToMergeOptions()
	if sections := splitList(mergeDocSectionsFlag); len(sections) > 0 {
		opts.Sections = sections
	}
	if files := splitList(mergeDocFilesFlag); len(files) > 0 {
		opts.DocFiles = files
	}
	if cmd.Flags().Changed("require-docs") {
		opts.RequireDocs = mergeRequireDocsFlag
	}

	records, err := dataset.Load(input)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	merger, err := merge.New(opts)
	if err != nil {
		return err
	}
	result := merger.Merge(records)

	written, err := merge.WriteOutputs(outputDir, cfg.OutputFiles(), input, result)
	if err != nil {
		return err
	}

	if mergeQuietFlag {
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ Code blocks written to: %s (%s)\n", written.CodePath, formatNumber(written.Manifest.CodeBlocks))
	fmt.Fprintf(out, "✓ Doc blocks written to:  %s (%s)\n", written.DocPath, formatNumber(written.Manifest.DocBlocks))
	fmt.Fprintf(out, "  Manifest: %s\n", written.ManifestPath)
	if result.SkippedNoCode > 0 {
		fmt.Fprintf(out, "  Skipped without code:  %s\n", formatNumber(result.SkippedNoCode))
	}
	if result.SkippedNoDocs > 0 {
		fmt.Fprintf(out, "  Skipped without docs:  %s\n", formatNumber(result.SkippedNoDocs))
	}
	if unpaired := len(written.Manifest.Unpaired); unpaired > 0 {
		yellow := color.New(color.FgYellow)
		yellow.Fprintf(out, "  %s code blocks have no documentation block\n", formatNumber(unpaired))
	}
	return nil
}
