package cli

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mvp-joe/docpair/internal/merge"
)

var verifyOutputDirFlag string

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that the code and documentation files hold the same number of blocks",
	Long: `Verify counts the block delimiters in the merged code and documentation
files and reports whether the counts match. It exits with status 1 when they
differ.

Identifiers present in only one file are listed for information; they do not
fail the check on their own.

Examples:
  # Verify extracted_content/all_codes.txt against all_docs.txt
  docpair verify

  # Verify another output directory
  docpair verify --output-dir out
`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().StringVarP(&verifyOutputDirFlag, "output-dir", "o", "", "Directory holding the block files (default from config)")
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dir := cfg.Merge.OutputDir
	if verifyOutputDirFlag != "" {
		dir = verifyOutputDirFlag
	}

	report, err := merge.VerifyFiles(
		filepath.Join(dir, cfg.Merge.CodeFile),
		filepath.Join(dir, cfg.Merge.DocFile),
	)
	if err != nil {
		return err
	}

	printReport(cmd, report)
	return report.Err()
}

func printReport(cmd *cobra.Command, report *merge.Report) {
	out := cmd.OutOrStdout()
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)

	bold.Fprintln(out, "Block counts")
	fmt.Fprintf(out, "  Code blocks: %s\n", formatNumber(report.CodeBlocks))
	fmt.Fprintf(out, "  Doc blocks:  %s\n", formatNumber(report.DocBlocks))

	if report.Healthy() {
		green.Fprintln(out, "✓ Code and documentation block counts match")
	} else {
		red.Fprintf(out, "✗ Code and documentation block counts differ (difference: %d)\n", report.Difference())
	}

	if len(report.UnpairedCode) > 0 {
		yellow.Fprintf(out, "  Code-only identifiers: %s\n", formatIDs(report.UnpairedCode))
	}
	if len(report.UnpairedDocs) > 0 {
		yellow.Fprintf(out, "  Doc-only identifiers:  %s\n", formatIDs(report.UnpairedDocs))
	}
}

// formatIDs lists identifiers, abbreviating long lists.
func formatIDs(ids []int) string {
	const limit = 10
	s := ""
	for i, id := range ids {
		if i == limit {
			return s + fmt.Sprintf(", ... (%d more)", len(ids)-limit)
		}
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%04d", id)
	}
	return s
}
