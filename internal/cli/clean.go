package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/docpair/internal/dataset"
)

var cleanQuietFlag bool

// cleanCmd represents the clean command
var cleanCmd = &cobra.Command{
	Use:   "clean [dataset]",
	Short: "Drop incomplete records from the dataset in place",
	Long: `Clean filters the dataset and replaces the file with the result.

A record is kept only when all of these hold:
  - the command method is not blank
  - the project path is not blank
  - the class name is not blank
  - at least one documentation file was extracted

Records are never modified, so running clean twice gives the same file.
The original file is replaced atomically; it is not backed up.

Examples:
  # Clean the configured dataset (project_dataset.json by default)
  docpair clean

  # Clean a specific file
  docpair clean samples.json
`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	cleanCmd.Flags().BoolVarP(&cleanQuietFlag, "quiet", "q", false, "Suppress output messages")
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := cfg.Dataset.Path
	if len(args) == 1 {
		path = args[0]
	}

	kept, dropped, err := dataset.CleanFile(path)
	if err != nil {
		return fmt.Errorf("failed to clean dataset: %w", err)
	}

	if !cleanQuietFlag {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "✓ Cleaned %s\n", path)
		fmt.Fprintf(out, "  Kept:    %s\n", formatNumber(kept))
		fmt.Fprintf(out, "  Dropped: %s\n", formatNumber(dropped))
	}
	return nil
}
