package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/docpair/internal/dataset"
	"github.com/mvp-joe/docpair/internal/extractor"
	"github.com/mvp-joe/docpair/internal/fsutil"
)

var (
	extractOutputFlag string
	extractQuietFlag  bool
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract [root]",
	Short: "Scan a sample tree and write the project dataset",
	Long: `Extract walks the root directory (default: the working directory) and
treats every directory that directly contains a source file as a project.

For each project it:
  - Finds the first class implementing the command interface and cuts out
    its command method
  - Reads every documentation file (.rtf, .htm, .html, .txt by default);
    rich text is reduced to its Summary/Description sections, markup and
    plain text are truncated
  - Keeps the project only when a command implementation was found

The records are written as an indented JSON array, replacing the dataset file.

Examples:
  # Extract from the current directory into project_dataset.json
  docpair extract

  # Extract a specific tree into a custom file
  docpair extract ~/RevitSDK/Samples --output samples.json

  # Extract without progress output
  docpair extract --quiet
`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringVarP(&extractOutputFlag, "output", "o", "", "Dataset file to write (default from config: project_dataset.json)")
	extractCmd.Flags().BoolVarP(&extractQuietFlag, "quiet", "q", false, "Disable progress bars and non-error output")
}

func runExtract(cmd *cobra.Command, args []string) error {
	// Set up context with cancellation for Ctrl+C
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			fmt.Fprintln(os.Stderr, "\nInterrupted! Cancelling extraction...")
			cancel()
		case <-ctx.Done():
		}
	}()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rootDir := "."
	if len(args) == 1 {
		rootDir = args[0]
	}
	rootDir, err = filepath.Abs(rootDir)
	if err != nil {
		return fmt.Errorf("failed to resolve root directory: %w", err)
	}
	if info, err := os.Stat(rootDir); err != nil || !info.IsDir() {
		return fmt.Errorf("root directory %s does not exist or is not a directory", rootDir)
	}

	outputPath := cfg.Dataset.Path
	if extractOutputFlag != "" {
		outputPath = extractOutputFlag
	}

	var progress extractor.ProgressReporter = &extractor.NoOpProgressReporter{}
	if !extractQuietFlag {
		reporter := NewCLIProgressReporter(false)
		reporter.out = cmd.OutOrStdout()
		progress = reporter
	}

	ext, err := extractor.NewWithProgress(cfg.ToExtractorConfig(rootDir), progress)
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}

	result, err := ext.Run(ctx)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	lock := fsutil.NewLock(outputPath)
	if err := lock.Lock(); err != nil {
		return err
	}
	defer lock.Unlock()

	if err := dataset.Save(outputPath, result.Records); err != nil {
		return err
	}

	if !extractQuietFlag {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Dataset saved to %s (%s records)\n", outputPath, formatNumber(len(result.Records)))
	}
	return nil
}
