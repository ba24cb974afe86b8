package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/mvp-joe/docpair/internal/extractor"
)

// CLIProgressReporter implements progress reporting with progress bars.
type CLIProgressReporter struct {
	quiet      bool
	out        io.Writer
	projectBar *progressbar.ProgressBar
	startTime  time.Time
	projects   int
	kept       int
}

// NewCLIProgressReporter creates a new CLI progress reporter.
func NewCLIProgressReporter(quiet bool) *CLIProgressReporter {
	return &CLIProgressReporter{
		quiet:     quiet,
		out:       os.Stdout,
		startTime: time.Now(),
	}
}

func (c *CLIProgressReporter) OnScanStart(rootDir string) {
	if c.quiet {
		return
	}
	log.Printf("Scanning %s for projects...\n", rootDir)
}

func (c *CLIProgressReporter) OnScanComplete(projects int) {
	if c.quiet {
		return
	}
	c.projects = projects
	log.Printf("Found %s project directories\n", formatNumber(projects))

	c.projectBar = progressbar.NewOptions(projects,
		progressbar.OptionSetWriter(c.out),
		progressbar.OptionSetDescription("Extracting projects"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("projects/s"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(c.out)
		}),
	)
}

func (c *CLIProgressReporter) OnProjectProcessed(projectDir string, kept bool) {
	if c.quiet {
		return
	}
	if kept {
		c.kept++
	}
	if verbose {
		log.Printf("Processed %s (key code: %t)\n", projectDir, kept)
	}
	if c.projectBar != nil {
		c.projectBar.Add(1)
	}
}

func (c *CLIProgressReporter) OnComplete(stats *extractor.Stats) {
	if c.quiet {
		return
	}
	if c.projectBar != nil {
		c.projectBar.Finish()
		c.projectBar = nil
	}

	fmt.Fprintln(c.out)
	fmt.Fprintf(c.out, "✓ Extraction complete: %s records in %.1fs\n",
		formatNumber(stats.RecordsKept),
		stats.ProcessingTimeSeconds)
	fmt.Fprintf(c.out, "  Projects found:      %s\n", formatNumber(stats.ProjectsFound))
	fmt.Fprintf(c.out, "  Without key code:    %s\n", formatNumber(stats.ProjectsWithoutCode))
	fmt.Fprintf(c.out, "  Documentation files: %s (%s unreadable)\n",
		formatNumber(stats.DocsExtracted), formatNumber(stats.DocsFailed))
}

func formatNumber(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}

	str := fmt.Sprintf("%d", n)
	var result string
	for i, c := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result += ","
		}
		result += string(c)
	}
	return result
}
