package extractor

// ProgressReporter provides callbacks for reporting extraction progress.
// Implementations can display progress bars, log messages, or remain silent.
type ProgressReporter interface {
	// OnScanStart is called before the project directory walk begins.
	OnScanStart(rootDir string)

	// OnScanComplete is called with the number of project directories found.
	OnScanComplete(projects int)

	// OnProjectProcessed is called after each project; kept reports whether
	// a command implementation was found and the record retained.
	OnProjectProcessed(projectDir string, kept bool)

	// OnComplete is called when extraction finishes.
	OnComplete(stats *Stats)
}

// NoOpProgressReporter is a progress reporter that does nothing.
// Used when progress reporting is disabled (e.g., --quiet flag).
type NoOpProgressReporter struct{}

func (n *NoOpProgressReporter) OnScanStart(rootDir string)                      {}
func (n *NoOpProgressReporter) OnScanComplete(projects int)                     {}
func (n *NoOpProgressReporter) OnProjectProcessed(projectDir string, kept bool) {}
func (n *NoOpProgressReporter) OnComplete(stats *Stats)                         {}
