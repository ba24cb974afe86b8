package extractor

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Assembler and Extractor:
// - Assemble combines key code and documentation; documentation may be empty
// - Assemble returns a record with nil key code when no class matches
// - Run keeps only records with key code, in scan order
// - Run reports stats and progress callbacks
// - Run stops on a cancelled context
// - NewWithProgress rejects invalid configuration

type recordingReporter struct {
	root      string
	projects  int
	processed map[string]bool
	stats     *Stats
}

func (r *recordingReporter) OnScanStart(rootDir string)  { r.root = rootDir }
func (r *recordingReporter) OnScanComplete(projects int) { r.projects = projects }
func (r *recordingReporter) OnProjectProcessed(projectDir string, kept bool) {
	if r.processed == nil {
		r.processed = make(map[string]bool)
	}
	r.processed[projectDir] = kept
}
func (r *recordingReporter) OnComplete(stats *Stats) { r.stats = stats }

func testConfig(root string) *Config {
	return &Config{
		RootDir:              root,
		ExcludeSubstrings:    []string{"VB", "VB.NET"},
		SourceExtensions:     []string{".cs"},
		InterfaceName:        "IExternalCommand",
		MethodName:           "Execute",
		BraceMode:            BraceBalanced,
		DocExtensions:        []string{".htm", ".html", ".rtf", ".txt"},
		DocExcludeSubstrings: []string{"obj", "bin"},
		MaxDocChars:          500,
		SectionLabels:        []string{"summary", "description"},
		FallbackText:         testFallback,
	}
}

func TestAssembler_Assemble(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "Command.cs", commandSource)

	code := newTestCodeExtractor(t, BraceBalanced)
	a := NewAssembler(code, newTestDocCollector())

	record, failed := a.Assemble(dir)
	assert.Zero(t, failed)
	assert.Equal(t, dir, record.ProjectPath)
	require.NotNil(t, record.KeyCode)
	assert.Equal(t, "HelloCommand", record.KeyCode.ClassName)
	assert.NotNil(t, record.Documentation)
	assert.Empty(t, record.Documentation)
}

func TestAssembler_NoKeyCode(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "Helpers.cs", "public static class Helpers {}")
	writeFile(t, dir, "readme.txt", "Summary: helper library")

	a := NewAssembler(newTestCodeExtractor(t, BraceBalanced), newTestDocCollector())
	record, _ := a.Assemble(dir)
	assert.Nil(t, record.KeyCode)
	assert.Equal(t, map[string]string{"readme.txt": "Summary: helper library"}, record.Documentation)
}

func TestExtractor_Run(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "ProjA/Command.cs", commandSource)
	writeFile(t, root, "ProjA/ReadMe.rtf", `{\rtf1\ansi Summary\par Says hello.\par}`)
	writeFile(t, root, "ProjB/Helpers.cs", "public static class Helpers {}")
	writeFile(t, root, "ProjC/Command.cs", commandSource)
	writeFile(t, root, "VB/ProjD/Command.cs", commandSource)

	reporter := &recordingReporter{}
	e, err := NewWithProgress(testConfig(root), reporter)
	require.NoError(t, err)

	result, err := e.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Records, 2)
	assert.Equal(t, filepath.Join(root, "ProjA"), result.Records[0].ProjectPath)
	assert.Equal(t, map[string]string{"ReadMe.rtf": "Summary: Says hello."}, result.Records[0].Documentation)
	assert.Equal(t, filepath.Join(root, "ProjC"), result.Records[1].ProjectPath)
	assert.Empty(t, result.Records[1].Documentation)

	assert.Equal(t, 3, result.Stats.ProjectsFound)
	assert.Equal(t, 2, result.Stats.RecordsKept)
	assert.Equal(t, 1, result.Stats.ProjectsWithoutCode)
	assert.Equal(t, 1, result.Stats.DocsExtracted)
	assert.Zero(t, result.Stats.DocsFailed)

	assert.Equal(t, root, reporter.root)
	assert.Equal(t, 3, reporter.projects)
	assert.Equal(t, map[string]bool{
		filepath.Join(root, "ProjA"): true,
		filepath.Join(root, "ProjB"): false,
		filepath.Join(root, "ProjC"): true,
	}, reporter.processed)
	assert.Same(t, result.Stats, reporter.stats)
}

func TestExtractor_RunCancelled(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "ProjA/Command.cs", commandSource)

	e, err := New(testConfig(root))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = e.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewWithProgress_InvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t.TempDir())
	cfg.BraceMode = "fuzzy"
	_, err := New(cfg)
	assert.Error(t, err)

	cfg = testConfig(t.TempDir())
	cfg.IgnorePatterns = []string{"[unclosed"}
	_, err = New(cfg)
	assert.Error(t, err)

	_, err = New(nil)
	assert.Error(t, err)
}
