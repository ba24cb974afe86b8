package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test Plan for DocCollector:
// - Documentation files are keyed by slash-separated path relative to the project
// - Extension matching is case-insensitive and other files are ignored
// - Paths containing "obj" or "bin" anywhere are skipped
// - Rich text without headers maps to the fallback text
// - Files that fail to parse are omitted and counted

func newTestDocCollector() *DocCollector {
	return NewDocCollector(
		[]string{".htm", ".html", ".rtf", ".txt"},
		[]string{"obj", "bin"},
		newTestTextExtractor(),
	)
}

func TestDocCollector_Collect(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "readme.txt", "Summary: does X")
	writeFile(t, dir, "docs/help.htm", "<html><body><p>Help text</p></body></html>")
	writeFile(t, dir, "Notes.RTF", `{\rtf1\ansi Just a note.\par}`)
	writeFile(t, dir, "broken.rtf", `{\rtf1 x}}`)
	writeFile(t, dir, "obj/Debug/generated.txt", "build output")
	writeFile(t, dir, "bin/Release/copied.txt", "build output")
	writeFile(t, dir, "Cabinet/readme.txt", "coarse filter drops this too")
	writeFile(t, dir, "Command.cs", "public class C : IExternalCommand {}")

	docs, failed := newTestDocCollector().Collect(dir)

	assert.Equal(t, 1, failed)
	assert.Equal(t, map[string]string{
		"readme.txt":    "Summary: does X",
		"docs/help.htm": "Help text",
		"Notes.RTF":     testFallback,
	}, docs)
}

func TestDocCollector_EmptyProject(t *testing.T) {
	t.Parallel()

	docs, failed := newTestDocCollector().Collect(t.TempDir())
	assert.Zero(t, failed)
	assert.Empty(t, docs)
}
