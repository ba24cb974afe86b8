package merge

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/mvp-joe/docpair/internal/fsutil"
)

// ManifestFileName is written next to the two block files.
const ManifestFileName = "manifest.json"

// OutputFiles names the two block files inside the output directory.
type OutputFiles struct {
	CodeFile string
	DocFile  string
}

// DefaultOutputFiles are the file names used when none are configured.
var DefaultOutputFiles = OutputFiles{
	CodeFile: "all_codes.txt",
	DocFile:  "all_docs.txt",
}

// ManifestPair records how one identifier is populated across the streams.
type ManifestPair struct {
	ID          int    `json:"id"`
	ProjectPath string `json:"project_path"`
	HasDoc      bool   `json:"has_doc"`
}

// Manifest describes one merge run.
type Manifest struct {
	RunID      string         `json:"run_id"`
	CreatedAt  time.Time      `json:"created_at"`
	Input      string         `json:"input"`
	CodeFile   string         `json:"code_file"`
	DocFile    string         `json:"doc_file"`
	CodeBlocks int            `json:"code_blocks"`
	DocBlocks  int            `json:"doc_blocks"`
	Unpaired   []int          `json:"unpaired"`
	Pairs      []ManifestPair `json:"pairs"`
}

// Written reports where a merge run put its artifacts.
type Written struct {
	CodePath     string
	DocPath      string
	ManifestPath string
	Manifest     *Manifest
}

// WriteOutputs replaces the block files and the manifest in dir. input is
// the dataset path recorded in the manifest.
func WriteOutputs(dir string, files OutputFiles, input string, result *Result) (*Written, error) {
	if files.CodeFile == "" {
		files.CodeFile = DefaultOutputFiles.CodeFile
	}
	if files.DocFile == "" {
		files.DocFile = DefaultOutputFiles.DocFile
	}

	w := &Written{
		CodePath:     filepath.Join(dir, files.CodeFile),
		DocPath:      filepath.Join(dir, files.DocFile),
		ManifestPath: filepath.Join(dir, ManifestFileName),
		Manifest:     newManifest(input, files, result),
	}

	if err := fsutil.AtomicWrite(w.CodePath, []byte(result.CodeText())); err != nil {
		return nil, fmt.Errorf("failed to write code blocks: %w", err)
	}
	if err := fsutil.AtomicWrite(w.DocPath, []byte(result.DocText())); err != nil {
		return nil, fmt.Errorf("failed to write documentation blocks: %w", err)
	}

	data, err := json.MarshalIndent(w.Manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := fsutil.AtomicWrite(w.ManifestPath, append(data, '\n')); err != nil {
		return nil, fmt.Errorf("failed to write manifest: %w", err)
	}

	return w, nil
}

func newManifest(input string, files OutputFiles, result *Result) *Manifest {
	m := &Manifest{
		RunID:      uuid.NewString(),
		CreatedAt:  time.Now().UTC(),
		Input:      input,
		CodeFile:   files.CodeFile,
		DocFile:    files.DocFile,
		CodeBlocks: len(result.Pairs),
		Unpaired:   []int{},
		Pairs:      make([]ManifestPair, 0, len(result.Pairs)),
	}
	for _, p := range result.Pairs {
		m.Pairs = append(m.Pairs, ManifestPair{
			ID:          p.ID,
			ProjectPath: p.ProjectPath,
			HasDoc:      p.Doc != nil,
		})
		if p.Doc != nil {
			m.DocBlocks++
		} else {
			m.Unpaired = append(m.Unpaired, p.ID)
		}
	}
	return m
}

// LoadManifest reads the manifest of a previous merge run.
func LoadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestFileName)
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &m, nil
}
