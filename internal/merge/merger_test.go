package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvp-joe/docpair/internal/dataset"
)

// Test Plan for Merger:
// - The single-record scenario renders the expected code and doc blocks
// - Identifiers are sequential and a record without sections leaves only its doc block out
// - Every record with a section gives equal code and doc block counts
// - Records without code (nil or blank) emit nothing and consume no identifier
// - RequireDocs drops records without a doc block before numbering
// - Doc file selection: all keys in order, exact names, globs, order and duplicates
// - Sections follow the configured label order within each file
// - Invalid doc file globs are rejected

func record(path, code string, docs map[string]string) dataset.ProjectRecord {
	return dataset.ProjectRecord{
		ProjectPath:   path,
		KeyCode:       &dataset.KeyCode{ClassName: "C", ExecuteMethod: code},
		Documentation: docs,
	}
}

func newTestMerger(t *testing.T, opts Options) *Merger {
	t.Helper()
	m, err := New(opts)
	require.NoError(t, err)
	return m
}

func TestMerge_SingleRecordScenario(t *testing.T) {
	t.Parallel()

	m := newTestMerger(t, Options{Sections: []string{"summary"}})
	result := m.Merge([]dataset.ProjectRecord{
		record("P", "return Result.Succeeded;", map[string]string{"readme.txt": "Summary: does X"}),
	})

	assert.Equal(t, "=== CODE_BLOCK_0001 ===\nreturn Result.Succeeded;\n\n", result.CodeText())
	assert.Equal(t, "=== DOC_BLOCK_0001 ===\n[readme.txt][summary]:\ndoes X\n\n", result.DocText())
}

func TestMerge_SequentialIdentifiers(t *testing.T) {
	t.Parallel()

	m := newTestMerger(t, Options{})
	result := m.Merge([]dataset.ProjectRecord{
		record("A", "  a();  ", map[string]string{"r.txt": "Summary: first"}),
		record("B", "b();", map[string]string{"r.txt": "nothing labelled"}),
		record("C", "c();", map[string]string{"r.txt": "Description: third"}),
	})

	require.Len(t, result.Pairs, 3)
	for i, p := range result.Pairs {
		assert.Equal(t, i+1, p.ID)
		assert.Equal(t, p.ID, p.Code.ID)
	}
	assert.Equal(t, "a();", result.Pairs[0].Code.Payload)
	require.NotNil(t, result.Pairs[0].Doc)
	assert.Nil(t, result.Pairs[1].Doc)
	require.NotNil(t, result.Pairs[2].Doc)
	assert.Equal(t, 3, result.Pairs[2].Doc.ID)
	assert.Equal(t, []int{2}, result.Unpaired())

	assert.Equal(t,
		"=== DOC_BLOCK_0001 ===\n[r.txt][summary]:\nfirst\n\n"+
			"=== DOC_BLOCK_0003 ===\n[r.txt][description]:\nthird\n\n",
		result.DocText())
}

func TestMerge_CountParityWhenEveryRecordHasSections(t *testing.T) {
	t.Parallel()

	var records []dataset.ProjectRecord
	for i := 0; i < 25; i++ {
		records = append(records, record("P", "x();", map[string]string{"r.txt": "Summary: s"}))
	}

	result := newTestMerger(t, Options{}).Merge(records)
	assert.Len(t, result.CodeBlocks(), 25)
	assert.Len(t, result.DocBlocks(), 25)
	assert.Empty(t, result.Unpaired())
}

func TestMerge_SkipsRecordsWithoutCode(t *testing.T) {
	t.Parallel()

	noKey := dataset.ProjectRecord{ProjectPath: "N", Documentation: map[string]string{"r.txt": "Summary: s"}}
	result := newTestMerger(t, Options{}).Merge([]dataset.ProjectRecord{
		noKey,
		record("Blank", "  \n\t", map[string]string{"r.txt": "Summary: s"}),
		record("Kept", "k();", nil),
	})

	require.Len(t, result.Pairs, 1)
	assert.Equal(t, 1, result.Pairs[0].ID)
	assert.Equal(t, "Kept", result.Pairs[0].ProjectPath)
	assert.Nil(t, result.Pairs[0].Doc)
	assert.Equal(t, 2, result.SkippedNoCode)
	assert.Empty(t, result.DocText())
}

func TestMerge_RequireDocs(t *testing.T) {
	t.Parallel()

	m := newTestMerger(t, Options{RequireDocs: true})
	result := m.Merge([]dataset.ProjectRecord{
		record("A", "a();", map[string]string{"r.txt": "no sections"}),
		record("B", "b();", map[string]string{"r.txt": "Summary: b"}),
	})

	require.Len(t, result.Pairs, 1)
	assert.Equal(t, 1, result.Pairs[0].ID)
	assert.Equal(t, "B", result.Pairs[0].ProjectPath)
	assert.Equal(t, 1, result.SkippedNoDocs)
	assert.Equal(t, "=== CODE_BLOCK_0001 ===\nb();\n\n", result.CodeText())
}

func TestMerge_DocFileSelection(t *testing.T) {
	t.Parallel()

	docs := map[string]string{
		"ReadMe.rtf":     "Summary: rich",
		"docs/help.htm":  "Summary: markup",
		"docs/extra.htm": "Summary: extra",
		"notes.txt":      "Summary: plain",
	}

	tests := []struct {
		name  string
		files []string
		want  string
	}{
		{
			name: "all files in key order",
			want: "[ReadMe.rtf][summary]:\nrich\n\n[docs/extra.htm][summary]:\nextra\n\n" +
				"[docs/help.htm][summary]:\nmarkup\n\n[notes.txt][summary]:\nplain",
		},
		{
			name:  "exact names in given order",
			files: []string{"notes.txt", "ReadMe.rtf", "missing.txt"},
			want:  "[notes.txt][summary]:\nplain\n\n[ReadMe.rtf][summary]:\nrich",
		},
		{
			name:  "glob without duplicates",
			files: []string{"docs/help.htm", "docs/*.htm"},
			want:  "[docs/help.htm][summary]:\nmarkup\n\n[docs/extra.htm][summary]:\nextra",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMerger(t, Options{Sections: []string{"summary"}, DocFiles: tt.files})
			result := m.Merge([]dataset.ProjectRecord{record("P", "x();", docs)})
			require.Len(t, result.Pairs, 1)
			require.NotNil(t, result.Pairs[0].Doc)
			assert.Equal(t, tt.want, result.Pairs[0].Doc.Payload)
		})
	}
}

func TestMerge_DocFilesWithNoMatch(t *testing.T) {
	t.Parallel()

	m := newTestMerger(t, Options{DocFiles: []string{"other.txt"}})
	result := m.Merge([]dataset.ProjectRecord{
		record("P", "x();", map[string]string{"readme.txt": "Summary: s"}),
	})
	require.Len(t, result.Pairs, 1)
	assert.Nil(t, result.Pairs[0].Doc)
}

func TestMerge_SectionOrder(t *testing.T) {
	t.Parallel()

	m := newTestMerger(t, Options{Sections: []string{"Description", "summary"}})
	result := m.Merge([]dataset.ProjectRecord{
		record("P", "x();", map[string]string{"r.txt": "Summary: s\nDescription: d"}),
	})
	require.NotNil(t, result.Pairs[0].Doc)
	assert.Equal(t, "[r.txt][description]:\nd\n\n[r.txt][summary]:\ns", result.Pairs[0].Doc.Payload)
}

func TestNew_InvalidDocFilePattern(t *testing.T) {
	t.Parallel()

	_, err := New(Options{DocFiles: []string{"[broken"}})
	assert.Error(t, err)
}

func TestRender_WideIdentifiers(t *testing.T) {
	t.Parallel()

	got := Render(CodeBlockLabel, []Block{{ID: 12345, Payload: "x"}})
	assert.Equal(t, "=== CODE_BLOCK_12345 ===\nx\n\n", got)
}
