package fsutil

// Test Plan for atomic writes:
// - AtomicWrite creates missing parent directories
// - AtomicWrite replaces existing content completely
// - AtomicWrite leaves no temp files behind
// - Lock/Unlock round trip removes the lock file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomicWrite_CreatesParentDirectories(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "out", "data.json")
	require.NoError(t, AtomicWrite(path, []byte("[]")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestAtomicWrite_ReplacesExistingContent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, []byte("a much longer original body"), 0644))

	require.NoError(t, AtomicWrite(path, []byte("short")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "short", string(data))
}

func TestAtomicWrite_NoTempFilesRemain(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, AtomicWrite(filepath.Join(dir, "a.txt"), []byte("x")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a.txt", entries[0].Name())
}

func TestLock_LockUnlock(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "dataset.json")
	lock := NewLock(path)
	assert.Equal(t, path+".lock", lock.Path())

	require.NoError(t, lock.Lock())
	_, err := os.Stat(lock.Path())
	require.NoError(t, err, "lock file should exist while held")

	require.NoError(t, lock.Unlock())
	_, err = os.Stat(lock.Path())
	assert.True(t, os.IsNotExist(err), "lock file should be removed after unlock")
}
