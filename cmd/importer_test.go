package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListInputFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "IMG1.jpg"), []byte("jpg"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "IMG1.xmp"), []byte("xmp"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "subdir", "nested.jpg"), []byte("jpg"), 0o644))

	files, err := listInputFiles(dir)
	require.NoError(t, err)

	// Non-recursive: the nested file stays out, the subdirectory is not a file.
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "IMG1.jpg"),
		filepath.Join(dir, "IMG1.xmp"),
	}, files)
}

func TestListInputFilesUnreadableDirectory(t *testing.T) {
	_, err := listInputFiles(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
