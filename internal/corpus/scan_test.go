package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))
}

func TestScan(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "2024-O", "b.json"))
	writeFile(t, filepath.Join(root, "2024-O", "a.JSON"))
	writeFile(t, filepath.Join(root, "2024-A", "z.json"))
	writeFile(t, filepath.Join(root, "2024-A", "notes.txt"))
	writeFile(t, filepath.Join(root, "2024-A", "nested", "deep.json"))
	writeFile(t, filepath.Join(root, "index.json"))

	files, err := Scan(root)
	require.NoError(t, err)

	assert.Equal(t, []File{
		{Path: filepath.Join(root, "2024-A", "z.json"), Group: "2024-A"},
		{Path: filepath.Join(root, "2024-O", "a.JSON"), Group: "2024-O"},
		{Path: filepath.Join(root, "2024-O", "b.json"), Group: "2024-O"},
	}, files)
}

func TestScanMissingRoot(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "absent"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
