package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFileSystem_DirectoryLifecycle(t *testing.T) {
	fs := NewOSFileSystem()
	root := t.TempDir()
	dir := filepath.Join(root, "sub")

	require.NoError(t, fs.Mkdir(dir))

	info, err := fs.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Non-recursive: a missing parent is an error.
	assert.Error(t, fs.Mkdir(filepath.Join(root, "a", "b")))

	require.NoError(t, fs.Remove(dir))
	_, err = fs.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestOSFileSystem_ListDir(t *testing.T) {
	fs := NewOSFileSystem()
	root := t.TempDir()

	require.NoError(t, fs.Mkdir(filepath.Join(root, "child")))
	require.NoError(t, os.WriteFile(filepath.Join(root, "file.txt"), []byte("x"), 0o644))

	infos, err := fs.ListDir(root)
	require.NoError(t, err)
	require.Len(t, infos, 2)

	names := map[string]bool{}
	for _, info := range infos {
		names[info.Name()] = info.IsDir()
	}
	assert.True(t, names["child"])
	assert.False(t, names["file.txt"])
}

func TestOSFileSystem_RemoveRefusesNonEmptyDir(t *testing.T) {
	fs := NewOSFileSystem()
	root := t.TempDir()
	dir := filepath.Join(root, "full")

	require.NoError(t, fs.Mkdir(dir))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "f"), []byte("x"), 0o644))

	assert.Error(t, fs.Remove(dir))
	require.NoError(t, fs.RemoveAll(dir))
	_, err := fs.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestOSFileSystem_EvalSymlinks(t *testing.T) {
	fs := NewOSFileSystem()
	root := t.TempDir()
	canonicalRoot, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)

	target := filepath.Join(root, "target")
	require.NoError(t, fs.Mkdir(target))
	link := filepath.Join(root, "link")
	require.NoError(t, os.Symlink(target, link))

	resolved, err := fs.EvalSymlinks(link)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(canonicalRoot, "target"), resolved)

	// Dot segments are cleaned away too.
	resolved, err = fs.EvalSymlinks(filepath.Join(root, "target", "..", "target"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(canonicalRoot, "target"), resolved)
}
