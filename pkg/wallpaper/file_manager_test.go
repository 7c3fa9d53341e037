package wallpaper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundtrip(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "downloads"))
	require.NoError(t, fs.EnsureDir())

	ids, err := fs.List()
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, fs.Write("aa.jpg", []byte("alpha")))
	require.NoError(t, fs.Write("bb.png", []byte("beta")))

	ids, err = fs.List()
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"aa.jpg": true, "bb.png": true}, ids)

	data, err := os.ReadFile(filepath.Join(fs.Dir(), "aa.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("alpha"), data)

	require.NoError(t, fs.Delete("aa.jpg"))
	ids, err = fs.List()
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"bb.png": true}, ids)
}

func TestFileStoreDeleteMissingIsNoError(t *testing.T) {
	fs := NewFileStore(t.TempDir())
	assert.NoError(t, fs.Delete("never-written.jpg"))
}

func TestFileStoreWriteLeavesNoTempFile(t *testing.T) {
	fs := NewFileStore(t.TempDir())
	require.NoError(t, fs.Write("cc.jpg", []byte("gamma")))

	entries, err := os.ReadDir(fs.Dir())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "cc.jpg", entries[0].Name())
}

func TestFileStoreRejectsTraversal(t *testing.T) {
	fs := NewFileStore(t.TempDir())

	assert.Error(t, fs.Write("../escape.jpg", []byte("x")))
	assert.Error(t, fs.Write("a/b.jpg", []byte("x")))
	assert.Error(t, fs.Write("", []byte("x")))
	assert.Error(t, fs.Delete("../escape.jpg"))
}

func TestFileStoreListIgnoresSubdirectories(t *testing.T) {
	fs := NewFileStore(t.TempDir())
	require.NoError(t, os.MkdirAll(filepath.Join(fs.Dir(), "nested"), 0755))
	require.NoError(t, fs.Write("dd.jpg", []byte("delta")))

	ids, err := fs.List()
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"dd.jpg": true}, ids)
}

func TestFileStoreClear(t *testing.T) {
	fs := NewFileStore(t.TempDir())
	require.NoError(t, fs.Write("ee.jpg", []byte("e")))
	require.NoError(t, fs.Write("ff.jpg", []byte("f")))
	require.NoError(t, os.MkdirAll(filepath.Join(fs.Dir(), "keepme"), 0755))

	require.NoError(t, fs.Clear())

	ids, err := fs.List()
	require.NoError(t, err)
	assert.Empty(t, ids)

	// The directory itself and subdirectories survive.
	info, err := os.Stat(filepath.Join(fs.Dir(), "keepme"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
