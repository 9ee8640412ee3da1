package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStore_Save(t *testing.T) {
	root := filepath.Join(t.TempDir(), "uploads")
	store, err := NewDiskStore(root)
	require.NoError(t, err)

	t.Run("stores content and preserves the extension", func(t *testing.T) {
		url, err := store.Save(context.Background(), "xray.PNG", strings.NewReader("image bytes"))
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(url, "uploads/"), "got %q", url)
		assert.True(t, strings.HasSuffix(url, ".png"), "got %q", url)

		data, err := store.ReadFile(url)
		require.NoError(t, err)
		assert.Equal(t, "image bytes", string(data))
	})

	t.Run("no extension", func(t *testing.T) {
		url, err := store.Save(context.Background(), "scan", strings.NewReader("x"))
		require.NoError(t, err)
		assert.NotContains(t, filepath.Base(url), ".")
	})

	t.Run("same-millisecond uploads get distinct names", func(t *testing.T) {
		a, err := store.Save(context.Background(), "a.jpg", strings.NewReader("a"))
		require.NoError(t, err)
		b, err := store.Save(context.Background(), "b.jpg", strings.NewReader("b"))
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})
}

func TestDiskStore_Save_SizeLimit(t *testing.T) {
	root := filepath.Join(t.TempDir(), "uploads")
	store, err := NewDiskStore(root)
	require.NoError(t, err)

	t.Run("oversize upload is rejected and nothing is kept", func(t *testing.T) {
		url, err := store.Save(context.Background(), "huge.png", bytes.NewReader(make([]byte, maxUploadSize+1)))
		assert.ErrorIs(t, err, ErrFileTooLarge)
		assert.Empty(t, url)

		entries, err := os.ReadDir(root)
		require.NoError(t, err)
		assert.Empty(t, entries, "partial file must be removed")
	})

	t.Run("upload at the limit is stored in full", func(t *testing.T) {
		payload := make([]byte, maxUploadSize)
		url, err := store.Save(context.Background(), "exact.png", bytes.NewReader(payload))
		require.NoError(t, err)

		data, err := store.ReadFile(url)
		require.NoError(t, err)
		assert.Len(t, data, int(maxUploadSize))
	})
}

func TestDiskStore_ReadFile(t *testing.T) {
	root := filepath.Join(t.TempDir(), "uploads")
	store, err := NewDiskStore(root)
	require.NoError(t, err)

	url, err := store.Save(context.Background(), "pic.jpg", strings.NewReader("content"))
	require.NoError(t, err)

	t.Run("reads a stored file", func(t *testing.T) {
		data, err := store.ReadFile(url)
		require.NoError(t, err)
		assert.Equal(t, "content", string(data))
	})

	t.Run("traversal attempts only see the store directory", func(t *testing.T) {
		outside := filepath.Join(filepath.Dir(root), "secret.txt")
		require.NoError(t, os.WriteFile(outside, []byte("secret"), 0o600))

		_, err := store.ReadFile("uploads/../secret.txt")
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := store.ReadFile("uploads/does-not-exist.png")
		assert.Error(t, err)
	})
}

func TestNewDiskStore_CreatesDirectory(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "uploads")
	store, err := NewDiskStore(root)
	require.NoError(t, err)

	info, err := os.Stat(store.Dir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
