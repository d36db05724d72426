package storage_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview-transcription-backend/internal/storage"
)

func TestSaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	s, err := storage.NewLocalStore(dir)
	require.NoError(t, err)

	path, err := s.Save("abc.mp4", bytes.NewReader([]byte("data")))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "abc.mp4"), path)
	assert.True(t, s.Exists(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))

	require.NoError(t, s.Remove(path))
	assert.False(t, s.Exists(path))

	// Removing an already-gone file is not an error
	assert.NoError(t, s.Remove(path))
}

func TestNewLocalStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := storage.NewLocalStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
