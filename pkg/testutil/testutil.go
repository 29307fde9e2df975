// Package testutil provides small filesystem fixtures shared by tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateFile writes content to path, creating parent directories.
func CreateFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// CreateBrokenSymlink creates a symlink pointing at a path that does not
// exist.
func CreateBrokenSymlink(t *testing.T, path string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.Symlink(filepath.Join(filepath.Dir(path), "does-not-exist"), path))
	return path
}

// ReadFile returns path's content, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// Exists reports whether path exists (without following symlinks).
func Exists(t *testing.T, path string) bool {
	t.Helper()
	_, err := os.Lstat(path)
	if err != nil {
		require.True(t, os.IsNotExist(err), "unexpected lstat error: %v", err)
		return false
	}
	return true
}
