// Package testutil provides filesystem helpers shared by the helper package tests.
package testutil

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// =====================================
// File System Testing Utilities
// =====================================

// CreateTestFile writes content to dir/name on fs and returns the full path
func CreateTestFile(t *testing.T, fs afero.Fs, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, fs.MkdirAll(dir, 0o755))
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	return path
}

// AssertFileExists verifies that path exists on fs
func AssertFileExists(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	exists, err := afero.Exists(fs, path)
	require.NoError(t, err)
	require.Truef(t, exists, "expected file to exist: %s", path)
}

// AssertFileNotExists verifies that path does not exist on fs
func AssertFileNotExists(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	exists, err := afero.Exists(fs, path)
	require.NoError(t, err)
	require.Falsef(t, exists, "expected file to not exist: %s", path)
}

// AssertFileContent verifies file content matches expected
func AssertFileContent(t *testing.T, fs afero.Fs, path, expected string) {
	t.Helper()
	content, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	require.Equal(t, expected, string(content))
}

// AssertFilePermissions verifies the permission bits of path on fs
func AssertFilePermissions(t *testing.T, fs afero.Fs, path string, expected os.FileMode) {
	t.Helper()
	info, err := fs.Stat(path)
	require.NoError(t, err)
	require.Equalf(t, expected, info.Mode().Perm(), "unexpected permissions for %s", path)
}

// =====================================
// Concurrency Testing Utilities
// =====================================

// ParallelTest runs testFunc from numGoroutines goroutines and waits for all of them
func ParallelTest(t *testing.T, numGoroutines int, testFunc func(t *testing.T, workerID int)) {
	t.Helper()

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(workerID int) {
			defer wg.Done()
			testFunc(t, workerID)
		}(i)
	}
	wg.Wait()
}
