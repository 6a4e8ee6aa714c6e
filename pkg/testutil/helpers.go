package testutil

import (
	"path/filepath"
	"testing"
)

// resolvedTempDir returns a temp dir with symlinks in its own path resolved
func resolvedTempDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatalf("Failed to resolve temp dir %s: %v", dir, err)
	}
	return resolved
}
