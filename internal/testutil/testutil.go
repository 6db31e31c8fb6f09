// Package testutil provides shared test helpers for setting up note stores.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/seldre/nt/internal/storage"
)

// TestStore creates a store over a temporary, already-created base directory.
func TestStore(t *testing.T) (string, *storage.Dir) {
	t.Helper()
	dir := t.TempDir()
	return dir, storage.NewDir(dir)
}

// Seed creates empty note files in dir.
func Seed(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
}
