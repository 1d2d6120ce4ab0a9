package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteTree creates each slash-separated relative path under root with
// placeholder content, making parent directories as needed.
func WriteTree(t testing.TB, root string, paths ...string) {
	t.Helper()
	for _, rel := range paths {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", filepath.Dir(full), err)
		}
		if err := os.WriteFile(full, []byte("img"), 0o644); err != nil {
			t.Fatalf("write %s: %v", full, err)
		}
	}
}

// ImageDir returns a fresh temp directory populated by WriteTree.
func ImageDir(t testing.TB, paths ...string) string {
	t.Helper()
	root := t.TempDir()
	WriteTree(t, root, paths...)
	return root
}

// Rel converts absolute paths under root into slash-separated relative paths.
func Rel(t testing.TB, root string, paths []string) []string {
	t.Helper()
	out := make([]string, 0, len(paths))
	for _, path := range paths {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			t.Fatalf("rel %s: %v", path, err)
		}
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}
