// Package testutil provides common test helpers for the ok project.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hbjs97/ok/internal/locator"
)

// WriteProfile writes a profile file with the given content into dir
// and returns its path.
func WriteProfile(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, locator.DefaultFileName)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteProfile: write failed: %v", err)
	}

	return path
}

// MkdirAll creates root/elems... and returns the joined path.
func MkdirAll(t *testing.T, root string, elems ...string) string {
	t.Helper()

	dir := filepath.Join(append([]string{root}, elems...)...)
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	return dir
}

// TempConfigFile creates a temporary config.toml with the given content
// and returns its path. The file is automatically cleaned up.
func TempConfigFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempConfigFile: write failed: %v", err)
	}

	return path
}

// TempProfileTree creates root/<nested...> under a temporary directory,
// writes content as the profile in root and returns (root, deepest dir).
func TempProfileTree(t *testing.T, content string, nested ...string) (string, string) {
	t.Helper()

	root := t.TempDir()
	WriteProfile(t, root, content)

	return root, MkdirAll(t, root, nested...)
}
