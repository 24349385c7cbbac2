package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pathmax/pathmax/pkg/errors"
)

func TestCollectCasesFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	for _, p := range []string{a, b} {
		if err := os.WriteFile(p, []byte("1 0\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := collectCases([]string{b, a})
	if err != nil {
		t.Fatalf("collectCases: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("got %d files, want 2", len(files))
	}
	// Sorted regardless of argument order
	if files[0] != a || files[1] != b {
		t.Errorf("files = %v, want sorted [%s %s]", files, a, b)
	}
}

func TestCollectCasesDirectory(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"x.txt", "y.txt", "notes.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("1 0\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := collectCases([]string{dir})
	if err != nil {
		t.Fatalf("collectCases: %v", err)
	}
	if len(files) != 2 {
		t.Errorf("got %d files, want 2 (*.txt only)", len(files))
	}
}

func TestCollectCasesMissing(t *testing.T) {
	_, err := collectCases([]string{filepath.Join(t.TempDir(), "nope.txt")})
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("expected FILE_NOT_FOUND, got %v", err)
	}
}

func TestCollectCasesEmptyDirectory(t *testing.T) {
	_, err := collectCases([]string{t.TempDir()})
	if !errors.Is(err, errors.ErrCodeInvalidOption) {
		t.Errorf("expected INVALID_OPTION, got %v", err)
	}
}
