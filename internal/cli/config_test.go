package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pathmax/pathmax/pkg/errors"
	"github.com/pathmax/pathmax/pkg/solve/approx"
	"github.com/pathmax/pathmax/pkg/solve/greedy"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Greedy.Beta != greedy.DefaultBeta {
		t.Errorf("beta = %v, want %v", cfg.Greedy.Beta, greedy.DefaultBeta)
	}
	if cfg.Greedy.BacktrackRetries != greedy.DefaultBacktrackRetries {
		t.Errorf("backtrack retries = %d, want %d", cfg.Greedy.BacktrackRetries, greedy.DefaultBacktrackRetries)
	}
	if cfg.Approx.SeedsPerStart != approx.DefaultSeedsPerStart {
		t.Errorf("seeds per start = %d, want %d", cfg.Approx.SeedsPerStart, approx.DefaultSeedsPerStart)
	}
}

func TestLoadConfigExplicit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pathmax.toml")
	content := `
[greedy]
beta = 0.45
backtrack_retries = 5

[approx]
seeds_per_start = 8
workers = 2

[compare]
max_exact_vertices = 11
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Greedy.Beta != 0.45 {
		t.Errorf("beta = %v, want 0.45", cfg.Greedy.Beta)
	}
	if cfg.Greedy.BacktrackRetries != 5 {
		t.Errorf("backtrack retries = %d, want 5", cfg.Greedy.BacktrackRetries)
	}
	if cfg.Approx.SeedsPerStart != 8 {
		t.Errorf("seeds per start = %d, want 8", cfg.Approx.SeedsPerStart)
	}
	if cfg.Approx.Workers != 2 {
		t.Errorf("workers = %d, want 2", cfg.Approx.Workers)
	}
	if cfg.Compare.MaxExactVertices != 11 {
		t.Errorf("max exact vertices = %d, want 11", cfg.Compare.MaxExactVertices)
	}
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pathmax.toml")
	if err := os.WriteFile(path, []byte("[greedy]\nbeta = 0.1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Greedy.Beta != 0.1 {
		t.Errorf("beta = %v, want 0.1", cfg.Greedy.Beta)
	}
	// Untouched sections keep their defaults
	if cfg.Greedy.BacktrackRetries != greedy.DefaultBacktrackRetries {
		t.Errorf("backtrack retries = %d, want default", cfg.Greedy.BacktrackRetries)
	}
	if cfg.Approx.SeedsPerStart != approx.DefaultSeedsPerStart {
		t.Errorf("seeds per start = %d, want default", cfg.Approx.SeedsPerStart)
	}
}

func TestLoadConfigMissingExplicit(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("expected an error for a missing explicit config")
	}
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("expected FILE_NOT_FOUND, got %v", err)
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pathmax.toml")
	if err := os.WriteFile(path, []byte("[greedy]\nbetta = 0.2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("expected an error for an unknown key")
	}
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("expected INVALID_CONFIG, got %v", err)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pathmax.toml")
	if err := os.WriteFile(path, []byte("[greedy\nbeta = "), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadConfig(path)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("expected INVALID_CONFIG, got %v", err)
	}
}

func TestLoadConfigNoFileUsesDefaults(t *testing.T) {
	// Run from an empty directory so ./pathmax.toml is absent
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Greedy.Beta != greedy.DefaultBeta {
		t.Errorf("beta = %v, want default", cfg.Greedy.Beta)
	}
}
