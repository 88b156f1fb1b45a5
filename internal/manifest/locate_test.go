package manifest_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"scormd/internal/manifest"
)

func TestLocateFindsNestedManifest(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "package", "content")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	want := filepath.Join(nested, "imsmanifest.xml")
	if err := os.WriteFile(want, []byte("<manifest/>"), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	got, err := manifest.Locate(root)
	if err != nil {
		t.Fatalf("Locate failed: %v", err)
	}
	if got != want {
		t.Fatalf("Locate = %q, want %q", got, want)
	}
}

func TestLocateIsCaseSensitive(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "IMSMANIFEST.XML"), []byte("<m/>"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := manifest.Locate(root)
	if !errors.Is(err, manifest.ErrMissingManifest) {
		t.Fatalf("expected ErrMissingManifest for case mismatch, got %v", err)
	}
}

func TestLocateMissingManifest(t *testing.T) {
	_, err := manifest.Locate(t.TempDir())
	if !errors.Is(err, manifest.ErrMissingManifest) {
		t.Fatalf("expected ErrMissingManifest, got %v", err)
	}
}
