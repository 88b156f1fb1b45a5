package ingest_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"scormd/internal/ingest"
	"scormd/internal/logging"
	"scormd/internal/manifest"
	"scormd/internal/testsupport"
)

func newIngestor(t *testing.T) (*ingest.Ingestor, string) {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	return ingest.New(st, cfg, logging.NewNop()), cfg.Paths.DataDir
}

func TestIngestHappyPath(t *testing.T) {
	ing, dataDir := newIngestor(t)
	data := testsupport.BuildZip(t, map[string]string{
		"imsmanifest.xml": testsupport.MinimalManifest,
		"index.html":      "<html>sco</html>",
	})

	course, err := ing.Ingest(context.Background(), "My Course", "pkg.zip", data)
	if err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}
	if course.Title != "My Course" {
		t.Fatalf("unexpected title: %q", course.Title)
	}
	if course.LaunchHref != "index.html" {
		t.Fatalf("unexpected launch href: %q", course.LaunchHref)
	}
	if course.BasePath != "courses/"+course.ID {
		t.Fatalf("unexpected base path: %q", course.BasePath)
	}

	extracted := filepath.Join(dataDir, "courses", course.ID, "index.html")
	if _, err := os.Stat(extracted); err != nil {
		t.Fatalf("expected extracted content at %s: %v", extracted, err)
	}
}

func TestIngestDerivesTitleFromFilename(t *testing.T) {
	ing, _ := newIngestor(t)
	data := testsupport.BuildZip(t, map[string]string{
		"imsmanifest.xml": testsupport.MinimalManifest,
		"index.html":      "x",
	})

	course, err := ing.Ingest(context.Background(), "", "intro_to-widgets.v2.zip", data)
	if err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}
	if course.Title != "Intro To Widgets V2" {
		t.Fatalf("unexpected derived title: %q", course.Title)
	}
}

func TestIngestMissingManifestCleansUp(t *testing.T) {
	ing, dataDir := newIngestor(t)
	data := testsupport.BuildZip(t, map[string]string{
		"index.html": "no manifest here",
	})

	_, err := ing.Ingest(context.Background(), "t", "pkg.zip", data)
	if !errors.Is(err, manifest.ErrMissingManifest) {
		t.Fatalf("expected ErrMissingManifest, got %v", err)
	}

	entries, err := os.ReadDir(filepath.Join(dataDir, "courses"))
	if err != nil {
		t.Fatalf("read courses dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected partial extraction removed, found %d entries", len(entries))
	}
}

func TestIngestCorruptArchive(t *testing.T) {
	ing, _ := newIngestor(t)
	_, err := ing.Ingest(context.Background(), "t", "pkg.zip", []byte("not a zip"))
	if !errors.Is(err, ingest.ErrBadArchive) {
		t.Fatalf("expected ErrBadArchive, got %v", err)
	}
}
