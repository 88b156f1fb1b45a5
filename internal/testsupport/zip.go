package testsupport

import (
	"archive/zip"
	"bytes"
	"sort"
	"testing"
)

// ZipEntry describes one archive entry; a trailing slash in Name marks a
// directory entry.
type ZipEntry struct {
	Name string
	Body string
}

// BuildZip assembles an in-memory zip archive from file name to contents.
// Entries are written in sorted-name order for deterministic archives.
func BuildZip(t testing.TB, files map[string]string) []byte {
	t.Helper()

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]ZipEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, ZipEntry{Name: name, Body: files[name]})
	}
	return BuildZipEntries(t, entries)
}

// BuildZipEntries assembles an in-memory zip archive from explicit entries.
func BuildZipEntries(t testing.TB, entries []ZipEntry) []byte {
	t.Helper()

	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	for _, entry := range entries {
		w, err := writer.Create(entry.Name)
		if err != nil {
			t.Fatalf("create zip entry %s: %v", entry.Name, err)
		}
		if _, err := w.Write([]byte(entry.Body)); err != nil {
			t.Fatalf("write zip entry %s: %v", entry.Name, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

// MinimalManifest is a single-SCO manifest usable by ingestion tests.
const MinimalManifest = `<?xml version="1.0" encoding="UTF-8"?>
<manifest identifier="course" xmlns:adlcp="http://www.adlnet.org/xsd/adlcp_rootv1p2">
  <organizations default="ORG">
    <organization identifier="ORG">
      <item identifier="ITEM-1" identifierref="RES-1"/>
    </organization>
  </organizations>
  <resources>
    <resource identifier="RES-1" href="index.html" adlcp:scormtype="sco">
      <file href="index.html"/>
    </resource>
  </resources>
</manifest>`
