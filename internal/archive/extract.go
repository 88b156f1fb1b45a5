package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Extract unpacks archive bytes into dir, creating it if absent. Entries whose
// names end in a separator become directories; all other entries are written at
// their relative path under dir, with missing ancestors created as needed.
// Files already written are not rolled back when a later entry fails.
//
// Entry names are used as-is. Traversal entries ("../x") and decompression
// bombs are not defended against; callers must only feed archives from
// trusted or size-bounded uploads.
func Extract(data []byte, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}

	for _, entry := range reader.File {
		if err := writeEntry(entry, dir); err != nil {
			return err
		}
	}
	return nil
}

func writeEntry(entry *zip.File, dir string) error {
	target := filepath.Join(dir, filepath.FromSlash(entry.Name))

	if strings.HasSuffix(entry.Name, "/") {
		if err := os.MkdirAll(target, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", entry.Name, err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create parent for %q: %w", entry.Name, err)
	}

	in, err := entry.Open()
	if err != nil {
		return fmt.Errorf("read entry %q: %w", entry.Name, err)
	}
	defer in.Close()

	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create file %q: %w", entry.Name, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("write file %q: %w", entry.Name, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close file %q: %w", entry.Name, err)
	}
	return nil
}
