package manifest

import (
	"fmt"
	"io/fs"
	"path/filepath"
)

// manifestName is matched exactly; SCORM tooling never varies the case.
const manifestName = "imsmanifest.xml"

// Locate walks root and returns the path of the first imsmanifest.xml found at
// any depth. Returns ErrMissingManifest when the tree holds none, or when the
// walk itself fails.
func Locate(root string) (string, error) {
	var found string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() && entry.Name() == manifestName {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMissingManifest, err)
	}
	if found == "" {
		return "", ErrMissingManifest
	}
	return found, nil
}
