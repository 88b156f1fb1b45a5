package ingest

import (
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const fallbackTitle = "Untitled Course"

// DeriveTitle builds a display title from an uploaded archive's filename when
// the uploader supplied none: extension stripped, separators collapsed to
// spaces, title-cased.
func DeriveTitle(filename string) string {
	if filename == "" {
		return fallbackTitle
	}
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	cleaned := strings.Builder{}
	prevSpace := false
	for _, r := range base {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			cleaned.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			if !prevSpace {
				cleaned.WriteRune(' ')
				prevSpace = true
			}
		}
	}
	title := strings.TrimSpace(cleaned.String())
	if title == "" {
		return fallbackTitle
	}
	return cases.Title(language.Und).String(title)
}
