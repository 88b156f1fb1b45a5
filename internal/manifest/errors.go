package manifest

import "errors"

var (
	// ErrMissingManifest indicates no imsmanifest.xml exists in the package,
	// or the one found could not be read.
	ErrMissingManifest = errors.New("imsmanifest.xml not found")

	// ErrMalformedXML indicates the manifest could not be tokenized.
	ErrMalformedXML = errors.New("malformed manifest xml")

	// ErrNoLaunchPath indicates the manifest parsed cleanly but no fallback
	// tier produced a usable launch href.
	ErrNoLaunchPath = errors.New("no launch path resolvable")
)
