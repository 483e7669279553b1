package manifest

import "errors"

// Sentinel errors for the manifest package
var (
	// ErrFileNotFound indicates the build manifest does not exist
	ErrFileNotFound = errors.New("build manifest not found")

	// ErrInvalidFormat indicates the manifest file is not valid TOML
	ErrInvalidFormat = errors.New("build manifest must be valid TOML")

	// ErrMissingField indicates the manifest has no package.version field
	ErrMissingField = errors.New("build manifest is missing package.version")
)
