package manifest

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ResolvedVersion is the version pair substituted into generated pages.
// Release is the manifest string byte-for-byte; Version is its major.minor
// truncation used for display.
type ResolvedVersion struct {
	Version string `json:"version" yaml:"version"`
	Release string `json:"release" yaml:"release"`
}

// ResolveVersion derives the display version from a release string. The
// truncation is textual: the first two dot-separated components are rejoined
// with a dot, and a release with fewer than two components passes through
// unchanged. Component values are not parsed or validated.
func ResolveVersion(release string) ResolvedVersion {
	parts := strings.Split(release, ".")
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return ResolvedVersion{
		Version: strings.Join(parts, "."),
		Release: release,
	}
}

// Semver reports whether Release is a well-formed semantic version. The
// truncation above never depends on this; it only feeds lint warnings.
func (v ResolvedVersion) Semver() bool {
	_, err := semver.StrictNewVersion(v.Release)
	return err == nil
}
