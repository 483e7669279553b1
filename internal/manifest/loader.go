package manifest

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Loader loads and validates build manifests
type Loader struct{}

// NewLoader creates a new manifest loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses a build manifest from the given path
func (l *Loader) Load(path string) (*Manifest, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read build manifest: %w", err)
	}

	return l.LoadFromBytes(data)
}

// LoadFromBytes parses a build manifest from raw bytes
func (l *Loader) LoadFromBytes(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// Resolve loads the manifest at path and derives the version pair from it.
// It is the single read the documentation build performs; any failure is
// fatal to the build and surfaced unwrapped to the caller.
func (l *Loader) Resolve(path string) (ResolvedVersion, error) {
	m, err := l.Load(path)
	if err != nil {
		return ResolvedVersion{}, err
	}
	return ResolveVersion(m.Package.Version), nil
}
