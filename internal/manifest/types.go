package manifest

// Manifest represents the project build manifest (Cargo.toml)
type Manifest struct {
	Package Package `toml:"package"`
}

// Package represents the [package] table of the manifest
type Package struct {
	Name          string   `toml:"name"`
	Version       string   `toml:"version"`
	Authors       []string `toml:"authors,omitempty"`
	Description   string   `toml:"description,omitempty"`
	Documentation string   `toml:"documentation,omitempty"`
	Repository    string   `toml:"repository,omitempty"`
	License       string   `toml:"license,omitempty"`
	Edition       string   `toml:"edition,omitempty"`
}

// Validate validates the manifest contents
func (m *Manifest) Validate() error {
	if m.Package.Version == "" {
		return ErrMissingField
	}
	return nil
}
