package config

import (
	"os"
	"path/filepath"
)

// Default values
const (
	// Project defaults
	DefaultProjectName = "Lumol"
	DefaultAuthor      = "The lumol developers"
	DefaultCopyright   = "2017, the lumol developers"

	// Manifest defaults: the build manifest lives two directories above the
	// documentation sources.
	DefaultManifestPath = "../../Cargo.toml"

	// General defaults
	DefaultMinHostVersion = "1.6"
	DefaultSourceSuffix   = ".rst"
	DefaultMasterDoc      = "index"
	DefaultHighlightStyle = "sphinx"
	DefaultIncludeTodos   = true

	// HTML defaults
	DefaultHTMLTheme = "sphinx_rtd_theme"

	// LaTeX defaults
	DefaultPaperSize = "a4paper"

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// DefaultExtensions are the host extensions the manual is built with
var DefaultExtensions = []string{"todo", "mathjax", "ifconfig"}

// DefaultSidebars pins the global table of contents into every sidebar
var DefaultSidebars = map[string][]string{
	"**": {"globaltoc.html", "relations.html", "sourcelink.html", "searchbox.html"},
}

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".lumoldoc"
	}
	return filepath.Join(home, ".lumoldoc")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration, reproducing the values the
// Lumol user manual has always been built with.
func Default() *Config {
	return &Config{
		Project: ProjectConfig{
			Name:      DefaultProjectName,
			Author:    DefaultAuthor,
			Copyright: DefaultCopyright,
			Language:  "",
		},
		Manifest: ManifestConfig{
			Path: DefaultManifestPath,
		},
		General: GeneralConfig{
			MinHostVersion: DefaultMinHostVersion,
			Extensions:     DefaultExtensions,
			TemplatePaths:  []string{},
			SourceSuffix:   DefaultSourceSuffix,
			MasterDoc:      DefaultMasterDoc,
			HighlightStyle: DefaultHighlightStyle,
			IncludeTodos:   DefaultIncludeTodos,
		},
		HTML: HTMLConfig{
			Theme:       DefaultHTMLTheme,
			StaticPaths: []string{},
			Sidebars:    DefaultSidebars,
		},
		HTMLHelp: HTMLHelpConfig{
			Basename: DefaultProjectName,
		},
		LaTeX: LaTeXConfig{
			Elements: map[string]string{
				"papersize": DefaultPaperSize,
			},
			Documents: []LaTeXDocument{
				{
					StartDoc:   DefaultMasterDoc,
					TargetFile: "Lumol.tex",
					Title:      "Lumol user manual",
					Author:     DefaultAuthor,
					Class:      "howto",
				},
			},
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
