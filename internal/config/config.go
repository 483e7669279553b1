package config

import (
	"fmt"
)

// Config represents the documentation build configuration. It is constructed
// once at startup and passed by reference to whatever consumes it; nothing
// reads it through package-level state.
type Config struct {
	Project  ProjectConfig  `mapstructure:"project" yaml:"project"`
	Manifest ManifestConfig `mapstructure:"manifest" yaml:"manifest"`
	General  GeneralConfig  `mapstructure:"general" yaml:"general"`
	HTML     HTMLConfig     `mapstructure:"html" yaml:"html"`
	HTMLHelp HTMLHelpConfig `mapstructure:"htmlhelp" yaml:"htmlhelp"`
	LaTeX    LaTeXConfig    `mapstructure:"latex" yaml:"latex"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
}

// ProjectConfig contains project metadata substituted into generated pages
type ProjectConfig struct {
	Name      string `mapstructure:"name" yaml:"name"`
	Author    string `mapstructure:"author" yaml:"author"`
	Copyright string `mapstructure:"copyright" yaml:"copyright"`
	Language  string `mapstructure:"language" yaml:"language,omitempty"`
}

// ManifestConfig locates the build manifest the version pair is read from
type ManifestConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// GeneralConfig contains host settings independent of the output format
type GeneralConfig struct {
	MinHostVersion  string   `mapstructure:"min_host_version" yaml:"min_host_version"`
	Extensions      []string `mapstructure:"extensions" yaml:"extensions"`
	TemplatePaths   []string `mapstructure:"template_paths" yaml:"template_paths,omitempty"`
	SourceSuffix    string   `mapstructure:"source_suffix" yaml:"source_suffix"`
	MasterDoc       string   `mapstructure:"master_doc" yaml:"master_doc"`
	ExcludePatterns []string `mapstructure:"exclude_patterns" yaml:"exclude_patterns,omitempty"`
	HighlightStyle  string   `mapstructure:"highlight_style" yaml:"highlight_style"`
	IncludeTodos    bool     `mapstructure:"include_todos" yaml:"include_todos"`
}

// HTMLConfig contains settings for the HTML rendering target
type HTMLConfig struct {
	Theme        string              `mapstructure:"theme" yaml:"theme"`
	ThemeOptions map[string]string   `mapstructure:"theme_options" yaml:"theme_options,omitempty"`
	StaticPaths  []string            `mapstructure:"static_paths" yaml:"static_paths,omitempty"`
	Sidebars     map[string][]string `mapstructure:"sidebars" yaml:"sidebars,omitempty"`
}

// HTMLHelpConfig contains settings for the HTML help rendering target
type HTMLHelpConfig struct {
	Basename string `mapstructure:"basename" yaml:"basename"`
}

// LaTeXConfig contains settings for the LaTeX rendering target
type LaTeXConfig struct {
	Elements  map[string]string `mapstructure:"elements" yaml:"elements,omitempty"`
	Documents []LaTeXDocument   `mapstructure:"documents" yaml:"documents"`
}

// LaTeXDocument describes one generated LaTeX document
type LaTeXDocument struct {
	StartDoc   string `mapstructure:"start_doc" yaml:"start_doc"`
	TargetFile string `mapstructure:"target_file" yaml:"target_file"`
	Title      string `mapstructure:"title" yaml:"title"`
	Author     string `mapstructure:"author" yaml:"author"`
	Class      string `mapstructure:"class" yaml:"class"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration, repairing empty values that have a
// sensible default and rejecting ones that do not.
func (c *Config) Validate() error {
	if c.Project.Name == "" {
		return fmt.Errorf("project.name cannot be empty")
	}
	if c.Manifest.Path == "" {
		c.Manifest.Path = DefaultManifestPath
	}
	if c.General.MasterDoc == "" {
		c.General.MasterDoc = DefaultMasterDoc
	}
	if c.General.SourceSuffix == "" {
		c.General.SourceSuffix = DefaultSourceSuffix
	}
	if c.HTML.Theme == "" {
		c.HTML.Theme = DefaultHTMLTheme
	}
	if c.HTMLHelp.Basename == "" {
		c.HTMLHelp.Basename = c.Project.Name
	}
	if len(c.LaTeX.Elements) == 0 {
		c.LaTeX.Elements = map[string]string{"papersize": DefaultPaperSize}
	}
	if len(c.LaTeX.Documents) == 0 {
		c.LaTeX.Documents = []LaTeXDocument{{
			StartDoc:   c.General.MasterDoc,
			TargetFile: c.Project.Name + ".tex",
			Title:      c.Project.Name + " user manual",
			Author:     c.Project.Author,
			Class:      "howto",
		}}
	}
	for i, doc := range c.LaTeX.Documents {
		switch doc.Class {
		case "howto", "manual":
		default:
			return fmt.Errorf("latex.documents[%d]: unknown document class %q", i, doc.Class)
		}
	}
	switch c.Logging.Level {
	case "":
		c.Logging.Level = DefaultLogLevel
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level: %q", c.Logging.Level)
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	return nil
}
