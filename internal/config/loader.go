package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Load loads configuration from file, environment, and defaults
// Uses the global viper instance to access CLI flag bindings
func Load() (*Config, error) {
	// Use global viper instance to get CLI flag bindings
	v := viper.GetViper()

	// Set defaults
	setDefaults(v)

	// Config file settings
	v.SetConfigName("lumoldoc")
	v.SetConfigType("yaml")
	v.AddConfigPath(ConfigDir())
	v.AddConfigPath(".")

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Environment variables (LUMOLDOC_*)
	v.SetEnvPrefix("LUMOLDOC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Validate and apply defaults for empty values
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	def := Default()

	// Project defaults
	v.SetDefault("project.name", def.Project.Name)
	v.SetDefault("project.author", def.Project.Author)
	v.SetDefault("project.copyright", def.Project.Copyright)
	v.SetDefault("project.language", def.Project.Language)

	// Manifest defaults
	v.SetDefault("manifest.path", def.Manifest.Path)

	// General defaults
	v.SetDefault("general.min_host_version", def.General.MinHostVersion)
	v.SetDefault("general.extensions", def.General.Extensions)
	v.SetDefault("general.template_paths", def.General.TemplatePaths)
	v.SetDefault("general.source_suffix", def.General.SourceSuffix)
	v.SetDefault("general.master_doc", def.General.MasterDoc)
	v.SetDefault("general.highlight_style", def.General.HighlightStyle)
	v.SetDefault("general.include_todos", def.General.IncludeTodos)

	// HTML defaults
	v.SetDefault("html.theme", def.HTML.Theme)
	v.SetDefault("html.static_paths", def.HTML.StaticPaths)
	v.SetDefault("html.sidebars", def.HTML.Sidebars)

	// HTMLHelp defaults
	v.SetDefault("htmlhelp.basename", def.HTMLHelp.Basename)

	// LaTeX defaults
	v.SetDefault("latex.elements", def.LaTeX.Elements)

	// Logging defaults
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() error {
	return os.MkdirAll(ConfigDir(), 0755)
}
