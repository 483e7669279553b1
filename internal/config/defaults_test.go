package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefault checks that the default configuration reproduces the values
// the Lumol manual has always been built with.
func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "Lumol", cfg.Project.Name)
	assert.Equal(t, "The lumol developers", cfg.Project.Author)
	assert.Equal(t, "2017, the lumol developers", cfg.Project.Copyright)
	assert.Empty(t, cfg.Project.Language)

	assert.Equal(t, "../../Cargo.toml", cfg.Manifest.Path)

	assert.Equal(t, "1.6", cfg.General.MinHostVersion)
	assert.Equal(t, []string{"todo", "mathjax", "ifconfig"}, cfg.General.Extensions)
	assert.Equal(t, ".rst", cfg.General.SourceSuffix)
	assert.Equal(t, "index", cfg.General.MasterDoc)
	assert.Equal(t, "sphinx", cfg.General.HighlightStyle)
	assert.True(t, cfg.General.IncludeTodos)

	assert.Equal(t, "sphinx_rtd_theme", cfg.HTML.Theme)
	assert.Equal(t,
		[]string{"globaltoc.html", "relations.html", "sourcelink.html", "searchbox.html"},
		cfg.HTML.Sidebars["**"])

	assert.Equal(t, "Lumol", cfg.HTMLHelp.Basename)

	assert.Equal(t, "a4paper", cfg.LaTeX.Elements["papersize"])
	require.Len(t, cfg.LaTeX.Documents, 1)
	doc := cfg.LaTeX.Documents[0]
	assert.Equal(t, "index", doc.StartDoc)
	assert.Equal(t, "Lumol.tex", doc.TargetFile)
	assert.Equal(t, "Lumol user manual", doc.Title)
	assert.Equal(t, "howto", doc.Class)
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	assert.True(t, strings.HasSuffix(dir, ".lumoldoc"))
}

func TestConfigFilePath(t *testing.T) {
	path := ConfigFilePath()
	assert.True(t, strings.HasSuffix(path, "config.yaml"))
}
