package site

import (
	"time"

	"github.com/bodomartin/lumol/internal/config"
	"github.com/bodomartin/lumol/internal/manifest"
)

// Context is the assembled configuration a documentation host consumes for
// one build. It is computed once per invocation and never mutated afterward.
type Context struct {
	Config      *config.Config           `json:"config" yaml:"config"`
	Version     manifest.ResolvedVersion `json:"version" yaml:"version"`
	GeneratedAt time.Time                `json:"generated_at" yaml:"generated_at"`
}

// Build resolves the version pair from the configured build manifest and
// assembles the build context. A missing or broken manifest fails the build;
// there is no fallback version.
func Build(cfg *config.Config) (*Context, error) {
	loader := manifest.NewLoader()
	v, err := loader.Resolve(cfg.Manifest.Path)
	if err != nil {
		return nil, err
	}

	return &Context{
		Config:      cfg,
		Version:     v,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// Substitutions returns the placeholder values the host substitutes into
// generated pages wherever |version|-style markers appear.
func (c *Context) Substitutions() map[string]string {
	return map[string]string{
		"version":   c.Version.Version,
		"release":   c.Version.Release,
		"project":   c.Config.Project.Name,
		"author":    c.Config.Project.Author,
		"copyright": c.Config.Project.Copyright,
	}
}
