package site

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat indicates an output format other than yaml or json
var ErrUnsupportedFormat = errors.New("unsupported output format (use yaml or json)")

// Writer serializes a build context for consumption by the host
type Writer struct {
	format string
	force  bool
	dryRun bool
}

// WriterOptions contains options for the writer
type WriterOptions struct {
	Format string // "yaml" or "json"
	Force  bool
	DryRun bool
}

// NewWriter creates a new context writer
func NewWriter(opts WriterOptions) *Writer {
	if opts.Format == "" {
		opts.Format = "yaml"
	}
	return &Writer{
		format: opts.Format,
		force:  opts.Force,
		dryRun: opts.DryRun,
	}
}

// Render serializes the context in the configured format
func (w *Writer) Render(c *Context) ([]byte, error) {
	switch w.format {
	case "yaml", "yml":
		return yaml.Marshal(c)
	case "json":
		return json.MarshalIndent(c, "", "  ")
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, w.format)
	}
}

// Write renders the context to path. The file is written atomically so the
// host never observes a half-written context.
func (w *Writer) Write(path string, c *Context) error {
	// Check if file exists
	if !w.force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("refusing to overwrite %s (use --force)", path)
		}
	}

	data, err := w.Render(c)
	if err != nil {
		return err
	}

	// Dry run - just return
	if w.dryRun {
		return nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return renameio.WriteFile(path, data, 0644)
}
