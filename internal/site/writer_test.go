package site

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bodomartin/lumol/internal/config"
)

func buildContext(t *testing.T) *Context {
	t.Helper()
	cfg := config.Default()
	cfg.Manifest.Path = writeManifest(t, "0.7.2")
	ctx, err := Build(cfg)
	require.NoError(t, err)
	return ctx
}

func TestWriter_Render_YAML(t *testing.T) {
	w := NewWriter(WriterOptions{Format: "yaml"})
	ctx := buildContext(t)

	data, err := w.Render(ctx)

	require.NoError(t, err)
	var decoded Context
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "0.7", decoded.Version.Version)
	assert.Equal(t, "0.7.2", decoded.Version.Release)
	assert.Equal(t, "Lumol", decoded.Config.Project.Name)
}

func TestWriter_Render_JSON(t *testing.T) {
	w := NewWriter(WriterOptions{Format: "json"})
	ctx := buildContext(t)

	data, err := w.Render(ctx)

	require.NoError(t, err)
	var decoded Context
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "0.7.2", decoded.Version.Release)
}

func TestWriter_Render_UnsupportedFormat(t *testing.T) {
	w := NewWriter(WriterOptions{Format: "toml"})

	data, err := w.Render(buildContext(t))

	assert.Nil(t, data)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestWriter_Write(t *testing.T) {
	w := NewWriter(WriterOptions{Format: "yaml"})
	path := filepath.Join(t.TempDir(), "out", "context.yaml")

	err := w.Write(path, buildContext(t))

	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "release: 0.7.2")
}

func TestWriter_Write_DryRun(t *testing.T) {
	w := NewWriter(WriterOptions{Format: "yaml", DryRun: true})
	path := filepath.Join(t.TempDir(), "context.yaml")

	err := w.Write(path, buildContext(t))

	require.NoError(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriter_Write_NoOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "context.yaml")
	require.NoError(t, os.WriteFile(path, []byte("existing"), 0644))

	w := NewWriter(WriterOptions{Format: "yaml"})
	err := w.Write(path, buildContext(t))

	assert.Error(t, err)
	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "existing", string(data))
}

func TestWriter_Write_ForceOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "context.yaml")
	require.NoError(t, os.WriteFile(path, []byte("existing"), 0644))

	w := NewWriter(WriterOptions{Format: "yaml", Force: true})
	err := w.Write(path, buildContext(t))

	require.NoError(t, err)
	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Contains(t, string(data), "release: 0.7.2")
}

func TestNewWriter_DefaultFormat(t *testing.T) {
	w := NewWriter(WriterOptions{})
	assert.Equal(t, "yaml", w.format)
}
