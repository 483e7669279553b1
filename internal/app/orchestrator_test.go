package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodomartin/lumol/internal/config"
	"github.com/bodomartin/lumol/internal/manifest"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Errorf("failed to restore working directory: %v", err)
		}
	})
}

func testConfig(t *testing.T, version string) *config.Config {
	t.Helper()
	cfg := config.Default()
	path := filepath.Join(t.TempDir(), "Cargo.toml")
	content := "[package]\nname = \"lumol\"\nversion = \"" + version + "\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	cfg.Manifest.Path = path
	return cfg
}

func TestNewOrchestrator_RequiresConfig(t *testing.T) {
	o, err := NewOrchestrator(OrchestratorOptions{})
	assert.Nil(t, o)
	assert.Error(t, err)
}

func TestOrchestrator_Resolve(t *testing.T) {
	o, err := NewOrchestrator(OrchestratorOptions{Config: testConfig(t, "0.7.2")})
	require.NoError(t, err)

	v, err := o.Resolve()

	require.NoError(t, err)
	assert.Equal(t, "0.7", v.Version)
	assert.Equal(t, "0.7.2", v.Release)
}

func TestOrchestrator_Resolve_MissingManifest(t *testing.T) {
	cfg := config.Default()
	cfg.Manifest.Path = filepath.Join(t.TempDir(), "Cargo.toml")
	o, err := NewOrchestrator(OrchestratorOptions{Config: cfg})
	require.NoError(t, err)

	_, err = o.Resolve()

	assert.ErrorIs(t, err, manifest.ErrFileNotFound)
}

func TestOrchestrator_BuildContext(t *testing.T) {
	o, err := NewOrchestrator(OrchestratorOptions{Config: testConfig(t, "0.7.2")})
	require.NoError(t, err)

	ctx, err := o.BuildContext()

	require.NoError(t, err)
	assert.Equal(t, "0.7.2", ctx.Version.Release)
	assert.Equal(t, "Lumol", ctx.Config.Project.Name)
}

func TestOrchestrator_Check_AllOK(t *testing.T) {
	chdir(t, t.TempDir())
	o, err := NewOrchestrator(OrchestratorOptions{Config: testConfig(t, "0.7.2")})
	require.NoError(t, err)

	results := o.Check()

	require.Len(t, results, 3)
	for _, r := range results {
		assert.Equal(t, CheckOK, r.Status, r.Name)
	}
}

func TestOrchestrator_Check_NonSemverWarns(t *testing.T) {
	chdir(t, t.TempDir())
	o, err := NewOrchestrator(OrchestratorOptions{Config: testConfig(t, "2.10")})
	require.NoError(t, err)

	results := o.Check()

	require.Len(t, results, 3)
	assert.Equal(t, CheckOK, results[0].Status)
	assert.Equal(t, CheckWarn, results[1].Status)
	assert.Contains(t, results[1].Detail, "2.10")
}

func TestOrchestrator_Check_MissingManifestFails(t *testing.T) {
	chdir(t, t.TempDir())
	cfg := config.Default()
	cfg.Manifest.Path = filepath.Join(t.TempDir(), "Cargo.toml")
	o, err := NewOrchestrator(OrchestratorOptions{Config: cfg})
	require.NoError(t, err)

	results := o.Check()

	require.Len(t, results, 1)
	assert.Equal(t, CheckFail, results[0].Status)
}
