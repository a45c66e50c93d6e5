package alfrusco

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvProvider(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(envWorkflowCache, filepath.Join(dir, "cache"))
	t.Setenv(envWorkflowData, filepath.Join(dir, "data"))
	t.Setenv(envWorkflowBundleID, "com.example.test")
	t.Setenv(envWorkflowName, "Test")
	t.Setenv(envDebug, "1")

	cfg, err := EnvProvider{}.Config()
	require.NoError(t, err)

	assert.Equal(t, "com.example.test", cfg.BundleID)
	assert.Equal(t, "Test", cfg.Name)
	assert.True(t, cfg.Debug)

	// The provider creates the directories so the workflow can use them
	// immediately.
	assert.DirExists(t, cfg.CacheDir)
	assert.DirExists(t, cfg.DataDir)
}

func TestEnvProviderMissingDirs(t *testing.T) {
	t.Setenv(envWorkflowCache, "")
	t.Setenv(envWorkflowData, "")

	_, err := EnvProvider{}.Config()
	require.Error(t, err)
	assert.Contains(t, err.Error(), envWorkflowCache)
}

func TestEnvProviderDebugVariants(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(envWorkflowCache, filepath.Join(dir, "cache"))
	t.Setenv(envWorkflowData, filepath.Join(dir, "data"))

	for raw, want := range map[string]bool{"1": true, "true": true, "TRUE": true, "0": false, "": false} {
		t.Setenv(envDebug, raw)
		cfg, err := EnvProvider{}.Config()
		require.NoError(t, err)
		assert.Equal(t, want, cfg.Debug, "alfred_debug=%q", raw)
	}
}

func TestTestingProvider(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg, err := TestingProvider{Dir: dir}.Config()
	require.NoError(t, err)

	assert.DirExists(t, cfg.CacheDir)
	assert.DirExists(t, cfg.DataDir)
	assert.NotEmpty(t, cfg.BundleID)
	assert.True(t, cfg.Debug)

	// Everything lives under the caller's directory, nothing global.
	rel, err := filepath.Rel(dir, cfg.CacheDir)
	require.NoError(t, err)
	assert.False(t, filepath.IsAbs(rel))
	assert.NotContains(t, rel, "..")
}
