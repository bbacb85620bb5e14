package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", filepath.Join(dir, "home"))
	chdir(t, dir)
	return dir
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultBulkLimit, cfg.Limits.Bulk)
	assert.Equal(t, DefaultStreamLimit, cfg.Limits.Stream)
	assert.Equal(t, DefaultBatchSize, cfg.Stream.BatchSize)
	assert.Positive(t, cfg.Stream.Workers)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Output)
	assert.Empty(t, cfg.File)
}

func TestLoadFromDirectory(t *testing.T) {
	dir := isolate(t)
	cfgDir := filepath.Join(dir, "custom")
	require.NoError(t, os.MkdirAll(cfgDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte("limits:\n  bulk: 50\nstream:\n  batch_size: 7\noutput: json\n"), 0o644))

	cfg, err := Load(cfgDir)
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Limits.Bulk)
	assert.Equal(t, 7, cfg.Stream.BatchSize)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, DefaultStreamLimit, cfg.Limits.Stream)
	assert.Equal(t, filepath.Join(cfgDir, "config.yaml"), cfg.File)
}

func TestLoadFromExplicitFile(t *testing.T) {
	dir := isolate(t)
	file := filepath.Join(dir, "ulidkit.yaml")
	require.NoError(t, os.WriteFile(file, []byte("log:\n  level: debug\n"), 0o644))

	cfg, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFromXDG(t *testing.T) {
	dir := isolate(t)
	xdgDir := filepath.Join(dir, "xdg", "ulidkit")
	require.NoError(t, os.MkdirAll(xdgDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(xdgDir, "config.yaml"), []byte("limits:\n  stream: 500\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.Limits.Stream)
}

func TestLoadEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("ULIDKIT_LIMITS_BULK", "123")
	t.Setenv("ULIDKIT_LOG_LEVEL", "error")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 123, cfg.Limits.Bulk)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := isolate(t)
	file := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(file, []byte("limits:\n  bulk: 0\n"), 0o644))

	_, err := Load(file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limits.bulk")
}

func TestLoadMalformedFile(t *testing.T) {
	dir := isolate(t)
	file := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(file, []byte("limits: [unterminated\n"), 0o644))

	_, err := Load(file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestValidateOutput(t *testing.T) {
	cfg := Default()
	cfg.Output = "xml"
	assert.Error(t, cfg.Validate())

	cfg.Output = "yaml"
	assert.NoError(t, cfg.Validate())
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
