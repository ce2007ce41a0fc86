package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	t.Parallel()
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: jsonl\npreview_rows: 5\nstyle: rounded\nverbose: true\n"), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Config{Format: "jsonl", PreviewRows: 5, Style: "rounded", Verbose: true}, cfg)
}

func TestLoadConfigMalformed(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: [broken\n"), 0o644))

	_, err := loadConfig(path)
	assert.Error(t, err)
}

func TestConfigPathEnvOverride(t *testing.T) {
	t.Setenv("TABLY_CONFIG", "/tmp/custom.yaml")
	assert.Equal(t, "/tmp/custom.yaml", configPath())
}
