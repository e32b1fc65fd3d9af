package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, Default, *cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "codescroll.yaml"), []byte("theme: monokai\ncontext: 5\ncollapse: false\n"), 0o644)
	require.NoError(t, err)

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, "monokai", cfg.Theme)
	require.Equal(t, 5, cfg.Context)
	require.False(t, cfg.Collapse)
	require.Equal(t, Default.LineHeight, cfg.LineHeight)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "codescroll.yaml"), []byte("theme: [unclosed\n"), 0o644)
	require.NoError(t, err)

	_, err = Load(dir)
	require.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CODESCROLL_THEME", "github")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, "github", cfg.Theme)
}
