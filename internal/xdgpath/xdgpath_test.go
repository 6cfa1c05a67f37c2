package xdgpath

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatePath(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_STATE_HOME", base)

	path, err := StatePath("hydrate.pid")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "hydrate", "hydrate.pid"), path)

	// The app directory is created as a side effect.
	info, err := os.Stat(filepath.Join(base, "hydrate"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestConfigPath(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	path, err := ConfigPath("hydrate.conf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "hydrate", "hydrate.conf"), path)
}
