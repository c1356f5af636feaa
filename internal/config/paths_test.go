package config

import (
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePathsDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	root := t.TempDir()
	paths, err := ResolvePaths(root, Default())
	require.NoError(t, err)

	assert.Equal(t, root, paths.Root)
	assert.Equal(t, filepath.Join(root, "package.json"), paths.Manifest)
	assert.Equal(t, filepath.Join(root, "resources", "native-binary", "claude"), paths.Link)
	assert.Equal(t, filepath.Join(home, ".vscode", "extensions"), paths.ExtensionsDir)
}

func TestResolvePathsAbsoluteOverrides(t *testing.T) {
	root := t.TempDir()
	cfg := Default()
	cfg.Manifest = "/srv/ext/package.json"
	cfg.ExtensionsDir = "/srv/extensions/"

	paths, err := ResolvePaths(root, cfg)
	require.NoError(t, err)
	assert.Equal(t, "/srv/ext/package.json", paths.Manifest)
	assert.Equal(t, "/srv/extensions", paths.ExtensionsDir)
}
