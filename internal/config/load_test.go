package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) (string, bool) { return "", false }

func envMap(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	root := t.TempDir()

	loaded, err := Load(root, noEnv)
	require.NoError(t, err)
	assert.Empty(t, loaded.Source)
	assert.Equal(t, Default(), loaded.Config)
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	root := t.TempDir()
	content := `
link = "resources/bin/agent"
verbose = true

[tools]
ide = "cursor"
`
	path := filepath.Join(root, "extinstall.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	loaded, err := Load(root, noEnv)
	require.NoError(t, err)
	assert.Equal(t, path, loaded.Source)
	assert.Equal(t, "resources/bin/agent", loaded.Link)
	assert.True(t, loaded.Verbose)
	assert.Equal(t, "cursor", loaded.Tools.IDE)
	assert.Equal(t, DefaultPackagerTool, loaded.Tools.Packager)
	assert.Equal(t, DefaultManifest, loaded.Manifest)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "extinstall.toml"), []byte("manfest = \"x.json\"\n"), 0o644))

	_, err := Load(root, noEnv)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "extinstall.toml"), []byte("link = \n"), 0o644))

	_, err := Load(root, noEnv)
	require.Error(t, err)
}

func TestLoadValidationFailure(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "extinstall.toml"), []byte("[tools]\nide = \"\"\n"), 0o644))

	_, err := Load(root, noEnv)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Config.Tools.IDE")
	assert.Contains(t, err.Error(), "required")
}

func TestLoadReadError(t *testing.T) {
	orig := readFile
	t.Cleanup(func() { readFile = orig })
	readFile = func(string) ([]byte, error) { return nil, errors.New("permission denied") }

	_, err := Load(t.TempDir(), noEnv)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
}

func TestLoadNilLookupUsesProcessEnv(t *testing.T) {
	t.Setenv(EnvPackagerTool, "npx-vsce")

	loaded, err := Load(t.TempDir(), nil)
	require.NoError(t, err)
	assert.Equal(t, "npx-vsce", loaded.Tools.Packager)
}
