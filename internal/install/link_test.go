package install

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLinkSystem writes a regular file instead of a symlink so the post-link
// check can be exercised.
type fakeLinkSystem struct {
	RealSystem
	symlinkErr error
	removeErr  error
}

func (s fakeLinkSystem) Symlink(_ string, newname string) error {
	if s.symlinkErr != nil {
		return s.symlinkErr
	}
	return os.WriteFile(newname, []byte("copy"), 0o755)
}

func (s fakeLinkSystem) Remove(name string) error {
	if s.removeErr != nil {
		return s.removeErr
	}
	return os.Remove(name)
}

func TestReplaceSymlinkCreatesParents(t *testing.T) {
	root := t.TempDir()
	link := filepath.Join(root, "resources", "native-binary", "claude")

	require.NoError(t, ReplaceSymlink(RealSystem{}, link, "/opt/claude"))
	target, err := os.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, "/opt/claude", target)
}

func TestReplaceSymlinkReplacesExisting(t *testing.T) {
	root := t.TempDir()
	link := filepath.Join(root, "claude")

	require.NoError(t, os.Symlink("/old/claude", link))
	require.NoError(t, ReplaceSymlink(RealSystem{}, link, "/new/claude"))
	target, err := os.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, "/new/claude", target)

	require.NoError(t, os.Remove(link))
	require.NoError(t, os.WriteFile(link, []byte("copy"), 0o755))
	require.NoError(t, ReplaceSymlink(RealSystem{}, link, "/newer/claude"))
	target, err = os.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, "/newer/claude", target)
}

func TestReplaceSymlinkRefusesDirectory(t *testing.T) {
	link := filepath.Join(t.TempDir(), "claude")
	require.NoError(t, os.MkdirAll(filepath.Join(link, "inner"), 0o755))

	err := ReplaceSymlink(RealSystem{}, link, "/opt/claude")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")
	assert.DirExists(t, filepath.Join(link, "inner"))
}

func TestReplaceSymlinkVerifiesResult(t *testing.T) {
	link := filepath.Join(t.TempDir(), "claude")
	err := ReplaceSymlink(fakeLinkSystem{}, link, "/opt/claude")
	assert.ErrorIs(t, err, ErrNotSymlink)
}

func TestReplaceSymlinkErrors(t *testing.T) {
	link := filepath.Join(t.TempDir(), "claude")
	err := ReplaceSymlink(fakeLinkSystem{symlinkErr: errors.New("read-only")}, link, "/opt/claude")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read-only")

	require.NoError(t, os.WriteFile(link, []byte("copy"), 0o755))
	err = ReplaceSymlink(fakeLinkSystem{removeErr: errors.New("busy")}, link, "/opt/claude")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to remove")
}

func TestInspectLink(t *testing.T) {
	dir := t.TempDir()
	binary := filepath.Join(dir, "claude-bin")
	require.NoError(t, os.WriteFile(binary, []byte("x"), 0o755))

	state, _, err := InspectLink(RealSystem{}, filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Equal(t, LinkMissing, state)

	ok := filepath.Join(dir, "ok")
	require.NoError(t, os.Symlink(binary, ok))
	state, target, err := InspectLink(RealSystem{}, ok)
	require.NoError(t, err)
	assert.Equal(t, LinkOK, state)
	assert.Equal(t, binary, target)

	dangling := filepath.Join(dir, "dangling")
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone"), dangling))
	state, target, err = InspectLink(RealSystem{}, dangling)
	require.NoError(t, err)
	assert.Equal(t, LinkDangling, state)
	assert.Equal(t, filepath.Join(dir, "gone"), target)

	state, _, err = InspectLink(RealSystem{}, binary)
	require.NoError(t, err)
	assert.Equal(t, LinkNotSymlink, state)
}
