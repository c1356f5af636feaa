package install

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/conn-castle/ext-installer/internal/messages"
)

// ErrNotSymlink is returned when the link path is not a symlink after linking.
var ErrNotSymlink = errors.New(messages.InstallNotSymlink)

// ReplaceSymlink makes linkPath a symlink to target. Any existing file or
// symlink at linkPath is removed first; a directory there is an error.
func ReplaceSymlink(sys System, linkPath string, target string) error {
	dir := filepath.Dir(linkPath)
	if err := sys.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf(messages.InstallCreateDirFailedFmt, dir, err)
	}

	info, err := sys.Lstat(linkPath)
	switch {
	case err == nil:
		if info.IsDir() {
			return fmt.Errorf(messages.InstallLinkIsDirFmt, linkPath)
		}
		if err := sys.Remove(linkPath); err != nil {
			return fmt.Errorf(messages.InstallRemoveFailedFmt, linkPath, err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf(messages.InstallFailedStatFmt, linkPath, err)
	}

	if err := sys.Symlink(target, linkPath); err != nil {
		return fmt.Errorf(messages.InstallSymlinkFailedFmt, linkPath, target, err)
	}
	return verifySymlink(sys, linkPath)
}

func verifySymlink(sys System, linkPath string) error {
	info, err := sys.Lstat(linkPath)
	if err != nil {
		return fmt.Errorf(messages.InstallFailedStatFmt, linkPath, err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		return fmt.Errorf(messages.InstallNotSymlinkFmt, ErrNotSymlink, linkPath)
	}
	return nil
}

// LinkState describes what currently sits at a link path.
type LinkState int

const (
	// LinkMissing means nothing exists at the path.
	LinkMissing LinkState = iota
	// LinkOK means a symlink whose target exists.
	LinkOK
	// LinkDangling means a symlink whose target is missing.
	LinkDangling
	// LinkNotSymlink means a regular file or directory occupies the path.
	LinkNotSymlink
)

// InspectLink reports the state of linkPath and, for symlinks, its target.
func InspectLink(sys System, linkPath string) (LinkState, string, error) {
	info, err := sys.Lstat(linkPath)
	if errors.Is(err, os.ErrNotExist) {
		return LinkMissing, "", nil
	}
	if err != nil {
		return LinkMissing, "", fmt.Errorf(messages.InstallFailedStatFmt, linkPath, err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		return LinkNotSymlink, "", nil
	}
	target, err := sys.Readlink(linkPath)
	if err != nil {
		return LinkMissing, "", err
	}
	if _, err := sys.Stat(linkPath); err != nil {
		return LinkDangling, target, nil
	}
	return LinkOK, target, nil
}
