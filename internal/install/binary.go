package install

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/ext-installer/internal/messages"
)

var (
	// ErrBinaryRequired is returned when the operator enters no binary path.
	ErrBinaryRequired = errors.New(messages.InstallBinaryRequired)
	// ErrBinaryNotFound is returned when the binary path does not exist.
	ErrBinaryNotFound = errors.New(messages.InstallBinaryNotFound)
)

var (
	expandHome = homedir.Expand
	absPath    = filepath.Abs
)

// Binary is a validated native binary on disk.
type Binary struct {
	Path       string
	Mode       os.FileMode
	Executable bool
}

// ResolveBinary expands a leading ~ in raw, makes it absolute, and checks
// that it names an existing regular file. Symlinks to regular files are
// accepted; the returned path is the one the operator gave, not its target.
func ResolveBinary(sys System, raw string) (Binary, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Binary{}, ErrBinaryRequired
	}
	expanded, err := expandHome(raw)
	if err != nil {
		return Binary{}, fmt.Errorf(messages.InstallExpandPathFmt, raw, err)
	}
	path, err := absPath(expanded)
	if err != nil {
		return Binary{}, fmt.Errorf(messages.InstallExpandPathFmt, raw, err)
	}

	info, err := sys.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Binary{}, fmt.Errorf(messages.InstallBinaryNotFoundFmt, ErrBinaryNotFound, path)
		}
		return Binary{}, fmt.Errorf(messages.InstallBinaryStatFmt, path, err)
	}
	if !info.Mode().IsRegular() {
		return Binary{}, fmt.Errorf(messages.InstallBinaryNotFileFmt, path)
	}
	return Binary{
		Path:       path,
		Mode:       info.Mode().Perm(),
		Executable: isExecutable(path, info.Mode()),
	}, nil
}

// MakeExecutable adds execute permission wherever read permission is granted,
// matching chmod +x under a typical umask.
func MakeExecutable(sys System, bin Binary) error {
	mode := bin.Mode | (bin.Mode&0o444)>>2 | 0o100
	if err := sys.Chmod(bin.Path, mode); err != nil {
		return fmt.Errorf(messages.InstallChmodFailedFmt, bin.Path, err)
	}
	return nil
}
