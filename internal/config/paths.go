package config

import (
	"fmt"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/ext-installer/internal/messages"
)

var expandHome = homedir.Expand

// Paths holds resolved absolute paths for one checkout.
type Paths struct {
	Root          string
	Manifest      string
	Link          string
	ExtensionsDir string
}

// ResolvePaths resolves the configured locations against the checkout root.
func ResolvePaths(root string, cfg Config) (Paths, error) {
	extDir, err := expandHome(cfg.ExtensionsDir)
	if err != nil {
		return Paths{}, fmt.Errorf(messages.ConfigHomeDirFmt, err)
	}
	return Paths{
		Root:          root,
		Manifest:      underRoot(root, cfg.Manifest),
		Link:          underRoot(root, cfg.Link),
		ExtensionsDir: underRoot(root, extDir),
	}, nil
}

// underRoot joins path onto root unless it is already absolute.
func underRoot(root string, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, filepath.FromSlash(path))
}
