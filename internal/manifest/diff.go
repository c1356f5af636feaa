package manifest

import (
	"path/filepath"

	"github.com/aymanbagabas/go-udiff"
)

// Diff returns a unified diff between before and after, or "" when they are equal.
func Diff(path string, before []byte, after []byte) string {
	if string(before) == string(after) {
		return ""
	}
	name := filepath.ToSlash(filepath.Base(path))
	return udiff.Unified(name, name, string(before), string(after))
}
