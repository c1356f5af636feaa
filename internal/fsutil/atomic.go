// Package fsutil holds filesystem helpers shared by the installer.
package fsutil

import (
	"os"
	"path/filepath"
)

var (
	createTemp = os.CreateTemp
	rename     = os.Rename
)

// WriteFileAtomic writes data to a temp file in the same directory as
// filename and renames it into place, so readers never see a partial file.
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(filename)
	tmp, err := createTemp(dir, "."+filepath.Base(filename)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmpName, perm); err != nil {
		return err
	}
	return rename(tmpName, filename)
}
