//go:build unix

package install

import (
	"os"

	"golang.org/x/sys/unix"
)

var accessFn = unix.Access

// isExecutable asks the kernel whether the current user may execute path,
// so ownership and ACLs are honored rather than just the mode bits.
func isExecutable(path string, _ os.FileMode) bool {
	return accessFn(path, unix.X_OK) == nil
}
