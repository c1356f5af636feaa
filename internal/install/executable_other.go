//go:build !unix

package install

import "os"

func isExecutable(_ string, mode os.FileMode) bool {
	return mode&0o111 != 0
}
