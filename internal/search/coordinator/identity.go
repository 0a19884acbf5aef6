package coordinator

import (
	"os"
	"syscall"
)

// dirIdentity is a stable per-directory key used to detect traversal
// cycles induced by symlinks: the (device, inode) pair.
type dirIdentity struct {
	dev uint64
	ino uint64
}

// identityOf extracts dirIdentity from info, when the platform exposes
// syscall.Stat_t (true on every Unix haybale targets).
func identityOf(info os.FileInfo) (dirIdentity, bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return dirIdentity{}, false
	}
	return dirIdentity{dev: uint64(st.Dev), ino: st.Ino}, true
}
