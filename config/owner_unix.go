//go:build unix

package config

import (
	"fmt"
	"os"
	"syscall"
)

func checkOwner(path string, info os.FileInfo) error {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return nil
	}
	if uid := os.Geteuid(); stat.Uid != uint32(uid) {
		return fmt.Errorf("%w: config file '%s' is not owned by current user (file UID: %d, process UID: %d)",
			ErrFileRejected, path, stat.Uid, uid)
	}
	return nil
}
