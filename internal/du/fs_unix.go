//go:build unix

package du

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// lstat reads device, inode, size and type bits straight from lstat(2).
func lstat(path string) (Info, error) {
	var st unix.Stat_t

	if err := unix.Lstat(path, &st); err != nil {
		return Info{}, &fs.PathError{Op: "lstat", Path: path, Err: err}
	}

	return Info{
		ID: Identity{
			Device: uint64(st.Dev), //nolint:gosec,unconvert // Dev is signed on some platforms
			Inode:  uint64(st.Ino), //nolint:unconvert // Ino width differs between platforms
		},
		Size: st.Size,
		Kind: kindFromUnixMode(uint32(st.Mode)), //nolint:unconvert // Mode is uint16 on darwin
	}, nil
}

func kindFromUnixMode(mode uint32) Kind {
	switch mode & unix.S_IFMT {
	case unix.S_IFREG:
		return KindFile
	case unix.S_IFDIR:
		return KindDir
	case unix.S_IFLNK:
		return KindSymlink
	default:
		return KindOther
	}
}
