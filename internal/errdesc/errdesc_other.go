//go:build !unix

package errdesc

import "syscall"

func errnoName(syscall.Errno) string {
	return ""
}
