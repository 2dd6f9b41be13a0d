package errdesc

import (
	"errors"
	"syscall"
)

// Unknown is the name returned for causes that carry no error code.
const Unknown = "UNKNOWN"

// Describe returns the symbolic name and description of the platform error
// code found in err's chain. Errors without a code yield Unknown and their
// own message.
func Describe(err error) (name, description string) {
	if err == nil {
		return "", ""
	}

	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return Unknown, err.Error()
	}

	name = errnoName(errno)
	if name == "" {
		name = Unknown
	}

	return name, errno.Error()
}
