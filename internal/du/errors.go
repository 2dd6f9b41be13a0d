package du

import (
	"errors"
	"fmt"
)

// Failure kinds. Every failure produced by a scan is a *PathError that
// matches exactly one of these with errors.Is.
var (
	// ErrDirOpen reports a directory that could not be opened.
	ErrDirOpen = errors.New("opening directory")
	// ErrDirRead reports a directory whose entries could not be read completely.
	ErrDirRead = errors.New("reading directory")
	// ErrStat reports an entry that could not be stat-ed.
	ErrStat = errors.New("stat entry")
	// ErrRootStat reports that the root itself could not be stat-ed. It is fatal.
	ErrRootStat = errors.New("stat root")
)

// PathError records a failed filesystem operation on a path.
type PathError struct {
	// Kind is one of the failure sentinels.
	Kind error
	// Path is the path the operation was applied to.
	Path string
	// Err is the platform cause.
	Err error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%v %q: %v", e.Kind, e.Path, e.Err)
}

// Unwrap exposes both the failure kind and the cause to errors.Is and errors.As.
func (e *PathError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// Fatal reports whether the failure aborts the scan.
func (e *PathError) Fatal() bool {
	return e.Kind == ErrRootStat
}

// Op returns the name of the system call behind the failure kind.
func (e *PathError) Op() string {
	switch e.Kind {
	case ErrDirOpen:
		return "opendir"
	case ErrDirRead:
		return "readdir"
	case ErrStat, ErrRootStat:
		return "lstat"
	default:
		return "unknown"
	}
}
