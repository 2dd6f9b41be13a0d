package du

import (
	"os"
)

// Info is the result of a non-dereferencing stat.
type Info struct {
	// ID is the physical identity, zero if the platform does not provide one.
	ID Identity
	// Size is the size reported for the entry itself.
	Size int64
	// Kind is derived from the file type bits.
	Kind Kind
}

// Dir is an open directory handle.
type Dir interface {
	// Names returns the entry names in filesystem order. On error it returns
	// the names read before the failure.
	Names() ([]string, error)
	// Close releases the handle.
	Close() error
}

// FS is the filesystem the crawler queries.
type FS interface {
	// Open opens the directory at path.
	Open(path string) (Dir, error)
	// Lstat stats path without following a final symbolic link.
	Lstat(path string) (Info, error)
}

// OS is the operating system filesystem.
type OS struct{}

// Open opens a directory for reading.
func (OS) Open(path string) (Dir, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	return osDir{f: f}, nil
}

// Lstat stats path without following symbolic links.
func (OS) Lstat(path string) (Info, error) {
	return lstat(path)
}

type osDir struct {
	f *os.File
}

func (d osDir) Names() ([]string, error) {
	return d.f.Readdirnames(-1)
}

func (d osDir) Close() error {
	return d.f.Close()
}
