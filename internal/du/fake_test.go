package du

import (
	"io/fs"
	"path/filepath"
	"syscall"
)

const fakeDevice = 1

// fakeEntry is one entry of fakeFS.
type fakeEntry struct {
	info    Info
	names   []string
	openErr error
	readErr error
	statErr error
}

// fakeFS is an in-memory FS with failure injection. Entry names are listed in
// insertion order.
type fakeFS struct {
	entries map[string]*fakeEntry
	opened  int
	closed  int
}

func newFakeFS() *fakeFS {
	return &fakeFS{entries: make(map[string]*fakeEntry)}
}

func (f *fakeFS) add(path string, info Info) *fakeEntry {
	entry := &fakeEntry{info: info}
	f.entries[path] = entry

	if parent, ok := f.entries[filepath.Dir(path)]; ok && filepath.Dir(path) != path {
		parent.names = append(parent.names, filepath.Base(path))
	}

	return entry
}

func (f *fakeFS) dir(path string, ino uint64, size int64) *fakeEntry {
	return f.add(path, Info{ID: Identity{Device: fakeDevice, Inode: ino}, Size: size, Kind: KindDir})
}

func (f *fakeFS) file(path string, ino uint64, size int64) *fakeEntry {
	return f.add(path, Info{ID: Identity{Device: fakeDevice, Inode: ino}, Size: size, Kind: KindFile})
}

func (f *fakeFS) symlink(path string, ino uint64, size int64) *fakeEntry {
	return f.add(path, Info{ID: Identity{Device: fakeDevice, Inode: ino}, Size: size, Kind: KindSymlink})
}

// link adds a hard link at path to the entry at target.
func (f *fakeFS) link(path, target string) *fakeEntry {
	return f.add(path, f.entries[target].info)
}

func (f *fakeFS) Open(path string) (Dir, error) {
	entry, ok := f.entries[filepath.Clean(path)]

	switch {
	case !ok:
		return nil, &fs.PathError{Op: "open", Path: path, Err: syscall.ENOENT}
	case entry.openErr != nil:
		return nil, &fs.PathError{Op: "open", Path: path, Err: entry.openErr}
	case entry.info.Kind != KindDir:
		return nil, &fs.PathError{Op: "open", Path: path, Err: syscall.ENOTDIR}
	}

	f.opened++

	return &fakeDir{fs: f, names: entry.names, err: entry.readErr}, nil
}

func (f *fakeFS) Lstat(path string) (Info, error) {
	entry, ok := f.entries[filepath.Clean(path)]

	switch {
	case !ok:
		return Info{}, &fs.PathError{Op: "lstat", Path: path, Err: syscall.ENOENT}
	case entry.statErr != nil:
		return Info{}, &fs.PathError{Op: "lstat", Path: path, Err: entry.statErr}
	}

	return entry.info, nil
}

type fakeDir struct {
	fs    *fakeFS
	names []string
	err   error
}

func (d *fakeDir) Names() ([]string, error) {
	return d.names, d.err
}

func (d *fakeDir) Close() error {
	d.fs.closed++

	return nil
}

// childNamed returns the child of n called name, or nil.
func childNamed(n *Node, name string) *Node {
	for _, child := range n.Children {
		if child.Name == name {
			return child
		}
	}

	return nil
}
