package du

import (
	"io/fs"
)

// Kind is the type of a filesystem entry.
type Kind uint8

const (
	KindFile Kind = iota
	KindDir
	KindSymlink
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "dir"
	case KindSymlink:
		return "symlink"
	default:
		return "other"
	}
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// KindFromMode derives the Kind from the type bits of an fs.FileMode.
func KindFromMode(mode fs.FileMode) Kind {
	switch {
	case mode.IsRegular():
		return KindFile
	case mode.IsDir():
		return KindDir
	case mode&fs.ModeSymlink != 0:
		return KindSymlink
	default:
		return KindOther
	}
}

// Identity identifies a physical storage object. Hard links to the same
// object share one Identity.
type Identity struct {
	// Device is the ID of the device holding the object.
	Device uint64 `json:"device"`
	// Inode is the inode number on that device.
	Inode uint64 `json:"inode"`
}

// IsZero reports whether the identity is unknown.
func (id Identity) IsZero() bool {
	return id == Identity{}
}

// Node is one entry of the crawled tree.
type Node struct {
	// Name is the base name of the entry.
	Name string `json:"name"`
	// ID is the physical identity of the entry.
	ID Identity `json:"id"`
	// Kind is the entry type.
	Kind Kind `json:"kind"`
	// Size is the entry's own size as reported by lstat.
	Size int64 `json:"size"`
	// Aggregate is the unique size of everything below a directory.
	// It is always zero for other kinds.
	Aggregate int64 `json:"aggregate,omitempty"`
	// Children holds the entries of a directory, sorted once the directory
	// has been crawled.
	Children []*Node `json:"children,omitempty"`
}

// newNode creates a node from a stat result.
func newNode(name string, info Info) *Node {
	return &Node{
		Name: name,
		ID:   info.ID,
		Kind: info.Kind,
		Size: info.Size,
	}
}

// IsDir reports whether the node is a directory.
func (n *Node) IsDir() bool {
	return n.Kind == KindDir
}

// Total returns the effective size of the node: its own size plus, for
// directories, the aggregate size of its contents.
func (n *Node) Total() int64 {
	if n.IsDir() {
		return n.Size + n.Aggregate
	}

	return n.Size
}
