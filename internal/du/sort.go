package du

import (
	"cmp"
	"slices"
	"strings"
)

// SortChildren orders the children of one directory: directories before
// everything else, then by Total descending, then by name ascending.
// All children must be fully crawled before calling it.
func SortChildren(children []*Node) {
	slices.SortFunc(children, compareSiblings)
}

// compareSiblings never subtracts sizes, so huge totals cannot overflow.
func compareSiblings(a, b *Node) int {
	if a.IsDir() != b.IsDir() {
		if a.IsDir() {
			return -1
		}

		return 1
	}

	if c := cmp.Compare(b.Total(), a.Total()); c != 0 {
		return c
	}

	return strings.Compare(a.Name, b.Name)
}
