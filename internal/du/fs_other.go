//go:build !unix

package du

import "os"

// lstat has no inode information on this platform; entries get the zero
// Identity and are never de-duplicated.
func lstat(path string) (Info, error) {
	fi, err := os.Lstat(path)
	if err != nil {
		return Info{}, err
	}

	return Info{
		Size: fi.Size(),
		Kind: KindFromMode(fi.Mode()),
	}, nil
}
