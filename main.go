// Command ckdu shows the disk usage of a directory tree.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/ckdu/internal/cli"
)

// version is set at build time with -ldflags.
var version = "unknown"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
