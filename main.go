// Command treefill generates a directory tree and scatters zero-filled
// placeholder files across it.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/treefill/internal/cli"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "unknown - unofficial & generated by unknown"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
