// Command unitconv is a thin embedding of the dimensional library:
// it maps flag values to typed units and prints the converted result.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/dimensional/internal/cli"
)

// version is injected at build time via -ldflags.
var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
