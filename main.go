// locstat counts lines of code in a directory tree.
package main

import (
	"os"

	"github.com/mhaglund/locstat/internal/cli"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		os.Exit(1)
	}
}
