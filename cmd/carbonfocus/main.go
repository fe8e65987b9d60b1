// Command carbonfocus is the CarbonFocus CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/rshade/carbonfocus/internal/cli"
	"github.com/rshade/carbonfocus/pkg/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run builds and executes the root command.
func run() error {
	return cli.NewRootCmd(version.GetVersion()).Execute()
}
