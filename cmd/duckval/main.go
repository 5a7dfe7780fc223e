// Package main provides the duckval command.
package main

import (
	"fmt"
	"os"

	"github.com/theory/duckvalues/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
