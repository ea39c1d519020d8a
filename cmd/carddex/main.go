package main

import (
	"fmt"
	"os"

	"carddex/internal/cli"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	cmd := cli.NewRootCommand(Version)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
