// Package main provides the entry point for the whll CLI tool.
package main

import (
	"fmt"
	"os"

	"whll.lopezb.com/cmd/whll/commands"
)

func main() {
	err := commands.NewRootCommand().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
