// Package main is the entry point for the agswitch CLI.
package main

import (
	"fmt"
	"os"
)

// These variables are set at build time using -ldflags.
var (
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
