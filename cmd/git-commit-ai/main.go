package main

import (
	"os"

	"gitcommitai/internal/cmd"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	// Execute has already reported the error.
	if err := cmd.Execute(version, commit, buildTime); err != nil {
		os.Exit(1)
	}
}
