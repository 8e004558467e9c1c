package main

import (
	"os"

	"github.com/katalvlaran/b3jones/cmd/b3jones/commands"
)

// Version information - set during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)

	// Errors are printed by the commands package
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
