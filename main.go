// sidekick - A personal command-line assistant.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	"github.com/jeranaias/sidekick/internal/cli"
)

// Version information (set at build time)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	args := os.Args[1:]

	if len(args) == 1 && (args[0] == "--version" || args[0] == "version") {
		fmt.Printf("sidekick %s (%s, built %s)\n", Version, GitCommit, BuildDate)
		return
	}

	dispatcher, dataDir, err := cli.Setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// A command on the shell command line runs once and exits; otherwise
	// start the interactive loop.
	if len(args) > 0 {
		cli.RunOnce(dispatcher, args[0], args[1:])
		return
	}

	if err := cli.RunREPL(dispatcher, dataDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
