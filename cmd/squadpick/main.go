package main

import (
	"os"

	"github.com/squadpick/backend/cmd/squadpick/commands"
)

// main is the entry point for the squadpick CLI.
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
