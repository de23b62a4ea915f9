package main

import (
	"os"

	"github.com/portalwatch/backend/cmd/portalwatch/commands"
)

// main is the entry point for the PortalWatch CLI.
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
