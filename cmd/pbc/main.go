package main

import (
	"os"

	"github.com/ironsheep/backdrop-mcp/internal/cli"
)

// Version information - set by ldflags during build
var Version = "dev"

func main() {
	cli.SetVersion(Version)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
