// Package main is the entry point for the droneops CLI.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/ihelperdrone/droneops/app/cli"
)

// version is set at build time via ldflags
var version = "dev"

func main() {
	_ = godotenv.Load()

	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
