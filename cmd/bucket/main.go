package main

import (
	"os"

	"github.com/idilsaglam/bucket/internal/cli"
)

func main() {
	// Hand the args to the CLI runner; it maps errors to exit codes
	// (0 ok, 1 error, 2 usage).
	os.Exit(cli.Run(os.Args[1:]))
}
