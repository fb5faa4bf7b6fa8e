// Package main is the entry point for the uxaudit binary
package main

import (
	"os"

	"github.com/optipenn/uxaudit/cmd"
)

func main() {
	// No arguments launches the interactive menu; anything else goes
	// through the CLI.
	if len(os.Args) == 1 {
		cmd.RunInteractive()

		return
	}

	cmd.Execute()
}
