// main is the entry point for the gcplot CLI.
package main

import (
	"github.com/motifscan/gcplot/cmd"
	"github.com/motifscan/gcplot/internal"
)

func main() {
	if err := cmd.Execute(); err != nil {
		internal.FatalError("Command failed", err)
	}
}
