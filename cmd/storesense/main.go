// main is the entry point for the storesense CLI.
package main

import (
	"os"

	"github.com/franchops/storesense/cmd"
	"github.com/franchops/storesense/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogWarn("command failed", err)
		os.Exit(1)
	}
}
