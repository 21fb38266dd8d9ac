// Package main is the entry point for the ireum CLI.
package main

import (
	"os"

	"github.com/f3rmion/ireum/cmd/ireum/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
