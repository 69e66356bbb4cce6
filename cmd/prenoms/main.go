// Package main is the entry point for the prenoms CLI.
package main

import (
	"os"

	"github.com/f3rmion/prenoms/cmd/prenoms/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
