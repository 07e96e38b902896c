// Package main provides the strided CLI.
package main

import (
	"os"

	"github.com/gradkit/strided/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
