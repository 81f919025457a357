// Package main is the entry point for the lvpuzzle CLI. All commands live in
// internal/cli.
package main

import (
	"github.com/katalvlaran/lvpuzzle/internal/cli"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	cli.Version = version
	cli.Execute(cli.NewRootCommand())
}
