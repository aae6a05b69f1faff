package main

import (
	"os"

	"github.com/mattsre/bytepair/cmd/bytepair/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
