package main

import (
	"os"

	"calcpad/cmd/calcpad/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
