package main

import (
	"os"

	"wakatimer/cmd/wakatimerctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
