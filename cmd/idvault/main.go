package main

import (
	"os"

	"idvault/cmd/idvault/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
