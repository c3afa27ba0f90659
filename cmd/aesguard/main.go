package main

import (
	"os"

	"aesguard/cmd/aesguard/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
