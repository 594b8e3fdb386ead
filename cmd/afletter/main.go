package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/afletter-dev/afletter/internal/commands"
)

func main() {
	// Local overrides like AFLETTER_CONFIG; a missing .env is fine.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
