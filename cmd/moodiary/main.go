package main

import (
	"errors"
	"log"
	"os"

	"tableflip.dev/moodiary/pkg/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		if errors.Is(err, commands.ErrReported) {
			os.Exit(1)
		}
		log.Fatalf("error during command execution: %v", err)
	}
}
