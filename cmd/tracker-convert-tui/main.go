package main

import (
	"fmt"
	"os"

	"github.com/handiism/tracker-convert/internal/config"
	"github.com/handiism/tracker-convert/internal/tui"
)

func main() {
	settings := config.DefaultSettings()
	if err := settings.ApplyEnv(os.LookupEnv); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
