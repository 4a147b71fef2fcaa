package main

import (
	"fmt"
	"os"

	"task-filter/internal/cli"
	"task-filter/internal/config"
	"task-filter/internal/logging"
)

func main() {
	// Environment configuration; flags are applied by the root command
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	logging.Init(cfg.LoggingOptions())

	// The database is opened by the first command that needs it
	if err := cli.NewRootCommand(nil, cfg).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
