// Package main is the entry point for the assistant CLI.
package main

import (
	"fmt"
	"os"

	"github.com/mfaraji/manager-assistant/cmd"
	"github.com/mfaraji/manager-assistant/internal/logging"
)

// main executes the root command and handles any errors that occur.
func main() {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	logging.Info("starting assistant cli", "log_level", logLevel)

	if err := cmd.Execute(); err != nil {
		logging.Error("command execution failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
