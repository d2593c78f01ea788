// Package main - Entry point for the tariff-cost CLI
package main

import (
	"os"

	"tariff-cost/cmd/cli/cmd"
	"tariff-cost/internal/logging"
)

func main() {
	defer logging.Sync()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
