// Package main is the entry point for mach-cost CLI.
package main

import (
	"context"
	"os"
	"os/signal"

	"mach-cost/cmd/cli/cmd"
	"mach-cost/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := cmd.Execute(ctx)
	logging.Sync()
	if err != nil {
		os.Exit(1)
	}
}
