// Package main prints one random value for each of five numeric types.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/louisbranch/randvalues/internal/platform/cmd"
	"github.com/louisbranch/randvalues/internal/platform/config"
	"github.com/louisbranch/randvalues/internal/tools/randvalues"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cmd.RunWithTelemetry(ctx, cmd.ServiceRandValues, func(ctx context.Context) error {
		return randvalues.Run(ctx, os.Stdout, nil)
	})
	if err != nil {
		stop()
		config.Exitf("print random values: %v", err)
	}
}
