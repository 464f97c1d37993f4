package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"airdash/internal/cli"
)

// These are set via -ldflags "-X main.Version=... -X main.BuildTime=...".
var Version = "dev"
var BuildTime = ""

func main() {
	cli.SetVersion(Version, BuildTime)

	// Cancel the load and the dashboard on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
