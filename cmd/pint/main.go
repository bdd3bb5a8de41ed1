package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/mekedron/pint-cli/internal/cli"
	"github.com/mekedron/pint-cli/internal/config"
	snapshotgateway "github.com/mekedron/pint-cli/internal/gateway/snapshot"
)

var version = "dev"

func main() {
	// Optional .env for PINT_CONFIG_PATH and friends.
	_ = godotenv.Load()

	store, err := config.NewStore()
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	deps := cli.Dependencies{
		Snapshots: snapshotgateway.NewClient(),
		Config:    store,
		Version:   version,
	}

	exitCode := cli.Execute(context.Background(), os.Args[1:], deps, os.Stdout, os.Stderr)
	os.Exit(exitCode)
}
