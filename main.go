package main

import (
	"fmt"
	"os"

	"github.com/relayops/cli/internal/cli"
	"github.com/relayops/cli/internal/config"
	"github.com/relayops/cli/internal/errors"
	"github.com/relayops/cli/internal/sentry"
	"github.com/relayops/cli/internal/version"
)

func main() {
	os.Exit(run())
}

// run wraps the real work so deferred cleanup happens before the
// process exits. os.Exit in main would skip the sentry flush and
// drop any event still queued in its async transport.
func run() int {
	if err := sentry.Initialize(version.GetVersion()); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	defer sentry.Flush()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.FormatSimple(err))
		return 1
	}

	if err := cli.Execute(cfg); err != nil {
		sentry.CaptureError(err, "relay")
		fmt.Fprintln(os.Stderr, errors.FormatSimple(err))
		return 1
	}
	return 0
}
