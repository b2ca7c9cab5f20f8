// Pwcheck is a terminal client for a password strength analysis service.
//
// It sends a password to the service's /check_password endpoint and shows
// the strength label, entropy estimate, score and remediation feedback.
// The password is never stored or logged.
//
// Usage:
//
//	pwcheck [command] [flags]
//
// Running without arguments launches the interactive form.
// See 'pwcheck --help' for available commands.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/muurk/pwcheck/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer logging.Sync()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		// Failures already rendered by the command only set the exit status
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}
