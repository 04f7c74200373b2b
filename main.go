package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cloudposse/timestamp/cmd"
	errUtils "github.com/cloudposse/timestamp/errors"
)

func main() {
	// Run the application and exit with the appropriate code.
	// Use errUtils.OsExit to allow test interception.
	errUtils.OsExit(run())
}

// run executes the main application logic and returns an exit code.
// This separation allows proper cleanup via defer before os.Exit in main().
func run() int {
	// Interrupts cancel the context so hosts can stop their label before exiting.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cmd.Execute(ctx)
	if err != nil {
		// Format and print error using centralized formatter.
		formatted := errUtils.Format(err, errUtils.DefaultFormatterConfig())
		os.Stderr.WriteString(formatted + "\n")

		// Extract and use the correct exit code.
		return errUtils.GetExitCode(err)
	}
	return 0
}
