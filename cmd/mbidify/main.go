package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"mbidify/internal/services"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	cmd := newRootCommand()
	err := cmd.ExecuteContext(ctx)
	stop()
	os.Exit(exitCode(err, os.Stderr))
}

// exitCode reports err on stderr and maps it to the process status.
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return exitOK
	}
	var usage *usageError
	if errors.As(err, &usage) {
		fmt.Fprintln(stderr, usage.Error())
		return exitUsage
	}
	if errors.Is(err, context.Canceled) {
		return exitFailure
	}
	fmt.Fprintln(stderr, err)
	if errors.Is(err, services.ErrConfiguration) {
		fmt.Fprintf(stderr, "hint: %s\n", services.ErrorHint(err))
	}
	return exitFailure
}
