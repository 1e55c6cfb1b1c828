// Package main holds the command line interface of wait-until. The package itself is mainly concerned with
// configuring the necessary options before passing control to `internal/cli`, which holds the business logic itself.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rwx-research/wait-until/internal/errors"
)

// spawnFailureExitCode is used when the sub-process couldn't be started at all, following the shell convention for
// "command not found".
const spawnFailureExitCode = 127

func main() {
	// Cancelling the context kills the sub-process, which lets the supervisor restore the cursor before exiting.
	ctx, cancel := interruptContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	exitCode := Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()

	os.Exit(exitCode)
}

// interruptContext is cancelled by the first of the given signals. After that the signals get their default behavior
// back, so a shutdown that hangs can still be interrupted.
func interruptContext(parent context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(parent, signals...)

	go func() {
		<-ctx.Done()
		stop()
	}()

	return ctx, stop
}

// Execute runs the CLI with the given arguments and returns the exit code of the process.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd, err := NewRootCmd(stdout, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	rootCmd.SetArgs(args)

	return exitCodeFor(rootCmd.ExecuteContext(ctx), stderr)
}

// The business logic is expected to log on its own. This error here is mainly used to communicate any necessary exit
// code.
func exitCodeFor(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}

	if e, ok := errors.AsExecutionError(err); ok {
		return e.Code
	}

	fmt.Fprintln(stderr, errors.WithDecoration(err))

	if _, ok := errors.AsSpawnError(err); ok {
		return spawnFailureExitCode
	}

	return 1
}
