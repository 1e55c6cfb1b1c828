// Package cli holds the main business logic in our CLI: supervising a sub-process while a status line is rendered,
// and relaying its output once it has finished.
// However, this package _does not_ parse any flags. That part is handled by `cmd/wait-until`.
package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rwx-research/wait-until/internal/errors"
	"github.com/rwx-research/wait-until/internal/exec"
	"github.com/rwx-research/wait-until/internal/terminal"
)

// DefaultTickInterval is the pause between two liveness checks of the sub-process. It doubles as the frame rate of
// the spinner, so lowering it trades CPU time for responsiveness.
const DefaultTickInterval = 100 * time.Millisecond

// failureExitCode is returned alongside any error, i.e. whenever the sub-process didn't produce an exit code itself.
const failureExitCode = 1

// Service is the main CLI service.
type Service struct {
	Log          *zap.SugaredLogger
	TaskRunner   TaskRunner
	Stdout       io.Writer
	Stderr       io.Writer
	TickInterval time.Duration
}

// Run executes the configured command and returns its exit code. While the command is running, a spinner is rendered
// to Stdout if it is an interactive terminal. The output of the command is buffered and only written to Stdout &
// Stderr after it has finished.
//
// A command that exits with a non-zero code is not an error. An error is returned if the command couldn't be started
// at all (see `errors.SpawnError`) or if no command was provided (see `errors.InputError`).
func (s Service) Run(ctx context.Context, cfg RunConfig) (int, error) {
	args, err := cfg.CommandArgs()
	if err != nil {
		return failureExitCode, errors.WithStack(err)
	}

	renderer := terminal.NewRenderer(s.Stdout, cfg.Spinner.Interactive(s.Stdout))
	s.Log.Debugf("Rendering status line: %v", renderer.Interactive())

	session, err := renderer.BeginSession()
	if err != nil {
		s.Log.Debugf("unable to hide cursor: %s", err)
	}
	defer func() {
		if err := session.End(); err != nil {
			s.Log.Debugf("unable to show cursor: %s", err)
		}
	}()

	var stdout, stderr bytes.Buffer

	runErr := s.runCommand(ctx, renderer, cfg.StatusMessage(), exec.CommandConfig{
		Name:   args[0],
		Args:   args[1:],
		Stdout: &stdout,
		Stderr: &stderr,
	})
	if _, ok := errors.AsSpawnError(runErr); ok {
		return failureExitCode, errors.WithStack(runErr)
	}

	s.forwardOutput(stdout.Bytes(), stderr.Bytes())

	if runErr == nil {
		return 0, nil
	}

	code, err := s.TaskRunner.GetExitStatusFromError(runErr)
	if err != nil {
		return failureExitCode, errors.NewSystemError("Error during program execution: %w", runErr)
	}

	s.Log.Debugf("Sub-process exited with code %d", code)
	return code, nil
}

// runCommand starts the command and polls it until it has exited, rendering one frame per tick. The status line is
// cleared on every return path.
func (s Service) runCommand(
	ctx context.Context,
	renderer *terminal.Renderer,
	message string,
	cfg exec.CommandConfig,
) error {
	defer func() {
		if err := renderer.ClearLine(); err != nil {
			s.Log.Debugf("unable to clear status line: %s", err)
		}
	}()

	commandLine := strings.Join(append([]string{cfg.Name}, cfg.Args...), " ")

	cmd, err := s.TaskRunner.NewCommand(ctx, cfg)
	if err != nil {
		return errors.NewSpawnError(cfg.Name, "unable to spawn sub-process %q: %w", commandLine, err)
	}

	s.Log.Debugf("Executing %q", commandLine)
	if err := cmd.Start(); err != nil {
		return errors.NewSpawnError(cfg.Name, "unable to execute sub-command %q: %w", commandLine, err)
	}
	defer s.Log.Debugf("Finished executing %q", commandLine)

	spinner := terminal.NewSpinner()
	ticker := time.NewTicker(s.tickInterval())
	defer ticker.Stop()

	for !cmd.Exited() {
		if err := renderer.RenderFrame(message, spinner.Next()); err != nil {
			s.Log.Debugf("unable to render status line: %s", err)
		}

		<-ticker.C
	}

	return cmd.Wait()
}

// forwardOutput writes the buffered output of the sub-process verbatim. Failures are logged but don't change the exit
// code, since the sub-process itself has already finished.
func (s Service) forwardOutput(stdout, stderr []byte) {
	if len(stdout) > 0 {
		if _, err := s.Stdout.Write(stdout); err != nil {
			s.Log.Warnf("unable to forward output of sub-process: %s", err)
		}
	}

	if len(stderr) > 0 {
		if _, err := s.Stderr.Write(stderr); err != nil {
			s.Log.Warnf("unable to forward error output of sub-process: %s", err)
		}
	}
}

func (s Service) tickInterval() time.Duration {
	if s.TickInterval <= 0 {
		return DefaultTickInterval
	}

	return s.TickInterval
}
