// Package exec exposes task runners that can execute arbitrary commands. This is mostly a thin wrapper around
// `os/exec` plus a mocked implementation in `internal/mocks`.
package exec

import (
	"context"
	"io"
	"os"
	"os/exec"
	"sync"
	"syscall"

	"github.com/rwx-research/wait-until/internal/errors"
)

// signalExitBase is added to the signal number of a signalled sub-process, following the shell convention.
const signalExitBase = 128

// Local is a local executioner. It wraps `os/exec`
type Local struct{}

// NewCommand returns a new command that can then be executed.
func (l Local) NewCommand(ctx context.Context, cfg CommandConfig) (Command, error) {
	if cfg.Name == "" {
		return nil, errors.NewInputError("no command name given")
	}

	//nolint:gosec // Spawning a user-configurable sub-process is expected here.
	cmd := exec.CommandContext(ctx, cfg.Name, cfg.Args...)
	setProcessGroup(cmd)

	return &localCommand{
		ctx:     ctx,
		cmd:     cmd,
		outputs: []*output{{dst: cfg.Stdout, stream: &cmd.Stdout}, {dst: cfg.Stderr, stream: &cmd.Stderr}},
		exited:  make(chan struct{}),
		drained: make(chan struct{}),
	}, nil
}

// GetExitStatusFromError extracts the exit code from an error
func (l Local) GetExitStatusFromError(err error) (int, error) {
	var exitError *exec.ExitError
	if !errors.As(err, &exitError) {
		return 0, errors.NewInternalError("Expected error to be of type exec.ExitError, received %T", err)
	}

	if status, ok := exitError.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return signalExitBase + int(status.Signal()), nil
	}

	return exitError.ExitCode(), nil
}

// output connects one standard stream of the sub-process to a writer through an OS pipe. `exec.Cmd` only waits for
// its own copying goroutines, so handing it the write end of a pipe lets `cmd.Wait` return as soon as the process
// exits, even while background processes still hold on to the stream.
type output struct {
	dst    io.Writer
	stream *io.Writer
	r, w   *os.File
}

func (o *output) open() error {
	if o.dst == nil {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return errors.NewSystemError("unable to create output pipe: %w", err)
	}

	o.r, o.w = r, w
	*o.stream = w
	return nil
}

func (o *output) closeWriter() {
	if o.w != nil {
		_ = o.w.Close()
	}
}

func (o *output) closeReader() {
	if o.r != nil {
		_ = o.r.Close()
	}
}

// localCommand reaps its process in the background so that liveness can be checked without blocking. Its output is
// copied separately, `Wait` joins both.
type localCommand struct {
	ctx     context.Context
	cmd     *exec.Cmd
	outputs []*output
	exited  chan struct{}
	drained chan struct{}
	copies  sync.WaitGroup
	err     error

	copyErrMu sync.Mutex
	copyErr   error
}

func (c *localCommand) Start() error {
	err := c.openOutputs()
	if err == nil {
		err = c.cmd.Start()
	}

	// From here on only the sub-process (and whatever it spawns) may hold the write ends.
	for _, o := range c.outputs {
		o.closeWriter()
	}

	if err != nil {
		for _, o := range c.outputs {
			o.closeReader()
		}

		c.err = err
		close(c.exited)
		close(c.drained)
		return err
	}

	for _, o := range c.outputs {
		if o.r == nil {
			continue
		}

		c.copies.Add(1)
		go c.copy(o)
	}

	go func() {
		c.err = c.cmd.Wait()
		close(c.exited)
	}()

	go func() {
		c.copies.Wait()
		close(c.drained)
	}()

	go c.killOnCancel()

	return nil
}

func (c *localCommand) openOutputs() error {
	for _, o := range c.outputs {
		if err := o.open(); err != nil {
			return err
		}
	}

	return nil
}

func (c *localCommand) copy(o *output) {
	defer c.copies.Done()
	defer o.closeReader()

	if _, err := io.Copy(o.dst, o.r); err != nil {
		c.copyErrMu.Lock()
		if c.copyErr == nil {
			c.copyErr = errors.Wrapf(err, "unable to read the output of %q", c.cmd.Path)
		}
		c.copyErrMu.Unlock()
	}
}

// killOnCancel takes down the whole process group once the context is done. Killing only the direct child would leave
// its background processes holding the output pipes, so the drain would not finish.
func (c *localCommand) killOnCancel() {
	select {
	case <-c.ctx.Done():
		_ = killProcessGroup(c.cmd.Process)
	case <-c.drained:
	}
}

func (c *localCommand) Exited() bool {
	select {
	case <-c.exited:
		return true
	default:
		return false
	}
}

func (c *localCommand) Wait() error {
	<-c.exited
	<-c.drained

	if c.err != nil {
		return c.err
	}

	c.copyErrMu.Lock()
	defer c.copyErrMu.Unlock()
	return c.copyErr
}
