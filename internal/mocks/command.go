package mocks

import (
	"github.com/rwx-research/wait-until/internal/errors"
)

// Command is a mocked implementation of 'exec.Command'.
type Command struct {
	MockStart  func() error
	MockExited func() bool
	MockWait   func() error
}

// Start either calls the configured mock of itself or returns an error if that doesn't exist.
func (c *Command) Start() error {
	if c.MockStart != nil {
		return c.MockStart()
	}

	return errors.NewConfigurationError("MockStart was not configured")
}

// Exited either calls the configured mock of itself or reports the command as exited if that doesn't exist.
func (c *Command) Exited() bool {
	if c.MockExited != nil {
		return c.MockExited()
	}

	return true
}

// Wait either calls the configured mock of itself or returns an error if that doesn't exist.
func (c *Command) Wait() error {
	if c.MockWait != nil {
		return c.MockWait()
	}

	return errors.NewConfigurationError("MockWait was not configured")
}
