package cli

import (
	"github.com/mattn/go-shellwords"

	"github.com/rwx-research/wait-until/internal/errors"
	"github.com/rwx-research/wait-until/internal/terminal"
)

// DefaultMessage is displayed next to the spinner unless a different message was configured.
const DefaultMessage = "Waiting for process to finish..."

// RunConfig holds the configuration for supervising a single command (used by `Run`)
type RunConfig struct {
	// Command is an optional command line that is split into arguments like a shell would.
	Command string
	// Args are appended verbatim to whatever Command was parsed into.
	Args    []string
	Message string
	Spinner terminal.Mode
}

// CommandArgs returns the argument vector of the command to execute.
func (c RunConfig) CommandArgs() ([]string, error) {
	commandArgs := make([]string, 0)

	if c.Command != "" {
		parsedCommand, err := shellwords.Parse(c.Command)
		if err != nil {
			return commandArgs, errors.NewInputError("unable to parse %q into shell arguments: %w", c.Command, err)
		}
		commandArgs = append(commandArgs, parsedCommand...)
	}

	if len(c.Args) > 0 {
		commandArgs = append(commandArgs, c.Args...)
	}

	if len(commandArgs) == 0 {
		return commandArgs, errors.NewInputError("No command was provided")
	}

	return commandArgs, nil
}

// StatusMessage returns the message to display next to the spinner.
func (c RunConfig) StatusMessage() string {
	if c.Message == "" {
		return DefaultMessage
	}

	return c.Message
}
