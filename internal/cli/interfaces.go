package cli

import (
	"context"

	"github.com/rwx-research/wait-until/internal/exec"
)

// TaskRunner is an abstraction over various task-runners / execution environments.
// They are expected to implement the `exec.Command` interface in turn, which is mapped to the Command type from
// `os/exec`
type TaskRunner interface {
	NewCommand(ctx context.Context, cfg exec.CommandConfig) (exec.Command, error)
	GetExitStatusFromError(error) (int, error)
}
