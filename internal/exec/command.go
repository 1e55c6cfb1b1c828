package exec

// Command is a generic interface that represents a command that is being executed. This is modelled after the default
// `exec.Cmd` from the `os/exec` package, with an additional non-blocking liveness check.
type Command interface {
	// Start spawns the sub-process. An error here means the process never ran.
	Start() error
	// Exited reports whether the sub-process has terminated. It never blocks.
	Exited() bool
	// Wait blocks until the sub-process has terminated and all of its output was copied.
	Wait() error
}
