package exec

import "io"

// CommandConfig configures a command for execution. The command inherits the environment of wait-until.
type CommandConfig struct {
	Args   []string
	Name   string
	Stderr io.Writer
	Stdout io.Writer
}
