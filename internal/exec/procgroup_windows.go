//go:build windows

package exec

import (
	"os"
	"os/exec"
)

func setProcessGroup(_ *exec.Cmd) {}

// killProcessGroup only kills the direct sub-process, Windows has no process groups to signal.
func killProcessGroup(p *os.Process) error {
	return p.Kill()
}
