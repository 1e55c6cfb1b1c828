//go:build !windows

package exec

import (
	"os"
	"os/exec"
	"syscall"
)

// setProcessGroup starts the sub-process in a process group of its own, so that it can be killed together with
// everything it spawned.
func setProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

func killProcessGroup(p *os.Process) error {
	// A negative PID addresses the whole process group.
	return syscall.Kill(-p.Pid, syscall.SIGKILL)
}
