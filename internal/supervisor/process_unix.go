//go:build unix

package supervisor

import (
	"os"
	"os/exec"
	"syscall"
)

// OSProcessControl is the real ProcessControl implementation.
type OSProcessControl struct{}

// SpawnDetached re-executes the current binary in a new session with
// all standard streams closed, so the daemon outlives the invoking
// control command and its terminal.
func (OSProcessControl) SpawnDetached(args ...string) (int, error) {
	exe, err := os.Executable()
	if err != nil {
		return 0, err
	}

	cmd := exec.Command(exe, args...)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		return 0, err
	}
	pid := cmd.Process.Pid
	_ = cmd.Process.Release()
	return pid, nil
}

// Alive probes the process with signal 0.
func (OSProcessControl) Alive(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		// On Unix, FindProcess always succeeds
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}

func (OSProcessControl) Terminate(pid int) error {
	process, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	return process.Signal(syscall.SIGTERM)
}

func (OSProcessControl) Kill(pid int) error {
	process, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	return process.Signal(syscall.SIGKILL)
}
