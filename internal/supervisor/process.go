package supervisor

import (
	"errors"
	"fmt"
)

// ProcessControl is the entire OS-coupling surface of the supervisor:
// spawning the daemon, probing it, and the two levels of termination.
type ProcessControl interface {
	// SpawnDetached starts the current executable with the given
	// arguments as a detached background process, disconnected from the
	// invoking terminal, and returns its pid.
	SpawnDetached(args ...string) (int, error)
	// Alive reports whether a process with the given pid exists. The
	// probe is best-effort: pids are recycled by the OS, so a stale pid
	// can read as alive.
	Alive(pid int) bool
	// Terminate asks the process to shut down cleanly (SIGTERM).
	Terminate(pid int) error
	// Kill terminates the process unconditionally (SIGKILL).
	Kill(pid int) error
}

var (
	// ErrNotRunning is returned by Stop when no live daemon exists.
	ErrNotRunning = errors.New("daemon is not running")
	// ErrSpawnFailed is returned by Start when the daemon could not be
	// spawned or died within the startup grace period.
	ErrSpawnFailed = errors.New("daemon failed to start")
	// ErrSignalDelivery is returned by Stop when the termination signal
	// could not be delivered. The pid file is cleared regardless.
	ErrSignalDelivery = errors.New("could not signal daemon")
)

// AlreadyRunningError is returned by Start when a live daemon exists.
type AlreadyRunningError struct {
	PID int
}

func (e *AlreadyRunningError) Error() string {
	return fmt.Sprintf("daemon is already running (pid %d)", e.PID)
}
