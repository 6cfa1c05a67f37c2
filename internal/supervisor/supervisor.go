// Package supervisor manages the lifecycle of the single background
// reminder daemon: a PID file is the sole record of a running
// instance, liveness is a signal-0 probe, and stop escalates from
// SIGTERM to SIGKILL after a grace window.
package supervisor

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/hydrate-cli/hydrate/internal/fileutil"
	"github.com/hydrate-cli/hydrate/internal/logbook"
)

const (
	spawnGrace       = 2 * time.Second
	stopPollInterval = 1 * time.Second
	stopPollAttempts = 10
	restartPause     = 1 * time.Second
)

// Clock is an interface for time-related functions to allow for mocking.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// RealClock is a real implementation of the Clock interface.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

func (RealClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// Status describes the daemon as observed through the PID file.
type Status struct {
	Running    bool
	PID        int
	Executable string
	StartedAt  time.Time
}

// Supervisor owns the PID file protocol. All operations are safe to
// repeat; none of them can corrupt the recorded state.
type Supervisor struct {
	pidPath   string
	proc      ProcessControl
	clock     Clock
	lifecycle *logbook.Logbook
	spawnArgs []string
}

// New creates a supervisor over the given PID file. spawnArgs are the
// arguments passed to the re-executed binary when starting the daemon.
func New(pidPath string, proc ProcessControl, clock Clock, lifecycle *logbook.Logbook, spawnArgs ...string) *Supervisor {
	if len(spawnArgs) == 0 {
		spawnArgs = []string{"daemon", "run"}
	}
	return &Supervisor{
		pidPath:   pidPath,
		proc:      proc,
		clock:     clock,
		lifecycle: lifecycle,
		spawnArgs: spawnArgs,
	}
}

// PIDPath returns the PID file location.
func (s *Supervisor) PIDPath() string {
	return s.pidPath
}

// Start spawns the daemon unless a live instance already exists. It
// records the new pid, waits a short grace period and verifies the
// process survived startup.
func (s *Supervisor) Start() (int, error) {
	s.log("start requested")

	if pid, ok := s.livePID(); ok {
		s.log(fmt.Sprintf("start refused: already running (pid %d)", pid))
		return pid, &AlreadyRunningError{PID: pid}
	}

	pid, err := s.proc.SpawnDetached(s.spawnArgs...)
	if err != nil {
		s.log("start failed: " + err.Error())
		return 0, fmt.Errorf("%w: %v", ErrSpawnFailed, err)
	}

	if err := s.writePID(pid); err != nil {
		s.log("start failed: " + err.Error())
		return 0, err
	}

	// Give the daemon a moment to get through startup before trusting it.
	s.clock.Sleep(spawnGrace)
	if !s.proc.Alive(pid) {
		s.removePIDFile()
		s.log(fmt.Sprintf("start failed: pid %d exited during startup", pid))
		return 0, fmt.Errorf("%w: process %d exited during startup", ErrSpawnFailed, pid)
	}

	s.log(fmt.Sprintf("started (pid %d)", pid))
	return pid, nil
}

// Stop terminates the daemon, gracefully first and forcefully after
// the grace window. The PID file is removed unconditionally once the
// stop sequence completes, so a failed signal never leaves stale state.
func (s *Supervisor) Stop() error {
	pid, ok := s.livePID()
	if !ok {
		return ErrNotRunning
	}

	s.log(fmt.Sprintf("stop requested (pid %d)", pid))

	if err := s.proc.Terminate(pid); err != nil {
		s.removePIDFile()
		s.log(fmt.Sprintf("stop failed: could not signal pid %d: %v", pid, err))
		return fmt.Errorf("%w: %v", ErrSignalDelivery, err)
	}

	for i := 0; i < stopPollAttempts; i++ {
		s.clock.Sleep(stopPollInterval)
		if !s.proc.Alive(pid) {
			s.removePIDFile()
			s.log(fmt.Sprintf("stopped (pid %d)", pid))
			return nil
		}
	}

	// Still alive after the grace window; escalate. The kill result is
	// ignored because the goal at this point is clearing stale state.
	_ = s.proc.Kill(pid)
	s.removePIDFile()
	s.log(fmt.Sprintf("stopped (pid %d, forced)", pid))
	return nil
}

// Restart stops any running daemon and starts a fresh one. A daemon
// that was not running, or whose stop signal could not be delivered,
// is not an error here; the reported result is Start's.
func (s *Supervisor) Restart() (int, error) {
	err := s.Stop()
	if err != nil && !errors.Is(err, ErrNotRunning) && !errors.Is(err, ErrSignalDelivery) {
		return 0, err
	}
	s.clock.Sleep(restartPause)
	return s.Start()
}

// Status reports whether the daemon is running. It mutates nothing
// beyond the stale-handle reclamation inside the liveness check.
func (s *Supervisor) Status() Status {
	pid, ok := s.livePID()
	if !ok {
		return Status{}
	}

	st := Status{Running: true, PID: pid}
	if info, err := os.Stat(s.pidPath); err == nil {
		st.StartedAt = info.ModTime()
	}
	if proc, err := ps.FindProcess(pid); err == nil && proc != nil {
		st.Executable = proc.Executable()
	}
	return st
}

// IsRunning is the liveness predicate: PID file present and the
// recorded process exists.
func (s *Supervisor) IsRunning() bool {
	_, ok := s.livePID()
	return ok
}

// Logs returns the last n lifecycle log lines, oldest first.
func (s *Supervisor) Logs(n int) ([]string, error) {
	return s.lifecycle.Tail(n)
}

// livePID reads the PID file and probes the recorded process. A
// missing file, an unparsable pid or a dead process all read as "not
// running"; the latter two also delete the file (stale-handle
// reclamation), which keeps every check self-healing after a crash.
func (s *Supervisor) livePID() (int, bool) {
	data, err := os.ReadFile(s.pidPath)
	if err != nil {
		return 0, false
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		s.removePIDFile()
		return 0, false
	}

	if !s.proc.Alive(pid) {
		s.removePIDFile()
		return 0, false
	}
	return pid, true
}

func (s *Supervisor) writePID(pid int) error {
	return fileutil.AtomicWriteFile(s.pidPath, []byte(strconv.Itoa(pid)+"\n"), 0600)
}

func (s *Supervisor) removePIDFile() {
	_ = os.Remove(s.pidPath)
}

func (s *Supervisor) log(msg string) {
	if s.lifecycle == nil {
		return
	}
	_ = s.lifecycle.Append(msg)
}
