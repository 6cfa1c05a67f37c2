package supervisor

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydrate-cli/hydrate/internal/logbook"
)

type fakeProc struct {
	nextPID      int
	alive        map[int]bool
	spawnErr     error
	termErr      error
	ignoreTerm   bool
	dieOnStartup bool
	terminated   []int
	killed       []int
}

func newFakeProc() *fakeProc {
	return &fakeProc{nextPID: 1000, alive: make(map[int]bool)}
}

func (f *fakeProc) SpawnDetached(args ...string) (int, error) {
	if f.spawnErr != nil {
		return 0, f.spawnErr
	}
	f.nextPID++
	f.alive[f.nextPID] = !f.dieOnStartup
	return f.nextPID, nil
}

func (f *fakeProc) Alive(pid int) bool {
	return f.alive[pid]
}

func (f *fakeProc) Terminate(pid int) error {
	f.terminated = append(f.terminated, pid)
	if f.termErr != nil {
		return f.termErr
	}
	if !f.ignoreTerm {
		f.alive[pid] = false
	}
	return nil
}

func (f *fakeProc) Kill(pid int) error {
	f.killed = append(f.killed, pid)
	f.alive[pid] = false
	return nil
}

// fastClock makes the grace windows instantaneous.
type fastClock struct {
	slept time.Duration
}

func (c *fastClock) Now() time.Time {
	return time.Now()
}

func (c *fastClock) Sleep(d time.Duration) {
	c.slept += d
}

func newTestSupervisor(t *testing.T, proc *fakeProc) (*Supervisor, string) {
	t.Helper()
	dir := t.TempDir()
	pidPath := filepath.Join(dir, "hydrate.pid")
	lifecycle := logbook.New(filepath.Join(dir, "daemon.log"), "DAEMON: ")
	return New(pidPath, proc, &fastClock{}, lifecycle), pidPath
}

func readPIDFile(t *testing.T, path string) int {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	require.NoError(t, err)
	return pid
}

func TestStart(t *testing.T) {
	t.Run("spawns and records the pid", func(t *testing.T) {
		proc := newFakeProc()
		sup, pidPath := newTestSupervisor(t, proc)

		pid, err := sup.Start()
		require.NoError(t, err)
		assert.Equal(t, pid, readPIDFile(t, pidPath))
		assert.True(t, sup.IsRunning())
	})

	t.Run("refuses a second start and keeps the pid file intact", func(t *testing.T) {
		proc := newFakeProc()
		sup, pidPath := newTestSupervisor(t, proc)

		first, err := sup.Start()
		require.NoError(t, err)

		pid, err := sup.Start()
		var already *AlreadyRunningError
		require.ErrorAs(t, err, &already)
		assert.Equal(t, first, already.PID)
		assert.Equal(t, first, pid)
		assert.Equal(t, first, readPIDFile(t, pidPath))
	})

	t.Run("spawn error reports failure and leaves no pid file", func(t *testing.T) {
		proc := newFakeProc()
		proc.spawnErr = errors.New("exec format error")
		sup, pidPath := newTestSupervisor(t, proc)

		_, err := sup.Start()
		require.ErrorIs(t, err, ErrSpawnFailed)
		assert.NoFileExists(t, pidPath)
	})

	t.Run("death within the grace window cleans up", func(t *testing.T) {
		proc := newFakeProc()
		proc.dieOnStartup = true
		sup, pidPath := newTestSupervisor(t, proc)

		_, err := sup.Start()
		require.ErrorIs(t, err, ErrSpawnFailed)
		assert.NoFileExists(t, pidPath)
		assert.False(t, sup.IsRunning())
	})
}

func TestStaleHandleReclamation(t *testing.T) {
	t.Run("status removes a stale pid file", func(t *testing.T) {
		proc := newFakeProc()
		sup, pidPath := newTestSupervisor(t, proc)
		require.NoError(t, os.WriteFile(pidPath, []byte("4242\n"), 0600))

		st := sup.Status()
		assert.False(t, st.Running)
		assert.NoFileExists(t, pidPath)
	})

	t.Run("start proceeds past a stale pid file", func(t *testing.T) {
		proc := newFakeProc()
		sup, pidPath := newTestSupervisor(t, proc)
		require.NoError(t, os.WriteFile(pidPath, []byte("4242\n"), 0600))

		pid, err := sup.Start()
		require.NoError(t, err)
		assert.NotEqual(t, 4242, pid)
		assert.Equal(t, pid, readPIDFile(t, pidPath))
	})

	t.Run("garbage pid file is treated as stale", func(t *testing.T) {
		proc := newFakeProc()
		sup, pidPath := newTestSupervisor(t, proc)
		require.NoError(t, os.WriteFile(pidPath, []byte("not-a-pid\n"), 0600))

		assert.False(t, sup.IsRunning())
		assert.NoFileExists(t, pidPath)
	})
}

func TestStop(t *testing.T) {
	t.Run("graceful stop removes the pid file", func(t *testing.T) {
		proc := newFakeProc()
		sup, pidPath := newTestSupervisor(t, proc)
		pid, err := sup.Start()
		require.NoError(t, err)

		require.NoError(t, sup.Stop())
		assert.Equal(t, []int{pid}, proc.terminated)
		assert.Empty(t, proc.killed)
		assert.NoFileExists(t, pidPath)
	})

	t.Run("second stop reports not running", func(t *testing.T) {
		proc := newFakeProc()
		sup, _ := newTestSupervisor(t, proc)
		_, err := sup.Start()
		require.NoError(t, err)

		require.NoError(t, sup.Stop())
		require.ErrorIs(t, sup.Stop(), ErrNotRunning)
	})

	t.Run("escalates to kill after the grace window", func(t *testing.T) {
		proc := newFakeProc()
		proc.ignoreTerm = true
		sup, pidPath := newTestSupervisor(t, proc)
		pid, err := sup.Start()
		require.NoError(t, err)

		require.NoError(t, sup.Stop())
		assert.Equal(t, []int{pid}, proc.killed)
		assert.NoFileExists(t, pidPath)
		assert.False(t, sup.IsRunning())
	})

	t.Run("signal delivery failure still clears the pid file", func(t *testing.T) {
		proc := newFakeProc()
		proc.termErr = errors.New("operation not permitted")
		sup, pidPath := newTestSupervisor(t, proc)
		_, err := sup.Start()
		require.NoError(t, err)

		err = sup.Stop()
		require.ErrorIs(t, err, ErrSignalDelivery)
		assert.NoFileExists(t, pidPath)
	})
}

func TestRestart(t *testing.T) {
	t.Run("yields a fresh pid", func(t *testing.T) {
		proc := newFakeProc()
		sup, _ := newTestSupervisor(t, proc)

		first, err := sup.Start()
		require.NoError(t, err)

		second, err := sup.Restart()
		require.NoError(t, err)
		assert.NotEqual(t, first, second)

		st := sup.Status()
		assert.True(t, st.Running)
		assert.Equal(t, second, st.PID)
	})

	t.Run("tolerates a daemon that is not running", func(t *testing.T) {
		proc := newFakeProc()
		sup, _ := newTestSupervisor(t, proc)

		pid, err := sup.Restart()
		require.NoError(t, err)
		assert.True(t, proc.alive[pid])
	})
}

func TestStatus(t *testing.T) {
	t.Run("not running without a pid file", func(t *testing.T) {
		proc := newFakeProc()
		sup, _ := newTestSupervisor(t, proc)
		assert.False(t, sup.Status().Running)
	})

	t.Run("reports pid and start time", func(t *testing.T) {
		proc := newFakeProc()
		sup, _ := newTestSupervisor(t, proc)
		pid, err := sup.Start()
		require.NoError(t, err)

		st := sup.Status()
		assert.True(t, st.Running)
		assert.Equal(t, pid, st.PID)
		assert.False(t, st.StartedAt.IsZero())
	})
}

func TestLogs(t *testing.T) {
	proc := newFakeProc()
	sup, _ := newTestSupervisor(t, proc)

	t.Run("empty before any activity", func(t *testing.T) {
		lines, err := sup.Logs(20)
		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("records lifecycle events", func(t *testing.T) {
		_, err := sup.Start()
		require.NoError(t, err)
		require.NoError(t, sup.Stop())

		lines, err := sup.Logs(20)
		require.NoError(t, err)
		require.NotEmpty(t, lines)
		assert.Contains(t, lines[0], "DAEMON: start requested")
		assert.Contains(t, lines[len(lines)-1], "stopped")
	})
}
