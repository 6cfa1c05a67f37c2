package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hydrate-cli/hydrate/internal/config"
	"github.com/hydrate-cli/hydrate/internal/logbook"
	"github.com/hydrate-cli/hydrate/internal/supervisor"
	"github.com/hydrate-cli/hydrate/internal/xdgpath"
)

var rootCmd = &cobra.Command{
	Use:   "hydrate",
	Short: "A desktop reminder that tells you to drink water.",
	Long: `hydrate keeps a small background daemon running that periodically
sends a desktop notification reminding you to drink water. One daemon
per user, tracked through a PID file; settings live in a flat config
file and are read when the daemon starts.`,
	SilenceUsage: true,
}

// Root returns the root command for main to execute.
func Root() *cobra.Command {
	return rootCmd
}

func lifecycleLogbook() (*logbook.Logbook, error) {
	path, err := xdgpath.StatePath("daemon.log")
	if err != nil {
		return nil, err
	}
	return logbook.New(path, "DAEMON: "), nil
}

func reminderLogbook() (*logbook.Logbook, error) {
	path, err := xdgpath.StatePath("reminders.log")
	if err != nil {
		return nil, err
	}
	return logbook.New(path, ""), nil
}

func newSupervisor() (*supervisor.Supervisor, error) {
	pidPath, err := xdgpath.StatePath("hydrate.pid")
	if err != nil {
		return nil, err
	}
	lifecycle, err := lifecycleLogbook()
	if err != nil {
		return nil, err
	}
	return supervisor.New(pidPath, supervisor.OSProcessControl{}, supervisor.RealClock{}, lifecycle), nil
}

func newConfigStore() (*config.Store, error) {
	path, err := xdgpath.ConfigPath("hydrate.conf")
	if err != nil {
		return nil, err
	}
	return config.NewStore(path), nil
}
