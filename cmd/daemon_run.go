package cmd

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/hydrate-cli/hydrate/internal/reminder"
)

var daemonRunCmd = &cobra.Command{
	Use:    "run",
	Short:  "Run the reminder loop in the foreground.",
	Long:   `Run the reminder loop in the foreground. This is what 'hydrate start' spawns in the background.`,
	Hidden: true,
	RunE:   runDaemonRun,
}

func init() {
	daemonCmd.AddCommand(daemonRunCmd)
}

func runDaemonRun(cmd *cobra.Command, args []string) error {
	// set up logger
	logLevel := slog.LevelInfo
	if levelStr := os.Getenv("HYDRATE_LOG_LEVEL"); levelStr != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(levelStr)); err == nil {
			logLevel = l
		}
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.Kitchen,
		}),
	))
	slog.Info("Starting daemon...")

	store, err := newConfigStore()
	if err != nil {
		return err
	}
	cfg, err := store.Load()
	if err != nil {
		slog.Warn("Could not read config, falling back to defaults", "err", err)
	}
	slog.Info("Loaded settings", "interval_minutes", cfg.IntervalMinutes, "sound", cfg.SoundEnabled)

	reminders, err := reminderLogbook()
	if err != nil {
		return err
	}
	lifecycle, err := lifecycleLogbook()
	if err != nil {
		return err
	}

	loop := reminder.NewLoop(cfg, reminder.NewNotifier(), reminders, lifecycle)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return loop.Run(ctx)
}
