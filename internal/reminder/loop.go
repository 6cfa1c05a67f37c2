// Package reminder implements the reminder loop hosted by the daemon
// process: pick a message, deliver it as a desktop notification, log
// it, sleep for the configured interval, repeat.
package reminder

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/hydrate-cli/hydrate/internal/config"
	"github.com/hydrate-cli/hydrate/internal/logbook"
)

const (
	notificationTitle  = "Hydrate"
	notificationExpiry = 10000 // milliseconds
)

// Loop delivers reminders on a fixed cadence. Configuration is read
// once at construction; a running loop does not pick up changes.
type Loop struct {
	cfg       config.Config
	notifier  Notifier
	reminders *logbook.Logbook
	lifecycle *logbook.Logbook
	rng       *rand.Rand
}

func NewLoop(cfg config.Config, notifier Notifier, reminders, lifecycle *logbook.Logbook) *Loop {
	return &Loop{
		cfg:       cfg,
		notifier:  notifier,
		reminders: reminders,
		lifecycle: lifecycle,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run delivers reminders until ctx is cancelled by a termination
// signal. A failed delivery is logged and the loop carries on with the
// next interval.
func (l *Loop) Run(ctx context.Context) error {
	if err := l.notifier.Available(); err != nil {
		slog.Error("Notifier unavailable, refusing to start", "err", err)
		l.logLifecycle("notifier unavailable: " + err.Error())
		return err
	}

	interval := time.Duration(l.cfg.IntervalMinutes) * time.Minute
	l.logLifecycle("reminder loop started")
	slog.Info("Reminder loop started", "interval", interval)

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			l.logLifecycle("stopped by signal")
			slog.Info("Reminder loop stopped")
			return nil
		case <-timer.C:
		}

		msg := l.message()
		if err := l.notifier.Notify(l.notification(msg)); err != nil {
			slog.Warn("Failed to deliver reminder", "err", err)
			l.logLifecycle("notification failed: " + err.Error())
		} else {
			if err := l.reminders.Append(msg); err != nil {
				slog.Warn("Failed to log reminder", "err", err)
			}
		}

		timer.Reset(interval)
	}
}

// RunOnce performs a single reminder iteration. Unlike Run, a delivery
// failure is returned to the caller.
func (l *Loop) RunOnce(ctx context.Context) error {
	if err := l.notifier.Available(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := l.message()
	if err := l.notifier.Notify(l.notification(msg)); err != nil {
		return err
	}
	return l.reminders.Append(msg)
}

func (l *Loop) message() string {
	if l.cfg.CustomMessage != "" {
		return l.cfg.CustomMessage
	}
	return builtinMessages[l.rng.Intn(len(builtinMessages))]
}

func (l *Loop) notification(msg string) Notification {
	return Notification{
		Title:        notificationTitle,
		Body:         msg,
		Icon:         l.cfg.IconPath,
		Urgency:      UrgencyNormal,
		ExpireMillis: notificationExpiry,
		Sound:        l.cfg.SoundEnabled,
	}
}

func (l *Loop) logLifecycle(msg string) {
	if l.lifecycle == nil {
		return
	}
	if err := l.lifecycle.Append(msg); err != nil {
		slog.Warn("Failed to write lifecycle log", "err", err)
	}
}
