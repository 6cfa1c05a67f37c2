//go:build linux

package reminder

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/gen2brain/beeep"
)

// fallbackIcon is used when the configured icon file does not exist.
const fallbackIcon = "dialog-information"

// NotifySendNotifier sends notifications on Linux using notify-send.
type NotifySendNotifier struct{}

// NewNotifier returns the notifier for the current platform.
func NewNotifier() Notifier {
	return &NotifySendNotifier{}
}

// Available checks that notify-send is on PATH.
func (n *NotifySendNotifier) Available() error {
	if _, err := exec.LookPath("notify-send"); err != nil {
		return fmt.Errorf("%w: notify-send not found in PATH", ErrNotifierUnavailable)
	}
	return nil
}

// Notify sends a desktop notification. A missing icon file falls back
// to a generic system icon. The sound is a best-effort beep on top of
// the visual notification.
func (n *NotifySendNotifier) Notify(note Notification) error {
	icon := note.Icon
	if icon == "" {
		icon = fallbackIcon
	} else if _, err := os.Stat(icon); err != nil {
		icon = fallbackIcon
	}

	args := []string{
		"--app-name=hydrate",
		"--urgency=" + note.Urgency.String(),
		"--icon=" + icon,
	}
	if note.ExpireMillis > 0 {
		args = append(args, fmt.Sprintf("--expire-time=%d", note.ExpireMillis))
	}
	args = append(args, note.Title, note.Body)

	if err := exec.Command("notify-send", args...).Run(); err != nil {
		return err
	}

	if note.Sound {
		// Sound failure never fails the notification.
		_ = beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
	}
	return nil
}
