//go:build darwin

package reminder

import (
	"os"

	"github.com/gen2brain/beeep"
)

// BeeepNotifier sends notifications on macOS through the Notification
// Center. Urgency and expiry hints are not supported there and are
// ignored.
type BeeepNotifier struct{}

// NewNotifier returns the notifier for the current platform.
func NewNotifier() Notifier {
	return &BeeepNotifier{}
}

func (n *BeeepNotifier) Available() error {
	return nil
}

// Notify sends a desktop notification, with the system alert sound when
// requested.
func (n *BeeepNotifier) Notify(note Notification) error {
	icon := note.Icon
	if icon != "" {
		if _, err := os.Stat(icon); err != nil {
			icon = ""
		}
	}
	if note.Sound {
		return beeep.Alert(note.Title, note.Body, icon)
	}
	return beeep.Notify(note.Title, note.Body, icon)
}
