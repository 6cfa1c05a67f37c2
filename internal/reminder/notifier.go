package reminder

import "errors"

// ErrNotifierUnavailable is returned when no desktop notification
// service can be reached. The loop refuses to start in that case.
var ErrNotifierUnavailable = errors.New("desktop notifier is unavailable")

// Urgency is the notification urgency hint passed to the desktop
// notification service.
type Urgency int

const (
	UrgencyLow Urgency = iota
	UrgencyNormal
	UrgencyCritical
)

func (u Urgency) String() string {
	switch u {
	case UrgencyLow:
		return "low"
	case UrgencyCritical:
		return "critical"
	default:
		return "normal"
	}
}

// Notification is a single fire-and-forget desktop notification.
type Notification struct {
	Title        string
	Body         string
	Icon         string
	Urgency      Urgency
	ExpireMillis int
	Sound        bool
}

// Notifier is an interface for sending desktop notifications.
type Notifier interface {
	// Notify sends a desktop notification.
	Notify(n Notification) error
	// Available reports whether notifications can be delivered at all.
	Available() error
}
