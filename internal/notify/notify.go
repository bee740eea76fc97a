// Package notify sends "now playing" desktop notifications.
package notify

import "time"

// Urgency is a freedesktop notification urgency level.
type Urgency byte

const (
	Low Urgency = iota
	Normal
	Critical
)

// Notification is one desktop notification.
type Notification struct {
	Summary string
	Body    string
	Icon    string        // image path or icon name
	Expire  time.Duration // 0 uses the server default
	Replace uint32        // id of a shown notification to update in place
	Urgency Urgency
}

// Notifier delivers notifications. Send returns the id assigned by the
// notification server, 0 when nothing was shown.
type Notifier interface {
	Send(n Notification) (uint32, error)
	Dismiss(id uint32) error
}

// Noop drops every notification. It stands in when no notification
// server is reachable.
type Noop struct{}

func (Noop) Send(Notification) (uint32, error) { return 0, nil }

func (Noop) Dismiss(uint32) error { return nil }
