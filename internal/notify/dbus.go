//go:build linux

package notify

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	busName   = "org.freedesktop.Notifications"
	busPath   = dbus.ObjectPath("/org/freedesktop/Notifications")
	busMethod = busName + ".Notify"
	busClose  = busName + ".CloseNotification"

	appName      = "Waves Lite"
	desktopEntry = "waves-lite"
)

// sessionNotifier talks to the notification server on the session bus.
type sessionNotifier struct {
	obj dbus.BusObject
}

// New connects to the session bus. Without a session bus it returns Noop
// and no error, so callers never have to special-case headless machines.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return Noop{}, nil //nolint:nilerr // no session bus means no notifications
	}
	return &sessionNotifier{obj: conn.Object(busName, busPath)}, nil
}

// Send calls Notify(app_name, replaces_id, app_icon, summary, body,
// actions, hints, expire_timeout).
func (s *sessionNotifier) Send(n Notification) (uint32, error) {
	call := s.obj.Call(busMethod, 0,
		appName, n.Replace, n.Icon, n.Summary, n.Body,
		[]string{}, hints(n), expireMillis(n),
	)
	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, fmt.Errorf("dbus notify: %w", err)
	}
	return id, nil
}

func (s *sessionNotifier) Dismiss(id uint32) error {
	if id == 0 {
		return nil
	}
	return s.obj.Call(busClose, 0, id).Err
}

func hints(n Notification) map[string]dbus.Variant {
	return map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(n.Urgency)),
		"desktop-entry": dbus.MakeVariant(desktopEntry),
		"transient":     dbus.MakeVariant(true),
	}
}

// expireMillis converts Expire to the protocol's int32 milliseconds,
// where -1 asks for the server default.
func expireMillis(n Notification) int32 {
	if n.Expire <= 0 {
		return -1
	}
	return int32(n.Expire.Milliseconds()) //nolint:gosec // notification timeouts are small
}
