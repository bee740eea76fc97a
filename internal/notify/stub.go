//go:build !linux

package notify

// New returns Noop: desktop notifications are only sent over D-Bus.
func New() (Notifier, error) {
	return Noop{}, nil
}
