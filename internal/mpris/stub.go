//go:build !linux

package mpris

import "github.com/llehouerou/waves-lite/internal/playback"

// Adapter does nothing outside Linux, which has no session bus.
type Adapter struct{}

// New ignores the controller and never fails.
func New(playback.Service) (*Adapter, error) { return new(Adapter), nil }

// Close always succeeds.
func (*Adapter) Close() error { return nil }
