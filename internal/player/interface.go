// internal/player/interface.go
package player

import "time"

// Interface defines the media playback contract for dependency injection and testing.
type Interface interface {
	// Load opens a source, paused at position 0. Metadata is ready on return.
	Load(path string) (*TrackInfo, error)
	Play() error
	Pause()
	Stop()
	SeekTo(position time.Duration)
	SetVolume(level float64)
	Volume() float64
	State() State
	TrackInfo() *TrackInfo
	Position() time.Duration
	Duration() time.Duration
	// Finished receives the load generation of a source each time it plays
	// to its end.
	Finished() <-chan int
	// Generation identifies the current load. It changes on every Load and
	// Stop, so a finish signal from an earlier source can be told apart.
	Generation() int
	Close() error
}

// Verify Player implements Interface at compile time.
var _ Interface = (*Player)(nil)
