package playback

import (
	"time"

	"github.com/llehouerou/waves-lite/internal/playlist"
)

// Service defines the playback controller contract used by front ends
// (terminal UI, MPRIS).
type Service interface {
	// Playback control
	Play()
	Pause()
	TogglePlay()
	Next()
	Previous()
	Seek(fraction float64)
	SeekTo(position time.Duration)
	SetVolume(level float64)

	// Track selection
	LoadTrack(index int) (playlist.Track, error)
	SelectTrack(index int) error
	OnTrackFinished()

	// Mode control
	ToggleShuffle() bool
	SetShuffle(enabled bool)
	ToggleRepeat() RepeatMode
	SetRepeat(mode RepeatMode)

	// State queries
	State() PlayerState
	Snapshot() Snapshot
	CurrentTrack() playlist.Track
	Tracks() []playlist.Track
	Position() time.Duration
	Duration() time.Duration

	// Event subscription
	Subscribe() *Subscription

	// Lifecycle
	Close() error
}

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	PlayerState
	Track    playlist.Track
	Len      int
	Position time.Duration
	Duration time.Duration
}

// Fraction returns playback progress in [0,1], 0 when the duration is unknown.
func (s Snapshot) Fraction() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return min(max(float64(s.Position)/float64(s.Duration), 0), 1)
}
