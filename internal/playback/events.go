package playback

import (
	"time"

	"github.com/llehouerou/waves-lite/internal/playlist"
)

// StateChange is emitted when playback starts or stops.
type StateChange struct {
	Playing bool
}

// TrackChange is emitted when a different track is loaded.
//
// Emitted by LoadTrack, SelectTrack, Next, Previous and by OnTrackFinished
// when it advances. Replaying the same track (RepeatOne) does not emit.
type TrackChange struct {
	Previous      *playlist.Track
	Current       playlist.Track
	PreviousIndex int
	Index         int
}

// ModeChange is emitted when repeat or shuffle mode changes.
type ModeChange struct {
	Repeat  RepeatMode
	Shuffle bool
}

// VolumeChange is emitted when the volume level changes.
type VolumeChange struct {
	Volume float64
}

// PositionChange is emitted when a seek occurs.
type PositionChange struct {
	Position time.Duration
	Duration time.Duration
}

// ErrorEvent is emitted when a media operation fails. Failures never
// change controller state.
type ErrorEvent struct {
	Operation string // e.g., "load", "play"
	Path      string // track path if applicable
	Err       error
}
