// Package app contains the root bubbletea model and its messages.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/waves-lite/internal/playback"
)

// PlaybackMessage is implemented by messages related to audio playback.
// Messages from other packages cannot implement it and are handled
// separately in Update().
type PlaybackMessage interface {
	tea.Msg
	playbackMessage()
}

// TickMsg is sent periodically to refresh the progress bar and the
// visualizer.
type TickMsg time.Time

func (TickMsg) playbackMessage() {}

// TrackFinishedMsg is sent when the media player reaches the end of a source.
type TrackFinishedMsg struct {
	Generation int // player load generation of the finished source
}

func (TrackFinishedMsg) playbackMessage() {}

// ServiceStateChangedMsg mirrors playback.StateChange.
type ServiceStateChangedMsg struct {
	Playing bool
}

func (ServiceStateChangedMsg) playbackMessage() {}

// ServiceTrackChangedMsg mirrors playback.TrackChange.
type ServiceTrackChangedMsg struct {
	PreviousIndex int
	CurrentIndex  int
}

func (ServiceTrackChangedMsg) playbackMessage() {}

// ServiceModeChangedMsg mirrors playback.ModeChange.
type ServiceModeChangedMsg struct {
	Shuffle bool
	Repeat  playback.RepeatMode
}

func (ServiceModeChangedMsg) playbackMessage() {}

// ServiceRefreshMsg is sent for events that only need a redraw
// (volume, seek).
type ServiceRefreshMsg struct{}

func (ServiceRefreshMsg) playbackMessage() {}

// ServiceErrorMsg carries a media failure reported by the controller.
type ServiceErrorMsg struct {
	Operation string
	Path      string
	Err       error
}

func (ServiceErrorMsg) playbackMessage() {}

// ServiceClosedMsg is sent once the controller has been closed.
type ServiceClosedMsg struct{}

func (ServiceClosedMsg) playbackMessage() {}

// StderrMsg carries a line written to stderr by a C library.
type StderrMsg struct {
	Line string
}
