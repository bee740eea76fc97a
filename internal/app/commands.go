package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/waves-lite/internal/playback"
	"github.com/llehouerou/waves-lite/internal/stderr"
)

const (
	// tickInterval drives the progress bar.
	tickInterval = 250 * time.Millisecond
	// visualizerInterval is used instead while the visualizer is visible.
	visualizerInterval = 50 * time.Millisecond
)

// TickCmd returns a command that sends a TickMsg after interval.
func TickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// WatchTrackFinished returns a command that waits for the media player to
// reach the end of the loaded source.
func WatchTrackFinished(finished <-chan int) tea.Cmd {
	if finished == nil {
		return nil
	}
	return func() tea.Msg {
		gen, ok := <-finished
		if !ok {
			return nil
		}
		return TrackFinishedMsg{Generation: gen}
	}
}

// WatchServiceEvents returns a command that waits for the next controller
// event. It listens on all subscription channels and converts events to
// tea.Msg.
func WatchServiceEvents(sub *playback.Subscription) tea.Cmd {
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-sub.StateChanged:
			return ServiceStateChangedMsg{Playing: e.Playing}
		case e := <-sub.TrackChanged:
			return ServiceTrackChangedMsg{
				PreviousIndex: e.PreviousIndex,
				CurrentIndex:  e.Index,
			}
		case e := <-sub.ModeChanged:
			return ServiceModeChangedMsg{Shuffle: e.Shuffle, Repeat: e.Repeat}
		case <-sub.VolumeChanged:
			return ServiceRefreshMsg{}
		case <-sub.PositionChanged:
			return ServiceRefreshMsg{}
		case e := <-sub.Error:
			return ServiceErrorMsg{Operation: e.Operation, Path: e.Path, Err: e.Err}
		case <-sub.Done:
			return ServiceClosedMsg{}
		}
	}
}

// WatchStderr returns a command that waits for captured stderr output.
func WatchStderr() tea.Cmd {
	return waitForChannel[string](stderr.Messages, func(line string) tea.Msg {
		return StderrMsg{Line: line}
	})
}

// waitForChannel returns a command that receives one value from ch and
// wraps it. It returns nil once ch is closed.
func waitForChannel[T any](ch <-chan T, wrap func(T) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		v, ok := <-ch
		if !ok {
			return nil
		}
		return wrap(v)
	}
}
