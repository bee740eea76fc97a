package queuepanel

import "github.com/llehouerou/waves-lite/internal/ui/action"

const source = "queuepanel"

// JumpToTrack requests playback of the track at Index.
type JumpToTrack struct {
	Index int
}

// ActionType implements action.Action.
func (a JumpToTrack) ActionType() string { return "queuepanel.jump_to_track" }

var _ action.Action = JumpToTrack{}
