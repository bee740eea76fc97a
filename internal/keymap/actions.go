// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit          Action = "quit"
	ActionSwitchFocus   Action = "switch_focus"
	ActionToggleDisplay Action = "toggle_player_display"
	ActionToggleVisual  Action = "toggle_visualizer"
	ActionShowHelp      Action = "show_help"

	// Playback actions
	ActionPlayPause     Action = "play_pause"
	ActionNextTrack     Action = "next_track"
	ActionPrevTrack     Action = "prev_track"
	ActionSeekForward   Action = "seek_forward"
	ActionSeekBack      Action = "seek_back"
	ActionVolumeUp      Action = "volume_up"
	ActionVolumeDown    Action = "volume_down"
	ActionCycleRepeat   Action = "cycle_repeat"
	ActionToggleShuffle Action = "toggle_shuffle"
)

// Seek and volume steps, as fractions of the track and of full volume.
const (
	SeekStep   = 0.05
	VolumeStep = 0.05
)
