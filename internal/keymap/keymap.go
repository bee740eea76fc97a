package keymap

import (
	"slices"
	"strings"
)

// Binding ties keys to an action, with a description for help output.
type Binding struct {
	Keys        []string
	Action      Action
	Description string
	Context     string // "global", "playback"
}

// All contains every key binding the resolver dispatches.
var All = []Binding{
	// Global
	{[]string{"q", "ctrl+c"}, ActionQuit, "Quit", "global"},
	{[]string{"?"}, ActionShowHelp, "Help", "global"},
	{[]string{"tab"}, ActionSwitchFocus, "Focus queue", "global"},
	{[]string{"v"}, ActionToggleDisplay, "Expand player", "global"},
	{[]string{"V"}, ActionToggleVisual, "Toggle visualizer", "global"},

	// Playback
	{[]string{" ", "space"}, ActionPlayPause, "Play/pause", "playback"},
	{[]string{"n"}, ActionNextTrack, "Next", "playback"},
	{[]string{"p"}, ActionPrevTrack, "Previous", "playback"},
	{[]string{"right", "l"}, ActionSeekForward, "Seek +5%", "playback"},
	{[]string{"left", "h"}, ActionSeekBack, "Seek -5%", "playback"},
	{[]string{"+", "="}, ActionVolumeUp, "Volume +", "playback"},
	{[]string{"-"}, ActionVolumeDown, "Volume -", "playback"},
	{[]string{"s"}, ActionToggleShuffle, "Shuffle", "playback"},
	{[]string{"r"}, ActionCycleRepeat, "Repeat", "playback"},
}

// Queue lists the keys the queue panel handles itself while focused. They
// are documented in the help popup but never resolved to an action.
var Queue = []Binding{
	{[]string{"j", "down"}, "", "Cursor down", "queue"},
	{[]string{"k", "up"}, "", "Cursor up", "queue"},
	{[]string{"g", "home"}, "", "First track", "queue"},
	{[]string{"G", "end"}, "", "Last track", "queue"},
	{[]string{"ctrl+d", "pgdown"}, "", "Half page down", "queue"},
	{[]string{"ctrl+u", "pgup"}, "", "Half page up", "queue"},
	{[]string{"enter"}, "", "Play track", "queue"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, b := range slices.Concat(All, Queue) {
		if b.Context == context {
			result = append(result, b)
		}
	}
	return result
}

// Hint renders the first key of each binding in context as
// "key description · key description".
func Hint(context string) string {
	bindings := ByContext(context)
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, displayKey(b.Keys[0])+" "+strings.ToLower(b.Description))
	}
	return strings.Join(parts, " · ")
}

func displayKey(key string) string {
	if key == " " {
		return "space"
	}
	return key
}
