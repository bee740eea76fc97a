package keymap

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestDefault_Resolve(t *testing.T) {
	r := Default()

	tests := map[string]Action{
		" ":      ActionPlayPause,
		"space":  ActionPlayPause,
		"n":      ActionNextTrack,
		"p":      ActionPrevTrack,
		"s":      ActionToggleShuffle,
		"r":      ActionCycleRepeat,
		"left":   ActionSeekBack,
		"right":  ActionSeekForward,
		"+":      ActionVolumeUp,
		"-":      ActionVolumeDown,
		"tab":    ActionSwitchFocus,
		"q":      ActionQuit,
		"ctrl+c": ActionQuit,
		"z":      "",
	}
	for key, want := range tests {
		assert.Equal(t, want, r.Resolve(key), "key %q", key)
	}
}

func TestAll_NoDuplicateKeys(t *testing.T) {
	seen := make(map[string]Action)
	for _, b := range All {
		for _, k := range b.Keys {
			if prev, ok := seen[k]; ok {
				t.Errorf("key %q bound to both %s and %s", k, prev, b.Action)
			}
			seen[k] = b.Action
		}
	}
}

func TestNewResolver_KeysFor(t *testing.T) {
	r := NewResolver([]Binding{
		{Keys: []string{"a", "b"}, Action: ActionQuit},
		{Keys: []string{"b", "c"}, Action: ActionQuit},
		{Keys: []string{"x"}, Action: ActionNextTrack},
	})

	assert.Equal(t, []string{"a", "b", "c"}, r.KeysFor(ActionQuit))
	assert.Equal(t, []string{"x"}, r.KeysFor(ActionNextTrack))
	assert.Nil(t, r.KeysFor(ActionPrevTrack))
}

func TestByContext(t *testing.T) {
	for _, b := range ByContext("playback") {
		assert.Equal(t, "playback", b.Context)
	}
	assert.Empty(t, ByContext("nope"))
}

func TestHint(t *testing.T) {
	h := Hint("playback")
	assert.Contains(t, h, "space play/pause")
	assert.Contains(t, h, "n next")
	assert.Contains(t, h, " · ")
}

func TestKeyBindings_CarryAllKeys(t *testing.T) {
	bindings := KeyBindings("playback")
	assert.Len(t, bindings, len(ByContext("playback")))

	first := bindings[0]
	assert.Equal(t, []string{" ", "space"}, first.Keys())
	assert.Equal(t, "space", first.Help().Key)
	assert.Equal(t, "Play/pause", first.Help().Desc)
}

func TestShortHelp_Truncates(t *testing.T) {
	full := ansi.Strip(ShortHelp("playback", 0))
	assert.Contains(t, full, "space Play/pause")
	assert.Contains(t, full, "r Repeat")

	short := ansi.Strip(ShortHelp("playback", 30))
	assert.LessOrEqual(t, ansi.StringWidth(short), 30)
}

func TestQueue_KeysNotResolved(t *testing.T) {
	r := Default()
	assert.Len(t, ByContext("queue"), len(Queue))
	for _, b := range Queue {
		for _, k := range b.Keys {
			assert.Empty(t, r.Resolve(k), "queue key %q must reach the panel", k)
		}
	}
	assert.Equal(t, ActionShowHelp, r.Resolve("?"))
}
