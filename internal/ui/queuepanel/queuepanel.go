package queuepanel

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/waves-lite/internal/playback"
	"github.com/llehouerou/waves-lite/internal/playlist"
	"github.com/llehouerou/waves-lite/internal/ui"
	"github.com/llehouerou/waves-lite/internal/ui/action"
	"github.com/llehouerou/waves-lite/internal/ui/cursor"
)

// Model represents the queue panel state.
type Model struct {
	ui.Base
	tracks  []playlist.Track
	playing int
	shuffle bool
	repeat  playback.RepeatMode
	cursor  cursor.Cursor
}

// New creates a queue panel over a fixed list of tracks.
func New(tracks []playlist.Track) Model {
	return Model{
		tracks: tracks,
		cursor: cursor.New(ui.ScrollMargin),
	}
}

// SetPlaying highlights the track at index. While the panel is not focused
// the cursor follows the playing track.
func (m *Model) SetPlaying(index int) {
	m.playing = index
	if !m.IsFocused() {
		m.cursor.Jump(index, len(m.tracks), m.listHeight())
	}
}

// SetModes updates the shuffle and repeat indicators in the header.
func (m *Model) SetModes(shuffle bool, repeat playback.RepeatMode) {
	m.shuffle = shuffle
	m.repeat = repeat
}

// SetSize sets the panel dimensions and keeps the cursor visible.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.cursor.Jump(m.cursor.Pos(), len(m.tracks), m.listHeight())
}

// Cursor returns the index under the keyboard cursor.
func (m Model) Cursor() int {
	return m.cursor.Pos()
}

// Update handles key messages while the panel is focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.IsFocused() {
		return m, nil
	}

	key := keyMsg.String()
	if m.cursor.HandleKey(key, len(m.tracks), m.listHeight()) {
		return m, nil
	}
	if key == "enter" && len(m.tracks) > 0 {
		return m, action.Cmd(source, JumpToTrack{Index: m.cursor.Pos()})
	}
	return m, nil
}

// HandleClick selects the track on panel row y, counted from the panel's
// top border, and asks the app to play it.
func (m *Model) HandleClick(y int) tea.Cmd {
	row := y - 1 - ui.HeaderHeight
	idx, ok := m.cursor.Row(row, len(m.tracks), m.listHeight())
	if !ok {
		return nil
	}
	m.cursor.Jump(idx, len(m.tracks), m.listHeight())
	return action.Cmd(source, JumpToTrack{Index: idx})
}

// Scroll moves the cursor by delta rows (mouse wheel).
func (m *Model) Scroll(delta int) {
	m.cursor.Move(delta, len(m.tracks), m.listHeight())
}

func (m Model) listHeight() int {
	return m.ListHeight(ui.PanelOverhead)
}
