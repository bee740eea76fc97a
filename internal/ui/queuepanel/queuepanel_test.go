package queuepanel

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/waves-lite/internal/icons"
	"github.com/llehouerou/waves-lite/internal/playback"
	"github.com/llehouerou/waves-lite/internal/playlist"
	"github.com/llehouerou/waves-lite/internal/ui/action"
)

func testTracks(n int) []playlist.Track {
	tracks := make([]playlist.Track, n)
	for i := range n {
		tracks[i] = playlist.Track{
			Title:       fmt.Sprintf("Song %02d", i),
			Artist:      "Artist",
			AudioSource: fmt.Sprintf("/music/%02d.mp3", i),
			Duration:    time.Duration(60+i) * time.Second,
		}
	}
	return tracks
}

func newTestModel(n, width, height int) Model {
	m := New(testTracks(n))
	m.SetSize(width, height)
	return m
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func jumpIndex(t *testing.T, cmd tea.Cmd) int {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(action.Msg)
	require.True(t, ok)
	assert.Equal(t, "queuepanel", msg.Source)
	jump, ok := msg.Action.(JumpToTrack)
	require.True(t, ok)
	return jump.Index
}

func TestView_Header(t *testing.T) {
	icons.Init("none")
	m := newTestModel(3, 60, 10)
	m.SetPlaying(1)

	out := ansi.Strip(m.View())
	assert.Contains(t, out, "Queue (2/3)")
	assert.NotContains(t, out, "[S]")

	m.SetModes(true, playback.RepeatOne)
	out = ansi.Strip(m.View())
	assert.Contains(t, out, "[S] [1]")
}

func TestView_TrackLines(t *testing.T) {
	icons.Init("none")
	m := newTestModel(3, 60, 10)
	m.SetPlaying(1)

	lines := strings.Split(ansi.Strip(m.View()), "\n")
	require.Len(t, lines, 10)

	assert.Contains(t, lines[3], "  Song 00")
	assert.Contains(t, lines[4], "▶ Song 01")
	assert.Contains(t, lines[4], "1:01")
	for _, line := range lines {
		assert.Equal(t, 60, ansi.StringWidth(line))
	}
}

func TestView_TooSmall(t *testing.T) {
	m := newTestModel(3, 60, 3)
	assert.Empty(t, m.View())
}

func TestUpdate_IgnoredWhenUnfocused(t *testing.T) {
	m := newTestModel(5, 60, 10)

	m, cmd := m.Update(keyMsg("j"))
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.Cursor())
}

func TestUpdate_NavigateAndSelect(t *testing.T) {
	m := newTestModel(5, 60, 10)
	m.SetFocused(true)

	m, _ = m.Update(keyMsg("j"))
	m, _ = m.Update(keyMsg("down"))
	assert.Equal(t, 2, m.Cursor())

	_, cmd := m.Update(keyMsg("enter"))
	assert.Equal(t, 2, jumpIndex(t, cmd))
}

func TestSetPlaying_CursorFollowsWhenUnfocused(t *testing.T) {
	m := newTestModel(20, 60, 10)

	m.SetPlaying(12)
	assert.Equal(t, 12, m.Cursor())

	m.SetFocused(true)
	m.SetPlaying(3)
	assert.Equal(t, 12, m.Cursor(), "focused cursor stays where the user put it")
}

func TestHandleClick(t *testing.T) {
	m := newTestModel(5, 60, 10)

	// border, header and separator take rows 0-2
	assert.Equal(t, 0, jumpIndex(t, m.HandleClick(3)))
	assert.Equal(t, 2, jumpIndex(t, m.HandleClick(5)))
	assert.Equal(t, 2, m.Cursor())

	assert.Nil(t, m.HandleClick(1), "header row")
	assert.Nil(t, m.HandleClick(8), "empty row past the last track")
}

func TestHandleClick_Scrolled(t *testing.T) {
	m := newTestModel(30, 60, 10)
	m.SetPlaying(20)

	start, _ := m.cursor.VisibleRange(30, m.listHeight())
	assert.Equal(t, start, jumpIndex(t, m.HandleClick(3)))
}

func TestScroll(t *testing.T) {
	m := newTestModel(10, 60, 10)
	m.Scroll(3)
	assert.Equal(t, 3, m.Cursor())
	m.Scroll(-10)
	assert.Equal(t, 0, m.Cursor())
}

func TestFormatDuration(t *testing.T) {
	assert.Empty(t, formatDuration(0))
	assert.Equal(t, "3:58", formatDuration(238*time.Second))
}
