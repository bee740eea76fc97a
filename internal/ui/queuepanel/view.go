package queuepanel

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/waves-lite/internal/icons"
	"github.com/llehouerou/waves-lite/internal/playback"
	"github.com/llehouerou/waves-lite/internal/playlist"
	"github.com/llehouerou/waves-lite/internal/ui"
	"github.com/llehouerou/waves-lite/internal/ui/render"
	"github.com/llehouerou/waves-lite/internal/ui/styles"
)

// View renders the queue panel.
func (m Model) View() string {
	innerWidth, _ := m.Inner()
	if innerWidth == 0 || m.Height() <= ui.PanelOverhead {
		return ""
	}

	content := m.renderHeader(innerWidth) + "\n" +
		styles.T().S().Subtle.Render(strings.Repeat("─", innerWidth)) + "\n" +
		m.renderTrackList(innerWidth, m.listHeight())

	return styles.PanelStyle(m.IsFocused()).
		Width(innerWidth).
		Render(content)
}

// renderHeader renders "Queue (3/12)" with the active mode icons on the right.
func (m Model) renderHeader(innerWidth int) string {
	left := fmt.Sprintf("Queue (%d/%d)", m.playing+1, len(m.tracks))

	var modes []string
	if m.shuffle {
		modes = append(modes, icons.Shuffle())
	}
	switch m.repeat {
	case playback.RepeatAll:
		modes = append(modes, icons.RepeatAll())
	case playback.RepeatOne:
		modes = append(modes, icons.RepeatOne())
	case playback.RepeatNone:
	}

	right := strings.Join(modes, " ")
	leftWidth := innerWidth
	if right != "" {
		leftWidth -= lipgloss.Width(right) + 1
	}
	left = render.TruncateAndPad(left, max(leftWidth, 0))
	if right == "" {
		return headerStyle().Render(left)
	}
	return headerStyle().Render(left) + " " + modeIconStyle().Render(right)
}

func (m Model) renderTrackList(innerWidth, listHeight int) string {
	start, end := m.cursor.VisibleRange(len(m.tracks), listHeight)

	lines := make([]string, 0, listHeight)
	for idx := start; idx < end; idx++ {
		lines = append(lines, m.renderTrackLine(m.tracks[idx], idx, innerWidth))
	}
	for len(lines) < listHeight {
		lines = append(lines, render.EmptyLine(innerWidth))
	}
	return strings.Join(lines, "\n")
}

// renderTrackLine renders "▶ Title           Artist        3:58".
func (m Model) renderTrackLine(track playlist.Track, idx, width int) string {
	prefix := "  "
	if idx == m.playing {
		prefix = playingSymbol + " "
	}

	dur := formatDuration(track.Duration)
	suffix := ""
	if dur != "" {
		suffix = " " + dur
	}

	contentWidth := max(width-lipgloss.Width(prefix)-lipgloss.Width(suffix), 0)
	titleWidth := contentWidth * 3 / 5
	artistWidth := contentWidth - titleWidth

	line := prefix +
		render.TruncateAndPad(track.Title, titleWidth) +
		render.TruncateAndPad(track.Artist, artistWidth)

	style := m.lineStyle(idx)
	return style.Render(line) + style.Inherit(durationStyle()).Render(suffix)
}

func (m Model) lineStyle(idx int) lipgloss.Style {
	isCursor := idx == m.cursor.Pos() && m.IsFocused()
	isPlaying := idx == m.playing

	switch {
	case isCursor && isPlaying:
		return cursorStyle().Inherit(playingStyle())
	case isCursor:
		return cursorStyle()
	case isPlaying:
		return playingStyle()
	default:
		return trackStyle()
	}
}

// formatDuration renders m:ss, or "" when the duration is unknown.
func formatDuration(d time.Duration) string {
	if d <= 0 {
		return ""
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
