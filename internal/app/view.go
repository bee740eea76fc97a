package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/waves-lite/internal/keymap"
	"github.com/llehouerou/waves-lite/internal/ui/layout"
	"github.com/llehouerou/waves-lite/internal/ui/overlay"
	"github.com/llehouerou/waves-lite/internal/ui/playerbar"
	"github.com/llehouerou/waves-lite/internal/ui/render"
	"github.com/llehouerou/waves-lite/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}

	parts := make([]string, 0, 3)
	if content := m.renderContent(); content != "" {
		parts = append(parts, content)
	}
	parts = append(parts, m.renderStatus(), playerbar.Render(m.barState(), m.Width))
	view := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if m.ShowHelp {
		view = overlay.Center(view, m.Help.View(), m.Width, m.Height)
	}
	return view
}

// renderContent places the queue and, when visible, the visualizer.
func (m Model) renderContent() string {
	queue := m.QueuePanel.View()
	if !m.ShowVisual {
		return queue
	}

	vis := m.Visualizer.View()
	switch {
	case vis == "":
		return queue
	case queue == "":
		return vis
	case layout.IsWide(m.Width):
		return lipgloss.JoinHorizontal(lipgloss.Top, queue, vis)
	default:
		return lipgloss.JoinVertical(lipgloss.Left, queue, vis)
	}
}

// renderStatus shows the last error or stderr line, or the key hints.
func (m Model) renderStatus() string {
	t := styles.T()
	switch {
	case m.StatusMsg == "":
		hint := render.TruncateStyled(keymap.ShortHelp("playback", m.Width), m.Width)
		return lipgloss.NewStyle().Width(m.Width).Render(hint)
	case m.StatusIsErr:
		return t.S().Error.Render(render.TruncateAndPad(m.StatusMsg, m.Width))
	default:
		return t.S().Muted.Render(render.TruncateAndPad(m.StatusMsg, m.Width))
	}
}
