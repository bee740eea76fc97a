package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/waves-lite/internal/keymap"
	"github.com/llehouerou/waves-lite/internal/ui/playerbar"
)

// handleMouse routes a mouse event to the component under the pointer.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.ShowHelp || msg.Action != tea.MouseActionPress {
		return m, nil
	}

	s := m.screen()
	switch {
	case s.PlayerBar.Contains(msg.X, msg.Y):
		return m.handlePlayerBarMouse(msg, msg.X-s.PlayerBar.X, msg.Y-s.PlayerBar.Y)

	case s.Queue.Contains(msg.X, msg.Y):
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.setFocus(FocusQueue)
			return m, m.QueuePanel.HandleClick(msg.Y - s.Queue.Y)
		case tea.MouseButtonWheelUp:
			m.QueuePanel.Scroll(-1)
		case tea.MouseButtonWheelDown:
			m.QueuePanel.Scroll(1)
		}
	}
	return m, nil
}

// handlePlayerBarMouse handles a press at (x, y) relative to the bar's
// top-left corner.
func (m Model) handlePlayerBarMouse(msg tea.MouseMsg, x, y int) (tea.Model, tea.Cmd) {
	l := playerbar.ComputeLayout(m.barState(), m.Width)
	target, frac := l.HitTest(x, y)
	svc := m.Service

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if target != playerbar.TargetVolume {
			return m, nil
		}
		step := keymap.VolumeStep
		if msg.Button == tea.MouseButtonWheelDown {
			step = -step
		}
		svc.SetVolume(svc.State().Volume + step)
		return m, nil

	case tea.MouseButtonLeft:
	default:
		return m, nil
	}

	switch target {
	case playerbar.TargetPrevious:
		svc.Previous()
	case playerbar.TargetPlayPause:
		svc.TogglePlay()
	case playerbar.TargetNext:
		svc.Next()
	case playerbar.TargetProgress:
		svc.Seek(frac)
	case playerbar.TargetVolume:
		svc.SetVolume(frac)
	case playerbar.TargetShuffle:
		svc.ToggleShuffle()
	case playerbar.TargetRepeat:
		svc.ToggleRepeat()
	case playerbar.TargetNone:
	}
	return m, nil
}
