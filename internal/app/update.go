package app

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/waves-lite/internal/errmsg"
	"github.com/llehouerou/waves-lite/internal/keymap"
	"github.com/llehouerou/waves-lite/internal/ui/action"
	"github.com/llehouerou/waves-lite/internal/ui/helpbindings"
	"github.com/llehouerou/waves-lite/internal/ui/playerbar"
	"github.com/llehouerou/waves-lite/internal/ui/queuepanel"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if pm, ok := msg.(PlaybackMessage); ok {
		return m.handlePlaybackMsg(pm)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case action.Msg:
		return m.handleAction(msg)

	case StderrMsg:
		m.setInfo(msg.Line)
		return m, WatchStderr()
	}
	return m, nil
}

func (m Model) handlePlaybackMsg(msg PlaybackMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if m.ShowVisual && m.Spectrum != nil {
			m.Visualizer.SetBins(m.Spectrum.Snapshot(m.Visualizer.Bars()))
		}
		return m, TickCmd(m.tickInterval())

	case TrackFinishedMsg:
		// A track loaded since the signal was sent has not finished.
		if msg.Generation == m.Player.Generation() {
			m.Service.OnTrackFinished()
		}
		return m, WatchTrackFinished(m.Player.Finished())

	case ServiceStateChangedMsg:
		m.Visualizer.SetPlaying(msg.Playing)
		return m, WatchServiceEvents(m.sub)

	case ServiceTrackChangedMsg:
		m.QueuePanel.SetPlaying(msg.CurrentIndex)
		if m.Spectrum != nil {
			m.Spectrum.Reset()
		}
		if !m.StatusIsErr {
			m.StatusMsg = ""
		}
		return m, WatchServiceEvents(m.sub)

	case ServiceModeChangedMsg:
		m.QueuePanel.SetModes(msg.Shuffle, msg.Repeat)
		return m, WatchServiceEvents(m.sub)

	case ServiceRefreshMsg:
		return m, WatchServiceEvents(m.sub)

	case ServiceErrorMsg:
		m.setError(errmsg.FormatWith(errmsg.ForPlayback(msg.Operation), msg.Path, msg.Err))
		return m, WatchServiceEvents(m.sub)

	case ServiceClosedMsg:
		m.sub = nil
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ShowHelp && msg.String() != "ctrl+c" {
		var cmd tea.Cmd
		m.Help, cmd = m.Help.Update(msg)
		return m, cmd
	}

	act := m.Keys.Resolve(msg.String())
	if act == "" {
		if m.Focus == FocusQueue {
			var cmd tea.Cmd
			m.QueuePanel, cmd = m.QueuePanel.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	return m.handleAction(action.Msg{Source: "keymap", Action: keyAction(act)})
}

// keyAction adapts a keymap action to the action.Action interface.
type keyAction keymap.Action

func (a keyAction) ActionType() string { return "keymap." + string(a) }

func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch a := msg.Action.(type) {
	case queuepanel.JumpToTrack:
		if err := m.Service.SelectTrack(a.Index); err != nil {
			m.setError(errmsg.Format(errmsg.OpPlaybackLoad, err))
		}
		return m, nil

	case helpbindings.Close:
		m.ShowHelp = false
		return m, nil

	case keyAction:
		return m.runKeyAction(keymap.Action(a))
	}

	log.Printf("app: unhandled action %s from %s", msg.Action.ActionType(), msg.Source)
	return m, nil
}

func (m Model) runKeyAction(act keymap.Action) (tea.Model, tea.Cmd) {
	svc := m.Service
	switch act {
	case keymap.ActionQuit:
		return m, tea.Quit

	case keymap.ActionShowHelp:
		m.ShowHelp = true

	case keymap.ActionSwitchFocus:
		if m.Focus == FocusQueue {
			m.setFocus(FocusPlayer)
		} else {
			m.setFocus(FocusQueue)
		}

	case keymap.ActionToggleDisplay:
		if m.DisplayMode == playerbar.ModeCompact {
			m.DisplayMode = playerbar.ModeExpanded
		} else {
			m.DisplayMode = playerbar.ModeCompact
		}
		m.resize()

	case keymap.ActionToggleVisual:
		if m.Spectrum == nil {
			return m, nil
		}
		m.ShowVisual = !m.ShowVisual
		m.resize()

	case keymap.ActionPlayPause:
		svc.TogglePlay()
	case keymap.ActionNextTrack:
		svc.Next()
	case keymap.ActionPrevTrack:
		svc.Previous()
	case keymap.ActionSeekForward:
		svc.Seek(svc.Snapshot().Fraction() + keymap.SeekStep)
	case keymap.ActionSeekBack:
		svc.Seek(svc.Snapshot().Fraction() - keymap.SeekStep)
	case keymap.ActionVolumeUp:
		svc.SetVolume(svc.State().Volume + keymap.VolumeStep)
	case keymap.ActionVolumeDown:
		svc.SetVolume(svc.State().Volume - keymap.VolumeStep)
	case keymap.ActionToggleShuffle:
		svc.ToggleShuffle()
	case keymap.ActionCycleRepeat:
		svc.ToggleRepeat()
	}
	return m, nil
}
