package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/waves-lite/internal/keymap"
	"github.com/llehouerou/waves-lite/internal/playback"
	"github.com/llehouerou/waves-lite/internal/player"
	"github.com/llehouerou/waves-lite/internal/ui/helpbindings"
	"github.com/llehouerou/waves-lite/internal/ui/layout"
	"github.com/llehouerou/waves-lite/internal/ui/playerbar"
	"github.com/llehouerou/waves-lite/internal/ui/queuepanel"
	"github.com/llehouerou/waves-lite/internal/ui/visualizer"
)

// FocusTarget is the component receiving navigation keys.
type FocusTarget int

const (
	FocusPlayer FocusTarget = iota
	FocusQueue
)

// Spectrum provides frequency bins for the visualizer.
type Spectrum interface {
	Snapshot(bins int) []uint8
	Reset()
}

// Deps are the collaborators the model drives.
type Deps struct {
	Service  playback.Service
	Player   player.Interface
	Spectrum Spectrum // nil disables the visualizer

	VisualizerBars    int
	VisualizerVisible bool
	// WatchStderr forwards captured C-library output to the status line.
	WatchStderr bool
}

// Model is the root application model.
type Model struct {
	Service     playback.Service
	Player      player.Interface
	Spectrum    Spectrum
	Keys        *keymap.Resolver
	QueuePanel  queuepanel.Model
	Visualizer  visualizer.Model
	ShowVisual  bool
	DisplayMode playerbar.DisplayMode
	Focus       FocusTarget
	Help        helpbindings.Model
	ShowHelp    bool
	StatusMsg   string
	StatusIsErr bool
	Width       int
	Height      int

	sub         *playback.Subscription
	watchStderr bool
}

// New creates the application model and subscribes it to the controller.
func New(d Deps) Model {
	st := d.Service.State()

	queue := queuepanel.New(d.Service.Tracks())
	queue.SetPlaying(st.CurrentIndex)
	queue.SetModes(st.Shuffle, st.Repeat)

	vis := visualizer.New(d.VisualizerBars)
	vis.SetPlaying(st.Playing)

	return Model{
		Service:     d.Service,
		Player:      d.Player,
		Spectrum:    d.Spectrum,
		Keys:        keymap.Default(),
		QueuePanel:  queue,
		Visualizer:  vis,
		ShowVisual:  d.VisualizerVisible && d.Spectrum != nil,
		DisplayMode: playerbar.ModeCompact,
		Focus:       FocusPlayer,
		Help:        helpbindings.New(),
		sub:         d.Service.Subscribe(),
		watchStderr: d.WatchStderr,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		TickCmd(m.tickInterval()),
		WatchTrackFinished(m.Player.Finished()),
		WatchServiceEvents(m.sub),
	}
	if m.watchStderr {
		cmds = append(cmds, WatchStderr())
	}
	return tea.Batch(cmds...)
}

func (m Model) tickInterval() time.Duration {
	if m.ShowVisual {
		return visualizerInterval
	}
	return tickInterval
}

// screen computes the component areas for the current terminal size.
func (m Model) screen() layout.Screen {
	return layout.Compute(m.Width, m.Height, layout.Opts{
		PlayerBarHeight:   playerbar.Height(m.DisplayMode),
		VisualizerVisible: m.ShowVisual,
	})
}

// resize propagates the layout to the panels.
func (m *Model) resize() {
	s := m.screen()
	m.QueuePanel.SetSize(s.Queue.Width, s.Queue.Height)
	m.Visualizer.SetSize(s.Visualizer.Width, s.Visualizer.Height)
	m.Help.SetSize(m.Width, m.Height)
}

// barState builds the player bar render state from the controller.
func (m Model) barState() playerbar.State {
	return playerbar.NewState(m.Service.Snapshot(), m.Player.TrackInfo(), m.DisplayMode)
}

func (m *Model) setFocus(target FocusTarget) {
	m.Focus = target
	m.QueuePanel.SetFocused(target == FocusQueue)
}

func (m *Model) setError(msg string) {
	m.StatusMsg = msg
	m.StatusIsErr = true
}

func (m *Model) setInfo(msg string) {
	m.StatusMsg = msg
	m.StatusIsErr = false
}
