// internal/player/mock.go
package player

import (
	"path/filepath"
	"time"
)

// Mock is a test double for Player.
type Mock struct {
	state      State
	position   time.Duration
	duration   time.Duration
	volume     float64
	trackInfo  *TrackInfo
	loadErr    error
	playErr    error
	loadCalls  []string
	playCalls  int
	pauseCalls int
	seekCalls  []time.Duration
	finishedCh chan int
	generation int
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	return &Mock{
		state:      Stopped,
		volume:     1,
		finishedCh: make(chan int, 1),
	}
}

func (m *Mock) Load(path string) (*TrackInfo, error) {
	m.loadCalls = append(m.loadCalls, path)
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	select {
	case <-m.finishedCh:
	default:
	}
	m.generation++
	m.state = Paused
	m.position = 0
	m.trackInfo = &TrackInfo{
		Path:     path,
		Format:   formatName(extOfPath(path)),
		Duration: m.duration,
	}
	return m.trackInfo, nil
}

// Play fails with the configured error but, like a media element whose
// start promise rejects, still reports itself as playing.
func (m *Mock) Play() error {
	m.playCalls++
	if m.trackInfo == nil {
		return ErrNothingLoaded
	}
	m.state = Playing
	return m.playErr
}

func (m *Mock) Pause() {
	m.pauseCalls++
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Stop() {
	m.generation++
	m.state = Stopped
	m.trackInfo = nil
	m.position = 0
}

func (m *Mock) SeekTo(d time.Duration) {
	m.seekCalls = append(m.seekCalls, d)
	m.position = d
}

func (m *Mock) SetVolume(level float64) { m.volume = ClampLevel(level) }

func (m *Mock) Volume() float64 { return m.volume }

func (m *Mock) State() State { return m.state }

func (m *Mock) TrackInfo() *TrackInfo { return m.trackInfo }

func (m *Mock) Position() time.Duration { return m.position }

func (m *Mock) Duration() time.Duration {
	if m.trackInfo == nil {
		return 0
	}
	return m.duration
}

func (m *Mock) Finished() <-chan int { return m.finishedCh }

func (m *Mock) Generation() int { return m.generation }

func (m *Mock) Close() error {
	m.Stop()
	return nil
}

// Test helpers

func (m *Mock) SetState(s State) { m.state = s }

func (m *Mock) SetLoadError(err error) { m.loadErr = err }

func (m *Mock) SetPlayError(err error) { m.playErr = err }

func (m *Mock) LoadCalls() []string { return m.loadCalls }

func (m *Mock) LastLoaded() string {
	if len(m.loadCalls) == 0 {
		return ""
	}
	return filepath.Clean(m.loadCalls[len(m.loadCalls)-1])
}

func (m *Mock) PlayCalls() int { return m.playCalls }

func (m *Mock) PauseCalls() int { return m.pauseCalls }

func (m *Mock) SeekCalls() []time.Duration { return m.seekCalls }

func (m *Mock) SetDuration(d time.Duration) { m.duration = d }

func (m *Mock) SetPosition(d time.Duration) { m.position = d }

// SimulateFinished simulates the loaded track reaching its end.
func (m *Mock) SimulateFinished() {
	if m.state == Playing {
		m.state = Paused
	}
	select {
	case m.finishedCh <- m.generation:
	default:
	}
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
