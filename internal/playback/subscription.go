package playback

import "time"

const eventBufferSize = 16

// Subscription carries one subscriber's event streams. Every channel is
// buffered; events that do not fit are dropped so playback never waits on a
// slow reader. Done closes when the controller shuts down.
type Subscription struct {
	StateChanged    <-chan StateChange
	TrackChanged    <-chan TrackChange
	ModeChanged     <-chan ModeChange
	VolumeChanged   <-chan VolumeChange
	PositionChanged <-chan PositionChange
	Error           <-chan ErrorEvent
	Done            <-chan struct{}

	state    chan StateChange
	track    chan TrackChange
	mode     chan ModeChange
	volume   chan VolumeChange
	position chan PositionChange
	errs     chan ErrorEvent
	done     chan struct{}
}

func newSubscription() *Subscription {
	s := &Subscription{
		state:    make(chan StateChange, eventBufferSize),
		track:    make(chan TrackChange, eventBufferSize),
		mode:     make(chan ModeChange, eventBufferSize),
		volume:   make(chan VolumeChange, eventBufferSize),
		position: make(chan PositionChange, eventBufferSize),
		errs:     make(chan ErrorEvent, eventBufferSize),
		done:     make(chan struct{}),
	}
	s.StateChanged, s.TrackChanged, s.ModeChanged = s.state, s.track, s.mode
	s.VolumeChanged, s.PositionChanged = s.volume, s.position
	s.Error, s.Done = s.errs, s.done
	return s
}

func (s *Subscription) close() { close(s.done) }

// offer delivers e unless ch is full.
func offer[T any](ch chan T, e T) {
	select {
	case ch <- e:
	default:
	}
}

func (s *Subscription) sendState(e StateChange)   { offer(s.state, e) }
func (s *Subscription) sendTrack(e TrackChange)   { offer(s.track, e) }
func (s *Subscription) sendMode(e ModeChange)     { offer(s.mode, e) }
func (s *Subscription) sendVolume(e VolumeChange) { offer(s.volume, e) }
func (s *Subscription) sendError(e ErrorEvent)    { offer(s.errs, e) }

func (s *Subscription) sendPosition(pos, dur time.Duration) {
	offer(s.position, PositionChange{Position: pos, Duration: dur})
}
