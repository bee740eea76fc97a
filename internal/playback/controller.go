// internal/playback/controller.go
package playback

import (
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/llehouerou/waves-lite/internal/player"
	"github.com/llehouerou/waves-lite/internal/playlist"
)

// ErrIndexOutOfRange is returned when a track index is outside the playlist.
var ErrIndexOutOfRange = errors.New("track index out of range")

// Verify Controller implements Service at compile time.
var _ Service = (*Controller)(nil)

// Controller owns the play cursor over a fixed playlist and the shuffle and
// repeat modes. It decides which track plays next and forwards the actual
// audio work to a player.Interface.
//
// All methods are safe to call from the UI loop and from the media
// goroutine that reports finished tracks.
type Controller struct {
	mu sync.Mutex

	playlist *playlist.Playlist
	player   player.Interface
	rng      *rand.Rand
	state    PlayerState
	loaded   bool // the player holds the track at state.CurrentIndex

	subs   []*Subscription
	subsMu sync.RWMutex

	closed bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithRand sets the random source used for shuffle.
func WithRand(r *rand.Rand) Option {
	return func(c *Controller) { c.rng = r }
}

// WithShuffle sets the initial shuffle flag.
func WithShuffle(enabled bool) Option {
	return func(c *Controller) { c.state.Shuffle = enabled }
}

// WithRepeat sets the initial repeat mode.
func WithRepeat(mode RepeatMode) Option {
	return func(c *Controller) { c.state.Repeat = mode }
}

// WithVolume sets the initial volume level.
func WithVolume(level float64) Option {
	return func(c *Controller) { c.state.Volume = player.ClampLevel(level) }
}

// New creates a controller positioned on the first track, paused, with
// shuffle off and repeat None unless options say otherwise.
func New(pl *playlist.Playlist, p player.Interface, opts ...Option) (*Controller, error) {
	if pl == nil || pl.Len() == 0 {
		return nil, playlist.ErrEmptyPlaylist
	}

	c := &Controller{
		playlist: pl,
		player:   p,
		state: PlayerState{
			CurrentIndex: 0,
			Repeat:       RepeatNone,
			Volume:       1,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec // shuffle is not security sensitive
	}

	p.SetVolume(c.state.Volume)
	return c, nil
}

// LoadTrack moves the cursor to index and hands the track to the player,
// paused at the start. It does not start playback.
func (c *Controller) LoadTrack(index int) (playlist.Track, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.playlist.Contains(index) {
		return playlist.Track{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	c.loadLocked(index)
	track, _ := c.playlist.Track(index)
	return track, nil
}

// SelectTrack loads the track at index and plays it.
func (c *Controller) SelectTrack(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.playlist.Contains(index) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	c.loadLocked(index)
	c.playLocked()
	return nil
}

// Play starts playback of the current track.
func (c *Controller) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.playLocked()
}

// Pause stops the audio, keeping the position.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pauseLocked()
}

// TogglePlay switches between Play and Pause.
func (c *Controller) TogglePlay() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Playing {
		c.pauseLocked()
		return
	}
	c.playLocked()
}

// Previous moves to the previous track, wrapping to the last one, and plays.
func (c *Controller) Previous() {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := c.playlist.Len()
	c.loadLocked((c.state.CurrentIndex - 1 + n) % n)
	c.playLocked()
}

// Next moves to the next track (random when shuffling) and plays.
func (c *Controller) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextLocked()
}

// OnTrackFinished advances according to the repeat and shuffle modes:
//
//	RepeatOne            replay the current track from the start
//	RepeatAll            Next (shuffle aware)
//	RepeatNone + shuffle Next when there is more than one track
//	RepeatNone           following track, or pause on the first frame of
//	                     the last track when the playlist is exhausted
func (c *Controller) OnTrackFinished() {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := c.playlist.Len()
	switch {
	case c.state.Repeat == RepeatOne:
		c.player.SeekTo(0)
		c.playLocked()
	case c.state.Repeat == RepeatAll:
		c.nextLocked()
	case c.state.Shuffle && n > 1:
		c.nextLocked()
	case c.state.CurrentIndex < n-1:
		c.loadLocked(c.state.CurrentIndex + 1)
		c.playLocked()
	default:
		c.pauseLocked()
		c.player.SeekTo(0)
		c.emitPosition(0, c.player.Duration())
	}
}

// Seek jumps to fraction × duration. fraction is clamped to [0,1].
// No-op when the duration is unknown or fraction is not a number.
func (c *Controller) Seek(fraction float64) {
	if math.IsNaN(fraction) {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	dur := c.player.Duration()
	if dur <= 0 {
		return
	}
	fraction = min(max(fraction, 0), 1)
	pos := time.Duration(fraction * float64(dur))
	c.player.SeekTo(pos)
	c.emitPosition(pos, dur)
}

// SeekTo jumps to an absolute position, clamped to the track.
// No-op when the duration is unknown.
func (c *Controller) SeekTo(position time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	dur := c.player.Duration()
	if dur <= 0 {
		return
	}
	position = min(max(position, 0), dur)
	c.player.SeekTo(position)
	c.emitPosition(position, dur)
}

// SetVolume sets the output level, clamped to [0,1].
func (c *Controller) SetVolume(level float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	level = player.ClampLevel(level)
	if level == c.state.Volume {
		return
	}
	c.state.Volume = level
	c.player.SetVolume(level)
	c.emit(func(s *Subscription) { s.sendVolume(VolumeChange{Volume: level}) })
}

// ToggleShuffle flips shuffle and returns the new value.
func (c *Controller) ToggleShuffle() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Shuffle = !c.state.Shuffle
	c.emitModeLocked()
	return c.state.Shuffle
}

// SetShuffle sets the shuffle flag.
func (c *Controller) SetShuffle(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Shuffle == enabled {
		return
	}
	c.state.Shuffle = enabled
	c.emitModeLocked()
}

// ToggleRepeat cycles None → All → One → None and returns the new mode.
func (c *Controller) ToggleRepeat() RepeatMode {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Repeat = c.state.Repeat.Next()
	c.emitModeLocked()
	return c.state.Repeat
}

// SetRepeat sets the repeat mode.
func (c *Controller) SetRepeat(mode RepeatMode) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Repeat == mode {
		return
	}
	c.state.Repeat = mode
	c.emitModeLocked()
}

// nextLocked picks the following index and plays it.
func (c *Controller) nextLocked() {
	n := c.playlist.Len()
	next := (c.state.CurrentIndex + 1) % n
	if c.state.Shuffle {
		next = c.randomIndexLocked()
	}
	c.loadLocked(next)
	c.playLocked()
}

// randomIndexLocked returns a uniformly random index other than the current
// one. Only the current track is excluded, so short repeats across calls
// are possible.
func (c *Controller) randomIndexLocked() int {
	n := c.playlist.Len()
	if n <= 1 {
		return 0
	}
	r := c.rng.IntN(n - 1)
	if r >= c.state.CurrentIndex {
		r++
	}
	return r
}

// loadLocked moves the cursor and loads the track into the player.
// A load failure leaves the cursor moved and is reported as an error event.
func (c *Controller) loadLocked(index int) {
	prevIndex := c.state.CurrentIndex
	var prev *playlist.Track
	if c.loaded {
		if t, ok := c.playlist.Track(prevIndex); ok {
			prev = &t
		}
	}

	track, _ := c.playlist.Track(index)
	c.state.CurrentIndex = index
	c.setPlayingLocked(false)

	if _, err := c.player.Load(track.AudioSource); err != nil {
		c.loaded = false
		c.reportLocked("load", track.AudioSource, err)
	} else {
		c.loaded = true
	}

	c.emit(func(s *Subscription) {
		s.sendTrack(TrackChange{
			Previous:      prev,
			Current:       track,
			PreviousIndex: prevIndex,
			Index:         index,
		})
	})
}

// playLocked marks the state playing and starts the player. A start failure
// is swallowed: the state stays playing until the next user action.
func (c *Controller) playLocked() {
	if !c.loaded {
		c.loadLocked(c.state.CurrentIndex)
	}
	c.setPlayingLocked(true)
	if err := c.player.Play(); err != nil {
		track, _ := c.playlist.Track(c.state.CurrentIndex)
		c.reportLocked("play", track.AudioSource, err)
	}
}

func (c *Controller) pauseLocked() {
	c.setPlayingLocked(false)
	c.player.Pause()
}

func (c *Controller) setPlayingLocked(playing bool) {
	if c.state.Playing == playing {
		return
	}
	c.state.Playing = playing
	c.emit(func(s *Subscription) { s.sendState(StateChange{Playing: playing}) })
}

func (c *Controller) reportLocked(op, path string, err error) {
	log.Printf("playback: %s %s: %v", op, path, err)
	c.emit(func(s *Subscription) {
		s.sendError(ErrorEvent{Operation: op, Path: path, Err: err})
	})
}

func (c *Controller) emitModeLocked() {
	e := ModeChange{Repeat: c.state.Repeat, Shuffle: c.state.Shuffle}
	c.emit(func(s *Subscription) { s.sendMode(e) })
}

func (c *Controller) emitPosition(pos, dur time.Duration) {
	c.emit(func(s *Subscription) { s.sendPosition(pos, dur) })
}

func (c *Controller) emit(send func(*Subscription)) {
	c.subsMu.RLock()
	defer c.subsMu.RUnlock()
	for _, sub := range c.subs {
		send(sub)
	}
}
