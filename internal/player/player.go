package player

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

// TrackInfo describes the loaded audio stream.
type TrackInfo struct {
	Path       string
	Format     string // "MP3", "FLAC", "VORBIS", "WAV"
	SampleRate int
	BitDepth   int
	Size       int64 // file size in bytes
	Duration   time.Duration
}

// SampleSink receives a copy of every block of samples sent to the speaker.
type SampleSink interface {
	Write(samples [][2]float64)
}

// Player plays one audio file at a time through the system speaker.
type Player struct {
	mu sync.Mutex

	state       State
	file        *os.File
	streamer    beep.StreamSeekCloser
	format      beep.Format
	ctrl        *beep.Ctrl      // nil until the first Play
	volume      *effects.Volume // nil until the first Play
	trackInfo   *TrackInfo
	queued      bool // a stream chain is registered with the speaker
	generation  int  // bumped on every Load, stale end callbacks are ignored
	volumeLevel float64
	sink        SampleSink
	finishedCh  chan int
}

var (
	speakerMu          sync.Mutex
	speakerInitialized bool
	speakerSampleRate  beep.SampleRate
)

// Option configures a Player.
type Option func(*Player)

// WithSampleSink routes a copy of the output samples to sink (for visualization).
func WithSampleSink(sink SampleSink) Option {
	return func(p *Player) { p.sink = sink }
}

// New creates a stopped player at full volume.
func New(opts ...Option) *Player {
	p := &Player{
		state:       Stopped,
		volumeLevel: 1,
		finishedCh:  make(chan int, 1),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Load opens the given audio file and leaves it paused at position 0.
func (p *Player) Load(path string) (*TrackInfo, error) {
	p.Stop()

	ext := extOfPath(path)
	if !IsMusicFile(path) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	streamer, format, err := decode(f, ext)
	if err != nil {
		f.Close()
		return nil, err
	}

	if err := initSpeaker(format.SampleRate); err != nil {
		streamer.Close()
		f.Close()
		return nil, err
	}

	info := &TrackInfo{
		Path:       path,
		Format:     formatName(ext),
		SampleRate: int(format.SampleRate),
		BitDepth:   format.Precision * 8,
		Duration:   format.SampleRate.D(streamer.Len()),
	}
	if st, statErr := f.Stat(); statErr == nil {
		info.Size = st.Size()
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// Drain any stale finish signal from the previous track
	select {
	case <-p.finishedCh:
	default:
	}

	p.file = f
	p.streamer = streamer
	p.format = format
	p.trackInfo = info
	p.generation++
	p.queued = false
	p.state = Paused

	return info, nil
}

func initSpeaker(rate beep.SampleRate) error {
	speakerMu.Lock()
	defer speakerMu.Unlock()
	if speakerInitialized {
		return nil
	}
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return err
	}
	speakerSampleRate = rate
	speakerInitialized = true
	return nil
}

func extOfPath(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// TrackInfo returns information about the loaded stream, or nil.
func (p *Player) TrackInfo() *TrackInfo {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.trackInfo
}

// State returns the current media state.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Finished receives the load generation of a source that played to its end.
func (p *Player) Finished() <-chan int {
	return p.finishedCh
}

// Generation returns the current load generation.
func (p *Player) Generation() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.generation
}

// Close stops playback and releases the loaded file.
func (p *Player) Close() error {
	p.Stop()
	return nil
}
