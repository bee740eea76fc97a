package player

import (
	"errors"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// ErrNothingLoaded is returned by Play when no source has been loaded.
var ErrNothingLoaded = errors.New("no track loaded")

// Play starts or resumes the loaded source.
func (p *Player) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.streamer == nil {
		return ErrNothingLoaded
	}
	if p.state == Playing {
		return nil
	}

	if !p.queued {
		sc := newStreamChain(p.streamer, p.format.SampleRate, speakerSampleRate, p.sink)
		p.ctrl, p.volume = sc.ctrl, sc.volume
		p.applyVolumeLocked()

		gen := p.generation
		// The callback runs on the speaker goroutine with the speaker lock
		// held, so state is updated from a separate goroutine.
		speaker.Play(beep.Seq(sc.out, beep.Callback(func() {
			go p.markEnded(gen)
		})))
		p.queued = true
	}

	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
	p.state = Playing
	return nil
}

// markEnded records that the stream of the given load generation ran out.
func (p *Player) markEnded(gen int) {
	p.mu.Lock()
	if gen != p.generation || p.state == Stopped {
		p.mu.Unlock()
		return
	}
	p.queued = false
	p.state = Paused
	p.mu.Unlock()

	select {
	case p.finishedCh <- gen:
	default:
	}
}

// Pause pauses playback, keeping the position.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != Playing || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.state = Paused
}

// Stop stops playback and releases resources.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == Stopped {
		return
	}

	if p.queued {
		speaker.Clear()
	}

	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}
	if p.file != nil {
		p.file.Close()
		p.file = nil
	}

	p.ctrl = nil
	p.volume = nil
	p.trackInfo = nil
	p.queued = false
	p.generation++
	p.state = Stopped
}

// SeekTo moves the playback position to an absolute offset, clamped to the track.
func (p *Player) SeekTo(position time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.streamer == nil {
		return
	}

	n := p.format.SampleRate.N(position)
	n = min(max(n, 0), p.streamer.Len())

	speaker.Lock()
	_ = p.streamer.Seek(n)
	speaker.Unlock()
}

// Position returns the current playback position.
func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := p.streamer.Position()
	speaker.Unlock()
	return p.format.SampleRate.D(pos)
}

// Duration returns the length of the loaded track, 0 if unknown.
func (p *Player) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.trackInfo == nil {
		return 0
	}
	return p.trackInfo.Duration
}
