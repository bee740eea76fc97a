package player

import (
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
)

// streamChain is the graph between a decoded source and the speaker:
// resampler (when rates differ), pause control, volume and sample tap.
type streamChain struct {
	ctrl   *beep.Ctrl
	volume *effects.Volume
	out    beep.Streamer
}

// newStreamChain wraps src for output at the speaker rate, paused.
// A beep.Resampler stays at its end once the source ran out, even after the
// source seeks back, so a drained chain is never requeued: a new one is
// built over the same source instead.
func newStreamChain(src beep.Streamer, from, to beep.SampleRate, sink SampleSink) streamChain {
	if from != to {
		src = beep.Resample(4, from, to, src)
	}
	c := streamChain{ctrl: &beep.Ctrl{Streamer: src, Paused: true}}
	c.volume = &effects.Volume{Streamer: c.ctrl, Base: 2}
	c.out = c.volume
	if sink != nil {
		c.out = &tap{Streamer: c.volume, sink: sink}
	}
	return c
}
