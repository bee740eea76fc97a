package player

import "github.com/gopxl/beep/v2"

// tap passes samples through unchanged and copies them to a sink.
type tap struct {
	beep.Streamer
	sink SampleSink
}

func (t *tap) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = t.Streamer.Stream(samples)
	if n > 0 {
		t.sink.Write(samples[:n])
	}
	return n, ok
}
