// Package analyzer computes frequency magnitudes from the samples sent to the
// speaker, for the visualizer. Byte scaling follows the browser analyser node:
// magnitudes in decibels between MinDecibels and MaxDecibels map onto 0-255.
package analyzer

import (
	"math"
	"sync"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
)

const (
	DefaultFFTSize   = 2048
	DefaultSmoothing = 0.8
	MinDecibels      = -100.0
	MaxDecibels      = -30.0
)

// Analyzer keeps the most recent FFTSize mono samples in a ring buffer.
// Write is called from the audio goroutine, Snapshot from the UI.
type Analyzer struct {
	mu        sync.Mutex
	ring      []float64
	pos       int
	filled    int
	smoothing float64
	smoothed  []float64 // linear magnitudes per FFT bin
	hann      []float64
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithSmoothing sets the averaging constant between snapshots (0 disables).
func WithSmoothing(tau float64) Option {
	return func(a *Analyzer) {
		a.smoothing = min(max(tau, 0), 0.99)
	}
}

// New creates an analyzer over windows of fftSize samples.
// fftSize is rounded up to a power of two; values below 32 use DefaultFFTSize.
func New(fftSize int, opts ...Option) *Analyzer {
	if fftSize < 32 {
		fftSize = DefaultFFTSize
	}
	size := 1
	for size < fftSize {
		size <<= 1
	}

	a := &Analyzer{
		ring:      make([]float64, size),
		smoothing: DefaultSmoothing,
		smoothed:  make([]float64, size/2+1),
		hann:      window.Hann(size),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// FFTSize returns the analysis window length.
func (a *Analyzer) FFTSize() int {
	return len(a.ring)
}

// Write appends stereo samples, mixed down to mono.
func (a *Analyzer) Write(samples [][2]float64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, s := range samples {
		a.ring[a.pos] = (s[0] + s[1]) / 2
		a.pos = (a.pos + 1) % len(a.ring)
	}
	a.filled = min(a.filled+len(samples), len(a.ring))
}

// Reset discards buffered samples and smoothing history.
func (a *Analyzer) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	clear(a.ring)
	clear(a.smoothed)
	a.pos = 0
	a.filled = 0
}

// Snapshot returns bins magnitudes in 0-255, grouped logarithmically from
// the lowest to the highest frequency. All zeros when nothing was written.
func (a *Analyzer) Snapshot(bins int) []uint8 {
	out := make([]uint8, max(bins, 0))
	if bins <= 0 {
		return out
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.filled == 0 {
		return out
	}

	n := len(a.ring)
	frame := make([]float64, n)
	for i := range n {
		frame[i] = a.ring[(a.pos+i)%n] * a.hann[i]
	}

	coeffs := fft.FFTReal(frame)
	half := n / 2
	scale := 1 / float64(half)
	for k := 0; k <= half; k++ {
		c := coeffs[k]
		mag := math.Hypot(real(c), imag(c)) * scale
		a.smoothed[k] = a.smoothing*a.smoothed[k] + (1-a.smoothing)*mag
	}

	edges := groupEdges(bins, half)
	for i := range bins {
		lo, hi := edges[i], edges[i+1]
		if hi <= lo {
			hi = lo + 1
		}
		var peak float64
		for k := lo; k < hi && k <= half; k++ {
			peak = max(peak, a.smoothed[k])
		}
		out[i] = toByte(peak)
	}
	return out
}

// groupEdges splits FFT bins [1, half] into groups of exponentially growing width.
func groupEdges(bins, half int) []int {
	edges := make([]int, bins+1)
	edges[0] = 1
	for i := 1; i <= bins; i++ {
		e := int(math.Round(math.Pow(float64(half), float64(i)/float64(bins))))
		e = max(e, edges[i-1]+1)
		edges[i] = min(e, half)
	}
	return edges
}

// toByte maps a linear magnitude onto 0-255 through the decibel range.
func toByte(mag float64) uint8 {
	if mag <= 0 {
		return 0
	}
	db := 20 * math.Log10(mag)
	v := (db - MinDecibels) / (MaxDecibels - MinDecibels) * 255
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}
