package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute_NoVisualizer(t *testing.T) {
	s := Compute(80, 30, Opts{PlayerBarHeight: 3})

	assert.Equal(t, Rect{Width: 80, Height: 26}, s.Queue)
	assert.Equal(t, Rect{Y: 26, Width: 80, Height: 1}, s.Status)
	assert.Equal(t, Rect{Y: 27, Width: 80, Height: 3}, s.PlayerBar)
	assert.Equal(t, Rect{}, s.Visualizer)
}

func TestCompute_WideSideBySide(t *testing.T) {
	s := Compute(121, 40, Opts{PlayerBarHeight: 6, VisualizerVisible: true})

	assert.Equal(t, Rect{Width: 60, Height: 33}, s.Queue)
	assert.Equal(t, Rect{X: 60, Width: 61, Height: 33}, s.Visualizer)
	assert.Equal(t, 34, s.PlayerBar.Y)
}

func TestCompute_NarrowStacked(t *testing.T) {
	s := Compute(80, 34, Opts{PlayerBarHeight: 3, VisualizerVisible: true})

	assert.Equal(t, Rect{Width: 80, Height: 20}, s.Queue)
	assert.Equal(t, Rect{Y: 20, Width: 80, Height: 10}, s.Visualizer)
	assert.Equal(t, 30, s.Status.Y)
}

func TestCompute_TinyTerminal(t *testing.T) {
	s := Compute(20, 2, Opts{PlayerBarHeight: 3})
	assert.Equal(t, 0, s.Queue.Height)
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 2, Y: 3, Width: 4, Height: 2}
	assert.True(t, r.Contains(2, 3))
	assert.True(t, r.Contains(5, 4))
	assert.False(t, r.Contains(6, 4))
	assert.False(t, r.Contains(2, 5))
	assert.False(t, r.Contains(1, 3))
}

func TestIsWide(t *testing.T) {
	assert.False(t, IsWide(99))
	assert.True(t, IsWide(100))
}
