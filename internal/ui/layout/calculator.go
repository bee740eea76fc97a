// Package layout provides pure functions for UI dimension calculations.
package layout

// WideThreshold is the terminal width from which the queue and the
// visualizer are placed side by side instead of stacked.
const WideThreshold = 100

// StatusHeight is the single line reserved for errors and hints.
const StatusHeight = 1

// Rect is a screen area in cells, origin at the top-left corner.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) falls inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Opts describes what the screen has to hold.
type Opts struct {
	PlayerBarHeight   int
	VisualizerVisible bool
}

// Screen holds the areas of each component.
type Screen struct {
	Queue      Rect
	Visualizer Rect // zero when hidden
	Status     Rect
	PlayerBar  Rect
}

// IsWide reports whether the terminal is wide enough for side by side panels.
func IsWide(width int) bool {
	return width >= WideThreshold
}

// Compute splits a width×height terminal. The player bar and the status
// line are pinned to the bottom; the remaining content area goes to the
// queue and, when visible, the visualizer: right half when wide, bottom
// third otherwise.
func Compute(width, height int, opts Opts) Screen {
	content := max(height-opts.PlayerBarHeight-StatusHeight, 0)

	s := Screen{
		Queue:     Rect{Width: width, Height: content},
		Status:    Rect{Y: content, Width: width, Height: StatusHeight},
		PlayerBar: Rect{Y: content + StatusHeight, Width: width, Height: opts.PlayerBarHeight},
	}
	if !opts.VisualizerVisible {
		return s
	}

	if IsWide(width) {
		s.Queue.Width = width / 2
		s.Visualizer = Rect{X: s.Queue.Width, Width: width - s.Queue.Width, Height: content}
		return s
	}

	visHeight := content / 3
	s.Queue.Height = content - visHeight
	s.Visualizer = Rect{Y: s.Queue.Height, Width: width, Height: visHeight}
	return s
}
