package ui

// Base is embedded by panel models for their size and focus.
type Base struct {
	width, height int
	focused       bool
}

func (b *Base) SetFocused(focused bool) { b.focused = focused }

func (b Base) IsFocused() bool { return b.focused }

// SetSize sets the outer size, border included.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

func (b Base) Width() int { return b.width }

func (b Base) Height() int { return b.height }

// Inner returns the size inside the border, never negative.
func (b Base) Inner() (width, height int) {
	return max(b.width-Border, 0), max(b.height-Border, 0)
}

// ListHeight returns the rows left for list content once overhead rows
// are removed.
func (b Base) ListHeight(overhead int) int {
	return max(b.height-overhead, 0)
}
