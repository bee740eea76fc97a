package playerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// horizontalPadding is the padding between the border and the content.
const horizontalPadding = 1

// Target identifies a clickable element of the control line.
type Target int

const (
	TargetNone Target = iota
	TargetPrevious
	TargetPlayPause
	TargetNext
	TargetProgress
	TargetShuffle
	TargetRepeat
	TargetVolume
)

// Region is a horizontal span of cells, relative to the bar's left edge.
type Region struct {
	X     int
	Width int
}

// Contains reports whether column x falls inside the region.
func (r Region) Contains(x int) bool {
	return r.Width > 0 && x >= r.X && x < r.X+r.Width
}

// Fraction maps column x to [0,1]: the first cell is 0 and the last is 1.
// Columns outside the region are clamped.
func (r Region) Fraction(x int) float64 {
	if r.Width <= 1 {
		return 0
	}
	f := float64(x-r.X) / float64(r.Width-1)
	return min(max(f, 0), 1)
}

// Layout records where the clickable elements were drawn.
type Layout struct {
	Row     int // control line row, relative to the bar's top border
	Regions map[Target]Region
}

// ComputeLayout returns the layout Render produces for s at width.
func ComputeLayout(s State, width int) Layout {
	row := 1
	if s.DisplayMode == ModeExpanded {
		row = Height(ModeExpanded) - 2
	}

	l := Layout{Row: row, Regions: make(map[Target]Region)}
	x := 1 + horizontalPadding
	for _, p := range buildControlLine(s, innerWidth(width)) {
		w := lipgloss.Width(p.plain)
		if p.target != TargetNone {
			l.Regions[p.target] = Region{X: x, Width: w}
		}
		x += w
	}
	return l
}

// HitTest resolves a click at (x, y), both relative to the bar's top-left
// corner. For the progress bar and the volume slider it also returns the
// fraction along the element.
func (l Layout) HitTest(x, y int) (Target, float64) {
	if y != l.Row {
		return TargetNone, 0
	}
	for target, r := range l.Regions {
		if r.Contains(x) {
			return target, r.Fraction(x)
		}
	}
	return TargetNone, 0
}

// piece is one span of the control line.
type piece struct {
	target Target
	plain  string // unstyled text, used for measuring
	styled string
}

func text(s string) piece { return piece{plain: s, styled: s} }

const (
	gap         = "  "
	minBarWidth = 8
	sliderWidth = 8
)

// buildControlLine lays out
//
//	|< > >|  Title · Artist  1:23 ━━━━━────── 3:58  [S] [R]  Vol ████░░░░  50%
//
// within width cells. The track info shrinks first, then disappears, so the
// progress bar keeps at least minBarWidth cells when possible.
func buildControlLine(s State, width int) []piece {
	controls := []piece{
		controlPiece(TargetPrevious, iconPrevious()),
		text(" "),
		controlPiece(TargetPlayPause, iconPlayPause(s.Playing)),
		text(" "),
		controlPiece(TargetNext, iconNext()),
		text(gap),
	}
	pos, dur := FormatDuration(s.Position), FormatDuration(s.Duration)
	tail := []piece{
		{plain: " " + dur, styled: " " + timeStyle().Render(dur)},
		text(gap),
		shufflePiece(s.Shuffle),
		text(" "),
		repeatPiece(s.Repeat),
		text(gap),
	}
	tail = append(tail, volumePieces(s.Volume)...)

	fixed := widthOf(controls) + lipgloss.Width(pos) + 1 + widthOf(tail)
	avail := max(width-fixed, 0)

	info := trackInfo(s)
	infoWidth := min(lipgloss.Width(info), avail*2/5)
	if infoWidth < 4 || avail-infoWidth-len(gap) < minBarWidth {
		infoWidth = 0
	}
	barWidth := avail
	if infoWidth > 0 {
		barWidth -= infoWidth + len(gap)
	}

	line := controls
	if infoWidth > 0 {
		truncated := truncate(info, infoWidth)
		line = append(line, piece{plain: truncated, styled: infoStyle().Render(truncated)}, text(gap))
	}
	line = append(line, piece{plain: pos, styled: timeStyle().Render(pos)}, text(" "))
	if barWidth > 0 {
		line = append(line, progressPiece(s.Position, s.Duration, barWidth))
	}
	return append(line, tail...)
}

func renderLine(pieces []piece) string {
	var b strings.Builder
	for _, p := range pieces {
		b.WriteString(p.styled)
	}
	return b.String()
}

func widthOf(pieces []piece) int {
	w := 0
	for _, p := range pieces {
		w += lipgloss.Width(p.plain)
	}
	return w
}
