// Package visualizer draws frequency bins as vertical bars.
package visualizer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/waves-lite/internal/ui"
	"github.com/llehouerou/waves-lite/internal/ui/render"
	"github.com/llehouerou/waves-lite/internal/ui/styles"
)

// eighths are the partial block glyphs, from empty to full.
var eighths = []string{" ", "▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

// Model holds the latest bin magnitudes.
type Model struct {
	ui.Base
	bins    []uint8
	playing bool
}

// New creates a visualizer showing bars bins.
func New(bars int) Model {
	return Model{bins: make([]uint8, max(bars, 1))}
}

// Bars returns the number of bins the visualizer draws.
func (m Model) Bars() int {
	return len(m.bins)
}

// SetBins replaces the magnitudes. Values are 0-255; extra bins are ignored.
func (m *Model) SetBins(bins []uint8) {
	n := copy(m.bins, bins)
	clear(m.bins[n:])
}

// SetPlaying dims the bars while paused.
func (m *Model) SetPlaying(playing bool) {
	m.playing = playing
}

// View renders the bars inside a panel.
func (m Model) View() string {
	innerW, innerH := m.Inner()
	if innerW <= 0 || innerH <= 0 {
		return ""
	}

	return styles.PanelStyle(false).
		Width(innerW).
		Render(strings.Join(m.renderRows(innerW, innerH), "\n"))
}

// columns returns how many bars fit and their width, leaving one cell
// between bars when there is room.
func columns(bins, width int) (count, barWidth, gap int) {
	count = min(bins, width)
	if count == 0 {
		return 0, 0, 0
	}
	gap = 1
	if count*2-1 > width {
		gap = 0
	}
	barWidth = max((width-(count-1)*gap)/count, 1)
	return count, barWidth, gap
}

// renderRows draws height rows, top first. Each bar's height is its
// magnitude scaled to height*8 eighths.
func (m Model) renderRows(width, height int) []string {
	count, barWidth, gap := columns(len(m.bins), width)
	levels := resample(m.bins, count)
	colors := styles.Ramp(height, styles.T().SpectrumLow, styles.T().SpectrumHigh)

	rows := make([]string, height)
	for r := range height {
		fromBottom := height - 1 - r
		var b strings.Builder
		for i, v := range levels {
			if i > 0 {
				b.WriteString(strings.Repeat(" ", gap))
			}
			b.WriteString(strings.Repeat(cell(v, fromBottom, height), barWidth))
		}
		style := lipgloss.NewStyle().Foreground(colors[fromBottom])
		if !m.playing {
			style = styles.T().S().Subtle
		}
		rows[r] = style.Render(render.Pad(b.String(), width))
	}
	return rows
}

// cell returns the glyph of a bar of magnitude v on row fromBottom.
func cell(v uint8, fromBottom, height int) string {
	total := int(v) * height * 8 / 255
	fill := total - fromBottom*8
	switch {
	case fill <= 0:
		return eighths[0]
	case fill >= 8:
		return eighths[8]
	default:
		return eighths[fill]
	}
}

// resample reduces bins to n values, taking the maximum of each group.
func resample(bins []uint8, n int) []uint8 {
	if n >= len(bins) {
		return bins
	}
	out := make([]uint8, n)
	for i := range n {
		lo := i * len(bins) / n
		hi := (i + 1) * len(bins) / n
		for _, v := range bins[lo:hi] {
			out[i] = max(out[i], v)
		}
	}
	return out
}
