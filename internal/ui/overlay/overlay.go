// Package overlay draws a box on top of an already rendered screen.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Place draws box over base with its top-left corner at column x, row y.
// Base lines are padded to width first; box cells past width are cut.
// Styling on both sides is preserved.
func Place(base, box string, x, y, width int) string {
	baseLines := strings.Split(base, "\n")
	x = max(x, 0)

	for i, line := range strings.Split(box, "\n") {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		boxWidth := min(ansi.StringWidth(line), width-x)
		if boxWidth <= 0 {
			continue
		}

		under := baseLines[row]
		if w := ansi.StringWidth(under); w < width {
			under += strings.Repeat(" ", width-w)
		}

		result := ansi.Cut(under, 0, x) + ansi.Cut(line, 0, boxWidth)
		if end := x + boxWidth; end < width {
			result += ansi.Cut(under, end, width)
		}
		baseLines[row] = result
	}
	return strings.Join(baseLines, "\n")
}

// Center draws box in the middle of a width×height base.
func Center(base, box string, width, height int) string {
	x := (width - lipgloss.Width(box)) / 2
	y := (height - lipgloss.Height(box)) / 2
	return Place(base, box, x, max(y, 0), width)
}
