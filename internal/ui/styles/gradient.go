package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// neutral stands in for colors that are not "#rrggbb" (ANSI indexes).
var neutral = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// Gradient blends between two theme colors in HCL space, which keeps the
// perceived brightness even along the way.
type Gradient struct {
	from, to colorful.Color
}

// NewGradient returns the gradient from one color to another.
func NewGradient(from, to lipgloss.Color) Gradient {
	return Gradient{from: toColorful(from), to: toColorful(to)}
}

// At returns the color at position t in [0,1].
func (g Gradient) At(t float64) lipgloss.Color {
	t = min(max(t, 0), 1)
	return lipgloss.Color(g.from.BlendHcl(g.to, t).Clamped().Hex())
}

// Steps returns n colors evenly spaced from the start to the end. A single
// step is the start color.
func (g Gradient) Steps(n int) []lipgloss.Color {
	if n <= 0 {
		return nil
	}
	out := make([]lipgloss.Color, n)
	if n == 1 {
		out[0] = g.At(0)
		return out
	}
	for i := range n {
		out[i] = g.At(float64(i) / float64(n-1))
	}
	return out
}

// Paint colors each grapheme of text with its own step of the gradient.
func (g Gradient) Paint(text string) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	var b strings.Builder
	for i, c := range g.Steps(len(clusters)) {
		b.WriteString(lipgloss.NewStyle().Foreground(c).Render(clusters[i]))
	}
	return b.String()
}

// ApplyGradient renders text with a horizontal color gradient.
func ApplyGradient(text string, from, to lipgloss.Color) string {
	return NewGradient(from, to).Paint(text)
}

// Ramp returns size colors blended from one end to the other.
func Ramp(size int, from, to lipgloss.Color) []lipgloss.Color {
	return NewGradient(from, to).Steps(size)
}

func toColorful(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return neutral
	}
	return col
}
