package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns the rounded border style of a panel, highlighted when
// the panel has keyboard focus.
func PanelStyle(focused bool) lipgloss.Style {
	border := T().Border
	if focused {
		border = T().BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}
