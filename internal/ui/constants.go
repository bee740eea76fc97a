// Package ui holds what the panel components share: sizing and focus.
package ui

const (
	// ScrollMargin is how many rows stay visible around the cursor.
	ScrollMargin = 3

	// Border is the rows (and columns) a rounded panel border takes.
	Border = 2

	// HeaderHeight is the title row plus the separator under it.
	HeaderHeight = 2

	// PanelOverhead is every row of a list panel that is not a list row.
	PanelOverhead = Border + HeaderHeight
)
