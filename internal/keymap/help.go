package keymap

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyBindings converts the bindings of context into bubbles key bindings,
// using the first key as the help label.
func KeyBindings(context string) []key.Binding {
	bindings := ByContext(context)
	result := make([]key.Binding, 0, len(bindings))
	for _, b := range bindings {
		result = append(result, key.NewBinding(
			key.WithKeys(b.Keys...),
			key.WithHelp(displayKey(b.Keys[0]), b.Description),
		))
	}
	return result
}

// ShortHelp renders the bindings of context on one line, truncated to width.
func ShortHelp(context string, width int) string {
	h := help.New()
	h.Width = width
	return h.ShortHelpView(KeyBindings(context))
}
