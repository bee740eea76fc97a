// Package helpbindings provides a scrollable popup listing the key bindings.
package helpbindings

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/waves-lite/internal/keymap"
	"github.com/llehouerou/waves-lite/internal/ui/action"
	"github.com/llehouerou/waves-lite/internal/ui/styles"
)

const source = "helpbindings"

// chrome is the border, title and footer rows around the bindings.
const chrome = 6

// sections defines the display order of binding contexts.
var sections = []struct {
	context string
	label   string
}{
	{"global", "Global"},
	{"playback", "Playback"},
	{"queue", "Queue Panel"},
}

// Model holds the state for the help popup.
type Model struct {
	viewport viewport.Model
	content  string
}

// New creates a help popup over every binding context.
func New() Model {
	content := buildContent()
	vp := viewport.New(lipgloss.Width(content), lipgloss.Height(content))
	vp.SetContent(content)
	return Model{viewport: vp, content: content}
}

// SetSize fits the popup inside a width×height screen.
func (m *Model) SetSize(width, height int) {
	m.viewport.Width = max(min(lipgloss.Width(m.content), width-4), 1)
	m.viewport.Height = max(min(lipgloss.Height(m.content), height-chrome), 1)
}

// Update scrolls the list. ?, esc and q close the popup.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "?", "esc", "q":
			return m, action.Cmd(source, Close{})
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the bordered popup.
func (m Model) View() string {
	t := styles.T()
	footer := "?/esc close"
	if m.viewport.TotalLineCount() > m.viewport.Height {
		footer = "j/k scroll · " + footer
	}

	body := t.S().Title.Render("Help") + "\n\n" +
		m.viewport.View() + "\n\n" +
		t.S().Subtle.Render(footer)
	return styles.PanelStyle(true).Padding(0, 1).Render(body)
}

func buildContent() string {
	t := styles.T()

	var bindings []keymap.Binding
	for _, s := range sections {
		bindings = append(bindings, keymap.ByContext(s.context)...)
	}
	keyWidth := 0
	for _, b := range bindings {
		keyWidth = max(keyWidth, lipgloss.Width(keyList(b)))
	}

	var sb strings.Builder
	for i, s := range sections {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(t.S().Active.Render(s.label))
		sb.WriteString("\n")
		sb.WriteString(t.S().Subtle.Render(strings.Repeat("─", keyWidth+15)))
		sb.WriteString("\n")
		for _, b := range keymap.ByContext(s.context) {
			keys := keyList(b)
			sb.WriteString(t.S().Playing.Render(keys + strings.Repeat(" ", keyWidth-lipgloss.Width(keys))))
			sb.WriteString("  ")
			sb.WriteString(t.S().Base.Render(b.Description))
			sb.WriteString("\n")
		}
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func keyList(b keymap.Binding) string {
	keys := make([]string, 0, len(b.Keys))
	for _, k := range b.Keys {
		if k == " " {
			continue
		}
		keys = append(keys, k)
	}
	return strings.Join(keys, ", ")
}
