package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean text unchanged", "Hello World", "Hello World"},
		{"unicode unchanged", "Café 日本語", "Café 日本語"},
		{"tab kept", "a\tb", "a\tb"},
		{"newline dropped", "line1\nline2", "line1line2"},
		{"nul dropped", "a\x00b", "ab"},
		{"delete dropped", "a\x7fb", "ab"},
		{"invalid byte dropped", "a\xffb", "ab"},
		{"nbsp becomes space", "a\u00a0b", "a b"},
		{"c1 control dropped", "a\u0085b", "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"truncation with ellipsis", "hello world", 8, "hello w…"},
		{"zero width", "hello", 0, ""},
		{"empty string", "", 10, ""},
		{"wide characters", "日本語テキスト", 5, "日本…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.maxWidth)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, lipgloss.Width(got), max(tt.maxWidth, 0))
		})
	}
}

func TestTruncateStyled(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("hello world")

	got := TruncateStyled(styled, 6)
	assert.Equal(t, 6, lipgloss.Width(got))
	assert.Equal(t, "hello…", Plain(got))
	assert.Empty(t, TruncateStyled(styled, 0))
}

func TestPadAndTruncateAndPad(t *testing.T) {
	assert.Equal(t, "ab   ", Pad("ab", 5))
	assert.Equal(t, "abc", Pad("abc", 2), "never truncates")
	assert.Equal(t, "hell…", TruncateAndPad("hello world", 5))
	assert.Equal(t, "hi   ", TruncateAndPad("hi", 5))
}

func TestCenter(t *testing.T) {
	assert.Equal(t, "  ab  ", Center("ab", 6))
	assert.Equal(t, " ab  ", Center("ab", 5))
	assert.Equal(t, "abcdef", Center("abcdef", 3))
}

func TestRow(t *testing.T) {
	assert.Equal(t, "left   right", Row("left", "right", 12))
	assert.Equal(t, "left right", Row("left", "right", 4), "keeps one space")
}

func TestEmptyLine(t *testing.T) {
	assert.Equal(t, "   ", EmptyLine(3))
	assert.Empty(t, EmptyLine(-1))
}
