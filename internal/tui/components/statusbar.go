package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/taka/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// a flash message on the right.
func RenderStatusBar(width int, hints, message string, isError bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	msgColor := t.Income
	if isError {
		msgColor = t.Expense
	}
	msgStyle := lipgloss.NewStyle().
		Foreground(msgColor).
		Background(t.Surface).
		Bold(true)

	left := " " + hints
	right := ""
	if message != "" {
		right = msgStyle.Render(message + " ")
	}

	// Pad middle
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}
	mid := lipgloss.NewStyle().Background(t.Surface).Render(spaces(padding))

	return style.Render(left + mid + right)
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
