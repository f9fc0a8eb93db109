// Package components provides the widgets shared by the taka tabs: cards,
// the tab and status bars, budget bars and the expense distribution chart.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/taka/internal/tui/theme"
)

// Horizontal space a card spends on its border and padding.
const (
	cardBorderW  = 2
	cardPaddingW = 2
	minCardInner = 10
)

// LayoutRow splits totalWidth into n widths summing to exactly totalWidth.
// The leftmost columns take the remainder.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	widths := make([]int, n)
	for i := range widths {
		widths[i] = totalWidth / n
		if i < totalWidth%n {
			widths[i]++
		}
	}
	return widths
}

// CardInnerWidth is the text width available inside a card of outerWidth.
func CardInnerWidth(outerWidth int) int {
	return max(outerWidth-cardBorderW-cardPaddingW, minCardInner)
}

func cardStyle(outerWidth int) lipgloss.Style {
	t := theme.Active
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Background(t.Surface).
		Width(max(outerWidth-cardBorderW, minCardInner)).
		Padding(0, 1)
}

// Metric is one headline figure on the dashboard (balance, income, expense).
type Metric struct {
	Label string
	Value string
	Color lipgloss.Color // TextPrimary when empty
}

func (m Metric) render(outerWidth int) string {
	t := theme.Active
	color := m.Color
	if color == "" {
		color = t.TextPrimary
	}
	label := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Render(m.Label)
	value := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true).Render(m.Value)
	return cardStyle(outerWidth).Render(label + "\n" + value)
}

// MetricCardRow lays metrics out as equal cards filling totalWidth.
func MetricCardRow(metrics []Metric, totalWidth int) string {
	widths := LayoutRow(totalWidth, len(metrics))
	cards := make([]string, len(metrics))
	for i, m := range metrics {
		cards[i] = m.render(widths[i])
	}
	return CardRow(cards)
}

// ContentCard wraps body in a card, with title on its first line if set.
func ContentCard(title, body string, outerWidth int) string {
	t := theme.Active
	var b strings.Builder
	if title != "" {
		b.WriteString(lipgloss.NewStyle().
			Foreground(t.TextMuted).
			Background(t.Surface).
			Bold(true).
			Render(title))
		b.WriteString("\n")
	}
	b.WriteString(body)
	return cardStyle(outerWidth).Render(b.String())
}

// CardRow joins rendered cards side by side, top-aligned.
func CardRow(cards []string) string {
	if len(cards) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}
