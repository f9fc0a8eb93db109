package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/taka/internal/tui/theme"
)

// ColorForPct returns green/orange/red for a 0-100 budget percentage.
func ColorForPct(pct float64, over bool) lipgloss.Color {
	t := theme.Active
	switch {
	case over:
		return t.Expense
	case pct >= 80:
		return t.Warning
	default:
		return t.Income
	}
}

// BudgetBar renders a labeled budget progress bar. pct is 0-100 and
// already clamped; over marks a spent amount at or past the limit.
func BudgetBar(label string, pct float64, over bool, labelW, barWidth int) string {
	t := theme.Active

	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	color := ColorForPct(pct, over)

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(padTo(label, labelW)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(pct/100) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", pct))
}

func padTo(s string, w int) string {
	for lipgloss.Width(s) < w {
		s += " "
	}
	return s
}
