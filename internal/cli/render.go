package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Theme colors
var (
	ColorBorder    = lipgloss.Color("#CBD5E1")
	ColorTextDim   = lipgloss.Color("#94A3B8")
	ColorTextMuted = lipgloss.Color("#64748B")
	ColorText      = lipgloss.AdaptiveColor{Light: "#0F172A", Dark: "#F8FAFC"}
	ColorAccent    = lipgloss.Color("#059669")
	ColorGreen     = lipgloss.Color("#10B981")
	ColorOrange    = lipgloss.Color("#F59E0B")
	ColorRed       = lipgloss.Color("#F43F5E")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	incomeStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	expenseStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	warnStyle = lipgloss.NewStyle().
			Foreground(ColorOrange)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// Table is a rounded-border table for command output. Cells may carry
// their own ANSI styling; widths are measured by display width.
type Table struct {
	Title      string
	Headers    []string
	Rows       [][]string
	RightAlign []int // columns holding amounts
}

func (t Table) rightAligned(col int) bool {
	for _, c := range t.RightAlign {
		if c == col {
			return true
		}
	}
	return false
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders t followed by a newline, or "" when t has nothing
// to show.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Headers(t.Headers...).
		Rows(t.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			st := valueStyle
			if row == table.HeaderRow {
				st = headerStyle
			}
			st = st.Padding(0, 1)
			if t.rightAligned(col) {
				st = st.Align(lipgloss.Right)
			}
			return st
		})

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}
	b.WriteString(tbl.String())
	b.WriteString("\n")
	return b.String()
}

// RenderProgressBar renders a budget bar for a 0-100 percentage. Bars at
// or over the limit are drawn in red.
func RenderProgressBar(percent float64, over bool, width int) string {
	if width <= 0 {
		return ""
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(percent / 100 * float64(width))
	bar := strings.Repeat("█", filled)
	rest := strings.Repeat("░", width-filled)

	style := incomeStyle
	switch {
	case over:
		style = expenseStyle
	case percent >= 80:
		style = warnStyle
	}
	return fmt.Sprintf("%s%s %5.1f%%", style.Render(bar), dimStyle.Render(rest), percent)
}

// RenderHorizontalBar renders one bar of a breakdown chart scaled to
// fraction (0-1) of maxWidth.
func RenderHorizontalBar(fraction float64, maxWidth int, color lipgloss.TerminalColor) string {
	barLen := int(fraction*float64(maxWidth) + 0.5)
	if barLen < 0 {
		barLen = 0
	}
	if barLen > maxWidth {
		barLen = maxWidth
	}
	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", barLen))
}

// RenderIncome colors text as income.
func RenderIncome(s string) string { return incomeStyle.Render(s) }

// RenderExpense colors text as expense.
func RenderExpense(s string) string { return expenseStyle.Render(s) }

// RenderMuted dims text.
func RenderMuted(s string) string { return mutedStyle.Render(s) }
