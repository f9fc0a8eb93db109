package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/taka/internal/model"
	"github.com/theirongolddev/taka/internal/tui/theme"
	"github.com/theirongolddev/taka/internal/vocab"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Text string // vocab key of the tab name
	Key  rune
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Text: vocab.TextDashboard, Key: 'd'},
	{Text: vocab.TextHistory, Key: 'h'},
	{Text: vocab.TextBudgets, Key: 'b'},
	{Text: vocab.TextSettings, Key: 's'},
}

func tabLabel(tab Tab, lang model.Language) string {
	return "[" + string(tab.Key) + "] " + vocab.Text(lang, tab.Text)
}

// TabVisualWidth returns the rendered width of a tab, padding included.
func TabVisualWidth(tab Tab, lang model.Language) int {
	return lipgloss.Width(tabLabel(tab, lang)) + 2
}

// RenderTabBar renders the tab bar with the given active index. Tabs are
// separated by one column.
func RenderTabBar(activeIdx int, width int, lang model.Language) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.SurfaceHover).
		Bold(true).
		Padding(0, 1)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Padding(0, 1)

	sep := lipgloss.NewStyle().Background(t.Surface).Render(" ")

	parts := make([]string, 0, len(Tabs))
	for i, tab := range Tabs {
		if i == activeIdx {
			parts = append(parts, activeStyle.Render(tabLabel(tab, lang)))
		} else {
			parts = append(parts, inactiveStyle.Render(tabLabel(tab, lang)))
		}
	}

	row := strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(t.Surface).Width(width).Render(row)
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}

// RenderPeriodBar renders the daily/monthly/yearly selector.
func RenderPeriodBar(active model.Period, lang model.Language) string {
	t := theme.Active

	on := lipgloss.NewStyle().
		Foreground(t.Surface).
		Background(t.Accent).
		Bold(true).
		Padding(0, 1)
	off := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Padding(0, 1)

	parts := make([]string, 0, len(model.Periods))
	for i, p := range model.Periods {
		label := string(rune('1'+i)) + " " + vocab.PeriodLabel(lang, p)
		if p == active {
			parts = append(parts, on.Render(label))
		} else {
			parts = append(parts, off.Render(label))
		}
	}
	return strings.Join(parts, "")
}
