package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/taka/internal/model"
	"github.com/theirongolddev/taka/internal/tui/theme"
)

// DistributionBar renders the expense breakdown as one stacked bar of
// width cells. Cell boundaries come from each slice's cumulative end
// fraction, so the segments tile the bar with no gap or overlap and the
// last one always reaches the right edge.
func DistributionBar(slices []model.Slice, width int) string {
	if len(slices) == 0 || width <= 0 {
		return ""
	}
	t := theme.Active

	var b strings.Builder
	start := 0
	for i, s := range slices {
		end := int(math.Round(s.EndFraction * float64(width)))
		if i == len(slices)-1 {
			end = width
		}
		if end <= start {
			continue
		}
		style := lipgloss.NewStyle().
			Foreground(theme.SliceColor(s.ColorIndex)).
			Background(t.Surface)
		b.WriteString(style.Render(strings.Repeat("█", end-start)))
		start = end
	}
	return b.String()
}

// SegmentWidths returns the cell count each slice gets in a bar of width.
func SegmentWidths(slices []model.Slice, width int) []int {
	out := make([]int, len(slices))
	start := 0
	for i, s := range slices {
		end := int(math.Round(s.EndFraction * float64(width)))
		if i == len(slices)-1 {
			end = width
		}
		if end > start {
			out[i] = end - start
			start = end
		}
	}
	return out
}

// LegendRow renders one legend line: swatch, label, value and share.
func LegendRow(s model.Slice, value, share string, labelW, valueW int) string {
	t := theme.Active

	swatch := lipgloss.NewStyle().Foreground(theme.SliceColor(s.ColorIndex)).Background(t.Surface).Render("■")
	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	shareStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	space := lipgloss.NewStyle().Background(t.Surface).Render(" ")

	return swatch + space +
		labelStyle.Render(padTo(s.Label, labelW)) + space +
		valueStyle.Render(padLeftTo(value, valueW)) + space +
		shareStyle.Render(padLeftTo(share, 6))
}

func padLeftTo(s string, w int) string {
	if n := w - lipgloss.Width(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}
