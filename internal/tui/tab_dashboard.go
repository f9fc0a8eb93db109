package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/taka/internal/app"
	"github.com/theirongolddev/taka/internal/cli"
	"github.com/theirongolddev/taka/internal/model"
	"github.com/theirongolddev/taka/internal/tui/components"
	"github.com/theirongolddev/taka/internal/tui/theme"
	"github.com/theirongolddev/taka/internal/vocab"
)

func (a App) updateDashboard(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "1", "2", "3":
		p := model.Periods[key[0]-'1']
		if err := a.core.SetPeriodTab(p); err != nil {
			a.setError(err)
		}
		return a, nil
	case "n":
		return a.openAddTransaction()
	}
	return a, nil
}

func (a App) renderDashboardTab(cw int) string {
	t := theme.Active
	lang := a.lang()
	cur := a.core.Settings().Currency
	period := a.core.PeriodTab()

	balance, err := a.core.Balance()
	if err != nil {
		return err.Error()
	}
	stats, err := a.core.PeriodStats(period)
	if err != nil {
		return err.Error()
	}

	balanceColor := t.Income
	if balance.IsNegative() {
		balanceColor = t.Expense
	}

	var b strings.Builder

	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: vocab.Text(lang, vocab.TextBalance), Value: cli.FormatAmount(balance, cur), Color: balanceColor},
		{Label: vocab.Text(lang, vocab.TextIncome), Value: cli.FormatAmount(stats.Income, cur), Color: t.Income},
		{Label: vocab.Text(lang, vocab.TextExpense), Value: cli.FormatAmount(stats.Expense, cur), Color: t.Expense},
	}, cw))
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().Background(t.Background).Render(" "))
	b.WriteString(components.RenderPeriodBar(period, lang))
	b.WriteString("\n")

	half := components.LayoutRow(cw, 2)
	breakdown := components.ContentCard(vocab.Text(lang, vocab.TextBreakdown),
		a.renderBreakdown(components.CardInnerWidth(half[0])), half[0])
	recent := components.ContentCard(vocab.Text(lang, vocab.TextRecent),
		a.renderRecent(components.CardInnerWidth(half[1])), half[1])
	b.WriteString(components.CardRow([]string{breakdown, recent}))

	return b.String()
}

// renderBreakdown draws the stacked distribution bar and its legend for
// the selected period.
func (a App) renderBreakdown(w int) string {
	t := theme.Active
	lang := a.lang()
	cur := a.core.Settings().Currency

	d, err := a.core.ExpenseDistribution(a.core.PeriodTab())
	if err != nil {
		return err.Error()
	}
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	if d.Empty() {
		return muted.Render(vocab.Text(lang, vocab.TextNoData))
	}

	var b strings.Builder
	b.WriteString(components.DistributionBar(d.Slices, w))
	b.WriteString("\n\n")

	valueW := 0
	for _, s := range d.Slices {
		if vw := lipgloss.Width(cli.FormatAmount(s.Value, cur)); vw > valueW {
			valueW = vw
		}
	}
	labelW := w - valueW - 10
	if labelW < 6 {
		labelW = 6
	}
	for i, s := range d.Slices {
		s.Label = truncStr(s.Label, labelW)
		b.WriteString(components.LegendRow(s, cli.FormatAmount(s.Value, cur),
			fmt.Sprintf("%.1f%%", s.Percent()), labelW, valueW))
		if i < len(d.Slices)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (a App) renderRecent(w int) string {
	t := theme.Active
	lang := a.lang()

	txs, err := a.core.RecentInPeriod(app.RecentLimit)
	if err != nil {
		return err.Error()
	}
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	if len(txs) == 0 {
		return muted.Render(vocab.Text(lang, vocab.TextNoData))
	}

	lines := make([]string, 0, len(txs))
	for _, tx := range txs {
		lines = append(lines, a.transactionLine(tx, w, false))
	}
	return strings.Join(lines, "\n")
}

// transactionLine renders one transaction as "date  category  amount",
// with the signed amount right-aligned.
func (a App) transactionLine(tx model.Transaction, w int, selected bool) string {
	t := theme.Active
	lang := a.lang()

	bg := t.Surface
	if selected {
		bg = t.SurfaceHover
	}
	amountColor := t.Income
	if tx.Type == model.Expense {
		amountColor = t.Expense
	}
	dateStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(bg)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(bg)
	amountStyle := lipgloss.NewStyle().Foreground(amountColor).Background(bg).Bold(true)
	space := lipgloss.NewStyle().Background(bg)

	amount := cli.FormatSigned(tx, a.core.Settings().Currency)
	label := vocab.CategoryLabel(lang, tx.Category)
	if tx.Note != "" {
		label += " · " + tx.Note
	}

	labelW := w - len(tx.Date) - lipgloss.Width(amount) - 4
	label = truncStr(label, labelW)
	pad := w - len(tx.Date) - 2 - lipgloss.Width(label) - lipgloss.Width(amount)
	if pad < 1 {
		pad = 1
	}

	return dateStyle.Render(tx.Date) + space.Render("  ") +
		labelStyle.Render(label) + space.Render(strings.Repeat(" ", pad)) +
		amountStyle.Render(amount)
}
