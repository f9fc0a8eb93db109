package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/taka/internal/cli"
	"github.com/theirongolddev/taka/internal/model"
	"github.com/theirongolddev/taka/internal/tui/components"
	"github.com/theirongolddev/taka/internal/tui/theme"
	"github.com/theirongolddev/taka/internal/vocab"
)

type budgetsState struct {
	cursor int
}

func (s *budgetsState) move(delta, n int) {
	s.cursor += delta
	if s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func (a App) budgetReport() []model.BudgetProgress {
	report, err := a.core.Budgets()
	if err != nil {
		return nil
	}
	return report
}

func (a App) budgetsLen() int {
	return len(a.budgetReport())
}

func (a App) updateBudgets(key string) (tea.Model, tea.Cmd) {
	report := a.budgetReport()

	switch key {
	case "j", "down":
		a.budgets.move(1, len(report))
	case "k", "up":
		a.budgets.move(-1, len(report))
	case "n":
		return a.openBudgetForm(vocab.ExpenseCategories[0])
	case "e", "enter":
		if a.budgets.cursor < len(report) {
			return a.openBudgetForm(report[a.budgets.cursor].Category)
		}
	case "x", "delete":
		if a.budgets.cursor < len(report) {
			category := report[a.budgets.cursor].Category
			a.confirm = &confirmation{
				prompt: a.text(vocab.TextDelBudget),
				done:   a.text(vocab.TextSaved),
				run: func(a *App) error {
					_, err := a.core.DeleteBudget(a.ctx, category)
					a.budgets.move(0, a.budgetsLen())
					return err
				},
			}
		}
	}
	return a, nil
}

func (a App) renderBudgetsTab(cw int) string {
	t := theme.Active
	lang := a.lang()
	cur := a.core.Settings().Currency
	report := a.budgetReport()

	inner := components.CardInnerWidth(cw)
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	warn := lipgloss.NewStyle().Foreground(t.Expense).Background(t.Surface).Bold(true)
	cursorStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	space := lipgloss.NewStyle().Background(t.Surface)

	if len(report) == 0 {
		return components.ContentCard(vocab.Text(lang, vocab.TextBudgets),
			muted.Render(vocab.Text(lang, vocab.TextNoBudgets)), cw)
	}

	labelW := 0
	for _, p := range report {
		if w := lipgloss.Width(p.Label); w > labelW {
			labelW = w
		}
	}
	// cursor (2) + label + gaps (2) + percent (4)
	barW := inner - labelW - 8
	if barW < 10 {
		barW = 10
	}

	var b strings.Builder
	for i, p := range report {
		marker := space.Render("  ")
		if i == a.budgets.cursor {
			marker = cursorStyle.Render("▸ ")
		}
		b.WriteString(marker)
		b.WriteString(components.BudgetBar(p.Label, p.Percent, p.Over, labelW, barW))
		b.WriteString("\n")

		detail := cli.FormatAmount(p.Spent, cur) + " / " + cli.FormatAmount(p.Limit, cur)
		b.WriteString(space.Render("  "))
		b.WriteString(muted.Render(detail))
		if p.Over {
			b.WriteString(space.Render("  "))
			b.WriteString(warn.Render(vocab.Text(lang, vocab.TextOverBudget)))
		}
		if i < len(report)-1 {
			b.WriteString("\n\n")
		}
	}

	return components.ContentCard(vocab.Text(lang, vocab.TextBudgets), b.String(), cw)
}
