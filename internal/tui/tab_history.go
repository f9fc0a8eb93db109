package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/taka/internal/model"
	"github.com/theirongolddev/taka/internal/tui/components"
	"github.com/theirongolddev/taka/internal/tui/theme"
	"github.com/theirongolddev/taka/internal/vocab"
)

// historyState tracks the history tab's list position.
type historyState struct {
	cursor int
}

func (s *historyState) move(delta, n int) {
	s.cursor += delta
	if s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func (s *historyState) reset() {
	s.cursor = 0
}

func (a App) history() []model.Transaction {
	txs, err := a.core.FilteredHistory()
	if err != nil {
		return nil
	}
	return txs
}

func (a App) historyLen() int {
	return len(a.history())
}

func (a App) selectedTransaction() (model.Transaction, bool) {
	txs := a.history()
	if a.hist.cursor < 0 || a.hist.cursor >= len(txs) {
		return model.Transaction{}, false
	}
	return txs[a.hist.cursor], true
}

func (a App) updateHistory(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		a.hist.move(1, a.historyLen())
	case "k", "up":
		a.hist.move(-1, a.historyLen())
	case "g":
		a.hist.reset()
	case "G":
		a.hist.cursor = a.historyLen() - 1
		a.hist.move(0, a.historyLen())
	case "n":
		return a.openAddTransaction()
	case "e", "enter":
		if tx, ok := a.selectedTransaction(); ok {
			return a.openEditTransaction(tx)
		}
	case "x", "delete":
		if tx, ok := a.selectedTransaction(); ok {
			id := tx.ID
			a.confirm = &confirmation{
				prompt: a.text(vocab.TextDelEntry),
				done:   a.text(vocab.TextEntryDeleted),
				run: func(a *App) error {
					_, err := a.core.DeleteTransaction(a.ctx, id)
					a.hist.move(0, a.historyLen())
					return err
				},
			}
		}
	case "/":
		return a.openFilterForm()
	case "c":
		if err := a.core.ClearFilter(); err != nil {
			a.setError(err)
		}
		a.hist.reset()
	}
	return a, nil
}

func (a App) filterSummary() string {
	c := a.core.Filter()
	lang := a.lang()

	cat := vocab.Text(lang, vocab.TextAllCategory)
	if c.Category != model.AllCategories {
		cat = vocab.CategoryLabel(lang, c.Category)
	}
	from, to := c.StartDate, c.EndDate
	if from == "" {
		from = "…"
	}
	if to == "" {
		to = "…"
	}
	return fmt.Sprintf("%s │ %s → %s", cat, from, to)
}

func (a App) renderHistoryTab(cw, h int) string {
	t := theme.Active
	txs := a.history()

	inner := components.CardInnerWidth(cw)

	// Card chrome: border (2), title (1), filter line (1).
	visible := h - 4
	if visible < 1 {
		visible = 1
	}
	offset := 0
	if a.hist.cursor >= visible {
		offset = a.hist.cursor - visible + 1
	}

	filterStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	var b strings.Builder
	b.WriteString(filterStyle.Render(truncStr(a.filterSummary(), inner)))
	b.WriteString(muted.Render(fmt.Sprintf("  (%d)", len(txs))))

	if len(txs) == 0 {
		b.WriteString("\n")
		b.WriteString(muted.Render(a.text(vocab.TextNoData)))
	}
	for i := offset; i < len(txs) && i < offset+visible; i++ {
		b.WriteString("\n")
		b.WriteString(a.transactionLine(txs[i], inner, i == a.hist.cursor))
	}

	return components.ContentCard(a.text(vocab.TextHistory), b.String(), cw)
}
