// Package budget tracks per-category monthly spending limits.
package budget

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/taka/internal/model"
	"github.com/theirongolddev/taka/internal/vocab"
)

// Source supplies the transactions of a period. *ledger.Ledger satisfies it.
type Source interface {
	FilterByPeriod(p model.Period, ref time.Time) model.PeriodResult
}

var hundred = decimal.NewFromInt(100)

// Tracker owns the category budgets, at most one per category, in the
// order they were first created.
type Tracker struct {
	budgets []model.CategoryBudget
}

// NewTracker returns a tracker seeded with budgets. Later duplicates of a
// category replace earlier ones so the one-per-category rule holds.
func NewTracker(budgets []model.CategoryBudget) *Tracker {
	t := &Tracker{}
	for _, b := range budgets {
		t.set(b)
	}
	return t
}

// Upsert sets the limit for category, replacing an existing budget in
// place or appending a new one.
func (t *Tracker) Upsert(category string, limit decimal.Decimal) error {
	b := model.CategoryBudget{Category: category, Limit: limit}
	if err := b.Validate(); err != nil {
		return err
	}
	t.set(b)
	return nil
}

func (t *Tracker) set(b model.CategoryBudget) {
	for i := range t.budgets {
		if t.budgets[i].Category == b.Category {
			t.budgets[i].Limit = b.Limit
			return
		}
	}
	t.budgets = append(t.budgets, b)
}

// Remove deletes the budget for category. It reports whether one existed.
func (t *Tracker) Remove(category string) bool {
	for i := range t.budgets {
		if t.budgets[i].Category == category {
			t.budgets = append(t.budgets[:i], t.budgets[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the budget for category.
func (t *Tracker) Get(category string) (model.CategoryBudget, bool) {
	for _, b := range t.budgets {
		if b.Category == category {
			return b, true
		}
	}
	return model.CategoryBudget{}, false
}

// All returns a copy of the budgets in insertion order.
func (t *Tracker) All() []model.CategoryBudget {
	out := make([]model.CategoryBudget, len(t.budgets))
	copy(out, t.budgets)
	return out
}

// SpentThisMonth sums the expenses in category dated in ref's calendar month.
func SpentThisMonth(category string, src Source, ref time.Time) decimal.Decimal {
	spent := decimal.Zero
	for _, tx := range src.FilterByPeriod(model.Monthly, ref).Transactions {
		if tx.Type == model.Expense && tx.Category == category {
			spent = spent.Add(tx.Amount)
		}
	}
	return spent
}

// Progress returns spent-vs-limit for category in ref's month. The
// percentage is clamped to [0, 100]; Over is set once spent reaches the
// limit. ok is false when the category has no budget.
func (t *Tracker) Progress(category string, src Source, ref time.Time, lang model.Language) (model.BudgetProgress, bool) {
	b, ok := t.Get(category)
	if !ok {
		return model.BudgetProgress{}, false
	}
	return progressFor(b, src, ref, lang), true
}

// Report returns the progress of every budget in insertion order.
func (t *Tracker) Report(src Source, ref time.Time, lang model.Language) []model.BudgetProgress {
	out := make([]model.BudgetProgress, 0, len(t.budgets))
	for _, b := range t.budgets {
		out = append(out, progressFor(b, src, ref, lang))
	}
	return out
}

func progressFor(b model.CategoryBudget, src Source, ref time.Time, lang model.Language) model.BudgetProgress {
	spent := SpentThisMonth(b.Category, src, ref)
	p := model.BudgetProgress{
		Category: b.Category,
		Label:    vocab.CategoryLabel(lang, b.Category),
		Limit:    b.Limit,
		Spent:    spent,
		Over:     spent.GreaterThanOrEqual(b.Limit),
	}
	// Limits are positive by construction.
	pct := spent.Mul(hundred).Div(b.Limit)
	if pct.GreaterThan(hundred) {
		pct = hundred
	}
	if pct.IsNegative() {
		pct = decimal.Zero
	}
	p.Percent = pct.InexactFloat64()
	return p
}
