// Package pipeline holds the pure filters and aggregations that turn a
// transaction list into period statistics and the expense distribution.
package pipeline

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/taka/internal/model"
	"github.com/theirongolddev/taka/internal/vocab"
)

// PaletteSize is the number of chart colors slices cycle through.
const PaletteSize = 8

// InPeriod reports whether an ISO date falls in the period containing ref.
// Daily matches the exact date, monthly the year and month, yearly the year.
func InPeriod(date string, p model.Period, ref time.Time) bool {
	switch p {
	case model.Daily:
		return date == ref.Format(model.DateLayout)
	case model.Monthly:
		return len(date) >= 7 && date[:7] == ref.Format("2006-01")
	case model.Yearly:
		return len(date) >= 4 && date[:4] == ref.Format("2006")
	}
	return false
}

// FilterByPeriod returns the transactions inside the period containing ref,
// in their original relative order, with income and expense totals.
func FilterByPeriod(txs []model.Transaction, p model.Period, ref time.Time) model.PeriodResult {
	result := model.PeriodResult{Period: p}
	for _, tx := range txs {
		if InPeriod(tx.Date, p, ref) {
			result.Transactions = append(result.Transactions, tx)
		}
	}
	result.Income, result.Expense = Totals(result.Transactions)
	return result
}

// Totals sums income and expense amounts separately.
func Totals(txs []model.Transaction) (income, expense decimal.Decimal) {
	income, expense = decimal.Zero, decimal.Zero
	for _, tx := range txs {
		switch tx.Type {
		case model.Income:
			income = income.Add(tx.Amount)
		case model.Expense:
			expense = expense.Add(tx.Amount)
		}
	}
	return income, expense
}

// Balance is the signed sum of all transactions.
func Balance(txs []model.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(tx.Signed())
	}
	return total
}

// FilterByCriteria returns the transactions matching the category and the
// inclusive date bounds, most recent date first. Transactions on the same
// date keep their input order.
func FilterByCriteria(txs []model.Transaction, c model.Criteria) []model.Transaction {
	result := make([]model.Transaction, 0, len(txs))
	for _, tx := range txs {
		if c.Category != "" && c.Category != model.AllCategories && tx.Category != c.Category {
			continue
		}
		// ISO dates order correctly as strings.
		if c.StartDate != "" && tx.Date < c.StartDate {
			continue
		}
		if c.EndDate != "" && tx.Date > c.EndDate {
			continue
		}
		result = append(result, tx)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date > result[j].Date
	})
	return result
}

// ExpenseDistribution groups expense transactions by category, sorts the
// groups by total descending and assigns each a contiguous arc of a full
// turn. Equal totals keep the order in which the category first appeared.
// Input without expenses, or whose expenses do not sum to a positive
// total, yields the empty Distribution.
func ExpenseDistribution(txs []model.Transaction, lang model.Language) model.Distribution {
	var slices []model.Slice
	index := make(map[string]int)

	for _, tx := range txs {
		if tx.Type != model.Expense {
			continue
		}
		i, ok := index[tx.Category]
		if !ok {
			i = len(slices)
			index[tx.Category] = i
			slices = append(slices, model.Slice{
				Category: tx.Category,
				Label:    vocab.CategoryLabel(lang, tx.Category),
				Value:    decimal.Zero,
			})
		}
		slices[i].Value = slices[i].Value.Add(tx.Amount)
	}

	if len(slices) == 0 {
		return model.Distribution{Total: decimal.Zero}
	}

	sort.SliceStable(slices, func(i, j int) bool {
		return slices[i].Value.GreaterThan(slices[j].Value)
	})

	total := decimal.Zero
	for _, s := range slices {
		total = total.Add(s.Value)
	}
	// Records that bypassed validation can sum to nothing.
	if !total.IsPositive() {
		return model.Distribution{Total: decimal.Zero}
	}

	// Fractions come from exact cumulative sums, so each slice ends where
	// the next begins and the last one ends at exactly 1.
	cumulative := decimal.Zero
	start := 0.0
	for i := range slices {
		cumulative = cumulative.Add(slices[i].Value)
		end := 1.0
		if i < len(slices)-1 {
			end = cumulative.Div(total).InexactFloat64()
		}
		slices[i].StartFraction = start
		slices[i].EndFraction = end
		slices[i].SweepFraction = end - start
		slices[i].ColorIndex = i % PaletteSize
		start = end
	}

	return model.Distribution{Slices: slices, Total: total}
}
