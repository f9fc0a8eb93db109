package budget

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/taka/internal/ledger"
	"github.com/theirongolddev/taka/internal/model"
)

var march20 = time.Date(2024, 3, 20, 9, 0, 0, 0, time.Local)

func seedLedger(t *testing.T) *ledger.Ledger {
	t.Helper()
	l := ledger.New(ledger.NewSequence("t"), nil)
	add := func(typ model.TransactionType, category string, amount int64, date string) {
		_, err := l.Add(model.Transaction{
			Amount: decimal.NewFromInt(amount), Type: typ, Category: category,
			PaymentMethod: "cash", Date: date,
		})
		require.NoError(t, err)
	}
	add(model.Expense, "food", 300, "2024-03-02")
	add(model.Expense, "food", 200, "2024-03-19")
	add(model.Expense, "food", 999, "2024-02-29") // previous month
	add(model.Expense, "food", 999, "2023-03-10") // same month, previous year
	add(model.Income, "food", 999, "2024-03-05")  // income never counts
	add(model.Expense, "rent", 700, "2024-03-01")
	return l
}

func TestUpsertReplacesExisting(t *testing.T) {
	tr := NewTracker(nil)
	require.NoError(t, tr.Upsert("food", decimal.NewFromInt(1000)))
	require.NoError(t, tr.Upsert("rent", decimal.NewFromInt(5000)))
	require.NoError(t, tr.Upsert("food", decimal.NewFromInt(800)))

	all := tr.All()
	require.Len(t, all, 2)
	assert.Equal(t, "food", all[0].Category, "replacement keeps position")
	assert.Equal(t, "800", all[0].Limit.String())
	assert.Equal(t, "rent", all[1].Category)
}

func TestUpsertRejectsInvalidInput(t *testing.T) {
	tr := NewTracker(nil)
	assert.ErrorIs(t, tr.Upsert("food", decimal.Zero), model.ErrValidation)
	assert.ErrorIs(t, tr.Upsert("food", decimal.NewFromInt(-3)), model.ErrValidation)
	assert.ErrorIs(t, tr.Upsert("", decimal.NewFromInt(3)), model.ErrValidation)
	assert.Empty(t, tr.All())
}

func TestNewTrackerCollapsesDuplicates(t *testing.T) {
	tr := NewTracker([]model.CategoryBudget{
		{Category: "food", Limit: decimal.NewFromInt(1)},
		{Category: "food", Limit: decimal.NewFromInt(2)},
	})
	all := tr.All()
	require.Len(t, all, 1)
	assert.Equal(t, "2", all[0].Limit.String())
}

func TestRemoveIsIdempotent(t *testing.T) {
	tr := NewTracker(nil)
	require.NoError(t, tr.Upsert("food", decimal.NewFromInt(10)))
	assert.True(t, tr.Remove("food"))
	assert.False(t, tr.Remove("food"))
	_, ok := tr.Get("food")
	assert.False(t, ok)
}

func TestSpentThisMonth(t *testing.T) {
	l := seedLedger(t)
	assert.Equal(t, "500", SpentThisMonth("food", l, march20).String())
	assert.Equal(t, "700", SpentThisMonth("rent", l, march20).String())
	assert.True(t, SpentThisMonth("health", l, march20).IsZero())
}

func TestProgress(t *testing.T) {
	l := seedLedger(t)
	tr := NewTracker(nil)
	require.NoError(t, tr.Upsert("food", decimal.NewFromInt(1000)))
	require.NoError(t, tr.Upsert("rent", decimal.NewFromInt(500)))

	food, ok := tr.Progress("food", l, march20, model.English)
	require.True(t, ok)
	assert.Equal(t, "Food", food.Label)
	assert.InDelta(t, 50.0, food.Percent, 1e-9)
	assert.False(t, food.Over)

	rent, ok := tr.Progress("rent", l, march20, model.English)
	require.True(t, ok)
	assert.Equal(t, 100.0, rent.Percent, "clamped at 100")
	assert.True(t, rent.Over)
	assert.Equal(t, "700", rent.Spent.String())

	_, ok = tr.Progress("health", l, march20, model.English)
	assert.False(t, ok)
}

func TestProgressExactlyAtLimitIsOver(t *testing.T) {
	l := seedLedger(t)
	tr := NewTracker(nil)
	require.NoError(t, tr.Upsert("rent", decimal.NewFromInt(700)))
	p, ok := tr.Progress("rent", l, march20, model.English)
	require.True(t, ok)
	assert.Equal(t, 100.0, p.Percent)
	assert.True(t, p.Over)
}

func TestReportKeepsInsertionOrder(t *testing.T) {
	l := seedLedger(t)
	tr := NewTracker(nil)
	require.NoError(t, tr.Upsert("rent", decimal.NewFromInt(500)))
	require.NoError(t, tr.Upsert("food", decimal.NewFromInt(1000)))
	require.NoError(t, tr.Upsert("health", decimal.NewFromInt(100)))

	report := tr.Report(l, march20, model.Bengali)
	require.Len(t, report, 3)
	assert.Equal(t, []string{"rent", "food", "health"}, []string{report[0].Category, report[1].Category, report[2].Category})
	assert.Equal(t, 0.0, report[2].Percent)
	for _, p := range report {
		assert.GreaterOrEqual(t, p.Percent, 0.0)
		assert.LessOrEqual(t, p.Percent, 100.0)
	}
}
