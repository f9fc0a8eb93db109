package pipeline

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/taka/internal/model"
)

const epsilon = 1e-9

func tx(id string, typ model.TransactionType, category string, amount int64, date string) model.Transaction {
	return model.Transaction{
		ID:            id,
		Amount:        decimal.NewFromInt(amount),
		Type:          typ,
		Category:      category,
		PaymentMethod: "cash",
		Date:          date,
	}
}

func ids(txs []model.Transaction) []string {
	out := make([]string, 0, len(txs))
	for _, t := range txs {
		out = append(out, t.ID)
	}
	return out
}

func mustRef(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation(model.DateLayout, s, time.Local)
	require.NoError(t, err)
	return d.Add(13 * time.Hour)
}

func TestFilterByPeriod(t *testing.T) {
	txs := []model.Transaction{
		tx("a", model.Expense, "food", 100, "2024-03-20"),
		tx("b", model.Income, "salary", 2000, "2024-03-01"),
		tx("c", model.Expense, "rent", 700, "2024-02-28"),
		tx("d", model.Expense, "food", 50, "2023-03-20"),
		tx("e", model.Income, "gift", 10, "2024-12-31"),
	}
	ref := mustRef(t, "2024-03-20")

	tests := []struct {
		period  model.Period
		want    []string
		income  string
		expense string
	}{
		{model.Daily, []string{"a"}, "0", "100"},
		{model.Monthly, []string{"a", "b"}, "2000", "100"},
		{model.Yearly, []string{"a", "b", "c", "e"}, "2010", "800"},
	}
	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			got := FilterByPeriod(txs, tt.period, ref)
			assert.Equal(t, tt.want, ids(got.Transactions))
			assert.Equal(t, tt.income, got.Income.String())
			assert.Equal(t, tt.expense, got.Expense.String())
			assert.Equal(t, tt.period, got.Period)
		})
	}
}

func TestInPeriodRejectsUnknownPeriodAndShortDates(t *testing.T) {
	ref := mustRef(t, "2024-03-20")
	assert.False(t, InPeriod("2024-03-20", model.Period("weekly"), ref))
	assert.False(t, InPeriod("2024", model.Monthly, ref))
	assert.False(t, InPeriod("", model.Yearly, ref))
}

func TestBalance(t *testing.T) {
	txs := []model.Transaction{
		tx("a", model.Expense, "food", 500, "2024-03-15"),
		tx("b", model.Income, "salary", 2000, "2024-03-01"),
	}
	assert.Equal(t, "1500", Balance(txs).String())
	assert.True(t, Balance(nil).IsZero())
}

func TestFilterByCriteria(t *testing.T) {
	txs := []model.Transaction{
		tx("new", model.Expense, "food", 1, "2024-03-10"),
		tx("mid", model.Income, "salary", 1, "2024-03-15"),
		tx("same1", model.Expense, "food", 1, "2024-03-12"),
		tx("same2", model.Expense, "food", 1, "2024-03-12"),
		tx("old", model.Expense, "rent", 1, "2024-01-01"),
	}

	t.Run("no filter sorts by date descending", func(t *testing.T) {
		got := FilterByCriteria(txs, model.Criteria{Category: model.AllCategories})
		assert.Equal(t, []string{"mid", "same1", "same2", "new", "old"}, ids(got))
	})

	t.Run("empty category means all", func(t *testing.T) {
		got := FilterByCriteria(txs, model.Criteria{})
		assert.Len(t, got, len(txs))
	})

	t.Run("category exact match", func(t *testing.T) {
		got := FilterByCriteria(txs, model.Criteria{Category: "food"})
		assert.Equal(t, []string{"same1", "same2", "new"}, ids(got))
	})

	t.Run("inclusive bounds", func(t *testing.T) {
		got := FilterByCriteria(txs, model.Criteria{StartDate: "2024-03-10", EndDate: "2024-03-12"})
		assert.Equal(t, []string{"same1", "same2", "new"}, ids(got))
	})

	t.Run("start only", func(t *testing.T) {
		got := FilterByCriteria(txs, model.Criteria{StartDate: "2024-03-13"})
		assert.Equal(t, []string{"mid"}, ids(got))
	})

	t.Run("end only", func(t *testing.T) {
		got := FilterByCriteria(txs, model.Criteria{EndDate: "2024-02-01"})
		assert.Equal(t, []string{"old"}, ids(got))
	})

	t.Run("input is not reordered", func(t *testing.T) {
		_ = FilterByCriteria(txs, model.Criteria{})
		assert.Equal(t, "new", txs[0].ID)
	})
}

func TestExpenseDistribution(t *testing.T) {
	txs := []model.Transaction{
		tx("1", model.Expense, "food", 100, "2024-03-01"),
		tx("2", model.Income, "salary", 5000, "2024-03-01"),
		tx("3", model.Expense, "rent", 500, "2024-03-02"),
		tx("4", model.Expense, "food", 150, "2024-03-03"),
		tx("5", model.Expense, "mystery", 250, "2024-03-04"),
	}

	d := ExpenseDistribution(txs, model.English)
	require.False(t, d.Empty())
	require.Len(t, d.Slices, 3)
	assert.Equal(t, "1000", d.Total.String())

	assert.Equal(t, "rent", d.Slices[0].Category)
	assert.Equal(t, "Rent", d.Slices[0].Label)
	assert.Equal(t, "500", d.Slices[0].Value.String())

	// food (250) and mystery (250) tie; food appeared first.
	assert.Equal(t, "food", d.Slices[1].Category)
	assert.Equal(t, "mystery", d.Slices[2].Category)
	assert.Equal(t, "mystery", d.Slices[2].Label, "unknown category shown verbatim")

	sum := 0.0
	for i, s := range d.Slices {
		sum += s.SweepFraction
		assert.Equal(t, i, s.ColorIndex)
		if i > 0 {
			assert.Equal(t, d.Slices[i-1].EndFraction, s.StartFraction, "slices must be contiguous")
		}
	}
	assert.InDelta(t, 1.0, sum, epsilon)
	assert.Equal(t, 0.0, d.Slices[0].StartFraction)
	assert.Equal(t, 1.0, d.Slices[len(d.Slices)-1].EndFraction)
	assert.InDelta(t, 50.0, d.Slices[0].Percent(), epsilon)
	assert.InDelta(t, 180.0, d.Slices[0].SweepDegrees(), epsilon)
	assert.InDelta(t, 270.0, d.Slices[2].StartDegrees(), epsilon)
}

func TestExpenseDistributionSumsMatchInput(t *testing.T) {
	var txs []model.Transaction
	want := decimal.Zero
	for i := 1; i <= 37; i++ {
		amount := decimal.NewFromFloat(float64(i) * 1.37)
		category := []string{"food", "bills", "health", "transport", "rent", "gift-x", "others", "education", "shopping"}[i%9]
		txs = append(txs, model.Transaction{Amount: amount, Type: model.Expense, Category: category, Date: "2024-01-01"})
		want = want.Add(amount)
	}

	d := ExpenseDistribution(txs, model.Bengali)
	require.Len(t, d.Slices, 9)
	assert.True(t, want.Equal(d.Total))

	groupSum := decimal.Zero
	sweep := 0.0
	for i, s := range d.Slices {
		groupSum = groupSum.Add(s.Value)
		sweep += s.SweepFraction
		if i > 0 {
			assert.False(t, s.Value.GreaterThan(d.Slices[i-1].Value), "slices must be sorted descending")
		}
		assert.Equal(t, i%PaletteSize, s.ColorIndex)
	}
	assert.True(t, want.Equal(groupSum))
	assert.LessOrEqual(t, math.Abs(1-sweep), epsilon)
}

func TestExpenseDistributionEmpty(t *testing.T) {
	assert.True(t, ExpenseDistribution(nil, model.English).Empty())

	incomeOnly := []model.Transaction{tx("1", model.Income, "salary", 100, "2024-03-01")}
	d := ExpenseDistribution(incomeOnly, model.English)
	assert.True(t, d.Empty())
	assert.True(t, d.Total.IsZero())
}

func TestExpenseDistributionSingleCategory(t *testing.T) {
	d := ExpenseDistribution([]model.Transaction{tx("1", model.Expense, "food", 42, "2024-03-01")}, model.English)
	require.Len(t, d.Slices, 1)
	assert.Equal(t, 0.0, d.Slices[0].StartFraction)
	assert.Equal(t, 1.0, d.Slices[0].EndFraction)
	assert.Equal(t, 1.0, d.Slices[0].SweepFraction)
}

func TestExpenseDistributionNonPositiveTotalIsEmpty(t *testing.T) {
	zeros := []model.Transaction{
		tx("1", model.Expense, "food", 0, "2024-03-01"),
		tx("2", model.Expense, "rent", 0, "2024-03-02"),
	}
	assert.True(t, ExpenseDistribution(zeros, model.English).Empty())

	cancelling := []model.Transaction{
		tx("1", model.Expense, "food", 50, "2024-03-01"),
		tx("2", model.Expense, "rent", -50, "2024-03-02"),
	}
	d := ExpenseDistribution(cancelling, model.English)
	assert.True(t, d.Empty())
	assert.True(t, d.Total.IsZero())
}
