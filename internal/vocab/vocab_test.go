package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/theirongolddev/taka/internal/model"
)

func TestCategoryVocabulariesAreDisjoint(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range ExpenseCategories {
		seen[c] = true
	}
	for _, c := range IncomeCategories {
		assert.False(t, seen[c], "category %q is in both vocabularies", c)
	}
}

func TestEveryKeyHasLabels(t *testing.T) {
	for _, c := range append(append([]string{}, ExpenseCategories...), IncomeCategories...) {
		assert.NotEqual(t, c, CategoryLabel(model.English, c), "missing en label for %q", c)
		assert.NotEqual(t, c, CategoryLabel(model.Bengali, c), "missing bn label for %q", c)
	}
	for _, p := range PaymentMethods {
		assert.NotEqual(t, p, PaymentLabel(model.Bengali, p), "missing bn label for %q", p)
	}
}

func TestUnknownKeysDegradeToVerbatim(t *testing.T) {
	assert.Equal(t, "crypto", CategoryLabel(model.English, "crypto"))
	assert.Equal(t, "paypal", PaymentLabel(model.Bengali, "paypal"))
}

func TestCategoriesFor(t *testing.T) {
	assert.True(t, IsKnownCategory(model.Expense, "food"))
	assert.False(t, IsKnownCategory(model.Income, "food"))
	assert.True(t, IsKnownCategory(model.Income, "salary"))
	assert.Equal(t, "Income", TypeLabel(model.Income))
	assert.Equal(t, "Expense", TypeLabel(model.Expense))
}

func TestTextAndPeriodLabels(t *testing.T) {
	assert.Equal(t, "Current balance", Text(model.English, TextBalance))
	assert.Equal(t, "বর্তমান ব্যালেন্স", Text(model.Bengali, TextBalance))
	assert.Equal(t, "nope", Text(model.English, "nope"))

	for _, p := range model.Periods {
		assert.NotEqual(t, string(p), PeriodLabel(model.English, p))
		assert.NotEqual(t, string(p), PeriodLabel(model.Bengali, p))
	}
	assert.Equal(t, "weekly", PeriodLabel(model.English, "weekly"))
}
