package model

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTx() Transaction {
	return Transaction{
		Amount:        decimal.NewFromInt(500),
		Type:          Expense,
		Category:      "food",
		PaymentMethod: "cash",
		Date:          "2024-03-15",
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "500", want: "500"},
		{in: " 12.50 ", want: "12.5"},
		{in: "1,000", wantErr: true},
		{in: "12,50", wantErr: true},
		{in: "0", wantErr: true},
		{in: "0.00", wantErr: true},
		{in: "-5", wantErr: true},
		{in: "+5", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
		{in: "1.2.3", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrValidation), "error %v should match ErrValidation", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestTransactionValidate(t *testing.T) {
	require.NoError(t, validTx().Validate())

	tests := []struct {
		name  string
		mut   func(*Transaction)
		field string
	}{
		{"zero amount", func(tx *Transaction) { tx.Amount = decimal.Zero }, "amount"},
		{"negative amount", func(tx *Transaction) { tx.Amount = decimal.NewFromInt(-1) }, "amount"},
		{"bad type", func(tx *Transaction) { tx.Type = "transfer" }, "type"},
		{"blank category", func(tx *Transaction) { tx.Category = "  " }, "category"},
		{"blank payment", func(tx *Transaction) { tx.PaymentMethod = "" }, "paymentMethod"},
		{"bad date", func(tx *Transaction) { tx.Date = "15/03/2024" }, "date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := validTx()
			tt.mut(&tx)
			err := tx.Validate()
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestUnknownCategoryIsAccepted(t *testing.T) {
	tx := validTx()
	tx.Category = "something-custom"
	assert.NoError(t, tx.Validate())
}

func TestSigned(t *testing.T) {
	tx := validTx()
	assert.Equal(t, "-500", tx.Signed().String())
	tx.Type = Income
	assert.Equal(t, "500", tx.Signed().String())
}

func TestCategoryBudgetValidate(t *testing.T) {
	assert.NoError(t, CategoryBudget{Category: "food", Limit: decimal.NewFromInt(1)}.Validate())
	assert.ErrorIs(t, CategoryBudget{Category: "", Limit: decimal.NewFromInt(1)}.Validate(), ErrValidation)
	assert.ErrorIs(t, CategoryBudget{Category: "food", Limit: decimal.Zero}.Validate(), ErrValidation)
}

func TestParsePeriod(t *testing.T) {
	for _, p := range Periods {
		got, err := ParsePeriod(string(p))
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := ParsePeriod("weekly")
	assert.ErrorIs(t, err, ErrValidation)
}
