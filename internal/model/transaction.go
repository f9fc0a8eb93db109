// Package model defines domain types for the taka ledger.
package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the ISO 8601 calendar date format used for Transaction.Date.
const DateLayout = time.DateOnly

// TransactionType is either income or expense.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// Transaction is one recorded income or expense.
type Transaction struct {
	ID            string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	Type          TransactionType `json:"type"`
	Category      string          `json:"category"`
	PaymentMethod string          `json:"paymentMethod"`
	Date          string          `json:"date"` // YYYY-MM-DD
	Note          string          `json:"note"`
}

// Signed returns the amount as it contributes to the balance:
// positive for income, negative for expense.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Validate checks the fields every saved transaction must carry.
// Category values outside the vocabulary are accepted.
func (t Transaction) Validate() error {
	if !t.Amount.IsPositive() {
		return &ValidationError{Field: "amount", Reason: "must be greater than zero"}
	}
	if !t.Type.Valid() {
		return &ValidationError{Field: "type", Reason: "must be income or expense"}
	}
	if strings.TrimSpace(t.Category) == "" {
		return &ValidationError{Field: "category", Reason: "is required"}
	}
	if strings.TrimSpace(t.PaymentMethod) == "" {
		return &ValidationError{Field: "paymentMethod", Reason: "is required"}
	}
	if _, err := time.Parse(DateLayout, t.Date); err != nil {
		return &ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"}
	}
	return nil
}

// ParseAmount parses a user-entered amount such as "12.50". Zero, negative,
// signed and non-numeric input is rejected, and so is any comma: "1,000"
// is ambiguous between a thousands separator and a decimal comma.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") || strings.Contains(s, ",") {
		return decimal.Zero, &ValidationError{Field: "amount", Reason: "must be a positive number"}
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsPositive() {
		return decimal.Zero, &ValidationError{Field: "amount", Reason: "must be a positive number"}
	}
	return d, nil
}

// CategoryBudget is a monthly spending ceiling for one expense category.
type CategoryBudget struct {
	Category string          `json:"category"`
	Limit    decimal.Decimal `json:"limit"`
}

// Validate checks that the budget names a category and has a positive limit.
func (b CategoryBudget) Validate() error {
	if strings.TrimSpace(b.Category) == "" {
		return &ValidationError{Field: "category", Reason: "is required"}
	}
	if !b.Limit.IsPositive() {
		return &ValidationError{Field: "limit", Reason: "must be greater than zero"}
	}
	return nil
}
