package model

import "github.com/shopspring/decimal"

// BudgetProgress holds spent-vs-limit data for one category budget in the
// current calendar month.
type BudgetProgress struct {
	Category string
	Label    string
	Limit    decimal.Decimal
	Spent    decimal.Decimal
	Percent  float64 // clamped to [0, 100]
	Over     bool    // spent >= limit
}
