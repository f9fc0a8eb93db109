package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Period is a statistics window anchored on a reference instant.
type Period string

const (
	Daily   Period = "daily"
	Monthly Period = "monthly"
	Yearly  Period = "yearly"
)

// Periods lists every period in tab order.
var Periods = []Period{Daily, Monthly, Yearly}

// ParsePeriod converts a user string into a Period.
func ParsePeriod(s string) (Period, error) {
	switch p := Period(s); p {
	case Daily, Monthly, Yearly:
		return p, nil
	}
	return "", &ValidationError{Field: "period", Reason: fmt.Sprintf("%q is not daily, monthly or yearly", s)}
}

// PeriodResult is the subsequence of transactions inside a period with its totals.
type PeriodResult struct {
	Period       Period
	Transactions []Transaction
	Income       decimal.Decimal
	Expense      decimal.Decimal
}

// Net returns income minus expense for the period.
func (r PeriodResult) Net() decimal.Decimal {
	return r.Income.Sub(r.Expense)
}

// AllCategories is the category filter value that disables category filtering.
const AllCategories = "all"

// Criteria filters the transaction history. Empty StartDate or EndDate
// leaves that side unbounded; bounds are inclusive.
type Criteria struct {
	Category  string
	StartDate string
	EndDate   string
}

// Slice is one category's share of the expense distribution.
// Fractions are of a full turn. EndFraction of one slice is exactly the
// StartFraction of the next; the first starts at 0 and the last ends at 1.
type Slice struct {
	Category      string
	Label         string
	Value         decimal.Decimal
	StartFraction float64
	EndFraction   float64
	SweepFraction float64
	ColorIndex    int
}

// Percent returns the slice share as a 0-100 value.
func (s Slice) Percent() float64 {
	return s.SweepFraction * 100
}

// StartDegrees returns the slice start angle in degrees.
func (s Slice) StartDegrees() float64 {
	return s.StartFraction * 360
}

// SweepDegrees returns the slice sweep angle in degrees.
func (s Slice) SweepDegrees() float64 {
	return s.SweepFraction * 360
}

// Distribution is the sorted expense breakdown by category.
// A Distribution with no slices is the "no data" state.
type Distribution struct {
	Slices []Slice
	Total  decimal.Decimal
}

// Empty reports whether there were no expense transactions to chart.
func (d Distribution) Empty() bool {
	return len(d.Slices) == 0
}
