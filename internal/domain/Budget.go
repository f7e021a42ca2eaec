package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Remaining is ceiling minus spent and may be negative.
func Remaining(ceiling, spent decimal.Decimal) decimal.Decimal {
	return ceiling.Sub(spent)
}

// Available is strict: an exactly exhausted ceiling is not available.
func Available(ceiling, spent decimal.Decimal) bool {
	return Remaining(ceiling, spent).IsPositive()
}

// Percentage is spent/ceiling*100 rounded to two places, or zero for a non-positive ceiling.
func Percentage(spent, ceiling decimal.Decimal) decimal.Decimal {
	if !ceiling.IsPositive() {
		return decimal.Zero
	}
	return spent.Div(ceiling).Mul(hundred).Round(2)
}

// SpendTotals are the ledger sums for one campaign or brand over today and the current month.
type SpendTotals struct {
	Daily   decimal.Decimal `json:"daily"`
	Monthly decimal.Decimal `json:"monthly"`
}

func (t SpendTotals) Add(other SpendTotals) SpendTotals {
	return SpendTotals{
		Daily:   t.Daily.Add(other.Daily),
		Monthly: t.Monthly.Add(other.Monthly),
	}
}

// Day truncates t to midnight in its own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func MonthStart(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}
