package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRemainingAndAvailable(t *testing.T) {
	tests := []struct {
		name              string
		ceiling           string
		spent             string
		expectedRemaining string
		expectedAvailable bool
	}{
		{name: "Exactly exhausted", ceiling: "100.00", spent: "100.00", expectedRemaining: "0", expectedAvailable: false},
		{name: "Overspent", ceiling: "25.00", spent: "30.00", expectedRemaining: "-5", expectedAvailable: false},
		{name: "Half spent", ceiling: "100.00", spent: "50.00", expectedRemaining: "50", expectedAvailable: true},
		{name: "One cent left", ceiling: "10.00", spent: "9.99", expectedRemaining: "0.01", expectedAvailable: true},
		{name: "Nothing spent", ceiling: "10.00", spent: "0", expectedRemaining: "10", expectedAvailable: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remaining := Remaining(dec(tt.ceiling), dec(tt.spent))
			assert.True(t, dec(tt.expectedRemaining).Equal(remaining), "remaining=%s", remaining)
			assert.Equal(t, tt.expectedAvailable, Available(dec(tt.ceiling), dec(tt.spent)))
		})
	}
}

func TestRemaining_NoFloatDrift(t *testing.T) {
	spent := decimal.Zero
	for i := 0; i < 10; i++ {
		spent = spent.Add(dec("0.10"))
	}
	assert.True(t, Remaining(dec("1.00"), spent).IsZero())
	assert.False(t, Available(dec("1.00"), spent))
}

func TestPercentage(t *testing.T) {
	assert.True(t, dec("50").Equal(Percentage(dec("50.00"), dec("100.00"))))
	assert.True(t, dec("33.33").Equal(Percentage(dec("1"), dec("3"))))
	assert.True(t, Percentage(dec("10"), decimal.Zero).IsZero())
	assert.True(t, Percentage(dec("10"), dec("-1")).IsZero())
}

func TestCampaignCeilings(t *testing.T) {
	brand := &Brand{DailyBudget: dec("1000.00"), MonthlyBudget: dec("5000.00")}
	override := dec("25.00")

	campaign := &Campaign{DailyBudget: &override}
	assert.True(t, override.Equal(campaign.DailyCeiling(brand)))
	assert.True(t, brand.MonthlyBudget.Equal(campaign.MonthlyCeiling(brand)))

	inherit := &Campaign{}
	assert.True(t, brand.DailyBudget.Equal(inherit.DailyCeiling(brand)))
}

func TestDayAndMonthStart(t *testing.T) {
	at := time.Date(2024, 3, 17, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC), Day(at))
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), MonthStart(at))
}
