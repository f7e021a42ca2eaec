package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Brand struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	DailyBudget   decimal.Decimal `json:"daily_budget"`
	MonthlyBudget decimal.Decimal `json:"monthly_budget"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type CreateBrandRequest struct {
	Name          string          `json:"name"`
	DailyBudget   decimal.Decimal `json:"daily_budget"`
	MonthlyBudget decimal.Decimal `json:"monthly_budget"`
}

type UpdateBrandBudgetsRequest struct {
	DailyBudget   *decimal.Decimal `json:"daily_budget,omitempty"`
	MonthlyBudget *decimal.Decimal `json:"monthly_budget,omitempty"`
}

// BrandSpendSummary is the budget position of a brand for the current day and month.
type BrandSpendSummary struct {
	BrandID              string          `json:"brand_id"`
	BrandName            string          `json:"brand_name"`
	DailyBudget          decimal.Decimal `json:"daily_budget"`
	MonthlyBudget        decimal.Decimal `json:"monthly_budget"`
	DailySpend           decimal.Decimal `json:"daily_spend"`
	MonthlySpend         decimal.Decimal `json:"monthly_spend"`
	DailyRemaining       decimal.Decimal `json:"daily_remaining"`
	MonthlyRemaining     decimal.Decimal `json:"monthly_remaining"`
	DailyPercentage      decimal.Decimal `json:"daily_percentage"`
	MonthlyPercentage    decimal.Decimal `json:"monthly_percentage"`
	HasDailyBudget       bool            `json:"has_daily_budget"`
	HasMonthlyBudget     bool            `json:"has_monthly_budget"`
	ActiveCampaignsCount int             `json:"active_campaigns_count"`
	TotalCampaignsCount  int             `json:"total_campaigns_count"`
}

// BrandActivationResult pairs the updated brand with the campaign changes its toggle caused.
type BrandActivationResult struct {
	Brand       *Brand             `json:"brand"`
	Enforcement *EnforcementReport `json:"enforcement,omitempty"`
}
