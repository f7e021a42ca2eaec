package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
)

func (s CampaignStatus) IsValid() bool {
	switch s {
	case CampaignStatusDraft, CampaignStatusActive, CampaignStatusPaused, CampaignStatusCompleted:
		return true
	}
	return false
}

// Campaign separates the declared Status (intent) from IsActive (actual run state).
// Only the enforcement engine flips IsActive.
type Campaign struct {
	ID                   string           `json:"id"`
	Name                 string           `json:"name"`
	BrandID              string           `json:"brand_id"`
	Status               CampaignStatus   `json:"status"`
	IsActive             bool             `json:"is_active"`
	DailyBudget          *decimal.Decimal `json:"daily_budget"`
	MonthlyBudget        *decimal.Decimal `json:"monthly_budget"`
	DaypartingScheduleID *string          `json:"dayparting_schedule_id"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
}

// DailyCeiling returns the campaign override when set, else the brand ceiling.
func (c *Campaign) DailyCeiling(brand *Brand) decimal.Decimal {
	if c.DailyBudget != nil {
		return *c.DailyBudget
	}
	return brand.DailyBudget
}

func (c *Campaign) MonthlyCeiling(brand *Brand) decimal.Decimal {
	if c.MonthlyBudget != nil {
		return *c.MonthlyBudget
	}
	return brand.MonthlyBudget
}

func (c *Campaign) HasSchedule() bool {
	return c.DaypartingScheduleID != nil && *c.DaypartingScheduleID != ""
}

type CampaignFilter struct {
	BrandID     string
	Statuses    []CampaignStatus
	IsActive    *bool
	HasSchedule *bool
}

type CreateCampaignRequest struct {
	Name                 string           `json:"name"`
	BrandID              string           `json:"brand_id"`
	Status               CampaignStatus   `json:"status"`
	DailyBudget          *decimal.Decimal `json:"daily_budget,omitempty"`
	MonthlyBudget        *decimal.Decimal `json:"monthly_budget,omitempty"`
	DaypartingScheduleID *string          `json:"dayparting_schedule_id,omitempty"`
}

type UpdateCampaignRequest struct {
	ID                   string           `json:"-"`
	Status               *CampaignStatus  `json:"status,omitempty"`
	DailyBudget          *decimal.Decimal `json:"daily_budget,omitempty"`
	MonthlyBudget        *decimal.Decimal `json:"monthly_budget,omitempty"`
	ClearDailyBudget     bool             `json:"clear_daily_budget,omitempty"`
	ClearMonthlyBudget   bool             `json:"clear_monthly_budget,omitempty"`
	DaypartingScheduleID *string          `json:"dayparting_schedule_id,omitempty"`
	ClearSchedule        bool             `json:"clear_schedule,omitempty"`
}

// Transition is a compare-and-set request on a campaign run flag.
type Transition struct {
	CampaignID string
	From       bool
	To         bool
}

// CampaignStatusCheck exposes every sub-check behind the activation decision.
type CampaignStatusCheck struct {
	CampaignID            string          `json:"campaign_id"`
	CampaignName          string          `json:"campaign_name"`
	BrandName             string          `json:"brand_name"`
	Status                CampaignStatus  `json:"status"`
	IsActive              bool            `json:"is_active"`
	HasDailyBudget        bool            `json:"has_daily_budget"`
	HasMonthlyBudget      bool            `json:"has_monthly_budget"`
	BrandActive           bool            `json:"brand_active"`
	BrandHasDailyBudget   bool            `json:"brand_has_daily_budget"`
	BrandHasMonthlyBudget bool            `json:"brand_has_monthly_budget"`
	WithinDayparting      bool            `json:"within_dayparting"`
	ScheduleEnabled       *bool           `json:"schedule_enabled"`
	CanBeActivated        bool            `json:"can_be_activated"`
	ShouldBePaused        bool            `json:"should_be_paused"`
	FailedChecks          []string        `json:"failed_checks"`
	DailySpend            decimal.Decimal `json:"daily_spend"`
	MonthlySpend          decimal.Decimal `json:"monthly_spend"`
	DailyBudgetLimit      decimal.Decimal `json:"daily_budget_limit"`
	MonthlyBudgetLimit    decimal.Decimal `json:"monthly_budget_limit"`
	DailyRemaining        decimal.Decimal `json:"daily_remaining"`
	MonthlyRemaining      decimal.Decimal `json:"monthly_remaining"`
}
