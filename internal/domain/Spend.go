package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

// SpendEntry holds the accumulated spend of one campaign on one day.
type SpendEntry struct {
	ID          string          `json:"id"`
	CampaignID  string          `json:"campaign_id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type SpendRecord struct {
	ID           string          `json:"id"`
	CampaignID   string          `json:"campaign_id"`
	CampaignName string          `json:"campaign_name"`
	BrandID      string          `json:"brand_id"`
	BrandName    string          `json:"brand_name"`
	Amount       decimal.Decimal `json:"amount"`
	Date         string          `json:"date"`
	Description  string          `json:"description"`
	CreatedAt    time.Time       `json:"created_at"`
}

type SpendFilter struct {
	StartDate  time.Time
	EndDate    time.Time
	CampaignID string
	BrandID    string
}

type RecordSpendRequest struct {
	CampaignID  string          `json:"campaign_id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date,omitempty"`
	Description string          `json:"description"`
}

type RecordSpendResult struct {
	Entry        *SpendEntry `json:"spend"`
	CampaignName string      `json:"campaign_name"`
	ShouldPause  bool        `json:"should_pause"`
	WasPaused    bool        `json:"was_paused"`
}

type SpendReport struct {
	StartDate    string          `json:"start_date"`
	EndDate      string          `json:"end_date"`
	CampaignID   string          `json:"campaign_id,omitempty"`
	BrandID      string          `json:"brand_id,omitempty"`
	TotalRecords int             `json:"total_records"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Spends       []*SpendRecord  `json:"spends"`
}

type TotalSpendSummary struct {
	Date              string          `json:"date"`
	TotalDailySpend   decimal.Decimal `json:"total_daily_spend"`
	TotalMonthlySpend decimal.Decimal `json:"total_monthly_spend"`
	TotalCampaigns    int             `json:"total_campaigns"`
	ActiveCampaigns   int             `json:"active_campaigns"`
	ActiveBrands      int             `json:"active_brands"`
}

type CleanupReport struct {
	Timestamp      time.Time `json:"timestamp"`
	CutoffDate     string    `json:"cutoff_date"`
	RecordsDeleted int64     `json:"records_deleted"`
}

// CampaignSpendSummary is the ledger position of one campaign on one day.
type CampaignSpendSummary struct {
	CampaignID   string          `json:"campaign_id"`
	CampaignName string          `json:"campaign_name"`
	Date         string          `json:"date"`
	DailySpend   decimal.Decimal `json:"daily_spend"`
	MonthlySpend decimal.Decimal `json:"monthly_spend"`
}

type SpendReportRequest struct {
	StartDate  string
	EndDate    string
	CampaignID string
	BrandID    string
}
