package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AlertType string

const (
	AlertBrandDailyBudget      AlertType = "brand_daily_budget"
	AlertBrandMonthlyBudget    AlertType = "brand_monthly_budget"
	AlertCampaignDailyBudget   AlertType = "campaign_daily_budget"
	AlertCampaignMonthlyBudget AlertType = "campaign_monthly_budget"
)

type AlertSeverity string

const (
	SeverityMedium AlertSeverity = "medium"
	SeverityHigh   AlertSeverity = "high"
)

type BudgetAlert struct {
	Type         AlertType       `json:"type"`
	BrandID      string          `json:"brand_id"`
	BrandName    string          `json:"brand_name"`
	CampaignID   string          `json:"campaign_id,omitempty"`
	CampaignName string          `json:"campaign_name,omitempty"`
	Percentage   decimal.Decimal `json:"percentage"`
	Severity     AlertSeverity   `json:"severity"`
}

type BudgetAlertReport struct {
	Timestamp            time.Time      `json:"timestamp"`
	TotalAlerts          int            `json:"total_alerts"`
	HighSeverityAlerts   int            `json:"high_severity_alerts"`
	MediumSeverityAlerts int            `json:"medium_severity_alerts"`
	Alerts               []*BudgetAlert `json:"alerts"`
}

func (r *BudgetAlertReport) Add(alert *BudgetAlert) {
	r.Alerts = append(r.Alerts, alert)
	r.TotalAlerts++
	if alert.Severity == SeverityHigh {
		r.HighSeverityAlerts++
	} else {
		r.MediumSeverityAlerts++
	}
}
