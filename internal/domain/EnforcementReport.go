package domain

import "time"

type EnforcementPass string

const (
	PassDayparting   EnforcementPass = "dayparting"
	PassStatuses     EnforcementPass = "statuses"
	PassDailyReset   EnforcementPass = "daily_reset"
	PassMonthlyReset EnforcementPass = "monthly_reset"
	PassBrandRefresh EnforcementPass = "brand_reactivation"
	PassBrandPause   EnforcementPass = "brand_deactivation"
)

type CampaignChange struct {
	CampaignID   string `json:"campaign_id"`
	CampaignName string `json:"campaign_name"`
	BrandName    string `json:"brand_name"`
	ScheduleName string `json:"schedule_name,omitempty"`
}

// EnforcementReport describes what one pass changed. It is observational only.
type EnforcementReport struct {
	Pass               EnforcementPass   `json:"pass"`
	Timestamp          time.Time         `json:"timestamp"`
	BrandsChecked      int               `json:"brands_checked,omitempty"`
	CampaignsChecked   int               `json:"campaigns_checked"`
	CampaignsActivated int               `json:"campaigns_activated"`
	CampaignsPaused    int               `json:"campaigns_paused"`
	Activated          []*CampaignChange `json:"activated_campaigns"`
	Paused             []*CampaignChange `json:"paused_campaigns"`
}

func NewEnforcementReport(pass EnforcementPass, at time.Time) *EnforcementReport {
	return &EnforcementReport{
		Pass:      pass,
		Timestamp: at,
		Activated: make([]*CampaignChange, 0),
		Paused:    make([]*CampaignChange, 0),
	}
}

func (r *EnforcementReport) AddActivated(change *CampaignChange) {
	r.Activated = append(r.Activated, change)
	r.CampaignsActivated = len(r.Activated)
}

func (r *EnforcementReport) AddPaused(change *CampaignChange) {
	r.Paused = append(r.Paused, change)
	r.CampaignsPaused = len(r.Paused)
}

func (r *EnforcementReport) Changed() bool {
	return r.CampaignsActivated > 0 || r.CampaignsPaused > 0
}
