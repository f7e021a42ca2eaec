package enforcing

import (
	"time"

	"github.com/vfg2006/budget-guard-api/internal/domain"
)

// Check names one condition of the activation decision.
type Check string

const (
	CheckStatusActive          Check = "status_active"
	CheckBrandActive           Check = "brand_active"
	CheckBrandDailyBudget      Check = "brand_daily_budget"
	CheckBrandMonthlyBudget    Check = "brand_monthly_budget"
	CheckCampaignDailyBudget   Check = "campaign_daily_budget"
	CheckCampaignMonthlyBudget Check = "campaign_monthly_budget"
	CheckWithinDayparting      Check = "within_dayparting"
)

// Subject is everything needed to judge one campaign at one instant.
type Subject struct {
	Campaign      *domain.Campaign
	Brand         *domain.Brand
	Schedule      *domain.DaypartingSchedule
	CampaignSpend domain.SpendTotals
	BrandSpend    domain.SpendTotals
	At            time.Time
}

// SubjectFor builds the subject of a campaign from a snapshot.
func SubjectFor(snapshot *domain.Snapshot, campaign *domain.Campaign) Subject {
	return Subject{
		Campaign:      campaign,
		Brand:         snapshot.Brand(campaign),
		Schedule:      snapshot.Schedule(campaign),
		CampaignSpend: snapshot.CampaignSpend(campaign.ID),
		BrandSpend:    snapshot.BrandSpend(campaign.BrandID),
		At:            snapshot.TakenAt,
	}
}

type predicate func(s Subject) bool

var predicates = map[Check]predicate{
	CheckStatusActive: func(s Subject) bool {
		return s.Campaign.Status == domain.CampaignStatusActive
	},
	CheckBrandActive: func(s Subject) bool {
		return s.Brand.IsActive
	},
	CheckBrandDailyBudget: func(s Subject) bool {
		return domain.Available(s.Brand.DailyBudget, s.BrandSpend.Daily)
	},
	CheckBrandMonthlyBudget: func(s Subject) bool {
		return domain.Available(s.Brand.MonthlyBudget, s.BrandSpend.Monthly)
	},
	CheckCampaignDailyBudget: func(s Subject) bool {
		return domain.Available(s.Campaign.DailyCeiling(s.Brand), s.CampaignSpend.Daily)
	},
	CheckCampaignMonthlyBudget: func(s Subject) bool {
		return domain.Available(s.Campaign.MonthlyCeiling(s.Brand), s.CampaignSpend.Monthly)
	},
	CheckWithinDayparting: func(s Subject) bool {
		if s.Schedule == nil {
			return true
		}
		return s.Schedule.IsWithinWindow(s.At)
	},
}

// activationChecks must all pass for a campaign to run.
var activationChecks = []Check{
	CheckStatusActive,
	CheckBrandActive,
	CheckBrandDailyBudget,
	CheckBrandMonthlyBudget,
	CheckCampaignDailyBudget,
	CheckCampaignMonthlyBudget,
	CheckWithinDayparting,
}

// pauseChecks force a pause when any fails. Declared status is not among them.
var pauseChecks = []Check{
	CheckCampaignDailyBudget,
	CheckCampaignMonthlyBudget,
	CheckBrandDailyBudget,
	CheckBrandMonthlyBudget,
	CheckWithinDayparting,
}

func Passes(check Check, s Subject) bool {
	return predicates[check](s)
}

func allPass(checks []Check, s Subject) bool {
	for _, c := range checks {
		if !Passes(c, s) {
			return false
		}
	}
	return true
}

func anyFails(checks []Check, s Subject) bool {
	return !allPass(checks, s)
}

func CanActivate(s Subject) bool {
	return allPass(activationChecks, s)
}

func MustPause(s Subject) bool {
	return anyFails(pauseChecks, s)
}

// FailedChecks lists the activation checks that do not hold, in evaluation order.
func FailedChecks(s Subject) []Check {
	failed := make([]Check, 0)
	for _, c := range activationChecks {
		if !Passes(c, s) {
			failed = append(failed, c)
		}
	}
	return failed
}

// StatusCheck expands every sub-check of the decision for diagnostics.
func StatusCheck(s Subject) *domain.CampaignStatusCheck {
	dailyLimit := s.Campaign.DailyCeiling(s.Brand)
	monthlyLimit := s.Campaign.MonthlyCeiling(s.Brand)

	failed := FailedChecks(s)
	failedNames := make([]string, 0, len(failed))
	for _, c := range failed {
		failedNames = append(failedNames, string(c))
	}

	var scheduleEnabled *bool
	if s.Schedule != nil {
		enabled := s.Schedule.IsActive
		scheduleEnabled = &enabled
	}

	return &domain.CampaignStatusCheck{
		CampaignID:            s.Campaign.ID,
		CampaignName:          s.Campaign.Name,
		BrandName:             s.Brand.Name,
		Status:                s.Campaign.Status,
		IsActive:              s.Campaign.IsActive,
		HasDailyBudget:        Passes(CheckCampaignDailyBudget, s),
		HasMonthlyBudget:      Passes(CheckCampaignMonthlyBudget, s),
		BrandActive:           Passes(CheckBrandActive, s),
		BrandHasDailyBudget:   Passes(CheckBrandDailyBudget, s),
		BrandHasMonthlyBudget: Passes(CheckBrandMonthlyBudget, s),
		WithinDayparting:      Passes(CheckWithinDayparting, s),
		ScheduleEnabled:       scheduleEnabled,
		CanBeActivated:        CanActivate(s),
		ShouldBePaused:        MustPause(s),
		FailedChecks:          failedNames,
		DailySpend:            s.CampaignSpend.Daily,
		MonthlySpend:          s.CampaignSpend.Monthly,
		DailyBudgetLimit:      dailyLimit,
		MonthlyBudgetLimit:    monthlyLimit,
		DailyRemaining:        domain.Remaining(dailyLimit, s.CampaignSpend.Daily),
		MonthlyRemaining:      domain.Remaining(monthlyLimit, s.CampaignSpend.Monthly),
	}
}
