package spending

import (
	"context"
	"fmt"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-guard-api/infrastructure/repository"
	"github.com/vfg2006/budget-guard-api/internal/domain"
	"github.com/vfg2006/budget-guard-api/internal/usecases/enforcing"
	"github.com/vfg2006/budget-guard-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

type SpendService interface {
	RecordSpend(ctx context.Context, request *domain.RecordSpendRequest) (*domain.RecordSpendResult, error)
	CampaignSpend(ctx context.Context, campaignID string, date string) (*domain.CampaignSpendSummary, error)
	BrandSummary(ctx context.Context, brandID string) (*domain.BrandSpendSummary, error)
	AllBrandsSummary(ctx context.Context) ([]*domain.BrandSpendSummary, error)
	BrandsWithBudgetIssues(ctx context.Context) ([]*domain.BrandSpendSummary, error)
	SpendReport(ctx context.Context, request domain.SpendReportRequest) (*domain.SpendReport, error)
	TotalSummary(ctx context.Context) (*domain.TotalSpendSummary, error)
	BudgetAlerts(ctx context.Context, thresholdPercent int) (*domain.BudgetAlertReport, error)
	CleanupOldSpend(ctx context.Context, daysToKeep int) (*domain.CleanupReport, error)
}

type Service struct {
	spends    repository.SpendRepository
	campaigns repository.CampaignRepository
	brands    repository.BrandRepository
	snapshots repository.SnapshotRepository
	enforcer  enforcing.Enforcer
	clock     func() time.Time
}

func NewService(
	spends repository.SpendRepository,
	campaigns repository.CampaignRepository,
	brands repository.BrandRepository,
	snapshots repository.SnapshotRepository,
	enforcer enforcing.Enforcer,
	clock func() time.Time,
) *Service {
	return &Service{
		spends:    spends,
		campaigns: campaigns,
		brands:    brands,
		snapshots: snapshots,
		enforcer:  enforcer,
		clock:     clock,
	}
}

var hundred = decimal.NewFromInt(100)

const maxDescriptionLength = 500

// maxSpendAmount bounds a single entry; the day's accumulated total is checked by the store.
var maxSpendAmount = decimal.RequireFromString("99999999.99")

// RecordSpend accumulates spend into the campaign's entry for the day, then
// pauses the campaign if the new totals require it.
func (s *Service) RecordSpend(ctx context.Context, request *domain.RecordSpendRequest) (*domain.RecordSpendResult, error) {
	if request.CampaignID == "" {
		return nil, domain.NewInvalidInputError("campaign_id is required")
	}
	if !request.Amount.IsPositive() {
		return nil, domain.NewInvalidInputError("amount must be positive")
	}
	if !request.Amount.Equal(request.Amount.Round(2)) {
		return nil, domain.NewInvalidFormatError("amount supports at most two decimal places")
	}
	if request.Amount.GreaterThan(maxSpendAmount) {
		return nil, domain.NewInvalidInputError("amount exceeds " + maxSpendAmount.String())
	}
	if utf8.RuneCountInString(request.Description) > maxDescriptionLength {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("description must have at most %d characters", maxDescriptionLength))
	}

	now := s.clock()
	date, err := utils.ParseDate(request.Date, now.Location(), domain.Day(now))
	if err != nil {
		return nil, domain.NewInvalidFormatError("date must be YYYY-MM-DD")
	}

	campaign, err := s.campaigns.GetByID(ctx, request.CampaignID)
	if err != nil {
		return nil, errors.Wrap(domain.AsStorageError(err), "loading campaign")
	}
	if campaign == nil {
		return nil, domain.NewNotFoundError("campaign", request.CampaignID)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "generating spend id")
	}

	entry := &domain.SpendEntry{
		ID:          id,
		CampaignID:  campaign.ID,
		Amount:      request.Amount,
		Date:        date,
		Description: request.Description,
	}
	if err := s.spends.Record(ctx, entry); err != nil {
		return nil, errors.Wrap(domain.AsStorageError(err), "recording spend")
	}

	result := &domain.RecordSpendResult{
		Entry:        entry,
		CampaignName: campaign.Name,
	}

	// The entry is committed at this point; a failed post-check is left to the next status pass.
	shouldPause, wasPaused, err := s.enforcer.PauseIfRequired(ctx, campaign.ID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"error":       err,
		}).Error("Spend recorded but post-check failed")
		return result, nil
	}

	result.ShouldPause = shouldPause
	result.WasPaused = wasPaused

	if wasPaused {
		logrus.WithFields(logrus.Fields{
			"campaign_id":   campaign.ID,
			"campaign_name": campaign.Name,
			"amount":        request.Amount.StringFixed(2),
		}).Info("Campaign paused after spend update")
	}

	return result, nil
}

func (s *Service) CampaignSpend(ctx context.Context, campaignID string, date string) (*domain.CampaignSpendSummary, error) {
	now := s.clock()
	day, err := utils.ParseDate(date, now.Location(), domain.Day(now))
	if err != nil {
		return nil, domain.NewInvalidFormatError("date must be YYYY-MM-DD")
	}

	campaign, err := s.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return nil, errors.Wrap(domain.AsStorageError(err), "loading campaign")
	}
	if campaign == nil {
		return nil, domain.NewNotFoundError("campaign", campaignID)
	}

	daily, err := s.spends.SumByCampaign(ctx, campaignID, day)
	if err != nil {
		return nil, errors.Wrap(domain.AsStorageError(err), "summing campaign daily spend")
	}
	monthly, err := s.spends.SumByCampaignMonth(ctx, campaignID, day.Year(), day.Month())
	if err != nil {
		return nil, errors.Wrap(domain.AsStorageError(err), "summing campaign monthly spend")
	}

	return &domain.CampaignSpendSummary{
		CampaignID:   campaign.ID,
		CampaignName: campaign.Name,
		Date:         day.Format(domain.DateLayout),
		DailySpend:   daily,
		MonthlySpend: monthly,
	}, nil
}

func (s *Service) BrandSummary(ctx context.Context, brandID string) (*domain.BrandSpendSummary, error) {
	brand, err := s.brands.GetByID(ctx, brandID)
	if err != nil {
		return nil, errors.Wrap(domain.AsStorageError(err), "loading brand")
	}
	if brand == nil {
		return nil, domain.NewNotFoundError("brand", brandID)
	}

	now := s.clock()
	daily, err := s.spends.SumByBrand(ctx, brandID, domain.Day(now))
	if err != nil {
		return nil, errors.Wrap(domain.AsStorageError(err), "summing brand daily spend")
	}
	monthly, err := s.spends.SumByBrandMonth(ctx, brandID, now.Year(), now.Month())
	if err != nil {
		return nil, errors.Wrap(domain.AsStorageError(err), "summing brand monthly spend")
	}

	running := true
	total, err := s.campaigns.Count(ctx, domain.CampaignFilter{BrandID: brandID})
	if err != nil {
		return nil, errors.Wrap(domain.AsStorageError(err), "counting campaigns")
	}
	active, err := s.campaigns.Count(ctx, domain.CampaignFilter{BrandID: brandID, IsActive: &running})
	if err != nil {
		return nil, errors.Wrap(domain.AsStorageError(err), "counting active campaigns")
	}

	return summarize(brand, domain.SpendTotals{Daily: daily, Monthly: monthly}, active, total), nil
}

func (s *Service) AllBrandsSummary(ctx context.Context) ([]*domain.BrandSpendSummary, error) {
	snapshot, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]*domain.BrandSpendSummary, 0, len(snapshot.Brands))
	for _, brand := range sortedBrands(snapshot) {
		summaries = append(summaries, summaryFromSnapshot(snapshot, brand))
	}
	return summaries, nil
}

// BrandsWithBudgetIssues lists active brands whose daily or monthly budget is exhausted.
func (s *Service) BrandsWithBudgetIssues(ctx context.Context) ([]*domain.BrandSpendSummary, error) {
	snapshot, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.BrandSpendSummary, 0)
	for _, brand := range snapshot.ActiveBrands() {
		summary := summaryFromSnapshot(snapshot, brand)
		if !summary.HasDailyBudget || !summary.HasMonthlyBudget {
			out = append(out, summary)
		}
	}
	return out, nil
}

// SpendReport lists entries in [start, end]. Missing bounds default to the
// current month start and today.
func (s *Service) SpendReport(ctx context.Context, request domain.SpendReportRequest) (*domain.SpendReport, error) {
	now := s.clock()

	start, err := utils.ParseDate(request.StartDate, now.Location(), domain.MonthStart(now))
	if err != nil {
		return nil, domain.NewInvalidFormatError("start_date must be YYYY-MM-DD")
	}
	end, err := utils.ParseDate(request.EndDate, now.Location(), domain.Day(now))
	if err != nil {
		return nil, domain.NewInvalidFormatError("end_date must be YYYY-MM-DD")
	}
	if start.After(end) {
		return nil, domain.NewInvalidInputError("start_date must not be after end_date")
	}

	records, err := s.spends.ListByDateRange(ctx, domain.SpendFilter{
		StartDate:  start,
		EndDate:    end,
		CampaignID: request.CampaignID,
		BrandID:    request.BrandID,
	})
	if err != nil {
		return nil, errors.Wrap(domain.AsStorageError(err), "listing spend")
	}

	total := decimal.Zero
	for _, record := range records {
		total = total.Add(record.Amount)
	}

	return &domain.SpendReport{
		StartDate:    start.Format(domain.DateLayout),
		EndDate:      end.Format(domain.DateLayout),
		CampaignID:   request.CampaignID,
		BrandID:      request.BrandID,
		TotalRecords: len(records),
		TotalAmount:  total,
		Spends:       records,
	}, nil
}

func (s *Service) TotalSummary(ctx context.Context) (*domain.TotalSpendSummary, error) {
	today := domain.Day(s.clock())

	totals, err := s.spends.Totals(ctx, today)
	if err != nil {
		return nil, errors.Wrap(domain.AsStorageError(err), "summing total spend")
	}

	running := true
	totalCampaigns, err := s.campaigns.Count(ctx, domain.CampaignFilter{})
	if err != nil {
		return nil, errors.Wrap(domain.AsStorageError(err), "counting campaigns")
	}
	activeCampaigns, err := s.campaigns.Count(ctx, domain.CampaignFilter{IsActive: &running})
	if err != nil {
		return nil, errors.Wrap(domain.AsStorageError(err), "counting active campaigns")
	}
	activeBrands, err := s.brands.List(ctx, true)
	if err != nil {
		return nil, errors.Wrap(domain.AsStorageError(err), "listing active brands")
	}

	return &domain.TotalSpendSummary{
		Date:              today.Format(domain.DateLayout),
		TotalDailySpend:   totals.Daily,
		TotalMonthlySpend: totals.Monthly,
		TotalCampaigns:    totalCampaigns,
		ActiveCampaigns:   activeCampaigns,
		ActiveBrands:      len(activeBrands),
	}, nil
}

// BudgetAlerts reports active brands and running campaigns whose utilization
// reached thresholdPercent. Utilization of 100% or more is high severity.
func (s *Service) BudgetAlerts(ctx context.Context, thresholdPercent int) (*domain.BudgetAlertReport, error) {
	if thresholdPercent <= 0 || thresholdPercent > 100 {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("threshold must be within 1..100, got %d", thresholdPercent))
	}
	threshold := decimal.NewFromInt(int64(thresholdPercent))

	snapshot, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	report := &domain.BudgetAlertReport{
		Timestamp: snapshot.TakenAt,
		Alerts:    make([]*domain.BudgetAlert, 0),
	}

	check := func(alertType domain.AlertType, spent, ceiling decimal.Decimal, brand *domain.Brand, campaign *domain.Campaign) {
		percentage := domain.Percentage(spent, ceiling)
		if percentage.LessThan(threshold) {
			return
		}

		alert := &domain.BudgetAlert{
			Type:       alertType,
			BrandID:    brand.ID,
			BrandName:  brand.Name,
			Percentage: percentage,
			Severity:   domain.SeverityMedium,
		}
		if percentage.GreaterThanOrEqual(hundred) {
			alert.Severity = domain.SeverityHigh
		}
		if campaign != nil {
			alert.CampaignID = campaign.ID
			alert.CampaignName = campaign.Name
		}
		report.Add(alert)
	}

	for _, brand := range snapshot.ActiveBrands() {
		brandSpend := snapshot.BrandSpend(brand.ID)
		check(domain.AlertBrandDailyBudget, brandSpend.Daily, brand.DailyBudget, brand, nil)
		check(domain.AlertBrandMonthlyBudget, brandSpend.Monthly, brand.MonthlyBudget, brand, nil)

		for _, campaign := range snapshot.BrandCampaigns(brand.ID) {
			if !campaign.IsActive {
				continue
			}
			campaignSpend := snapshot.CampaignSpend(campaign.ID)
			check(domain.AlertCampaignDailyBudget, campaignSpend.Daily, campaign.DailyCeiling(brand), brand, campaign)
			check(domain.AlertCampaignMonthlyBudget, campaignSpend.Monthly, campaign.MonthlyCeiling(brand), brand, campaign)
		}
	}

	return report, nil
}

// CleanupOldSpend deletes entries older than daysToKeep. The cutoff never
// passes the current month start, so month-to-date totals are unaffected.
func (s *Service) CleanupOldSpend(ctx context.Context, daysToKeep int) (*domain.CleanupReport, error) {
	if daysToKeep <= 0 {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("days to keep must be positive, got %d", daysToKeep))
	}

	now := s.clock()
	today := domain.Day(now)
	cutoff := today.AddDate(0, 0, -daysToKeep)
	if monthStart := domain.MonthStart(today); cutoff.After(monthStart) {
		cutoff = monthStart
	}

	deleted, err := s.spends.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return nil, errors.Wrap(domain.AsStorageError(err), "deleting old spend")
	}

	return &domain.CleanupReport{
		Timestamp:      now,
		CutoffDate:     cutoff.Format(domain.DateLayout),
		RecordsDeleted: deleted,
	}, nil
}

func (s *Service) load(ctx context.Context) (*domain.Snapshot, error) {
	snapshot, err := s.snapshots.Load(ctx, s.clock())
	if err != nil {
		return nil, errors.Wrap(domain.AsStorageError(err), "loading budget snapshot")
	}
	return snapshot, nil
}

func sortedBrands(snapshot *domain.Snapshot) []*domain.Brand {
	brands := make([]*domain.Brand, 0, len(snapshot.Brands))
	for _, b := range snapshot.Brands {
		brands = append(brands, b)
	}
	sort.Slice(brands, func(i, j int) bool { return brands[i].Name < brands[j].Name })
	return brands
}

func summaryFromSnapshot(snapshot *domain.Snapshot, brand *domain.Brand) *domain.BrandSpendSummary {
	campaigns := snapshot.BrandCampaigns(brand.ID)
	active := 0
	for _, c := range campaigns {
		if c.IsActive {
			active++
		}
	}
	return summarize(brand, snapshot.BrandSpend(brand.ID), active, len(campaigns))
}

func summarize(brand *domain.Brand, spend domain.SpendTotals, active, total int) *domain.BrandSpendSummary {
	return &domain.BrandSpendSummary{
		BrandID:              brand.ID,
		BrandName:            brand.Name,
		DailyBudget:          brand.DailyBudget,
		MonthlyBudget:        brand.MonthlyBudget,
		DailySpend:           spend.Daily,
		MonthlySpend:         spend.Monthly,
		DailyRemaining:       domain.Remaining(brand.DailyBudget, spend.Daily),
		MonthlyRemaining:     domain.Remaining(brand.MonthlyBudget, spend.Monthly),
		DailyPercentage:      domain.Percentage(spend.Daily, brand.DailyBudget),
		MonthlyPercentage:    domain.Percentage(spend.Monthly, brand.MonthlyBudget),
		HasDailyBudget:       domain.Available(brand.DailyBudget, spend.Daily),
		HasMonthlyBudget:     domain.Available(brand.MonthlyBudget, spend.Monthly),
		ActiveCampaignsCount: active,
		TotalCampaignsCount:  total,
	}
}
