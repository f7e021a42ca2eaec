package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/budget-guard-api/infrastructure/repository"
	"github.com/vfg2006/budget-guard-api/infrastructure/repository/testutil"
	"github.com/vfg2006/budget-guard-api/internal/domain"
	"github.com/vfg2006/budget-guard-api/internal/usecases/enforcing"
)

type repositories struct {
	brands    repository.BrandRepository
	campaigns repository.CampaignRepository
	schedules repository.ScheduleRepository
	spends    repository.SpendRepository
	snapshots repository.SnapshotRepository
}

func setup(t *testing.T) repositories {
	testDB := testutil.SetupTestDatabase(t)

	return repositories{
		brands:    repository.NewBrandRepository(testDB.Conn),
		campaigns: repository.NewCampaignRepository(testDB.Conn),
		schedules: repository.NewScheduleRepository(testDB.Conn),
		spends:    repository.NewSpendRepository(testDB.Conn),
		snapshots: repository.NewSnapshotRepository(testDB.Conn),
	}
}

func mustBrand(t *testing.T, repos repositories, id, name string, daily, monthly string) *domain.Brand {
	brand := &domain.Brand{
		ID:            id,
		Name:          name,
		DailyBudget:   decimal.RequireFromString(daily),
		MonthlyBudget: decimal.RequireFromString(monthly),
		IsActive:      true,
	}
	require.NoError(t, repos.brands.Create(context.Background(), brand))
	return brand
}

func mustCampaign(t *testing.T, repos repositories, id, brandID string, active bool, scheduleID *string) *domain.Campaign {
	campaign := &domain.Campaign{
		ID:                   id,
		Name:                 "Campaign " + id,
		BrandID:              brandID,
		Status:               domain.CampaignStatusActive,
		IsActive:             active,
		DaypartingScheduleID: scheduleID,
	}
	require.NoError(t, repos.campaigns.Create(context.Background(), campaign))
	return campaign
}

func TestRepositories_Integration(t *testing.T) {
	repos := setup(t)
	ctx := context.Background()

	t.Run("Brand names are unique", func(t *testing.T) {
		mustBrand(t, repos, "brand-acme", "Acme", "100.00", "2000.00")

		err := repos.brands.Create(ctx, &domain.Brand{
			ID:            "brand-dup",
			Name:          "Acme",
			DailyBudget:   decimal.NewFromInt(1),
			MonthlyBudget: decimal.NewFromInt(1),
		})
		assert.True(t, errors.Is(err, domain.ErrConflict))

		missing, err := repos.brands.GetByID(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("Campaign for a missing brand", func(t *testing.T) {
		err := repos.campaigns.Create(ctx, &domain.Campaign{
			ID:      "orphan",
			Name:    "Orphan",
			BrandID: "nope",
			Status:  domain.CampaignStatusDraft,
		})
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("Transitions are compare-and-set", func(t *testing.T) {
		mustBrand(t, repos, "brand-cas", "CAS", "50.00", "500.00")
		mustCampaign(t, repos, "cas-1", "brand-cas", false, nil)

		activate := []domain.Transition{{CampaignID: "cas-1", From: false, To: true}}

		applied, err := repos.campaigns.ApplyTransitions(ctx, activate)
		require.NoError(t, err)
		assert.Len(t, applied, 1)

		// The stored flag no longer matches From, so a replay loses.
		applied, err = repos.campaigns.ApplyTransitions(ctx, activate)
		require.NoError(t, err)
		assert.Empty(t, applied)

		campaign, err := repos.campaigns.GetByID(ctx, "cas-1")
		require.NoError(t, err)
		assert.True(t, campaign.IsActive)
	})

	t.Run("Spend accumulates per campaign and day", func(t *testing.T) {
		mustBrand(t, repos, "brand-spend", "Spendy", "100.00", "1000.00")
		mustCampaign(t, repos, "spend-1", "brand-spend", true, nil)
		mustCampaign(t, repos, "spend-2", "brand-spend", true, nil)

		day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
		record := func(id, campaignID string, amount string, date time.Time) *domain.SpendEntry {
			entry := &domain.SpendEntry{
				ID:         id,
				CampaignID: campaignID,
				Amount:     decimal.RequireFromString(amount),
				Date:       date,
			}
			require.NoError(t, repos.spends.Record(ctx, entry))
			return entry
		}

		first := record("s1", "spend-1", "10.25", day)
		second := record("s2", "spend-1", "4.75", day)
		assert.Equal(t, first.ID, second.ID)
		assert.True(t, second.Amount.Equal(decimal.RequireFromString("15.00")))

		record("s3", "spend-2", "20.00", day)
		record("s4", "spend-2", "5.00", day.AddDate(0, 0, -3))
		record("s5", "spend-2", "7.00", day.AddDate(0, -1, 0))

		daily, err := repos.spends.SumByCampaign(ctx, "spend-1", day)
		require.NoError(t, err)
		assert.True(t, daily.Equal(decimal.NewFromInt(15)))

		brandDaily, err := repos.spends.SumByBrand(ctx, "brand-spend", day)
		require.NoError(t, err)
		assert.True(t, brandDaily.Equal(decimal.NewFromInt(35)))

		brandMonthly, err := repos.spends.SumByBrandMonth(ctx, "brand-spend", 2024, time.January)
		require.NoError(t, err)
		assert.True(t, brandMonthly.Equal(decimal.NewFromInt(40)))

		none, err := repos.spends.SumByCampaignMonth(ctx, "spend-1", 2023, time.June)
		require.NoError(t, err)
		assert.True(t, none.IsZero())

		records, err := repos.spends.ListByDateRange(ctx, domain.SpendFilter{
			StartDate: day.AddDate(0, 0, -7),
			EndDate:   day,
			BrandID:   "brand-spend",
		})
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "2024-01-15", records[0].Date)
		assert.Equal(t, "Spendy", records[0].BrandName)

		deleted, err := repos.spends.DeleteOlderThan(ctx, domain.MonthStart(day))
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)
	})

	t.Run("Snapshot carries ledger totals", func(t *testing.T) {
		at := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

		snapshot, err := repos.snapshots.Load(ctx, at, "brand-spend")
		require.NoError(t, err)

		assert.Len(t, snapshot.Brands, 1)
		assert.Len(t, snapshot.Campaigns, 2)
		assert.True(t, snapshot.CampaignSpend("spend-2").Daily.Equal(decimal.NewFromInt(20)))
		assert.True(t, snapshot.BrandSpend("brand-spend").Monthly.Equal(decimal.NewFromInt(40)))
	})
}

func TestEnforceDayparting_Integration(t *testing.T) {
	repos := setup(t)
	ctx := context.Background()

	weekdays := &domain.DaypartingSchedule{
		ID:         "office",
		Name:       "Office hours",
		StartHour:  9,
		EndHour:    17,
		DaysOfWeek: []int{0, 1, 2, 3, 4},
		IsActive:   true,
	}
	require.NoError(t, repos.schedules.Create(ctx, weekdays))

	mustBrand(t, repos, "brand-dp", "Daypart", "100.00", "1000.00")
	mustCampaign(t, repos, "dp-1", "brand-dp", true, &weekdays.ID)
	mustCampaign(t, repos, "dp-2", "brand-dp", true, nil)

	// Saturday morning is outside the weekday window.
	saturday := time.Date(2024, 1, 13, 10, 0, 0, 0, time.UTC)
	enforcer := enforcing.NewService(repos.snapshots, repos.campaigns, func() time.Time { return saturday })

	report, err := enforcer.EnforceDayparting(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.CampaignsChecked)
	assert.Equal(t, 1, report.CampaignsPaused)

	paused, err := repos.campaigns.GetByID(ctx, "dp-1")
	require.NoError(t, err)
	assert.False(t, paused.IsActive)

	untouched, err := repos.campaigns.GetByID(ctx, "dp-2")
	require.NoError(t, err)
	assert.True(t, untouched.IsActive)

	counts, err := repos.schedules.CountCampaigns(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, counts["office"])

	// A second pass finds nothing left to pause.
	report, err = enforcer.EnforceDayparting(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, report.CampaignsPaused)
}
