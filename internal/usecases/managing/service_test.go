package managing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/budget-guard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/budget-guard-api/internal/domain"
	enforcingMocks "github.com/vfg2006/budget-guard-api/internal/usecases/enforcing/mocks"
	"go.uber.org/mock/gomock"
)

// Monday 10:00
var now = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func strPtr(s string) *string {
	return &s
}

func statusPtr(s domain.CampaignStatus) *domain.CampaignStatus {
	return &s
}

type fixture struct {
	brands    *mocks.MockBrandRepository
	campaigns *mocks.MockCampaignRepository
	schedules *mocks.MockScheduleRepository
	enforcer  *enforcingMocks.MockEnforcer
	service   *Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		brands:    mocks.NewMockBrandRepository(ctrl),
		campaigns: mocks.NewMockCampaignRepository(ctrl),
		schedules: mocks.NewMockScheduleRepository(ctrl),
		enforcer:  enforcingMocks.NewMockEnforcer(ctrl),
	}
	f.service = NewService(f.brands, f.campaigns, f.schedules, f.enforcer, func() time.Time { return now })
	return f
}

func acme() *domain.Brand {
	return &domain.Brand{
		ID:            "b1",
		Name:          "Acme",
		DailyBudget:   dec("100.00"),
		MonthlyBudget: dec("3000.00"),
		IsActive:      true,
	}
}

func assertInvalid(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput), "got %v", err)
}

func TestService_CreateBrand(t *testing.T) {
	tests := []struct {
		name     string
		request  *domain.CreateBrandRequest
		setup    func(f *fixture)
		validate func(t *testing.T, brand *domain.Brand, err error)
	}{
		{
			name:    "Blank name",
			request: &domain.CreateBrandRequest{Name: "   ", DailyBudget: dec("1"), MonthlyBudget: dec("1")},
			setup:   func(f *fixture) {},
			validate: func(t *testing.T, brand *domain.Brand, err error) {
				assertInvalid(t, err)
			},
		},
		{
			name:    "Zero daily budget",
			request: &domain.CreateBrandRequest{Name: "Acme", DailyBudget: dec("0"), MonthlyBudget: dec("1")},
			setup:   func(f *fixture) {},
			validate: func(t *testing.T, brand *domain.Brand, err error) {
				assertInvalid(t, err)
			},
		},
		{
			name:    "Negative monthly budget",
			request: &domain.CreateBrandRequest{Name: "Acme", DailyBudget: dec("1"), MonthlyBudget: dec("-5")},
			setup:   func(f *fixture) {},
			validate: func(t *testing.T, brand *domain.Brand, err error) {
				assertInvalid(t, err)
			},
		},
		{
			name:    "Sub-cent budget",
			request: &domain.CreateBrandRequest{Name: "Acme", DailyBudget: dec("1.001"), MonthlyBudget: dec("1")},
			setup:   func(f *fixture) {},
			validate: func(t *testing.T, brand *domain.Brand, err error) {
				assertInvalid(t, err)
			},
		},
		{
			name:    "Budget above column precision",
			request: &domain.CreateBrandRequest{Name: "Acme", DailyBudget: dec("1"), MonthlyBudget: dec("100000000")},
			setup:   func(f *fixture) {},
			validate: func(t *testing.T, brand *domain.Brand, err error) {
				assertInvalid(t, err)
			},
		},
		{
			name:    "Duplicate name",
			request: &domain.CreateBrandRequest{Name: "Acme", DailyBudget: dec("100"), MonthlyBudget: dec("3000")},
			setup: func(f *fixture) {
				f.brands.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(domain.NewConflictError("brand", "already exists"))
			},
			validate: func(t *testing.T, brand *domain.Brand, err error) {
				assert.Nil(t, brand)
				assert.True(t, errors.Is(err, domain.ErrConflict))
			},
		},
		{
			name:    "Created active with a trimmed name",
			request: &domain.CreateBrandRequest{Name: " Acme ", DailyBudget: dec("100.00"), MonthlyBudget: dec("3000.00")},
			setup: func(f *fixture) {
				f.brands.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, brand *domain.Brand) error {
						assert.Len(t, brand.ID, 12)
						assert.Equal(t, "Acme", brand.Name)
						assert.True(t, brand.IsActive)
						return nil
					})
			},
			validate: func(t *testing.T, brand *domain.Brand, err error) {
				require.NoError(t, err)
				assert.Equal(t, "Acme", brand.Name)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			brand, err := f.service.CreateBrand(context.Background(), tt.request)
			tt.validate(t, brand, err)
		})
	}
}

func TestService_UpdateBrandBudgets(t *testing.T) {
	t.Run("Requires a field", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.UpdateBrandBudgets(context.Background(), "b1", &domain.UpdateBrandBudgetsRequest{})
		assertInvalid(t, err)
	})

	t.Run("Unknown brand", func(t *testing.T) {
		f := newFixture(t)
		f.brands.EXPECT().GetByID(gomock.Any(), "b9").Return(nil, nil)

		_, err := f.service.UpdateBrandBudgets(context.Background(), "b9",
			&domain.UpdateBrandBudgetsRequest{DailyBudget: decPtr("10")})
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("Only the given ceiling changes", func(t *testing.T) {
		f := newFixture(t)
		f.brands.EXPECT().GetByID(gomock.Any(), "b1").Return(acme(), nil)
		f.brands.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, brand *domain.Brand) error {
				assert.Equal(t, "150.00", brand.DailyBudget.StringFixed(2))
				assert.Equal(t, "3000.00", brand.MonthlyBudget.StringFixed(2))
				return nil
			})

		brand, err := f.service.UpdateBrandBudgets(context.Background(), "b1",
			&domain.UpdateBrandBudgetsRequest{DailyBudget: decPtr("150.00")})
		require.NoError(t, err)
		assert.Equal(t, "150.00", brand.DailyBudget.StringFixed(2))
	})
}

func TestService_SetBrandActive(t *testing.T) {
	tests := []struct {
		name     string
		active   bool
		setup    func(f *fixture)
		validate func(t *testing.T, result *domain.BrandActivationResult, err error)
	}{
		{
			name:   "Deactivation pauses every running campaign",
			active: false,
			setup: func(f *fixture) {
				f.brands.EXPECT().GetByID(gomock.Any(), "b1").Return(acme(), nil)
				f.brands.EXPECT().Update(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, brand *domain.Brand) error {
						assert.False(t, brand.IsActive)
						return nil
					})

				report := domain.NewEnforcementReport(domain.PassBrandPause, now)
				report.AddPaused(&domain.CampaignChange{CampaignID: "c1"})
				f.enforcer.EXPECT().DeactivateBrandCampaigns(gomock.Any(), "b1").Return(report, nil)
			},
			validate: func(t *testing.T, result *domain.BrandActivationResult, err error) {
				require.NoError(t, err)
				assert.False(t, result.Brand.IsActive)
				require.NotNil(t, result.Enforcement)
				assert.Equal(t, 1, result.Enforcement.CampaignsPaused)
			},
		},
		{
			name:   "Activation of an active brand still reconciles",
			active: true,
			setup: func(f *fixture) {
				f.brands.EXPECT().GetByID(gomock.Any(), "b1").Return(acme(), nil)
				f.enforcer.EXPECT().ReactivateBrandCampaigns(gomock.Any(), "b1").
					Return(domain.NewEnforcementReport(domain.PassBrandRefresh, now), nil)
			},
			validate: func(t *testing.T, result *domain.BrandActivationResult, err error) {
				require.NoError(t, err)
				assert.True(t, result.Brand.IsActive)
				assert.Equal(t, domain.PassBrandRefresh, result.Enforcement.Pass)
			},
		},
		{
			name:   "Reconciliation failure keeps the update",
			active: true,
			setup: func(f *fixture) {
				inactive := acme()
				inactive.IsActive = false
				f.brands.EXPECT().GetByID(gomock.Any(), "b1").Return(inactive, nil)
				f.brands.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
				f.enforcer.EXPECT().ReactivateBrandCampaigns(gomock.Any(), "b1").
					Return(nil, domain.NewUnavailableError(errors.New("timeout")))
			},
			validate: func(t *testing.T, result *domain.BrandActivationResult, err error) {
				require.NoError(t, err)
				assert.True(t, result.Brand.IsActive)
				assert.Nil(t, result.Enforcement)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			result, err := f.service.SetBrandActive(context.Background(), "b1", tt.active)
			tt.validate(t, result, err)
		})
	}
}

func TestService_DeleteBrand(t *testing.T) {
	f := newFixture(t)
	f.brands.EXPECT().Delete(gomock.Any(), "b1").Return(true, nil)
	f.brands.EXPECT().Delete(gomock.Any(), "b9").Return(false, nil)

	assert.NoError(t, f.service.DeleteBrand(context.Background(), "b1"))
	assert.True(t, errors.Is(f.service.DeleteBrand(context.Background(), "b9"), domain.ErrNotFound))
}

func TestService_CreateCampaign(t *testing.T) {
	tests := []struct {
		name     string
		request  *domain.CreateCampaignRequest
		setup    func(f *fixture)
		validate func(t *testing.T, campaign *domain.Campaign, err error)
	}{
		{
			name:    "Missing brand",
			request: &domain.CreateCampaignRequest{Name: "Search"},
			setup:   func(f *fixture) {},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assertInvalid(t, err)
			},
		},
		{
			name:    "Unknown status",
			request: &domain.CreateCampaignRequest{Name: "Search", BrandID: "b1", Status: "running"},
			setup:   func(f *fixture) {},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assertInvalid(t, err)
			},
		},
		{
			name:    "Non-positive override",
			request: &domain.CreateCampaignRequest{Name: "Search", BrandID: "b1", DailyBudget: decPtr("0")},
			setup:   func(f *fixture) {},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assertInvalid(t, err)
			},
		},
		{
			name:    "Unknown brand",
			request: &domain.CreateCampaignRequest{Name: "Search", BrandID: "b9"},
			setup: func(f *fixture) {
				f.brands.EXPECT().GetByID(gomock.Any(), "b9").Return(nil, nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.True(t, errors.Is(err, domain.ErrNotFound))
			},
		},
		{
			name:    "Unknown schedule",
			request: &domain.CreateCampaignRequest{Name: "Search", BrandID: "b1", DaypartingScheduleID: strPtr("s9")},
			setup: func(f *fixture) {
				f.brands.EXPECT().GetByID(gomock.Any(), "b1").Return(acme(), nil)
				f.schedules.EXPECT().GetByID(gomock.Any(), "s9").Return(nil, nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.True(t, errors.Is(err, domain.ErrNotFound))
			},
		},
		{
			name:    "Defaults to a draft that is not running",
			request: &domain.CreateCampaignRequest{Name: "Search", BrandID: "b1", DaypartingScheduleID: strPtr("")},
			setup: func(f *fixture) {
				f.brands.EXPECT().GetByID(gomock.Any(), "b1").Return(acme(), nil)
				f.campaigns.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.CampaignStatusDraft, campaign.Status)
				assert.False(t, campaign.IsActive)
				assert.Nil(t, campaign.DaypartingScheduleID)
			},
		},
		{
			name: "Active with overrides and schedule",
			request: &domain.CreateCampaignRequest{
				Name:                 "Search",
				BrandID:              "b1",
				Status:               domain.CampaignStatusActive,
				DailyBudget:          decPtr("25.00"),
				DaypartingScheduleID: strPtr("s1"),
			},
			setup: func(f *fixture) {
				f.brands.EXPECT().GetByID(gomock.Any(), "b1").Return(acme(), nil)
				f.schedules.EXPECT().GetByID(gomock.Any(), "s1").Return(&domain.DaypartingSchedule{ID: "s1"}, nil)
				f.campaigns.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.CampaignStatusActive, campaign.Status)
				assert.False(t, campaign.IsActive)
				assert.Equal(t, "25.00", campaign.DailyBudget.StringFixed(2))
				assert.Nil(t, campaign.MonthlyBudget)
				assert.Equal(t, "s1", *campaign.DaypartingScheduleID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			campaign, err := f.service.CreateCampaign(context.Background(), tt.request)
			tt.validate(t, campaign, err)
		})
	}
}

func TestService_UpdateCampaign(t *testing.T) {
	running := func() *domain.Campaign {
		return &domain.Campaign{
			ID:            "c1",
			Name:          "Search",
			BrandID:       "b1",
			Status:        domain.CampaignStatusActive,
			IsActive:      true,
			DailyBudget:   decPtr("25.00"),
			MonthlyBudget: decPtr("500.00"),
		}
	}

	tests := []struct {
		name     string
		request  *domain.UpdateCampaignRequest
		setup    func(f *fixture)
		validate func(t *testing.T, campaign *domain.Campaign, err error)
	}{
		{
			name:    "Nothing to update",
			request: &domain.UpdateCampaignRequest{ID: "c1"},
			setup:   func(f *fixture) {},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assertInvalid(t, err)
			},
		},
		{
			name:    "Set and clear together",
			request: &domain.UpdateCampaignRequest{ID: "c1", DailyBudget: decPtr("10"), ClearDailyBudget: true},
			setup:   func(f *fixture) {},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assertInvalid(t, err)
			},
		},
		{
			name:    "Invalid status",
			request: &domain.UpdateCampaignRequest{ID: "c1", Status: statusPtr("archived")},
			setup:   func(f *fixture) {},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assertInvalid(t, err)
			},
		},
		{
			name:    "Clears the daily override and assigns a schedule",
			request: &domain.UpdateCampaignRequest{ID: "c1", ClearDailyBudget: true, DaypartingScheduleID: strPtr("s1")},
			setup: func(f *fixture) {
				f.campaigns.EXPECT().GetByID(gomock.Any(), "c1").Return(running(), nil)
				f.schedules.EXPECT().GetByID(gomock.Any(), "s1").Return(&domain.DaypartingSchedule{ID: "s1"}, nil)
				f.campaigns.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				require.NoError(t, err)
				assert.Nil(t, campaign.DailyBudget)
				assert.Equal(t, "500.00", campaign.MonthlyBudget.StringFixed(2))
				assert.Equal(t, "s1", *campaign.DaypartingScheduleID)
				assert.True(t, campaign.IsActive)
			},
		},
		{
			name:    "Leaving active status pauses the running campaign",
			request: &domain.UpdateCampaignRequest{ID: "c1", Status: statusPtr(domain.CampaignStatusPaused)},
			setup: func(f *fixture) {
				f.campaigns.EXPECT().GetByID(gomock.Any(), "c1").Return(running(), nil)
				f.campaigns.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
				f.enforcer.EXPECT().PauseCampaign(gomock.Any(), "c1").Return(true, nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.CampaignStatusPaused, campaign.Status)
				assert.False(t, campaign.IsActive)
			},
		},
		{
			name:    "Unknown campaign",
			request: &domain.UpdateCampaignRequest{ID: "c9", ClearSchedule: true},
			setup: func(f *fixture) {
				f.campaigns.EXPECT().GetByID(gomock.Any(), "c9").Return(nil, nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.True(t, errors.Is(err, domain.ErrNotFound))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			campaign, err := f.service.UpdateCampaign(context.Background(), tt.request)
			tt.validate(t, campaign, err)
		})
	}
}

func TestService_ListCampaigns_RejectsUnknownStatus(t *testing.T) {
	f := newFixture(t)
	_, err := f.service.ListCampaigns(context.Background(), domain.CampaignFilter{
		Statuses: []domain.CampaignStatus{domain.CampaignStatusActive, "bogus"},
	})
	assertInvalid(t, err)
}

func TestService_CreateSchedule(t *testing.T) {
	tests := []struct {
		name     string
		request  *domain.CreateScheduleRequest
		setup    func(f *fixture)
		validate func(t *testing.T, view *domain.ScheduleView, err error)
	}{
		{
			name:    "Hour out of range",
			request: &domain.CreateScheduleRequest{Name: "Late", StartHour: 22, EndHour: 24, DaysOfWeek: []int{0}},
			setup:   func(f *fixture) {},
			validate: func(t *testing.T, view *domain.ScheduleView, err error) {
				assertInvalid(t, err)
			},
		},
		{
			name:    "Day out of range",
			request: &domain.CreateScheduleRequest{Name: "Week", StartHour: 9, EndHour: 17, DaysOfWeek: []int{0, 7}},
			setup:   func(f *fixture) {},
			validate: func(t *testing.T, view *domain.ScheduleView, err error) {
				assertInvalid(t, err)
			},
		},
		{
			name:    "No days",
			request: &domain.CreateScheduleRequest{Name: "Never", StartHour: 9, EndHour: 17},
			setup:   func(f *fixture) {},
			validate: func(t *testing.T, view *domain.ScheduleView, err error) {
				assertInvalid(t, err)
			},
		},
		{
			name:    "Overnight window with normalized days",
			request: &domain.CreateScheduleRequest{Name: "Night", StartHour: 22, EndHour: 2, DaysOfWeek: []int{6, 0, 0, 3}},
			setup: func(f *fixture) {
				f.schedules.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, schedule *domain.DaypartingSchedule) error {
						assert.Equal(t, []int{0, 3, 6}, schedule.DaysOfWeek)
						assert.True(t, schedule.IsActive)
						return nil
					})
			},
			validate: func(t *testing.T, view *domain.ScheduleView, err error) {
				require.NoError(t, err)
				assert.Equal(t, []int{0, 1, 22, 23}, view.ActiveHours)
				assert.Equal(t, []string{"Monday", "Thursday", "Sunday"}, view.Days)
				assert.False(t, view.IsCurrentlyActive)
				assert.Equal(t, 0, view.CampaignsCount)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			view, err := f.service.CreateSchedule(context.Background(), tt.request)
			tt.validate(t, view, err)
		})
	}
}

func TestService_CurrentlyActiveSchedules(t *testing.T) {
	f := newFixture(t)

	business := &domain.DaypartingSchedule{ID: "s1", Name: "Business", StartHour: 9, EndHour: 17, DaysOfWeek: []int{0, 1, 2, 3, 4}, IsActive: true}
	weekend := &domain.DaypartingSchedule{ID: "s2", Name: "Weekend", StartHour: 0, EndHour: 23, DaysOfWeek: []int{5, 6}, IsActive: true}

	f.schedules.EXPECT().List(gomock.Any(), true).Return([]*domain.DaypartingSchedule{business, weekend}, nil)
	f.schedules.EXPECT().CountCampaigns(gomock.Any()).Return(map[string]int{"s1": 3}, nil)

	views, err := f.service.CurrentlyActiveSchedules(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "s1", views[0].ID)
	assert.True(t, views[0].IsCurrentlyActive)
	assert.Equal(t, 3, views[0].CampaignsCount)
}

func TestService_GetSchedule(t *testing.T) {
	t.Run("Not found", func(t *testing.T) {
		f := newFixture(t)
		f.schedules.EXPECT().GetByID(gomock.Any(), "s9").Return(nil, nil)

		_, err := f.service.GetSchedule(context.Background(), "s9")
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("Storage failure", func(t *testing.T) {
		f := newFixture(t)
		f.schedules.EXPECT().GetByID(gomock.Any(), "s1").Return(nil, errors.New("connection reset"))

		_, err := f.service.GetSchedule(context.Background(), "s1")
		assert.True(t, errors.Is(err, domain.ErrUnavailable))
	})
}

func TestService_DeleteSchedule(t *testing.T) {
	f := newFixture(t)
	f.schedules.EXPECT().Delete(gomock.Any(), "s1").Return(true, nil)
	f.schedules.EXPECT().Delete(gomock.Any(), "s9").Return(false, nil)

	assert.NoError(t, f.service.DeleteSchedule(context.Background(), "s1"))
	assert.True(t, errors.Is(f.service.DeleteSchedule(context.Background(), "s9"), domain.ErrNotFound))
}
