package enforcing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/budget-guard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/budget-guard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func snapshotOf(brands []*domain.Brand, campaigns []*domain.Campaign, schedules []*domain.DaypartingSchedule, spend map[string]domain.SpendTotals) *domain.Snapshot {
	return domain.NewSnapshot(tickAt, brands, campaigns, schedules, spend)
}

func TestService_EnforceDayparting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshots := mocks.NewMockSnapshotRepository(ctrl)
	mockCampaigns := mocks.NewMockCampaignRepository(ctrl)
	service := NewService(mockSnapshots, mockCampaigns, fixedClock(tickAt))

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, report *domain.EnforcementReport, err error)
	}{
		{
			name: "Pauses running campaigns outside their window and never activates",
			setup: func() {
				closed := newCampaign("closed", "b1", domain.CampaignStatusActive, true)
				closed.DaypartingScheduleID = strPtr("sched-night")
				open := newCampaign("open", "b1", domain.CampaignStatusActive, true)
				open.DaypartingScheduleID = strPtr("sched-business")
				waiting := newCampaign("waiting", "b1", domain.CampaignStatusActive, false)
				waiting.DaypartingScheduleID = strPtr("sched-business")
				unscheduled := newCampaign("unscheduled", "b1", domain.CampaignStatusActive, true)

				mockSnapshots.EXPECT().
					Load(gomock.Any(), tickAt).
					Return(snapshotOf(
						[]*domain.Brand{newBrand("b1", "100.00", "3000.00")},
						[]*domain.Campaign{closed, open, waiting, unscheduled},
						[]*domain.DaypartingSchedule{businessHours(), nightShift()},
						nil,
					), nil)

				mockCampaigns.EXPECT().
					ApplyTransitions(gomock.Any(), []domain.Transition{{CampaignID: "closed", From: true, To: false}}).
					Return([]domain.Transition{{CampaignID: "closed", From: true, To: false}}, nil)
			},
			validate: func(t *testing.T, report *domain.EnforcementReport, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.PassDayparting, report.Pass)
				assert.Equal(t, 2, report.CampaignsChecked)
				assert.Equal(t, 0, report.CampaignsActivated)
				assert.Equal(t, 1, report.CampaignsPaused)
				assert.Equal(t, "closed", report.Paused[0].CampaignID)
				assert.Equal(t, "Night shift", report.Paused[0].ScheduleName)
				assert.Equal(t, "Brand b1", report.Paused[0].BrandName)
			},
		},
		{
			name: "Lost compare-and-set is not reported",
			setup: func() {
				closed := newCampaign("closed", "b1", domain.CampaignStatusActive, true)
				closed.DaypartingScheduleID = strPtr("sched-night")

				mockSnapshots.EXPECT().
					Load(gomock.Any(), tickAt).
					Return(snapshotOf(
						[]*domain.Brand{newBrand("b1", "100.00", "3000.00")},
						[]*domain.Campaign{closed},
						[]*domain.DaypartingSchedule{nightShift()},
						nil,
					), nil)

				mockCampaigns.EXPECT().
					ApplyTransitions(gomock.Any(), gomock.Len(1)).
					Return([]domain.Transition{}, nil)
			},
			validate: func(t *testing.T, report *domain.EnforcementReport, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, report.CampaignsChecked)
				assert.Equal(t, 0, report.CampaignsPaused)
				assert.Empty(t, report.Paused)
				assert.False(t, report.Changed())
			},
		},
		{
			name: "Read failure aborts before any write",
			setup: func() {
				mockSnapshots.EXPECT().
					Load(gomock.Any(), tickAt).
					Return(nil, errors.New("connection refused"))
			},
			validate: func(t *testing.T, report *domain.EnforcementReport, err error) {
				require.Error(t, err)
				assert.Nil(t, report)
				assert.True(t, errors.Is(err, domain.ErrUnavailable))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			report, err := service.EnforceDayparting(context.Background())
			tt.validate(t, report, err)
		})
	}
}

func TestService_EnforceStatuses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshots := mocks.NewMockSnapshotRepository(ctrl)
	mockCampaigns := mocks.NewMockCampaignRepository(ctrl)
	service := NewService(mockSnapshots, mockCampaigns, fixedClock(tickAt))

	eligible := newCampaign("eligible", "b1", domain.CampaignStatusActive, false)
	exhausted := newCampaign("exhausted", "b1", domain.CampaignStatusActive, true)
	exhausted.DailyBudget = decPtr("25.00")
	draft := newCampaign("draft", "b1", domain.CampaignStatusDraft, false)
	pausedRunning := newCampaign("paused-running", "b1", domain.CampaignStatusPaused, true)

	mockSnapshots.EXPECT().
		Load(gomock.Any(), tickAt).
		Return(snapshotOf(
			[]*domain.Brand{newBrand("b1", "1000.00", "30000.00")},
			[]*domain.Campaign{eligible, exhausted, draft, pausedRunning},
			nil,
			map[string]domain.SpendTotals{
				"exhausted": {Daily: dec("30.00"), Monthly: dec("30.00")},
			},
		), nil)

	mockCampaigns.EXPECT().
		ApplyTransitions(gomock.Any(), gomock.InAnyOrder([]domain.Transition{
			{CampaignID: "eligible", From: false, To: true},
			{CampaignID: "exhausted", From: true, To: false},
		})).
		DoAndReturn(func(_ context.Context, transitions []domain.Transition) ([]domain.Transition, error) {
			return transitions, nil
		})

	report, err := service.EnforceStatuses(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.PassStatuses, report.Pass)
	assert.Equal(t, 3, report.CampaignsChecked)
	require.Len(t, report.Activated, 1)
	assert.Equal(t, "eligible", report.Activated[0].CampaignID)
	require.Len(t, report.Paused, 1)
	assert.Equal(t, "exhausted", report.Paused[0].CampaignID)
}

func TestService_ResetBudgets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshots := mocks.NewMockSnapshotRepository(ctrl)
	mockCampaigns := mocks.NewMockCampaignRepository(ctrl)
	service := NewService(mockSnapshots, mockCampaigns, fixedClock(tickAt))

	t.Run("Rejects a non reset pass", func(t *testing.T) {
		report, err := service.ResetBudgets(context.Background(), domain.PassDayparting)
		assert.Nil(t, report)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	})

	t.Run("Reactivates inactive campaigns of active brands only", func(t *testing.T) {
		inactiveBrand := newBrand("b2", "100.00", "3000.00")
		inactiveBrand.IsActive = false

		mockSnapshots.EXPECT().
			Load(gomock.Any(), tickAt).
			Return(snapshotOf(
				[]*domain.Brand{newBrand("b1", "100.00", "3000.00"), inactiveBrand},
				[]*domain.Campaign{
					newCampaign("c1", "b1", domain.CampaignStatusActive, false),
					newCampaign("c2", "b1", domain.CampaignStatusActive, true),
					newCampaign("c3", "b1", domain.CampaignStatusPaused, false),
					newCampaign("c4", "b2", domain.CampaignStatusActive, false),
				},
				nil,
				nil,
			), nil)

		mockCampaigns.EXPECT().
			ApplyTransitions(gomock.Any(), []domain.Transition{{CampaignID: "c1", From: false, To: true}}).
			Return([]domain.Transition{{CampaignID: "c1", From: false, To: true}}, nil)

		report, err := service.ResetBudgets(context.Background(), domain.PassDailyReset)
		require.NoError(t, err)
		assert.Equal(t, domain.PassDailyReset, report.Pass)
		assert.Equal(t, 1, report.BrandsChecked)
		assert.Equal(t, 2, report.CampaignsChecked)
		assert.Equal(t, 1, report.CampaignsActivated)
	})
}

func TestService_BrandOperations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshots := mocks.NewMockSnapshotRepository(ctrl)
	mockCampaigns := mocks.NewMockCampaignRepository(ctrl)
	service := NewService(mockSnapshots, mockCampaigns, fixedClock(tickAt))

	t.Run("Deactivation pauses every running campaign regardless of budget", func(t *testing.T) {
		mockSnapshots.EXPECT().
			Load(gomock.Any(), tickAt, "b1").
			Return(snapshotOf(
				[]*domain.Brand{newBrand("b1", "100.00", "3000.00")},
				[]*domain.Campaign{
					newCampaign("c1", "b1", domain.CampaignStatusActive, true),
					newCampaign("c2", "b1", domain.CampaignStatusActive, true),
					newCampaign("c3", "b1", domain.CampaignStatusActive, false),
				},
				nil,
				nil,
			), nil)

		mockCampaigns.EXPECT().
			ApplyTransitions(gomock.Any(), []domain.Transition{
				{CampaignID: "c1", From: true, To: false},
				{CampaignID: "c2", From: true, To: false},
			}).
			DoAndReturn(func(_ context.Context, transitions []domain.Transition) ([]domain.Transition, error) {
				return transitions, nil
			})

		report, err := service.DeactivateBrandCampaigns(context.Background(), "b1")
		require.NoError(t, err)
		assert.Equal(t, domain.PassBrandPause, report.Pass)
		assert.Equal(t, 2, report.CampaignsPaused)
	})

	t.Run("Reactivation is skipped when the brand budget is exhausted", func(t *testing.T) {
		mockSnapshots.EXPECT().
			Load(gomock.Any(), tickAt, "b1").
			Return(snapshotOf(
				[]*domain.Brand{newBrand("b1", "100.00", "3000.00")},
				[]*domain.Campaign{newCampaign("c1", "b1", domain.CampaignStatusActive, false)},
				nil,
				map[string]domain.SpendTotals{"c1": {Daily: dec("100.00"), Monthly: dec("100.00")}},
			), nil)

		report, err := service.ReactivateBrandCampaigns(context.Background(), "b1")
		require.NoError(t, err)
		assert.Equal(t, 0, report.CampaignsChecked)
		assert.False(t, report.Changed())
	})

	t.Run("Unknown brand is not found", func(t *testing.T) {
		mockSnapshots.EXPECT().
			Load(gomock.Any(), tickAt, "missing").
			Return(snapshotOf(nil, nil, nil, nil), nil)

		_, err := service.ReactivateBrandCampaigns(context.Background(), "missing")
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestService_SingleCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshots := mocks.NewMockSnapshotRepository(ctrl)
	mockCampaigns := mocks.NewMockCampaignRepository(ctrl)
	service := NewService(mockSnapshots, mockCampaigns, fixedClock(tickAt))

	brand := newBrand("b1", "100.00", "3000.00")

	expectSubject := func(campaign *domain.Campaign, spend map[string]domain.SpendTotals) {
		mockCampaigns.EXPECT().
			GetByID(gomock.Any(), campaign.ID).
			Return(campaign, nil)
		mockSnapshots.EXPECT().
			Load(gomock.Any(), tickAt, campaign.BrandID).
			Return(snapshotOf([]*domain.Brand{brand}, []*domain.Campaign{campaign}, nil, spend), nil)
	}

	t.Run("Activate flips an eligible campaign", func(t *testing.T) {
		campaign := newCampaign("c1", "b1", domain.CampaignStatusActive, false)
		expectSubject(campaign, nil)
		mockCampaigns.EXPECT().
			ApplyTransitions(gomock.Any(), []domain.Transition{{CampaignID: "c1", From: false, To: true}}).
			Return([]domain.Transition{{CampaignID: "c1", From: false, To: true}}, nil)

		activated, err := service.ActivateCampaign(context.Background(), "c1")
		require.NoError(t, err)
		assert.True(t, activated)
	})

	t.Run("Activate on an already running eligible campaign writes nothing", func(t *testing.T) {
		campaign := newCampaign("c1", "b1", domain.CampaignStatusActive, true)
		expectSubject(campaign, nil)

		activated, err := service.ActivateCampaign(context.Background(), "c1")
		require.NoError(t, err)
		assert.True(t, activated)
	})

	t.Run("Activate with unmet preconditions is a no-op", func(t *testing.T) {
		campaign := newCampaign("c1", "b1", domain.CampaignStatusDraft, false)
		expectSubject(campaign, nil)

		activated, err := service.ActivateCampaign(context.Background(), "c1")
		require.NoError(t, err)
		assert.False(t, activated)
	})

	t.Run("Activate unknown campaign", func(t *testing.T) {
		mockCampaigns.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, nil)

		_, err := service.ActivateCampaign(context.Background(), "missing")
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("Pause of a stopped campaign is a no-op", func(t *testing.T) {
		mockCampaigns.EXPECT().
			GetByID(gomock.Any(), "c1").
			Return(newCampaign("c1", "b1", domain.CampaignStatusActive, false), nil)

		paused, err := service.PauseCampaign(context.Background(), "c1")
		require.NoError(t, err)
		assert.False(t, paused)
	})

	t.Run("Pause if required after spend exhausts the budget", func(t *testing.T) {
		campaign := newCampaign("c1", "b1", domain.CampaignStatusActive, true)
		expectSubject(campaign, map[string]domain.SpendTotals{"c1": {Daily: dec("100.00"), Monthly: dec("100.00")}})
		mockCampaigns.EXPECT().
			ApplyTransitions(gomock.Any(), []domain.Transition{{CampaignID: "c1", From: true, To: false}}).
			Return([]domain.Transition{{CampaignID: "c1", From: true, To: false}}, nil)

		shouldPause, wasPaused, err := service.PauseIfRequired(context.Background(), "c1")
		require.NoError(t, err)
		assert.True(t, shouldPause)
		assert.True(t, wasPaused)
	})

	t.Run("Pause if required reports a stopped campaign without writing", func(t *testing.T) {
		campaign := newCampaign("c1", "b1", domain.CampaignStatusActive, false)
		expectSubject(campaign, map[string]domain.SpendTotals{"c1": {Daily: dec("100.00"), Monthly: dec("100.00")}})

		shouldPause, wasPaused, err := service.PauseIfRequired(context.Background(), "c1")
		require.NoError(t, err)
		assert.True(t, shouldPause)
		assert.False(t, wasPaused)
	})

	t.Run("Storage failure while loading the campaign", func(t *testing.T) {
		mockCampaigns.EXPECT().
			GetByID(gomock.Any(), "c1").
			Return(nil, errors.New("timeout"))

		_, err := service.CheckCampaign(context.Background(), "c1")
		assert.True(t, errors.Is(err, domain.ErrUnavailable))
	})
}

func TestService_NeedsListings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshots := mocks.NewMockSnapshotRepository(ctrl)
	mockCampaigns := mocks.NewMockCampaignRepository(ctrl)
	service := NewService(mockSnapshots, mockCampaigns, fixedClock(tickAt))

	snapshot := snapshotOf(
		[]*domain.Brand{newBrand("b1", "100.00", "3000.00")},
		[]*domain.Campaign{
			newCampaign("ready", "b1", domain.CampaignStatusActive, false),
			newCampaign("over", "b1", domain.CampaignStatusActive, true),
			newCampaign("fine", "b1", domain.CampaignStatusActive, true),
		},
		nil,
		map[string]domain.SpendTotals{"over": {Daily: dec("60.00"), Monthly: dec("60.00")}},
	)
	snapshot.Campaign("over").DailyBudget = decPtr("50.00")

	mockSnapshots.EXPECT().Load(gomock.Any(), tickAt).Return(snapshot, nil).Times(2)

	activation, err := service.CampaignsNeedingActivation(context.Background())
	require.NoError(t, err)
	require.Len(t, activation, 1)
	assert.Equal(t, "ready", activation[0].ID)

	pause, err := service.CampaignsNeedingPause(context.Background())
	require.NoError(t, err)
	require.Len(t, pause, 1)
	assert.Equal(t, "over", pause[0].ID)
}
