package scheduler

import (
	"context"

	"github.com/vfg2006/budget-guard-api/internal/config"
	"github.com/vfg2006/budget-guard-api/internal/domain"
	"github.com/vfg2006/budget-guard-api/internal/usecases/enforcing"
	"github.com/vfg2006/budget-guard-api/internal/usecases/spending"
)

//go:generate mockgen -source=manager.go -destination=mocks/manager_mock.go -package=mocks

// JobRunner runs background jobs on demand and reports their state.
type JobRunner interface {
	Run(ctx context.Context, job string) (any, error)
	Status() map[string]any
}

// Manager owns every background job of the process.
type Manager struct {
	dayparting *DaypartingEnforcementService
	statuses   *StatusEnforcementService
	resets     *BudgetResetService
	retention  *SpendRetentionService
	alerts     *BudgetAlertService
}

func NewManager(enforcer enforcing.Enforcer, spends spending.SpendService, appConfig *config.Config) *Manager {
	return &Manager{
		dayparting: NewDaypartingEnforcementService(enforcer, appConfig),
		statuses:   NewStatusEnforcementService(enforcer, appConfig),
		resets:     NewBudgetResetService(enforcer, appConfig),
		retention:  NewSpendRetentionService(spends, appConfig),
		alerts:     NewBudgetAlertService(spends, appConfig),
	}
}

// Start schedules every enabled job. The schedulers stop when ctx is cancelled.
func (m *Manager) Start(ctx context.Context) error {
	starters := []func(context.Context) error{
		m.dayparting.Start,
		m.statuses.Start,
		m.resets.Start,
		m.retention.Start,
		m.alerts.Start,
	}
	for _, start := range starters {
		if err := start(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Run executes the named job synchronously and returns its report.
func (m *Manager) Run(ctx context.Context, job string) (any, error) {
	var (
		result any
		err    error
	)

	switch job {
	case JobDayparting:
		result, err = unwrap(m.dayparting.RunNow(ctx))
	case JobStatuses:
		result, err = unwrap(m.statuses.RunNow(ctx))
	case JobDailyReset:
		result, err = unwrap(m.resets.RunNow(ctx, domain.PassDailyReset))
	case JobMonthlyReset:
		result, err = unwrap(m.resets.RunNow(ctx, domain.PassMonthlyReset))
	case JobSpendCleanup:
		result, err = unwrap(m.retention.RunNow(ctx))
	case JobBudgetAlerts:
		result, err = unwrap(m.alerts.RunNow(ctx))
	default:
		return nil, domain.NewNotFoundError("job", job)
	}

	return result, err
}

func (m *Manager) Status() map[string]any {
	return map[string]any{
		JobDayparting:   m.dayparting.GetStatus(),
		JobStatuses:     m.statuses.GetStatus(),
		"budget_reset":  m.resets.GetStatus(),
		JobSpendCleanup: m.retention.GetStatus(),
		JobBudgetAlerts: m.alerts.GetStatus(),
	}
}

// unwrap keeps a failed run from leaking a typed nil into the result.
func unwrap[T any](report *T, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return report, nil
}
