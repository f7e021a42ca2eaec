package scheduler

import (
	"context"
	"fmt"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-guard-api/internal/config"
	"github.com/vfg2006/budget-guard-api/internal/domain"
	"github.com/vfg2006/budget-guard-api/internal/usecases/enforcing"
)

const (
	JobDailyReset   = "daily_reset"
	JobMonthlyReset = "monthly_reset"
)

type BudgetResetConfig struct {
	DailyCron   string
	MonthlyCron string
	Enabled     bool
}

// BudgetResetService re-attempts activation right after a day or month boundary.
// Daily and monthly passes have separate guards so they may overlap on the 1st.
type BudgetResetService struct {
	scheduler    *gocron.Scheduler
	config       BudgetResetConfig
	enforcer     enforcing.Enforcer
	dailyGuard   *runGuard
	monthlyGuard *runGuard
}

func NewBudgetResetService(enforcer enforcing.Enforcer, appConfig *config.Config) *BudgetResetService {
	resetConfig := BudgetResetConfig{
		DailyCron:   appConfig.BudgetReset.DailyCron,
		MonthlyCron: appConfig.BudgetReset.MonthlyCron,
		Enabled:     appConfig.BudgetReset.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"daily_cron":   resetConfig.DailyCron,
		"monthly_cron": resetConfig.MonthlyCron,
		"enabled":      resetConfig.Enabled,
	}).Info("Budget reset scheduler configured")

	return &BudgetResetService{
		scheduler:    newScheduler(appConfig),
		config:       resetConfig,
		enforcer:     enforcer,
		dailyGuard:   newRunGuard(JobDailyReset, appConfig.App.Now),
		monthlyGuard: newRunGuard(JobMonthlyReset, appConfig.App.Now),
	}
}

func (s *BudgetResetService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Budget resets disabled by configuration")
		return nil
	}

	jobs := []struct {
		cron string
		pass domain.EnforcementPass
	}{
		{cron: s.config.DailyCron, pass: domain.PassDailyReset},
		{cron: s.config.MonthlyCron, pass: domain.PassMonthlyReset},
	}

	for _, job := range jobs {
		pass := job.pass
		_, err := s.scheduler.Cron(job.cron).Do(func() {
			if _, err := s.RunNow(ctx, pass); isBusy(err) {
				logrus.WithField("pass", pass).Info("Budget reset already running, skipping tick")
			}
		})
		if err != nil {
			return fmt.Errorf("scheduling %s: %w", pass, err)
		}
	}

	startScheduler(ctx, "budget_reset", s.scheduler)
	return nil
}

func (s *BudgetResetService) RunNow(ctx context.Context, pass domain.EnforcementPass) (*domain.EnforcementReport, error) {
	guard := s.dailyGuard
	switch pass {
	case domain.PassDailyReset:
	case domain.PassMonthlyReset:
		guard = s.monthlyGuard
	default:
		return nil, domain.NewInvalidInputError("unknown reset pass: " + string(pass))
	}

	var report *domain.EnforcementReport
	err := guard.run(ctx, func(ctx context.Context) error {
		var err error
		report, err = s.enforcer.ResetBudgets(ctx, pass)
		if err != nil {
			return err
		}
		logReport(ctx, report)
		return nil
	})
	return report, err
}

func (s *BudgetResetService) GetStatus() map[string]any {
	return map[string]any{
		"enabled":      s.config.Enabled,
		"daily_cron":   s.config.DailyCron,
		"monthly_cron": s.config.MonthlyCron,
		"daily":        s.dailyGuard.status(),
		"monthly":      s.monthlyGuard.status(),
	}
}
