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

const JobStatuses = "statuses"

type StatusEnforcementConfig struct {
	CronSchedule string
	Enabled      bool
}

// StatusEnforcementService runs the full activate/pause reconciliation. Without a cron
// it only runs on demand.
type StatusEnforcementService struct {
	scheduler *gocron.Scheduler
	config    StatusEnforcementConfig
	enforcer  enforcing.Enforcer
	guard     *runGuard
}

func NewStatusEnforcementService(enforcer enforcing.Enforcer, appConfig *config.Config) *StatusEnforcementService {
	statusConfig := StatusEnforcementConfig{
		CronSchedule: appConfig.StatusEnforcement.CronSchedule,
		Enabled:      appConfig.StatusEnforcement.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": statusConfig.CronSchedule,
		"enabled":       statusConfig.Enabled,
	}).Info("Status enforcement scheduler configured")

	return &StatusEnforcementService{
		scheduler: newScheduler(appConfig),
		config:    statusConfig,
		enforcer:  enforcer,
		guard:     newRunGuard(JobStatuses, appConfig.App.Now),
	}
}

func (s *StatusEnforcementService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Scheduled status enforcement disabled, manual trigger only")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunNow(ctx); isBusy(err) {
			logrus.Info("Status enforcement already running, skipping tick")
		}
	})
	if err != nil {
		return fmt.Errorf("scheduling status enforcement: %w", err)
	}

	startScheduler(ctx, JobStatuses, s.scheduler)
	return nil
}

func (s *StatusEnforcementService) RunNow(ctx context.Context) (*domain.EnforcementReport, error) {
	var report *domain.EnforcementReport
	err := s.guard.run(ctx, func(ctx context.Context) error {
		var err error
		report, err = s.enforcer.EnforceStatuses(ctx)
		if err != nil {
			return err
		}
		logReport(ctx, report)
		return nil
	})
	return report, err
}

func (s *StatusEnforcementService) GetStatus() map[string]any {
	status := s.guard.status()
	status["enabled"] = s.config.Enabled
	status["cron"] = s.config.CronSchedule
	return status
}
