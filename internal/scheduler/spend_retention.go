package scheduler

import (
	"context"
	"fmt"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-guard-api/internal/config"
	"github.com/vfg2006/budget-guard-api/internal/domain"
	"github.com/vfg2006/budget-guard-api/internal/usecases/spending"
	"github.com/vfg2006/budget-guard-api/pkg/log"
)

const JobSpendCleanup = "spend_cleanup"

type SpendRetentionConfig struct {
	CronSchedule string
	DaysToKeep   int
	Enabled      bool
}

type SpendRetentionService struct {
	scheduler *gocron.Scheduler
	config    SpendRetentionConfig
	spends    spending.SpendService
	guard     *runGuard
}

func NewSpendRetentionService(spends spending.SpendService, appConfig *config.Config) *SpendRetentionService {
	retentionConfig := SpendRetentionConfig{
		CronSchedule: appConfig.SpendRetention.CronSchedule,
		DaysToKeep:   appConfig.SpendRetention.DaysToKeep,
		Enabled:      appConfig.SpendRetention.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": retentionConfig.CronSchedule,
		"days_to_keep":  retentionConfig.DaysToKeep,
		"enabled":       retentionConfig.Enabled,
	}).Info("Spend retention scheduler configured")

	return &SpendRetentionService{
		scheduler: newScheduler(appConfig),
		config:    retentionConfig,
		spends:    spends,
		guard:     newRunGuard(JobSpendCleanup, appConfig.App.Now),
	}
}

func (s *SpendRetentionService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Spend retention disabled by configuration")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunNow(ctx); isBusy(err) {
			logrus.Info("Spend cleanup already running, skipping tick")
		}
	})
	if err != nil {
		return fmt.Errorf("scheduling spend cleanup: %w", err)
	}

	startScheduler(ctx, JobSpendCleanup, s.scheduler)
	return nil
}

func (s *SpendRetentionService) RunNow(ctx context.Context) (*domain.CleanupReport, error) {
	var report *domain.CleanupReport
	err := s.guard.run(ctx, func(ctx context.Context) error {
		var err error
		report, err = s.spends.CleanupOldSpend(ctx, s.config.DaysToKeep)
		if err != nil {
			return err
		}

		log.ForContext(ctx).WithFields(log.Fields{
			"cutoff_date":     report.CutoffDate,
			"records_deleted": report.RecordsDeleted,
		}).Info("Old spend entries removed")
		return nil
	})
	return report, err
}

func (s *SpendRetentionService) GetStatus() map[string]any {
	status := s.guard.status()
	status["enabled"] = s.config.Enabled
	status["cron"] = s.config.CronSchedule
	status["days_to_keep"] = s.config.DaysToKeep
	return status
}
