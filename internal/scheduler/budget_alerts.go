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

const JobBudgetAlerts = "budget_alerts"

type BudgetAlertConfig struct {
	CronSchedule     string
	ThresholdPercent int
	Enabled          bool
}

// BudgetAlertService logs brands and campaigns close to or over their ceilings.
type BudgetAlertService struct {
	scheduler *gocron.Scheduler
	config    BudgetAlertConfig
	spends    spending.SpendService
	guard     *runGuard
}

func NewBudgetAlertService(spends spending.SpendService, appConfig *config.Config) *BudgetAlertService {
	alertConfig := BudgetAlertConfig{
		CronSchedule:     appConfig.BudgetAlerts.CronSchedule,
		ThresholdPercent: appConfig.BudgetAlerts.ThresholdPercent,
		Enabled:          appConfig.BudgetAlerts.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":     alertConfig.CronSchedule,
		"threshold_percent": alertConfig.ThresholdPercent,
		"enabled":           alertConfig.Enabled,
	}).Info("Budget alert scheduler configured")

	return &BudgetAlertService{
		scheduler: newScheduler(appConfig),
		config:    alertConfig,
		spends:    spends,
		guard:     newRunGuard(JobBudgetAlerts, appConfig.App.Now),
	}
}

func (s *BudgetAlertService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Budget alerts disabled by configuration")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunNow(ctx); isBusy(err) {
			logrus.Info("Budget alert check already running, skipping tick")
		}
	})
	if err != nil {
		return fmt.Errorf("scheduling budget alerts: %w", err)
	}

	startScheduler(ctx, JobBudgetAlerts, s.scheduler)
	return nil
}

func (s *BudgetAlertService) RunNow(ctx context.Context) (*domain.BudgetAlertReport, error) {
	var report *domain.BudgetAlertReport
	err := s.guard.run(ctx, func(ctx context.Context) error {
		var err error
		report, err = s.spends.BudgetAlerts(ctx, s.config.ThresholdPercent)
		if err != nil {
			return err
		}

		logger := log.ForContext(ctx)
		for _, alert := range report.Alerts {
			fields := log.Fields{
				"type":       alert.Type,
				"severity":   alert.Severity,
				"brand":      alert.BrandName,
				"percentage": alert.Percentage.StringFixed(2),
			}
			if alert.CampaignID != "" {
				fields["campaign"] = alert.CampaignName
			}
			logger.WithFields(fields).Warn("Budget limit alert")
		}

		logger.WithFields(log.Fields{
			"total":  report.TotalAlerts,
			"high":   report.HighSeverityAlerts,
			"medium": report.MediumSeverityAlerts,
		}).Info("Budget alert check completed")
		return nil
	})
	return report, err
}

func (s *BudgetAlertService) GetStatus() map[string]any {
	status := s.guard.status()
	status["enabled"] = s.config.Enabled
	status["cron"] = s.config.CronSchedule
	status["threshold_percent"] = s.config.ThresholdPercent
	return status
}
