package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-guard-api/internal/config"
	"github.com/vfg2006/budget-guard-api/internal/domain"
	"github.com/vfg2006/budget-guard-api/internal/usecases/enforcing"
	"github.com/vfg2006/budget-guard-api/pkg/log"
)

const JobDayparting = "dayparting"

type DaypartingEnforcementConfig struct {
	Interval time.Duration
	Enabled  bool
}

// DaypartingEnforcementService pauses campaigns outside their window on a fixed interval.
type DaypartingEnforcementService struct {
	scheduler *gocron.Scheduler
	config    DaypartingEnforcementConfig
	enforcer  enforcing.Enforcer
	guard     *runGuard
}

func NewDaypartingEnforcementService(enforcer enforcing.Enforcer, appConfig *config.Config) *DaypartingEnforcementService {
	daypartingConfig := DaypartingEnforcementConfig{
		Interval: appConfig.DaypartingEnforcement.Interval,
		Enabled:  appConfig.DaypartingEnforcement.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"interval": daypartingConfig.Interval.String(),
		"enabled":  daypartingConfig.Enabled,
	}).Info("Dayparting enforcement scheduler configured")

	return &DaypartingEnforcementService{
		scheduler: newScheduler(appConfig),
		config:    daypartingConfig,
		enforcer:  enforcer,
		guard:     newRunGuard(JobDayparting, appConfig.App.Now),
	}
}

func (s *DaypartingEnforcementService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Dayparting enforcement disabled by configuration")
		return nil
	}

	_, err := s.scheduler.Every(s.config.Interval).Do(func() {
		s.scheduled(ctx)
	})
	if err != nil {
		return fmt.Errorf("scheduling dayparting enforcement: %w", err)
	}

	startScheduler(ctx, JobDayparting, s.scheduler)
	return nil
}

func (s *DaypartingEnforcementService) scheduled(ctx context.Context) {
	if _, err := s.RunNow(ctx); err != nil && isBusy(err) {
		logrus.Info("Dayparting enforcement already running, skipping tick")
	}
}

func (s *DaypartingEnforcementService) RunNow(ctx context.Context) (*domain.EnforcementReport, error) {
	var report *domain.EnforcementReport
	err := s.guard.run(ctx, func(ctx context.Context) error {
		var err error
		report, err = s.enforcer.EnforceDayparting(ctx)
		if err != nil {
			return err
		}
		logReport(ctx, report)
		return nil
	})
	return report, err
}

func (s *DaypartingEnforcementService) GetStatus() map[string]any {
	status := s.guard.status()
	status["enabled"] = s.config.Enabled
	status["interval"] = s.config.Interval.String()
	return status
}

// logReport writes the counts of a pass and one line per changed campaign.
func logReport(ctx context.Context, report *domain.EnforcementReport) {
	logger := log.ForContext(ctx)

	logger.WithFields(log.Fields{
		"pass":      report.Pass,
		"brands":    report.BrandsChecked,
		"checked":   report.CampaignsChecked,
		"activated": report.CampaignsActivated,
		"paused":    report.CampaignsPaused,
	}).Info("Enforcement pass completed")

	for _, change := range report.Activated {
		logger.WithFields(log.Fields{
			"pass":        report.Pass,
			"campaign_id": change.CampaignID,
			"campaign":    change.CampaignName,
			"brand":       change.BrandName,
		}).Info("Campaign activated")
	}
	for _, change := range report.Paused {
		fields := log.Fields{
			"pass":        report.Pass,
			"campaign_id": change.CampaignID,
			"campaign":    change.CampaignName,
			"brand":       change.BrandName,
		}
		if change.ScheduleName != "" {
			fields["schedule"] = change.ScheduleName
		}
		logger.WithFields(fields).Info("Campaign paused")
	}
}
