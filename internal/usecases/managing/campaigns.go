package managing

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-guard-api/internal/domain"
	"github.com/vfg2006/budget-guard-api/pkg/utils"
)

// CreateCampaign stores a new campaign that is not running. Only enforcement starts it.
func (s *Service) CreateCampaign(ctx context.Context, request *domain.CreateCampaignRequest) (*domain.Campaign, error) {
	name, err := validateName(request.Name)
	if err != nil {
		return nil, err
	}
	if request.BrandID == "" {
		return nil, domain.NewInvalidInputError("brand_id is required")
	}

	status := request.Status
	if status == "" {
		status = domain.CampaignStatusDraft
	}
	if !status.IsValid() {
		return nil, domain.NewInvalidInputError("invalid status: " + string(status))
	}

	if request.DailyBudget != nil {
		if err := validateBudget("daily_budget", *request.DailyBudget); err != nil {
			return nil, err
		}
	}
	if request.MonthlyBudget != nil {
		if err := validateBudget("monthly_budget", *request.MonthlyBudget); err != nil {
			return nil, err
		}
	}

	if _, err := s.GetBrand(ctx, request.BrandID); err != nil {
		return nil, err
	}

	scheduleID := request.DaypartingScheduleID
	if scheduleID != nil && *scheduleID == "" {
		scheduleID = nil
	}
	if scheduleID != nil {
		if err := s.requireSchedule(ctx, *scheduleID); err != nil {
			return nil, err
		}
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "generating campaign id")
	}

	campaign := &domain.Campaign{
		ID:                   id,
		Name:                 name,
		BrandID:              request.BrandID,
		Status:               status,
		IsActive:             false,
		DailyBudget:          request.DailyBudget,
		MonthlyBudget:        request.MonthlyBudget,
		DaypartingScheduleID: scheduleID,
	}
	if err := s.campaigns.Create(ctx, campaign); err != nil {
		return nil, errors.Wrap(domain.AsStorageError(err), "creating campaign")
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaign.ID,
		"brand_id":    campaign.BrandID,
		"status":      campaign.Status,
	}).Info("Campaign created")

	return campaign, nil
}

func (s *Service) GetCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	campaign, err := s.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return nil, errors.Wrap(domain.AsStorageError(err), "loading campaign")
	}
	if campaign == nil {
		return nil, domain.NewNotFoundError("campaign", campaignID)
	}
	return campaign, nil
}

func (s *Service) ListCampaigns(ctx context.Context, filter domain.CampaignFilter) ([]*domain.Campaign, error) {
	for _, status := range filter.Statuses {
		if !status.IsValid() {
			return nil, domain.NewInvalidInputError("invalid status: " + string(status))
		}
	}

	campaigns, err := s.campaigns.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(domain.AsStorageError(err), "listing campaigns")
	}
	return campaigns, nil
}

// UpdateCampaign applies administrative changes. A running campaign whose declared
// status leaves active is paused right away.
func (s *Service) UpdateCampaign(ctx context.Context, request *domain.UpdateCampaignRequest) (*domain.Campaign, error) {
	if err := validateCampaignUpdate(request); err != nil {
		return nil, err
	}

	campaign, err := s.GetCampaign(ctx, request.ID)
	if err != nil {
		return nil, err
	}

	if request.Status != nil {
		campaign.Status = *request.Status
	}

	switch {
	case request.ClearDailyBudget:
		campaign.DailyBudget = nil
	case request.DailyBudget != nil:
		campaign.DailyBudget = request.DailyBudget
	}

	switch {
	case request.ClearMonthlyBudget:
		campaign.MonthlyBudget = nil
	case request.MonthlyBudget != nil:
		campaign.MonthlyBudget = request.MonthlyBudget
	}

	switch {
	case request.ClearSchedule:
		campaign.DaypartingScheduleID = nil
	case request.DaypartingScheduleID != nil:
		if err := s.requireSchedule(ctx, *request.DaypartingScheduleID); err != nil {
			return nil, err
		}
		campaign.DaypartingScheduleID = request.DaypartingScheduleID
	}

	if err := s.campaigns.Update(ctx, campaign); err != nil {
		return nil, errors.Wrap(domain.AsStorageError(err), "updating campaign")
	}

	if campaign.IsActive && campaign.Status != domain.CampaignStatusActive {
		paused, err := s.enforcer.PauseCampaign(ctx, campaign.ID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaign.ID,
				"error":       err,
			}).Error("Campaign updated but pause failed")
			return campaign, nil
		}
		if paused {
			campaign.IsActive = false
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaign.ID,
				"status":      campaign.Status,
			}).Info("Campaign paused after status change")
		}
	}

	return campaign, nil
}

func validateCampaignUpdate(request *domain.UpdateCampaignRequest) error {
	if request.Status == nil &&
		request.DailyBudget == nil && !request.ClearDailyBudget &&
		request.MonthlyBudget == nil && !request.ClearMonthlyBudget &&
		request.DaypartingScheduleID == nil && !request.ClearSchedule {
		return domain.NewInvalidInputError("nothing to update")
	}

	if request.Status != nil && !request.Status.IsValid() {
		return domain.NewInvalidInputError("invalid status: " + string(*request.Status))
	}

	if request.DailyBudget != nil {
		if request.ClearDailyBudget {
			return domain.NewInvalidInputError("daily_budget and clear_daily_budget are exclusive")
		}
		if err := validateBudget("daily_budget", *request.DailyBudget); err != nil {
			return err
		}
	}
	if request.MonthlyBudget != nil {
		if request.ClearMonthlyBudget {
			return domain.NewInvalidInputError("monthly_budget and clear_monthly_budget are exclusive")
		}
		if err := validateBudget("monthly_budget", *request.MonthlyBudget); err != nil {
			return err
		}
	}
	if request.DaypartingScheduleID != nil {
		if request.ClearSchedule {
			return domain.NewInvalidInputError("dayparting_schedule_id and clear_schedule are exclusive")
		}
		if *request.DaypartingScheduleID == "" {
			return domain.NewInvalidInputError("dayparting_schedule_id must not be empty")
		}
	}
	return nil
}

func (s *Service) requireSchedule(ctx context.Context, scheduleID string) error {
	schedule, err := s.schedules.GetByID(ctx, scheduleID)
	if err != nil {
		return errors.Wrap(domain.AsStorageError(err), "loading schedule")
	}
	if schedule == nil {
		return domain.NewNotFoundError("dayparting schedule", scheduleID)
	}
	return nil
}
