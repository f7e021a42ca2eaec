package managing

import (
	"context"
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-guard-api/internal/domain"
	"github.com/vfg2006/budget-guard-api/pkg/utils"
)

func (s *Service) CreateSchedule(ctx context.Context, request *domain.CreateScheduleRequest) (*domain.ScheduleView, error) {
	name, err := validateName(request.Name)
	if err != nil {
		return nil, err
	}
	if err := validateHour("start_hour", request.StartHour); err != nil {
		return nil, err
	}
	if err := validateHour("end_hour", request.EndHour); err != nil {
		return nil, err
	}
	days, err := normalizeDays(request.DaysOfWeek)
	if err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "generating schedule id")
	}

	isActive := true
	if request.IsActive != nil {
		isActive = *request.IsActive
	}

	schedule := &domain.DaypartingSchedule{
		ID:         id,
		Name:       name,
		StartHour:  request.StartHour,
		EndHour:    request.EndHour,
		DaysOfWeek: days,
		IsActive:   isActive,
	}
	if err := s.schedules.Create(ctx, schedule); err != nil {
		return nil, errors.Wrap(domain.AsStorageError(err), "creating schedule")
	}

	logrus.WithFields(logrus.Fields{
		"schedule_id": schedule.ID,
		"start_hour":  schedule.StartHour,
		"end_hour":    schedule.EndHour,
	}).Info("Dayparting schedule created")

	return s.view(schedule, 0), nil
}

func (s *Service) GetSchedule(ctx context.Context, scheduleID string) (*domain.ScheduleView, error) {
	schedule, err := s.schedules.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, errors.Wrap(domain.AsStorageError(err), "loading schedule")
	}
	if schedule == nil {
		return nil, domain.NewNotFoundError("dayparting schedule", scheduleID)
	}

	counts, err := s.schedules.CountCampaigns(ctx)
	if err != nil {
		return nil, errors.Wrap(domain.AsStorageError(err), "counting schedule campaigns")
	}

	return s.view(schedule, counts[schedule.ID]), nil
}

func (s *Service) ListSchedules(ctx context.Context, onlyActive bool) ([]*domain.ScheduleView, error) {
	return s.listViews(ctx, onlyActive, false)
}

// CurrentlyActiveSchedules returns enabled schedules whose window contains the current instant.
func (s *Service) CurrentlyActiveSchedules(ctx context.Context) ([]*domain.ScheduleView, error) {
	return s.listViews(ctx, true, true)
}

// DeleteSchedule removes the schedule. Campaigns referencing it lose the reference and
// become unrestricted.
func (s *Service) DeleteSchedule(ctx context.Context, scheduleID string) error {
	deleted, err := s.schedules.Delete(ctx, scheduleID)
	if err != nil {
		return errors.Wrap(domain.AsStorageError(err), "deleting schedule")
	}
	if !deleted {
		return domain.NewNotFoundError("dayparting schedule", scheduleID)
	}
	return nil
}

func (s *Service) listViews(ctx context.Context, onlyActive, onlyOpen bool) ([]*domain.ScheduleView, error) {
	schedules, err := s.schedules.List(ctx, onlyActive)
	if err != nil {
		return nil, errors.Wrap(domain.AsStorageError(err), "listing schedules")
	}

	counts, err := s.schedules.CountCampaigns(ctx)
	if err != nil {
		return nil, errors.Wrap(domain.AsStorageError(err), "counting schedule campaigns")
	}

	views := make([]*domain.ScheduleView, 0, len(schedules))
	for _, schedule := range schedules {
		view := s.view(schedule, counts[schedule.ID])
		if onlyOpen && !view.IsCurrentlyActive {
			continue
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *Service) view(schedule *domain.DaypartingSchedule, campaigns int) *domain.ScheduleView {
	return &domain.ScheduleView{
		DaypartingSchedule: schedule,
		ActiveHours:        schedule.ActiveHours(),
		Days:               schedule.DayNames(),
		IsCurrentlyActive:  schedule.IsWithinWindow(s.clock()),
		CampaignsCount:     campaigns,
	}
}

func validateHour(field string, hour int) error {
	if hour < 0 || hour > 23 {
		return domain.NewInvalidInputError(fmt.Sprintf("%s must be within 0..23, got %d", field, hour))
	}
	return nil
}

// normalizeDays rejects out of range values and returns the days sorted without duplicates.
func normalizeDays(days []int) ([]int, error) {
	if len(days) == 0 {
		return nil, domain.NewInvalidInputError("days_of_week must not be empty")
	}

	seen := make(map[int]bool, len(days))
	out := make([]int, 0, len(days))
	for _, d := range days {
		if d < 0 || d > 6 {
			return nil, domain.NewInvalidInputError(fmt.Sprintf("days_of_week values must be within 0..6, got %d", d))
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	sort.Ints(out)
	return out, nil
}
