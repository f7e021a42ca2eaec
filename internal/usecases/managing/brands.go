package managing

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-guard-api/internal/domain"
	"github.com/vfg2006/budget-guard-api/pkg/utils"
)

func (s *Service) CreateBrand(ctx context.Context, request *domain.CreateBrandRequest) (*domain.Brand, error) {
	name, err := validateName(request.Name)
	if err != nil {
		return nil, err
	}
	if err := validateBudget("daily_budget", request.DailyBudget); err != nil {
		return nil, err
	}
	if err := validateBudget("monthly_budget", request.MonthlyBudget); err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "generating brand id")
	}

	brand := &domain.Brand{
		ID:            id,
		Name:          name,
		DailyBudget:   request.DailyBudget,
		MonthlyBudget: request.MonthlyBudget,
		IsActive:      true,
	}
	if err := s.brands.Create(ctx, brand); err != nil {
		return nil, errors.Wrap(domain.AsStorageError(err), "creating brand")
	}

	logrus.WithFields(logrus.Fields{
		"brand_id": brand.ID,
		"name":     brand.Name,
	}).Info("Brand created")

	return brand, nil
}

func (s *Service) GetBrand(ctx context.Context, brandID string) (*domain.Brand, error) {
	brand, err := s.brands.GetByID(ctx, brandID)
	if err != nil {
		return nil, errors.Wrap(domain.AsStorageError(err), "loading brand")
	}
	if brand == nil {
		return nil, domain.NewNotFoundError("brand", brandID)
	}
	return brand, nil
}

func (s *Service) ListBrands(ctx context.Context, onlyActive bool) ([]*domain.Brand, error) {
	brands, err := s.brands.List(ctx, onlyActive)
	if err != nil {
		return nil, errors.Wrap(domain.AsStorageError(err), "listing brands")
	}
	return brands, nil
}

// UpdateBrandBudgets changes one or both ceilings. The next status pass reacts to the new values.
func (s *Service) UpdateBrandBudgets(ctx context.Context, brandID string, request *domain.UpdateBrandBudgetsRequest) (*domain.Brand, error) {
	if request.DailyBudget == nil && request.MonthlyBudget == nil {
		return nil, domain.NewInvalidInputError("daily_budget or monthly_budget is required")
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

	brand, err := s.GetBrand(ctx, brandID)
	if err != nil {
		return nil, err
	}

	if request.DailyBudget != nil {
		brand.DailyBudget = *request.DailyBudget
	}
	if request.MonthlyBudget != nil {
		brand.MonthlyBudget = *request.MonthlyBudget
	}

	if err := s.brands.Update(ctx, brand); err != nil {
		return nil, errors.Wrap(domain.AsStorageError(err), "updating brand budgets")
	}
	return brand, nil
}

// SetBrandActive toggles the brand and immediately reconciles its campaigns: deactivation
// pauses every running campaign, activation starts the eligible ones.
func (s *Service) SetBrandActive(ctx context.Context, brandID string, active bool) (*domain.BrandActivationResult, error) {
	brand, err := s.GetBrand(ctx, brandID)
	if err != nil {
		return nil, err
	}

	if brand.IsActive != active {
		brand.IsActive = active
		if err := s.brands.Update(ctx, brand); err != nil {
			return nil, errors.Wrap(domain.AsStorageError(err), "updating brand")
		}
	}

	result := &domain.BrandActivationResult{Brand: brand}

	var report *domain.EnforcementReport
	if active {
		report, err = s.enforcer.ReactivateBrandCampaigns(ctx, brandID)
	} else {
		report, err = s.enforcer.DeactivateBrandCampaigns(ctx, brandID)
	}
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"brand_id": brandID,
			"active":   active,
			"error":    err,
		}).Error("Brand updated but campaign reconciliation failed")
		return result, nil
	}

	result.Enforcement = report
	logrus.WithFields(logrus.Fields{
		"brand_id":  brandID,
		"active":    active,
		"activated": report.CampaignsActivated,
		"paused":    report.CampaignsPaused,
	}).Info("Brand activation changed")

	return result, nil
}

func (s *Service) DeleteBrand(ctx context.Context, brandID string) error {
	deleted, err := s.brands.Delete(ctx, brandID)
	if err != nil {
		return errors.Wrap(domain.AsStorageError(err), "deleting brand")
	}
	if !deleted {
		return domain.NewNotFoundError("brand", brandID)
	}
	return nil
}
