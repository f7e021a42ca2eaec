package managing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/budget-guard-api/infrastructure/repository"
	"github.com/vfg2006/budget-guard-api/internal/domain"
	"github.com/vfg2006/budget-guard-api/internal/usecases/enforcing"
)

const maxNameLength = 200

// Largest value a NUMERIC(10, 2) column holds.
var maxBudget = decimal.RequireFromString("99999999.99")

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type ManagingService interface {
	CreateBrand(ctx context.Context, request *domain.CreateBrandRequest) (*domain.Brand, error)
	GetBrand(ctx context.Context, brandID string) (*domain.Brand, error)
	ListBrands(ctx context.Context, onlyActive bool) ([]*domain.Brand, error)
	UpdateBrandBudgets(ctx context.Context, brandID string, request *domain.UpdateBrandBudgetsRequest) (*domain.Brand, error)
	SetBrandActive(ctx context.Context, brandID string, active bool) (*domain.BrandActivationResult, error)
	DeleteBrand(ctx context.Context, brandID string) error

	CreateCampaign(ctx context.Context, request *domain.CreateCampaignRequest) (*domain.Campaign, error)
	GetCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context, filter domain.CampaignFilter) ([]*domain.Campaign, error)
	UpdateCampaign(ctx context.Context, request *domain.UpdateCampaignRequest) (*domain.Campaign, error)

	CreateSchedule(ctx context.Context, request *domain.CreateScheduleRequest) (*domain.ScheduleView, error)
	GetSchedule(ctx context.Context, scheduleID string) (*domain.ScheduleView, error)
	ListSchedules(ctx context.Context, onlyActive bool) ([]*domain.ScheduleView, error)
	CurrentlyActiveSchedules(ctx context.Context) ([]*domain.ScheduleView, error)
	DeleteSchedule(ctx context.Context, scheduleID string) error
}

type Service struct {
	brands    repository.BrandRepository
	campaigns repository.CampaignRepository
	schedules repository.ScheduleRepository
	enforcer  enforcing.Enforcer
	clock     func() time.Time
}

func NewService(
	brands repository.BrandRepository,
	campaigns repository.CampaignRepository,
	schedules repository.ScheduleRepository,
	enforcer enforcing.Enforcer,
	clock func() time.Time,
) *Service {
	return &Service{
		brands:    brands,
		campaigns: campaigns,
		schedules: schedules,
		enforcer:  enforcer,
		clock:     clock,
	}
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.NewInvalidInputError("name is required")
	}
	if len(name) > maxNameLength {
		return "", domain.NewInvalidInputError(fmt.Sprintf("name must have at most %d characters", maxNameLength))
	}
	return name, nil
}

// validateBudget accepts strictly positive amounts with cent precision.
func validateBudget(field string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domain.NewInvalidInputError(field + " must be positive")
	}
	if !amount.Equal(amount.Round(2)) {
		return domain.NewInvalidFormatError(field + " supports at most two decimal places")
	}
	if amount.GreaterThan(maxBudget) {
		return domain.NewInvalidInputError(field + " exceeds " + maxBudget.String())
	}
	return nil
}
