package enforcing

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-guard-api/infrastructure/repository"
	"github.com/vfg2006/budget-guard-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

type Enforcer interface {
	EnforceDayparting(ctx context.Context) (*domain.EnforcementReport, error)
	EnforceStatuses(ctx context.Context) (*domain.EnforcementReport, error)
	ResetBudgets(ctx context.Context, pass domain.EnforcementPass) (*domain.EnforcementReport, error)
	ReactivateBrandCampaigns(ctx context.Context, brandID string) (*domain.EnforcementReport, error)
	DeactivateBrandCampaigns(ctx context.Context, brandID string) (*domain.EnforcementReport, error)
	ActivateCampaign(ctx context.Context, campaignID string) (bool, error)
	PauseCampaign(ctx context.Context, campaignID string) (bool, error)
	PauseIfRequired(ctx context.Context, campaignID string) (shouldPause bool, wasPaused bool, err error)
	CheckCampaign(ctx context.Context, campaignID string) (*domain.CampaignStatusCheck, error)
	CampaignsNeedingActivation(ctx context.Context) ([]*domain.Campaign, error)
	CampaignsNeedingPause(ctx context.Context) ([]*domain.Campaign, error)
}

type Service struct {
	snapshots repository.SnapshotRepository
	campaigns repository.CampaignRepository
	clock     func() time.Time
}

func NewService(
	snapshots repository.SnapshotRepository,
	campaigns repository.CampaignRepository,
	clock func() time.Time,
) *Service {
	return &Service{
		snapshots: snapshots,
		campaigns: campaigns,
		clock:     clock,
	}
}

// load reads the whole state a pass decides on. Any read failure aborts the pass
// before a single write happens.
func (s *Service) load(ctx context.Context, brandIDs ...string) (*domain.Snapshot, error) {
	snapshot, err := s.snapshots.Load(ctx, s.clock(), brandIDs...)
	if err != nil {
		return nil, errors.Wrap(domain.NewUnavailableError(err), "loading enforcement snapshot")
	}
	return snapshot, nil
}

// apply writes all transitions atomically and returns the ids whose compare-and-set won.
func (s *Service) apply(ctx context.Context, transitions []domain.Transition) (map[string]bool, error) {
	won := make(map[string]bool, len(transitions))
	if len(transitions) == 0 {
		return won, nil
	}

	applied, err := s.campaigns.ApplyTransitions(ctx, transitions)
	if err != nil {
		return nil, errors.Wrap(domain.NewUnavailableError(err), "applying campaign transitions")
	}

	for _, t := range applied {
		won[t.CampaignID] = true
	}
	return won, nil
}

func (s *Service) getCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	campaign, err := s.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return nil, errors.Wrap(domain.NewUnavailableError(err), "loading campaign")
	}
	if campaign == nil {
		return nil, domain.NewNotFoundError("campaign", campaignID)
	}
	return campaign, nil
}

// subjectOf loads a brand-scoped snapshot and returns the campaign subject from it.
func (s *Service) subjectOf(ctx context.Context, campaignID string) (*domain.Snapshot, Subject, error) {
	campaign, err := s.getCampaign(ctx, campaignID)
	if err != nil {
		return nil, Subject{}, err
	}

	snapshot, err := s.load(ctx, campaign.BrandID)
	if err != nil {
		return nil, Subject{}, err
	}

	current := snapshot.Campaign(campaignID)
	if current == nil {
		return nil, Subject{}, domain.NewNotFoundError("campaign", campaignID)
	}

	return snapshot, SubjectFor(snapshot, current), nil
}

func changeOf(snapshot *domain.Snapshot, campaign *domain.Campaign, withSchedule bool) *domain.CampaignChange {
	change := &domain.CampaignChange{
		CampaignID:   campaign.ID,
		CampaignName: campaign.Name,
	}
	if brand := snapshot.Brand(campaign); brand != nil {
		change.BrandName = brand.Name
	}
	if withSchedule {
		if schedule := snapshot.Schedule(campaign); schedule != nil {
			change.ScheduleName = schedule.Name
		}
	}
	return change
}

// EnforceDayparting pauses running campaigns whose schedule window is closed. It never activates.
func (s *Service) EnforceDayparting(ctx context.Context) (*domain.EnforcementReport, error) {
	snapshot, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	report := domain.NewEnforcementReport(domain.PassDayparting, snapshot.TakenAt)
	candidates := make([]*domain.Campaign, 0)
	transitions := make([]domain.Transition, 0)

	for _, campaign := range snapshot.Campaigns {
		if !campaign.HasSchedule() || !campaign.IsActive {
			continue
		}
		report.CampaignsChecked++

		if Passes(CheckWithinDayparting, SubjectFor(snapshot, campaign)) {
			continue
		}

		candidates = append(candidates, campaign)
		transitions = append(transitions, domain.Transition{CampaignID: campaign.ID, From: true, To: false})
	}

	won, err := s.apply(ctx, transitions)
	if err != nil {
		return nil, err
	}

	for _, campaign := range candidates {
		if won[campaign.ID] {
			report.AddPaused(changeOf(snapshot, campaign, true))
		}
	}

	return report, nil
}

// EnforceStatuses activates eligible declared-active campaigns and pauses running ones that must stop.
func (s *Service) EnforceStatuses(ctx context.Context) (*domain.EnforcementReport, error) {
	snapshot, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	report := domain.NewEnforcementReport(domain.PassStatuses, snapshot.TakenAt)
	toActivate := make([]*domain.Campaign, 0)
	toPause := make([]*domain.Campaign, 0)
	transitions := make([]domain.Transition, 0)

	for _, campaign := range snapshot.Campaigns {
		subject := SubjectFor(snapshot, campaign)

		switch {
		case campaign.Status == domain.CampaignStatusActive && !campaign.IsActive:
			report.CampaignsChecked++
			if CanActivate(subject) {
				toActivate = append(toActivate, campaign)
				transitions = append(transitions, domain.Transition{CampaignID: campaign.ID, From: false, To: true})
			}
		case campaign.IsActive:
			report.CampaignsChecked++
			if MustPause(subject) {
				toPause = append(toPause, campaign)
				transitions = append(transitions, domain.Transition{CampaignID: campaign.ID, From: true, To: false})
			}
		}
	}

	won, err := s.apply(ctx, transitions)
	if err != nil {
		return nil, err
	}

	for _, campaign := range toActivate {
		if won[campaign.ID] {
			report.AddActivated(changeOf(snapshot, campaign, false))
		}
	}
	for _, campaign := range toPause {
		if won[campaign.ID] {
			report.AddPaused(changeOf(snapshot, campaign, false))
		}
	}

	return report, nil
}

// ResetBudgets re-attempts activation for every inactive campaign of every active brand.
// Spend windows are computed live, so crossing the boundary already zeroed the totals.
func (s *Service) ResetBudgets(ctx context.Context, pass domain.EnforcementPass) (*domain.EnforcementReport, error) {
	if pass != domain.PassDailyReset && pass != domain.PassMonthlyReset {
		return nil, domain.NewInvalidInputError("unknown reset pass: " + string(pass))
	}

	snapshot, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	report := domain.NewEnforcementReport(pass, snapshot.TakenAt)
	candidates := make([]*domain.Campaign, 0)
	transitions := make([]domain.Transition, 0)

	for _, brand := range snapshot.ActiveBrands() {
		report.BrandsChecked++

		for _, campaign := range snapshot.BrandCampaigns(brand.ID) {
			if campaign.IsActive {
				continue
			}
			report.CampaignsChecked++

			if CanActivate(SubjectFor(snapshot, campaign)) {
				candidates = append(candidates, campaign)
				transitions = append(transitions, domain.Transition{CampaignID: campaign.ID, From: false, To: true})
			}
		}
	}

	won, err := s.apply(ctx, transitions)
	if err != nil {
		return nil, err
	}

	for _, campaign := range candidates {
		if won[campaign.ID] {
			report.AddActivated(changeOf(snapshot, campaign, false))
		}
	}

	return report, nil
}

// ReactivateBrandCampaigns activates eligible inactive campaigns of one brand, provided
// the brand itself is active and has budget left.
func (s *Service) ReactivateBrandCampaigns(ctx context.Context, brandID string) (*domain.EnforcementReport, error) {
	snapshot, err := s.load(ctx, brandID)
	if err != nil {
		return nil, err
	}

	brand, ok := snapshot.Brands[brandID]
	if !ok {
		return nil, domain.NewNotFoundError("brand", brandID)
	}

	report := domain.NewEnforcementReport(domain.PassBrandRefresh, snapshot.TakenAt)
	report.BrandsChecked = 1

	brandSpend := snapshot.BrandSpend(brandID)
	if !brand.IsActive ||
		!domain.Available(brand.DailyBudget, brandSpend.Daily) ||
		!domain.Available(brand.MonthlyBudget, brandSpend.Monthly) {
		logrus.WithFields(logrus.Fields{
			"brand_id": brandID,
		}).Info("Brand cannot activate campaigns, skipping reactivation")
		return report, nil
	}

	candidates := make([]*domain.Campaign, 0)
	transitions := make([]domain.Transition, 0)
	for _, campaign := range snapshot.BrandCampaigns(brandID) {
		if campaign.IsActive {
			continue
		}
		report.CampaignsChecked++

		if CanActivate(SubjectFor(snapshot, campaign)) {
			candidates = append(candidates, campaign)
			transitions = append(transitions, domain.Transition{CampaignID: campaign.ID, From: false, To: true})
		}
	}

	won, err := s.apply(ctx, transitions)
	if err != nil {
		return nil, err
	}

	for _, campaign := range candidates {
		if won[campaign.ID] {
			report.AddActivated(changeOf(snapshot, campaign, false))
		}
	}

	return report, nil
}

// DeactivateBrandCampaigns pauses every running campaign of a brand regardless of budget.
func (s *Service) DeactivateBrandCampaigns(ctx context.Context, brandID string) (*domain.EnforcementReport, error) {
	snapshot, err := s.load(ctx, brandID)
	if err != nil {
		return nil, err
	}

	if _, ok := snapshot.Brands[brandID]; !ok {
		return nil, domain.NewNotFoundError("brand", brandID)
	}

	report := domain.NewEnforcementReport(domain.PassBrandPause, snapshot.TakenAt)
	report.BrandsChecked = 1

	candidates := make([]*domain.Campaign, 0)
	transitions := make([]domain.Transition, 0)
	for _, campaign := range snapshot.BrandCampaigns(brandID) {
		if !campaign.IsActive {
			continue
		}
		report.CampaignsChecked++
		candidates = append(candidates, campaign)
		transitions = append(transitions, domain.Transition{CampaignID: campaign.ID, From: true, To: false})
	}

	won, err := s.apply(ctx, transitions)
	if err != nil {
		return nil, err
	}

	for _, campaign := range candidates {
		if won[campaign.ID] {
			report.AddPaused(changeOf(snapshot, campaign, false))
		}
	}

	return report, nil
}

// ActivateCampaign returns true when the campaign is allowed to run and ends up running.
// Unmet preconditions are a no-op, not an error.
func (s *Service) ActivateCampaign(ctx context.Context, campaignID string) (bool, error) {
	_, subject, err := s.subjectOf(ctx, campaignID)
	if err != nil {
		return false, err
	}

	if !CanActivate(subject) {
		return false, nil
	}
	if subject.Campaign.IsActive {
		return true, nil
	}

	won, err := s.apply(ctx, []domain.Transition{{CampaignID: campaignID, From: false, To: true}})
	if err != nil {
		return false, err
	}
	return won[campaignID], nil
}

// PauseCampaign returns true only if this call flipped a running campaign off.
func (s *Service) PauseCampaign(ctx context.Context, campaignID string) (bool, error) {
	campaign, err := s.getCampaign(ctx, campaignID)
	if err != nil {
		return false, err
	}
	if !campaign.IsActive {
		return false, nil
	}

	won, err := s.apply(ctx, []domain.Transition{{CampaignID: campaignID, From: true, To: false}})
	if err != nil {
		return false, err
	}
	return won[campaignID], nil
}

// PauseIfRequired re-evaluates a campaign after new spend and pauses it when it must stop.
func (s *Service) PauseIfRequired(ctx context.Context, campaignID string) (bool, bool, error) {
	_, subject, err := s.subjectOf(ctx, campaignID)
	if err != nil {
		return false, false, err
	}

	shouldPause := MustPause(subject)
	if !shouldPause || !subject.Campaign.IsActive {
		return shouldPause, false, nil
	}

	won, err := s.apply(ctx, []domain.Transition{{CampaignID: campaignID, From: true, To: false}})
	if err != nil {
		return shouldPause, false, err
	}
	return shouldPause, won[campaignID], nil
}

func (s *Service) CheckCampaign(ctx context.Context, campaignID string) (*domain.CampaignStatusCheck, error) {
	_, subject, err := s.subjectOf(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	return StatusCheck(subject), nil
}

func (s *Service) CampaignsNeedingActivation(ctx context.Context) ([]*domain.Campaign, error) {
	snapshot, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.Campaign, 0)
	for _, campaign := range snapshot.Campaigns {
		if campaign.Status != domain.CampaignStatusActive || campaign.IsActive {
			continue
		}
		if CanActivate(SubjectFor(snapshot, campaign)) {
			out = append(out, campaign)
		}
	}
	return out, nil
}

func (s *Service) CampaignsNeedingPause(ctx context.Context) ([]*domain.Campaign, error) {
	snapshot, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.Campaign, 0)
	for _, campaign := range snapshot.Campaigns {
		if campaign.IsActive && MustPause(SubjectFor(snapshot, campaign)) {
			out = append(out, campaign)
		}
	}
	return out, nil
}
