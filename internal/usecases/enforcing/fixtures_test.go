package enforcing

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/budget-guard-api/internal/domain"
)

// Monday 2024-01-15 10:00 UTC
var tickAt = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func strPtr(s string) *string {
	return &s
}

func newBrand(id string, daily, monthly string) *domain.Brand {
	return &domain.Brand{
		ID:            id,
		Name:          "Brand " + id,
		DailyBudget:   dec(daily),
		MonthlyBudget: dec(monthly),
		IsActive:      true,
	}
}

func newCampaign(id, brandID string, status domain.CampaignStatus, running bool) *domain.Campaign {
	return &domain.Campaign{
		ID:       id,
		Name:     "Campaign " + id,
		BrandID:  brandID,
		Status:   status,
		IsActive: running,
	}
}

// businessHours covers 9..17 on weekdays.
func businessHours() *domain.DaypartingSchedule {
	return &domain.DaypartingSchedule{
		ID:         "sched-business",
		Name:       "Business hours",
		StartHour:  9,
		EndHour:    17,
		DaysOfWeek: []int{0, 1, 2, 3, 4},
		IsActive:   true,
	}
}

// nightShift covers 22..6 every day, so it is closed at tickAt.
func nightShift() *domain.DaypartingSchedule {
	return &domain.DaypartingSchedule{
		ID:         "sched-night",
		Name:       "Night shift",
		StartHour:  22,
		EndHour:    6,
		DaysOfWeek: []int{0, 1, 2, 3, 4, 5, 6},
		IsActive:   true,
	}
}

// memoryStore keeps brands, campaigns, schedules and spend in memory and
// serves both the snapshot and the campaign repository contracts.
type memoryStore struct {
	mu        sync.Mutex
	brands    map[string]*domain.Brand
	campaigns map[string]*domain.Campaign
	schedules map[string]*domain.DaypartingSchedule
	spend     map[string]domain.SpendTotals
	loadErr   error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		brands:    make(map[string]*domain.Brand),
		campaigns: make(map[string]*domain.Campaign),
		schedules: make(map[string]*domain.DaypartingSchedule),
		spend:     make(map[string]domain.SpendTotals),
	}
}

func (m *memoryStore) addBrand(b *domain.Brand) {
	m.brands[b.ID] = b
}

func (m *memoryStore) addCampaign(c *domain.Campaign) {
	m.campaigns[c.ID] = c
}

func (m *memoryStore) addSchedule(s *domain.DaypartingSchedule) {
	m.schedules[s.ID] = s
}

func (m *memoryStore) setSpend(campaignID, daily, monthly string) {
	m.spend[campaignID] = domain.SpendTotals{Daily: dec(daily), Monthly: dec(monthly)}
}

// clone deep-copies the store so one fixture can be driven along different paths.
func (m *memoryStore) clone() *memoryStore {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := newMemoryStore()
	for id, b := range m.brands {
		copied := *b
		out.brands[id] = &copied
	}
	for id, c := range m.campaigns {
		copied := *c
		out.campaigns[id] = &copied
	}
	for id, s := range m.schedules {
		copied := *s
		out.schedules[id] = &copied
	}
	for id, t := range m.spend {
		out.spend[id] = t
	}
	return out
}

func (m *memoryStore) runState() map[string]bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	state := make(map[string]bool, len(m.campaigns))
	for id, c := range m.campaigns {
		state[id] = c.IsActive
	}
	return state
}

func (m *memoryStore) Load(_ context.Context, at time.Time, brandIDs ...string) (*domain.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.loadErr != nil {
		return nil, m.loadErr
	}

	scope := make(map[string]bool, len(brandIDs))
	for _, id := range brandIDs {
		scope[id] = true
	}
	inScope := func(brandID string) bool {
		return len(scope) == 0 || scope[brandID]
	}

	brands := make([]*domain.Brand, 0, len(m.brands))
	for _, b := range m.brands {
		if inScope(b.ID) {
			copied := *b
			brands = append(brands, &copied)
		}
	}

	campaigns := make([]*domain.Campaign, 0, len(m.campaigns))
	for _, c := range m.campaigns {
		if inScope(c.BrandID) {
			copied := *c
			campaigns = append(campaigns, &copied)
		}
	}

	schedules := make([]*domain.DaypartingSchedule, 0, len(m.schedules))
	for _, s := range m.schedules {
		copied := *s
		schedules = append(schedules, &copied)
	}

	spend := make(map[string]domain.SpendTotals, len(m.spend))
	for id, t := range m.spend {
		spend[id] = t
	}

	return domain.NewSnapshot(at, brands, campaigns, schedules, spend), nil
}

func (m *memoryStore) Create(_ context.Context, campaign *domain.Campaign) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *campaign
	m.campaigns[campaign.ID] = &copied
	return nil
}

func (m *memoryStore) GetByID(_ context.Context, campaignID string) (*domain.Campaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.campaigns[campaignID]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (m *memoryStore) List(_ context.Context, filter domain.CampaignFilter) ([]*domain.Campaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*domain.Campaign, 0)
	for _, c := range m.campaigns {
		if filter.BrandID != "" && c.BrandID != filter.BrandID {
			continue
		}
		if filter.IsActive != nil && c.IsActive != *filter.IsActive {
			continue
		}
		copied := *c
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memoryStore) Count(ctx context.Context, filter domain.CampaignFilter) (int, error) {
	campaigns, err := m.List(ctx, filter)
	return len(campaigns), err
}

func (m *memoryStore) Update(_ context.Context, campaign *domain.Campaign) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.campaigns[campaign.ID]
	if !ok {
		return domain.NewNotFoundError("campaign", campaign.ID)
	}
	copied := *campaign
	copied.IsActive = current.IsActive
	m.campaigns[campaign.ID] = &copied
	return nil
}

func (m *memoryStore) ApplyTransitions(_ context.Context, transitions []domain.Transition) ([]domain.Transition, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	applied := make([]domain.Transition, 0, len(transitions))
	for _, t := range transitions {
		c, ok := m.campaigns[t.CampaignID]
		if !ok || c.IsActive != t.From {
			continue
		}
		c.IsActive = t.To
		applied = append(applied, t)
	}
	return applied, nil
}
