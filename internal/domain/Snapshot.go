package domain

import (
	"sort"
	"time"
)

// Snapshot is a consistent read of brands, campaigns, schedules and ledger totals
// taken at the start of an enforcement pass.
type Snapshot struct {
	TakenAt    time.Time
	Brands     map[string]*Brand
	Campaigns  []*Campaign
	Schedules  map[string]*DaypartingSchedule
	spend      map[string]SpendTotals
	brandSpend map[string]SpendTotals
}

// NewSnapshot indexes the given rows. spend is keyed by campaign id; campaigns
// without entries count as zero.
func NewSnapshot(
	takenAt time.Time,
	brands []*Brand,
	campaigns []*Campaign,
	schedules []*DaypartingSchedule,
	spend map[string]SpendTotals,
) *Snapshot {
	s := &Snapshot{
		TakenAt:    takenAt,
		Brands:     make(map[string]*Brand, len(brands)),
		Campaigns:  make([]*Campaign, 0, len(campaigns)),
		Schedules:  make(map[string]*DaypartingSchedule, len(schedules)),
		spend:      make(map[string]SpendTotals, len(spend)),
		brandSpend: make(map[string]SpendTotals, len(brands)),
	}

	for _, b := range brands {
		s.Brands[b.ID] = b
	}
	for _, sc := range schedules {
		s.Schedules[sc.ID] = sc
	}
	for id, totals := range spend {
		s.spend[id] = totals
	}

	for _, c := range campaigns {
		if _, ok := s.Brands[c.BrandID]; !ok {
			continue
		}
		s.Campaigns = append(s.Campaigns, c)
		s.brandSpend[c.BrandID] = s.brandSpend[c.BrandID].Add(s.spend[c.ID])
	}

	sort.SliceStable(s.Campaigns, func(i, j int) bool {
		if s.Campaigns[i].BrandID != s.Campaigns[j].BrandID {
			return s.Campaigns[i].BrandID < s.Campaigns[j].BrandID
		}
		return s.Campaigns[i].Name < s.Campaigns[j].Name
	})

	return s
}

func (s *Snapshot) CampaignSpend(campaignID string) SpendTotals {
	return s.spend[campaignID]
}

func (s *Snapshot) BrandSpend(brandID string) SpendTotals {
	return s.brandSpend[brandID]
}

func (s *Snapshot) Brand(campaign *Campaign) *Brand {
	return s.Brands[campaign.BrandID]
}

// Schedule returns nil for campaigns without a schedule reference.
func (s *Snapshot) Schedule(campaign *Campaign) *DaypartingSchedule {
	if !campaign.HasSchedule() {
		return nil
	}
	return s.Schedules[*campaign.DaypartingScheduleID]
}

func (s *Snapshot) Campaign(id string) *Campaign {
	for _, c := range s.Campaigns {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// BrandCampaigns returns the campaigns of a brand in name order.
func (s *Snapshot) BrandCampaigns(brandID string) []*Campaign {
	out := make([]*Campaign, 0)
	for _, c := range s.Campaigns {
		if c.BrandID == brandID {
			out = append(out, c)
		}
	}
	return out
}

// ActiveBrands returns active brands in name order.
func (s *Snapshot) ActiveBrands() []*Brand {
	out := make([]*Brand, 0, len(s.Brands))
	for _, b := range s.Brands {
		if b.IsActive {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
