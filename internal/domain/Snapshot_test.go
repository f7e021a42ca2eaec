package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewSnapshot_AggregatesBrandSpend(t *testing.T) {
	scheduleID := "sched1"
	brands := []*Brand{
		{ID: "b1", Name: "Acme", IsActive: true},
		{ID: "b2", Name: "Beta", IsActive: false},
	}
	campaigns := []*Campaign{
		{ID: "c2", Name: "Zeta", BrandID: "b1"},
		{ID: "c1", Name: "Alpha", BrandID: "b1", DaypartingScheduleID: &scheduleID},
		{ID: "c3", Name: "Gamma", BrandID: "b2"},
		{ID: "c4", Name: "Orphan", BrandID: "missing"},
	}
	schedules := []*DaypartingSchedule{{ID: scheduleID, Name: "Office hours"}}
	spend := map[string]SpendTotals{
		"c1": {Daily: dec("10.50"), Monthly: dec("100.00")},
		"c2": {Daily: dec("4.50"), Monthly: dec("20.00")},
	}

	snapshot := NewSnapshot(time.Now(), brands, campaigns, schedules, spend)

	assert.Len(t, snapshot.Campaigns, 3)
	assert.Equal(t, "c1", snapshot.Campaigns[0].ID)
	assert.Equal(t, "c2", snapshot.Campaigns[1].ID)

	brandTotals := snapshot.BrandSpend("b1")
	assert.True(t, dec("15.00").Equal(brandTotals.Daily))
	assert.True(t, dec("120.00").Equal(brandTotals.Monthly))

	assert.True(t, snapshot.BrandSpend("b2").Daily.IsZero())
	assert.True(t, snapshot.CampaignSpend("c3").Monthly.IsZero())

	assert.Equal(t, "Office hours", snapshot.Schedule(snapshot.Campaign("c1")).Name)
	assert.Nil(t, snapshot.Schedule(snapshot.Campaign("c2")))
	assert.Nil(t, snapshot.Campaign("c4"))

	active := snapshot.ActiveBrands()
	assert.Len(t, active, 1)
	assert.Equal(t, "b1", active[0].ID)
	assert.Len(t, snapshot.BrandCampaigns("b1"), 2)
}
