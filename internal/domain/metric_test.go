package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCampaignMetric_Derive(t *testing.T) {
	tests := []struct {
		name   string
		metric CampaignMetric
		ctr    float64
		cpc    float64
		roas   float64
		cpa    float64
	}{
		{
			name:   "valores normais",
			metric: CampaignMetric{Impressions: 1000, Clicks: 50, Cost: 100, Conversions: 4, ConversionValue: 500},
			ctr:    5,
			cpc:    2,
			roas:   5,
			cpa:    25,
		},
		{
			name:   "sem impressões nem custo retorna zero",
			metric: CampaignMetric{},
		},
		{
			name:   "custo sem conversões",
			metric: CampaignMetric{Impressions: 200, Clicks: 0, Cost: 30},
			ctr:    0,
			cpc:    0,
			roas:   0,
			cpa:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.metric
			m.Derive()
			assert.InDelta(t, tt.ctr, m.CTR, 0.0001)
			assert.InDelta(t, tt.cpc, m.CPC, 0.0001)
			assert.InDelta(t, tt.roas, m.ROAS, 0.0001)
			assert.InDelta(t, tt.cpa, m.CPA, 0.0001)
		})
	}
}

func TestTotalize(t *testing.T) {
	totals := Totalize([]*CampaignMetric{
		{Impressions: 100, Clicks: 10, Cost: 20, Conversions: 1, ConversionValue: 60},
		{Impressions: 300, Clicks: 10, Cost: 20, Conversions: 3, ConversionValue: 20},
	})

	assert.Equal(t, int64(400), totals.Impressions)
	assert.Equal(t, int64(20), totals.Clicks)
	assert.InDelta(t, 5.0, totals.CTR, 0.0001)
	assert.InDelta(t, 2.0, totals.ROAS, 0.0001)
	assert.InDelta(t, 10.0, totals.CPA, 0.0001)
}

func TestRecommendationStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, RecommendationPending.CanTransitionTo(RecommendationApplied))
	assert.True(t, RecommendationPending.CanTransitionTo(RecommendationRejected))
	assert.False(t, RecommendationPending.CanTransitionTo(RecommendationPending))
	assert.False(t, RecommendationApplied.CanTransitionTo(RecommendationRejected))
	assert.False(t, RecommendationRejected.CanTransitionTo(RecommendationApplied))
}

func TestDashboardFilters_PreviousPeriod(t *testing.T) {
	f := DashboardFilters{
		StartDate: time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
	}

	start, end := f.PreviousPeriod()
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC), end)
}

func TestScopeFor(t *testing.T) {
	admin := ScopeFor(&Claims{UserID: 1, UserRoleID: RoleAdmin})
	assert.True(t, admin.Unrestricted())

	manager := ScopeFor(&Claims{UserID: 2, UserRoleID: RoleManager})
	if assert.NotNil(t, manager.ManagerID) {
		assert.Equal(t, 2, *manager.ManagerID)
	}
	assert.Nil(t, manager.ClientUserID)

	client := ScopeFor(&Claims{UserID: 3, UserRoleID: RoleClient})
	if assert.NotNil(t, client.ClientUserID) {
		assert.Equal(t, 3, *client.ClientUserID)
	}
}

func TestAlertThresholds_ForCampaign(t *testing.T) {
	base := AlertThresholds{MinROAS: 2, MinCTR: 1, MaxBudgetUsage: 100}
	roas := 3.5

	got := base.ForCampaign(&Campaign{MinROAS: &roas})
	assert.Equal(t, 3.5, got.MinROAS)
	assert.Equal(t, 1.0, got.MinCTR)
	assert.Equal(t, 2.0, base.MinROAS)
}
