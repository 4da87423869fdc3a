package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestService_GetDashboard(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	campaigns := mocks.NewMockCampaignRepository(ctrl)
	metrics := mocks.NewMockCampaignMetricRepository(ctrl)
	alerts := mocks.NewMockAlertRepository(ctrl)
	recs := mocks.NewMockRecommendationRepository(ctrl)
	svc := NewService(campaigns, metrics, alerts, recs)

	requester := &domain.Claims{UserID: 2, UserRoleID: domain.RoleManager}
	scope := domain.ScopeFor(requester)
	filters := domain.DashboardFilters{StartDate: day(8), EndDate: day(14)}
	prev := domain.DashboardFilters{StartDate: day(1), EndDate: day(7)}

	metrics.EXPECT().DailySeries(gomock.Any(), scope, filters).Return([]*domain.DailyPoint{
		{Date: day(8), Impressions: 1000, Clicks: 30, Cost: 100, Conversions: 3, ConversionValue: 400},
		{Date: day(9), Impressions: 1000, Clicks: 10, Cost: 100, Conversions: 1, ConversionValue: 200},
	}, nil)
	metrics.EXPECT().DailySeries(gomock.Any(), scope, prev).Return([]*domain.DailyPoint{
		{Date: day(1), Impressions: 1000, Clicks: 20, Cost: 100, Conversions: 2, ConversionValue: 300},
	}, nil)
	metrics.EXPECT().TopCampaigns(gomock.Any(), scope, filters, topCampaignsLimit).Return([]*domain.CampaignPerformance{{CampaignID: "c1", ROAS: 3}}, nil)
	campaigns.EXPECT().List(gomock.Any(), gomock.Any(), scope).Return([]*domain.Campaign{{ID: "c1"}, {ID: "c2"}}, nil)
	alerts.EXPECT().UnreadCount(gomock.Any(), scope, nil).Return(4, nil)
	recs.EXPECT().CountPending(gomock.Any(), scope, nil).Return(2, nil)

	dashboard, err := svc.GetDashboard(ctx, requester, filters)
	require.NoError(t, err)

	assert.Equal(t, int64(2000), dashboard.Totals.Impressions)
	assert.InDelta(t, 3.0, dashboard.Totals.ROAS, 0.0001)
	assert.InDelta(t, 2.0, dashboard.Totals.CTR, 0.0001)
	assert.InDelta(t, 3.0, dashboard.PreviousTotals.ROAS, 0.0001)

	assert.InDelta(t, 100.0, dashboard.Changes.Impressions, 0.001)
	assert.InDelta(t, 100.0, dashboard.Changes.Cost, 0.001)
	assert.InDelta(t, 0.0, dashboard.Changes.ROAS, 0.001)
	assert.InDelta(t, 0.0, dashboard.Changes.CTR, 0.001)

	assert.Equal(t, 2, dashboard.ActiveCampaigns)
	assert.Equal(t, 4, dashboard.UnreadAlerts)
	assert.Equal(t, 2, dashboard.PendingRecommendations)
	assert.Len(t, dashboard.Daily, 2)
	assert.Len(t, dashboard.TopCampaigns, 1)
}

func TestService_GetDashboard_EmptyPreviousPeriod(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	metrics := mocks.NewMockCampaignMetricRepository(ctrl)
	campaigns := mocks.NewMockCampaignRepository(ctrl)
	alerts := mocks.NewMockAlertRepository(ctrl)
	recs := mocks.NewMockRecommendationRepository(ctrl)
	svc := NewService(campaigns, metrics, alerts, recs)

	campaignID := "c1"
	filters := domain.DashboardFilters{StartDate: day(8), EndDate: day(8), CampaignID: &campaignID}

	metrics.EXPECT().DailySeries(gomock.Any(), gomock.Any(), filters).Return([]*domain.DailyPoint{{Impressions: 10, Cost: 5}}, nil)
	metrics.EXPECT().DailySeries(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	metrics.EXPECT().TopCampaigns(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	campaigns.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*domain.Campaign{{ID: "c1"}, {ID: "c2"}}, nil)
	alerts.EXPECT().UnreadCount(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil)
	recs.EXPECT().CountPending(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil)

	dashboard, err := svc.GetDashboard(ctx, &domain.Claims{UserRoleID: domain.RoleAdmin}, filters)
	require.NoError(t, err)

	// sem período anterior a variação é zero
	assert.Equal(t, 0.0, dashboard.Changes.Impressions)
	assert.Equal(t, 1, dashboard.ActiveCampaigns)
}

func TestService_GetDashboard_Errors(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	metrics := mocks.NewMockCampaignMetricRepository(ctrl)
	campaigns := mocks.NewMockCampaignRepository(ctrl)
	alerts := mocks.NewMockAlertRepository(ctrl)
	recs := mocks.NewMockRecommendationRepository(ctrl)
	svc := NewService(campaigns, metrics, alerts, recs)

	_, err := svc.GetDashboard(ctx, &domain.Claims{}, domain.DashboardFilters{StartDate: day(10), EndDate: day(1)})
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	boom := errors.New("db down")
	metrics.EXPECT().DailySeries(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, boom).AnyTimes()
	metrics.EXPECT().TopCampaigns(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	campaigns.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	alerts.EXPECT().UnreadCount(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
	recs.EXPECT().CountPending(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()

	_, err = svc.GetDashboard(ctx, &domain.Claims{}, domain.DashboardFilters{StartDate: day(1), EndDate: day(2)})
	assert.ErrorIs(t, err, boom)
}
