package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-optimizer-api/internal/config"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/alerting"
	alertmocks "github.com/vfg2006/ads-optimizer-api/internal/usecases/alerting/mocks"
	syncmocks "github.com/vfg2006/ads-optimizer-api/internal/usecases/syncing/mocks"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string { return &s }

var refNow = time.Date(2024, 1, 16, 3, 0, 0, 0, time.UTC)

func TestMetricsSyncService_RunOnce(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	campaignRepo := mocks.NewMockCampaignRepository(ctrl)
	synchronizer := syncmocks.NewMockSynchronizer(ctrl)

	service := NewMetricsSyncService(config.MetricsSync{
		CronSchedule:        "0 3 * * *",
		LookbackDays:        3,
		RequestDelaySeconds: 1,
		MaxConcurrentJobs:   2,
	}, campaignRepo, synchronizer)
	service.now = func() time.Time { return refNow }

	var slept []time.Duration
	var mu sync.Mutex
	service.sleep = func(d time.Duration) {
		mu.Lock()
		slept = append(slept, d)
		mu.Unlock()
	}

	expectedPeriod := domain.DateRange{
		StartDate: time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}

	linked := &domain.Campaign{ID: "c1", ExternalID: stringPtr("111"), CustomerID: stringPtr("1234567890")}
	failing := &domain.Campaign{ID: "c2", ExternalID: stringPtr("222"), CustomerID: stringPtr("1234567890")}
	manual := &domain.Campaign{ID: "c3"}

	campaignRepo.EXPECT().ListActive(gomock.Any()).Return([]*domain.Campaign{linked, failing, manual}, nil)
	synchronizer.EXPECT().SyncCampaignMetrics(gomock.Any(), linked, expectedPeriod).Return(3, nil)
	synchronizer.EXPECT().SyncCampaignMetrics(gomock.Any(), failing, expectedPeriod).Return(0, errors.New("quota"))

	err := service.RunOnce(ctx)
	assert.ErrorContains(t, err, "1 campanhas falharam")

	assert.Len(t, slept, 2)
	assert.Equal(t, time.Second, slept[0])

	status := service.GetStatus()
	assert.Equal(t, false, status["running"])
	assert.Equal(t, 3, status["sync_lookback_days"])
	assert.NotEmpty(t, status["last_error"])
}

func TestMetricsSyncService_DefaultsAndDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)

	service := NewMetricsSyncService(config.MetricsSync{}, mocks.NewMockCampaignRepository(ctrl), syncmocks.NewMockSynchronizer(ctrl))
	service.now = func() time.Time { return refNow }

	period := service.period()
	assert.Equal(t, period.StartDate, period.EndDate)
	assert.Equal(t, 1, service.config.MaxConcurrentJobs)

	// desabilitado não agenda nada
	require.NoError(t, service.Start(context.Background()))
	assert.Empty(t, service.scheduler.Jobs())
}

func TestAlertAnalysisService_RunOnce(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	analyzer := alertmocks.NewMockAlertManager(ctrl)
	service := NewAlertAnalysisService(config.AlertAnalysis{CronSchedule: "0 5 * * *"}, analyzer)
	service.now = func() time.Time { return refNow }

	summary := &alerting.AnalysisSummary{Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), Campaigns: 4, AlertsCreated: 2}
	analyzer.EXPECT().AnalyzeAll(gomock.Any(), refNow.AddDate(0, 0, -1)).Return(summary, nil)

	require.NoError(t, service.RunOnce(ctx))
	assert.Equal(t, summary, service.GetStatus()["last_summary"])
}

func TestMetricsSyncService_ChainsAlertAnalysis(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	campaignRepo := mocks.NewMockCampaignRepository(ctrl)
	analyzer := alertmocks.NewMockAlertManager(ctrl)

	metricsSync := NewMetricsSyncService(config.MetricsSync{CronSchedule: "0 3 * * *"}, campaignRepo, syncmocks.NewMockSynchronizer(ctrl))
	metricsSync.now = func() time.Time { return refNow }
	alertAnalysis := NewAlertAnalysisService(config.AlertAnalysis{Enabled: true}, analyzer)
	alertAnalysis.now = func() time.Time { return refNow }
	metricsSync.Then(alertAnalysis)

	summary := &alerting.AnalysisSummary{Date: refNow.AddDate(0, 0, -1)}

	t.Run("análise roda depois da sincronização agendada", func(t *testing.T) {
		gomock.InOrder(
			campaignRepo.EXPECT().ListActive(gomock.Any()).Return([]*domain.Campaign{}, nil),
			analyzer.EXPECT().AnalyzeAll(gomock.Any(), refNow.AddDate(0, 0, -1)).Return(summary, nil),
		)

		metricsSync.runScheduled(ctx, metricsSync.syncAll)
		assert.Equal(t, false, metricsSync.GetStatus()["running"])
	})

	t.Run("falha na sincronização não impede a análise", func(t *testing.T) {
		gomock.InOrder(
			campaignRepo.EXPECT().ListActive(gomock.Any()).Return(nil, errors.New("db")),
			analyzer.EXPECT().AnalyzeAll(gomock.Any(), gomock.Any()).Return(summary, nil),
		)

		metricsSync.runScheduled(ctx, metricsSync.syncAll)
	})

	t.Run("execução manual não encadeia", func(t *testing.T) {
		campaignRepo.EXPECT().ListActive(gomock.Any()).Return([]*domain.Campaign{}, nil)

		require.NoError(t, metricsSync.RunOnce(ctx))
	})
}

func TestAlertAnalysisService_StartChained(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewAlertAnalysisService(config.AlertAnalysis{Enabled: true}, alertmocks.NewMockAlertManager(ctrl))

	require.NoError(t, service.Start(context.Background()))
	assert.Empty(t, service.scheduler.Jobs())
}

func TestRunner_SkipsConcurrentRun(t *testing.T) {
	r := newRunner("test")
	started := make(chan struct{})
	release := make(chan struct{})

	go r.run(context.Background(), func(context.Context) error {
		close(started)
		<-release
		return nil
	})
	<-started

	err := r.run(context.Background(), func(context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrAlreadyRunning)
	assert.False(t, r.trigger(func(context.Context) error { return nil }))

	close(release)
}
