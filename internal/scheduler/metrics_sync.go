package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/ads-optimizer-api/internal/config"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/syncing"
	"github.com/vfg2006/ads-optimizer-api/pkg/utils"
)

const JobMetricsSync = "metrics-sync"

// MetricsSyncService importa diariamente as métricas do Google Ads das campanhas ativas
type MetricsSyncService struct {
	*runner
	config       config.MetricsSync
	campaignRepo repository.CampaignRepository
	synchronizer syncing.Synchronizer
	now          func() time.Time
	sleep        func(time.Duration)
}

func NewMetricsSyncService(
	cfg config.MetricsSync,
	campaignRepo repository.CampaignRepository,
	synchronizer syncing.Synchronizer,
) *MetricsSyncService {
	if cfg.LookbackDays <= 0 {
		cfg.LookbackDays = 1
	}
	if cfg.MaxConcurrentJobs <= 0 {
		cfg.MaxConcurrentJobs = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         cfg.CronSchedule,
		"lookback_days":         cfg.LookbackDays,
		"request_delay_seconds": cfg.RequestDelaySeconds,
		"max_concurrent_jobs":   cfg.MaxConcurrentJobs,
		"sync_enabled":          cfg.Enabled,
	}).Info("Configuração do agendador de métricas carregada")

	return &MetricsSyncService{
		runner:       newRunner(JobMetricsSync),
		config:       cfg,
		campaignRepo: campaignRepo,
		synchronizer: synchronizer,
		now:          time.Now,
		sleep:        time.Sleep,
	}
}

func (s *MetricsSyncService) Name() string { return JobMetricsSync }

// Start inicia o agendador
func (s *MetricsSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Sincronização de métricas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de métricas")

	if err := s.schedule(ctx, s.config.CronSchedule, s.syncAll); err != nil {
		return fmt.Errorf("erro ao agendar sincronização de métricas: %w", err)
	}

	return nil
}

// Then encadeia next ao fim de cada sincronização agendada, mesmo quando parte das campanhas falha
func (s *MetricsSyncService) Then(next Job) {
	s.runner.then = func(ctx context.Context) {
		logrus.WithFields(logrus.Fields{"job": JobMetricsSync, "next": next.Name()}).Info("Iniciando job encadeado")
		_ = next.RunOnce(ctx)
	}
}

func (s *MetricsSyncService) TriggerManualSync() bool {
	return s.trigger(s.syncAll)
}

func (s *MetricsSyncService) RunOnce(ctx context.Context) error {
	return s.run(ctx, s.syncAll)
}

func (s *MetricsSyncService) GetStatus() map[string]any {
	status := s.status()
	status["sync_enabled"] = s.config.Enabled
	status["sync_cron"] = s.config.CronSchedule
	status["sync_lookback_days"] = s.config.LookbackDays
	status["sync_max_concurrent"] = s.config.MaxConcurrentJobs
	status["sync_request_delay_s"] = s.config.RequestDelaySeconds
	return status
}

// period cobre os últimos LookbackDays dias até ontem, por causa de conversões atrasadas
func (s *MetricsSyncService) period() domain.DateRange {
	end := utils.Truncate(s.now()).AddDate(0, 0, -1)
	return domain.DateRange{
		StartDate: end.AddDate(0, 0, -(s.config.LookbackDays - 1)),
		EndDate:   end,
	}
}

func (s *MetricsSyncService) syncAll(ctx context.Context) error {
	campaigns, err := s.campaignRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("erro ao buscar campanhas ativas: %w", err)
	}

	period := s.period()
	logrus.WithFields(logrus.Fields{
		"campaigns":  len(campaigns),
		"start_date": period.StartDate.Format(time.DateOnly),
		"end_date":   period.EndDate.Format(time.DateOnly),
	}).Info("Iniciando sincronização de métricas")

	var (
		wg        sync.WaitGroup
		failures  atomic.Int32
		synced    atomic.Int32
		semaphore = make(chan struct{}, s.config.MaxConcurrentJobs)
	)

	for _, campaign := range campaigns {
		if campaign.ExternalID == nil || campaign.CustomerID == nil {
			logrus.WithField("campaign_id", campaign.ID).Debug("Campanha sem vínculo com o Google Ads. Pulando.")
			continue
		}
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(c *domain.Campaign) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			rows, err := s.synchronizer.SyncCampaignMetrics(ctx, c, period)
			if err != nil {
				failures.Add(1)
				logrus.WithFields(logrus.Fields{
					"campaign_id": c.ID,
					"external_id": *c.ExternalID,
					"error":       err.Error(),
				}).Error("Erro ao sincronizar métricas da campanha")
			} else {
				synced.Add(1)
				logrus.WithFields(logrus.Fields{"campaign_id": c.ID, "days": rows}).Debug("Métricas da campanha sincronizadas")
			}

			// evita estourar a cota da API do Google Ads
			s.sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}(campaign)
	}

	wg.Wait()

	logrus.WithFields(logrus.Fields{
		"synced":   synced.Load(),
		"failures": failures.Load(),
	}).Info("Sincronização de métricas concluída")

	if n := failures.Load(); n > 0 {
		return fmt.Errorf("%d campanhas falharam na sincronização", n)
	}

	return ctx.Err()
}
