package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-optimizer-api/internal/config"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/alerting"
)

const JobAlertAnalysis = "alert-analysis"

// AlertAnalysisService avalia as regras de alerta para o dia anterior de todas as campanhas ativas
type AlertAnalysisService struct {
	*runner
	config   config.AlertAnalysis
	analyzer alerting.AlertManager
	now      func() time.Time

	lastSummary *alerting.AnalysisSummary
}

func NewAlertAnalysisService(cfg config.AlertAnalysis, analyzer alerting.AlertManager) *AlertAnalysisService {
	return &AlertAnalysisService{
		runner:   newRunner(JobAlertAnalysis),
		config:   cfg,
		analyzer: analyzer,
		now:      time.Now,
	}
}

func (s *AlertAnalysisService) Name() string { return JobAlertAnalysis }

func (s *AlertAnalysisService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Análise de alertas desabilitada por configuração")
		return nil
	}

	if s.config.CronSchedule == "" {
		logrus.Info("Análise de alertas encadeada à sincronização de métricas")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de análise de alertas")

	if err := s.schedule(ctx, s.config.CronSchedule, s.analyze); err != nil {
		return fmt.Errorf("erro ao agendar análise de alertas: %w", err)
	}

	return nil
}

func (s *AlertAnalysisService) TriggerManualSync() bool {
	return s.trigger(s.analyze)
}

func (s *AlertAnalysisService) RunOnce(ctx context.Context) error {
	return s.run(ctx, s.analyze)
}

func (s *AlertAnalysisService) GetStatus() map[string]any {
	status := s.status()
	status["sync_enabled"] = s.config.Enabled
	status["sync_cron"] = s.config.CronSchedule

	s.mu.Lock()
	status["last_summary"] = s.lastSummary
	s.mu.Unlock()

	return status
}

// analyze usa o dia anterior, o último com métricas completas
func (s *AlertAnalysisService) analyze(ctx context.Context) error {
	date := s.now().AddDate(0, 0, -1)

	summary, err := s.analyzer.AnalyzeAll(ctx, date)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.lastSummary = summary
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"date":      summary.Date.Format(time.DateOnly),
		"campaigns": summary.Campaigns,
		"alerts":    summary.AlertsCreated,
		"failures":  summary.Failures,
	}).Info("Análise de alertas concluída")

	return nil
}
