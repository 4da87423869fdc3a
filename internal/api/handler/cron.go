package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/ads-optimizer-api/internal/scheduler"
	"github.com/vfg2006/ads-optimizer-api/pkg/apiErrors"
	"github.com/vfg2006/ads-optimizer-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeMetrics = "metrics"
	CronJobTypeAlerts  = "alerts"
	CronJobTypeAll     = "all"
)

// CronJobServices contém os agendadores que podem ser executados manualmente
type CronJobServices struct {
	MetricsSync   scheduler.Job
	AlertAnalysis scheduler.Job
}

type CronRunResponse struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// RunCronJob dispara a execução em segundo plano e responde imediatamente
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := pathParam(r, "type")

		var job scheduler.Job
		switch cronType {
		case CronJobTypeMetrics:
			job = services.MetricsSync
		case CronJobTypeAlerts:
			job = services.AlertAnalysis
		case CronJobTypeAll:
			if services.MetricsSync == nil || services.AlertAnalysis == nil {
				apiErrors.WriteError(w, apiErrors.ErrNotConfigured, "Agendadores não disponíveis", nil)
				return
			}
			go runInSequence(context.WithoutCancel(r.Context()), services.MetricsSync, services.AlertAnalysis)
			writeJSON(w, http.StatusAccepted, CronRunResponse{Message: "Cron job iniciada com sucesso", Type: cronType})
			return
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: metrics, alerts, all", nil)
			return
		}

		if job == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotConfigured, "Agendador "+cronType+" não disponível", nil)
			return
		}

		if !job.TriggerManualSync() {
			apiErrors.WriteError(w, apiErrors.ErrResourceConflict, "Execução já em andamento", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, CronRunResponse{Message: "Cron job iniciada com sucesso", Type: cronType})
	}
}

// runInSequence analisa os alertas somente depois das métricas atualizadas
func runInSequence(ctx context.Context, jobs ...scheduler.Job) {
	for _, job := range jobs {
		if err := job.RunOnce(ctx); err != nil {
			log.ForContext(ctx).WithField("job", job.Name()).WithError(err).Error("Erro na execução manual")
		}
	}
}

func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.MetricsSync != nil {
			status[CronJobTypeMetrics] = services.MetricsSync.GetStatus()
		}
		if services.AlertAnalysis != nil {
			status[CronJobTypeAlerts] = services.AlertAnalysis.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
