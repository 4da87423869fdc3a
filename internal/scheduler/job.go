package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-optimizer-api/pkg/metrics"
)

// Job é o contrato exposto para execução manual e consulta de status
type Job interface {
	Name() string
	Start(ctx context.Context) error
	TriggerManualSync() bool
	RunOnce(ctx context.Context) error
	GetStatus() map[string]any
}

// runner guarda o estado comum aos agendadores: trava de execução e horários
type runner struct {
	name      string
	scheduler *gocron.Scheduler
	baseCtx   context.Context

	// then roda depois de cada execução agendada, fora da trava deste job
	then func(ctx context.Context)

	mu                  sync.Mutex
	running             bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastError           string
}

func newRunner(name string) *runner {
	return &runner{
		name:      name,
		scheduler: gocron.NewScheduler(time.Local),
		baseCtx:   context.Background(),
	}
}

func (r *runner) schedule(ctx context.Context, cron string, fn func(ctx context.Context) error) error {
	r.baseCtx = ctx

	_, err := r.scheduler.Cron(cron).Do(func() {
		r.runScheduled(r.baseCtx, fn)
	})
	if err != nil {
		return err
	}

	r.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.WithField("job", r.name).Info("Parando agendador")
		r.scheduler.Stop()
	}()

	return nil
}

// run ignora a execução quando a anterior ainda não terminou
func (r *runner) run(ctx context.Context, fn func(ctx context.Context) error) error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		logrus.WithField("job", r.name).Info("Execução já em andamento, ignorando")
		return ErrAlreadyRunning
	}
	r.running = true
	r.lastSyncStartedAt = time.Now()
	r.mu.Unlock()

	err := fn(ctx)

	r.mu.Lock()
	r.running = false
	r.lastSyncCompletedAt = time.Now()
	r.lastError = ""
	if err != nil {
		r.lastError = err.Error()
	}
	duration := r.lastSyncCompletedAt.Sub(r.lastSyncStartedAt)
	r.mu.Unlock()

	metrics.RecordJobRun(r.name, duration, err == nil)

	entry := logrus.WithFields(logrus.Fields{"job": r.name, "duration": duration.String()})
	if err != nil {
		entry.WithError(err).Error("Execução do agendador falhou")
	} else {
		entry.Info("Execução do agendador concluída")
	}

	return err
}

func (r *runner) runScheduled(ctx context.Context, fn func(ctx context.Context) error) {
	if err := r.run(ctx, fn); errors.Is(err, ErrAlreadyRunning) {
		return
	}
	if r.then != nil && ctx.Err() == nil {
		r.then(ctx)
	}
}

func (r *runner) trigger(fn func(ctx context.Context) error) bool {
	r.mu.Lock()
	running := r.running
	r.mu.Unlock()
	if running {
		logrus.WithField("job", r.name).Info("Execução já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.WithField("job", r.name).Info("Iniciando execução manual")
	go r.run(r.baseCtx, fn)
	return true
}

func (r *runner) status() map[string]any {
	r.mu.Lock()
	defer r.mu.Unlock()

	return map[string]any{
		"running":                r.running,
		"last_sync_started_at":   r.lastSyncStartedAt,
		"last_sync_completed_at": r.lastSyncCompletedAt,
		"last_error":             r.lastError,
	}
}
