package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-optimizer-api/internal/api/handler"
	"github.com/vfg2006/ads-optimizer-api/internal/api/handler/router"
	"github.com/vfg2006/ads-optimizer-api/internal/config"
	"github.com/vfg2006/ads-optimizer-api/internal/realtime"
	"github.com/vfg2006/ads-optimizer-api/internal/scheduler"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/alerting"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/auditing"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/campaigning"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/chatting"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/clienting"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/recommending"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/syncing"
	"github.com/vfg2006/ads-optimizer-api/pkg/metrics"
	"github.com/vfg2006/ads-optimizer-api/pkg/middleware"
)

const limiterCleanupInterval = 5 * time.Minute

// Services reúne os casos de uso expostos pela API
type Services struct {
	DB              handler.Pinger
	Authenticator   authenticating.Authenticator
	Clients         clienting.ClientManager
	Campaigns       campaigning.CampaignManager
	Reporter        reporting.Reporter
	Alerts          alerting.AlertManager
	Recommendations recommending.RecommendationManager
	Messenger       chatting.Messenger
	Auditor         auditing.Auditor
	Synchronizer    syncing.Synchronizer
	Hub             *realtime.Hub
	MetricsSync     scheduler.Job
	AlertAnalysis   scheduler.Job
}

type Server struct {
	httpServer *http.Server
	stop       chan struct{}
}

func New(cfg *config.Config, services Services) (*Server, error) {
	cronServices := handler.CronJobServices{
		MetricsSync:   services.MetricsSync,
		AlertAnalysis: services.AlertAnalysis,
	}

	authLimiter := middleware.NewRateLimiter("auth", cfg.RateLimit.AuthRequestsPerMinute, cfg.RateLimit.AuthBurst)
	aiLimiter := middleware.NewRateLimiter("ai", cfg.RateLimit.AIRequestsPerMinute, cfg.RateLimit.AIBurst)

	stop := make(chan struct{})
	authLimiter.StartCleanup(limiterCleanupInterval, stop)
	aiLimiter.StartCleanup(limiterCleanupInterval, stop)

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.DB)...),
		router.WithRoutes(handler.Authentication(services.Authenticator, authLimiter)...),
		router.WithRoutes(handler.User(services.Authenticator)...),
		router.WithRoutes(handler.Clients(services.Clients, services.Synchronizer)...),
		router.WithRoutes(handler.Campaigns(services.Campaigns, services.Synchronizer)...),
		router.WithRoutes(handler.AssetGroups(services.Campaigns, services.Recommendations, aiLimiter)...),
		router.WithRoutes(handler.Dashboard(services.Reporter)...),
		router.WithRoutes(handler.Alerts(services.Alerts)...),
		router.WithRoutes(handler.Recommendations(services.Recommendations, aiLimiter)...),
		router.WithRoutes(handler.Chat(services.Messenger, services.Hub)...),
		router.WithRoutes(handler.History(services.Auditor)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		metrics.InstrumentHandler,
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Cors.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
		stop: stop,
	}

	return srv, nil
}

func (s *Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	close(s.stop)

	// websockets sequestrados não são encerrados pelo Shutdown
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}

// Handler expõe a cadeia completa para testes
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
