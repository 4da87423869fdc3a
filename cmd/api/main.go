package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/cache"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/database/migrations"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/integrator/googleads/googleadsclient"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/integrator/openai"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/integrator/openai/openaiclient"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/ads-optimizer-api/internal/api"
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
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.RunMigrations {
		if err := migrations.Up(pgConn.DB); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrations")
		}
	}

	// sem REDIS_URL o cache é desabilitado, falha de conexão não derruba a API
	responseCache, err := cache.New(ctx, cfg.Redis)
	if err != nil {
		logrus.WithError(err).Warn("Redis indisponível, seguindo sem cache")
		responseCache = cache.Noop{}
	}
	defer responseCache.Close()

	userRepo := repository.NewUserRepository(pgConn)
	clientRepo := repository.NewClientRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	metricRepo := repository.NewCampaignMetricRepository(pgConn)
	assetGroupRepo := repository.NewAssetGroupRepository(pgConn)
	alertRepo := repository.NewAlertRepository(pgConn)
	recommendationRepo := repository.NewRecommendationRepository(pgConn)
	chatRepo := repository.NewChatRepository(pgConn)
	historyRepo := repository.NewHistoryRepository(pgConn)

	tokenManager := googleadsclient.NewTokenManager(cfg.GoogleAds, nil)
	googleAdsClient := googleadsclient.NewClient(cfg.GoogleAds, nil, tokenManager)
	googleAdsIntegrator := googleads.New(cfg.GoogleAds, googleAdsClient, responseCache)

	openAIClient := openaiclient.NewClient(cfg.OpenAI, nil)
	advisor := openai.New(cfg.OpenAI, openAIClient)

	hub := realtime.NewHub(cfg.Cors.AllowedOrigins)

	auditor := auditing.NewService(historyRepo)
	authenticator := authenticating.NewService(userRepo, auditor, cfg)
	clientService := clienting.NewService(clientRepo, userRepo, auditor)
	campaignService := campaigning.NewService(campaignRepo, clientRepo, metricRepo, assetGroupRepo, auditor)
	reporter := reporting.NewService(campaignRepo, metricRepo, alertRepo, recommendationRepo)
	alertService := alerting.NewService(cfg.Alerting, campaignRepo, metricRepo, alertRepo, hub)
	recommendationService := recommending.NewService(recommendationRepo, campaignRepo, metricRepo, assetGroupRepo, advisor, hub, auditor)
	messenger := chatting.NewService(chatRepo, userRepo, hub)
	synchronizer := syncing.NewService(googleAdsIntegrator, clientRepo, campaignRepo, metricRepo, assetGroupRepo, auditor)

	if !advisor.Enabled() {
		logrus.Warn("OPENAI_API_KEY não configurada, recursos de IA desabilitados")
	}

	// Inicializa os agendadores
	metricsSyncService := scheduler.NewMetricsSyncService(cfg.MetricsSync, campaignRepo, synchronizer)
	alertAnalysisService := scheduler.NewAlertAnalysisService(cfg.AlertAnalysis, alertService)

	// sem cron próprio, a análise de alertas roda ao fim de cada sincronização agendada
	if cfg.AlertAnalysis.Enabled && cfg.AlertAnalysis.CronSchedule == "" {
		if !cfg.MetricsSync.Enabled {
			logrus.Warn("Análise de alertas encadeada, mas a sincronização de métricas está desabilitada")
		}
		metricsSyncService.Then(alertAnalysisService)
	}

	for _, job := range []scheduler.Job{metricsSyncService, alertAnalysisService} {
		if err := job.Start(ctx); err != nil {
			logrus.WithError(err).WithField("job", job.Name()).Error("Erro ao iniciar o agendador")
		}
	}

	server, err := api.New(cfg, api.Services{
		DB:              pgConn,
		Authenticator:   authenticator,
		Clients:         clientService,
		Campaigns:       campaignService,
		Reporter:        reporter,
		Alerts:          alertService,
		Recommendations: recommendationService,
		Messenger:       messenger,
		Auditor:         auditor,
		Synchronizer:    synchronizer,
		Hub:             hub,
		MetricsSync:     metricsSyncService,
		AlertAnalysis:   alertAnalysisService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
