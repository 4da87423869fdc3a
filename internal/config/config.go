package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	GoogleAds     GoogleAds     `mapstructure:",squash"`
	OpenAI        OpenAI        `mapstructure:",squash"`
	Redis         Redis         `mapstructure:",squash"`
	RateLimit     RateLimit     `mapstructure:",squash"`
	Cors          Cors          `mapstructure:",squash"`
	MetricsSync   MetricsSync   `mapstructure:",squash"`
	AlertAnalysis AlertAnalysis `mapstructure:",squash"`
	Alerting      Alerting      `mapstructure:",squash"`
	SecretKey     string        `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN           string `mapstructure:"-"`
	Driver        string `mapstructure:"database_driver"`
	Password      string `mapstructure:"database_password"`
	URL           string `mapstructure:"database_url"`
	User          string `mapstructure:"database_user"`
	RunMigrations bool   `mapstructure:"database_run_migrations"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Auth struct {
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

type GoogleAds struct {
	BaseURL         string `mapstructure:"google_ads_base_url"`
	Version         string `mapstructure:"google_ads_version"`
	URL             string `mapstructure:"-"`
	DeveloperToken  string `mapstructure:"google_ads_developer_token"`
	ClientID        string `mapstructure:"google_ads_client_id"`
	ClientSecret    string `mapstructure:"google_ads_client_secret"`
	RefreshToken    string `mapstructure:"google_ads_refresh_token"`
	LoginCustomerID string `mapstructure:"google_ads_login_customer_id"`
	TokenURL        string `mapstructure:"google_ads_token_url"`
	TimeoutSeconds  int    `mapstructure:"google_ads_timeout_seconds"`
}

type OpenAI struct {
	APIKey         string  `mapstructure:"openai_api_key"`
	BaseURL        string  `mapstructure:"openai_base_url"`
	Model          string  `mapstructure:"openai_model"`
	Temperature    float32 `mapstructure:"openai_temperature"`
	MaxTokens      int     `mapstructure:"openai_max_tokens"`
	TimeoutSeconds int     `mapstructure:"openai_timeout_seconds"`
}

type Redis struct {
	URL string        `mapstructure:"redis_url"`
	TTL time.Duration `mapstructure:"redis_ttl"`
}

type RateLimit struct {
	AuthRequestsPerMinute int `mapstructure:"rate_limit_auth_per_minute"`
	AuthBurst             int `mapstructure:"rate_limit_auth_burst"`
	AIRequestsPerMinute   int `mapstructure:"rate_limit_ai_per_minute"`
	AIBurst               int `mapstructure:"rate_limit_ai_burst"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type MetricsSync struct {
	CronSchedule        string `mapstructure:"metrics_sync_cron"`
	LookbackDays        int    `mapstructure:"metrics_sync_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"metrics_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"metrics_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"metrics_sync_enabled"`
}

type AlertAnalysis struct {
	CronSchedule string `mapstructure:"alert_analysis_cron"`
	Enabled      bool   `mapstructure:"alert_analysis_enabled"`
}

// Alerting contém os limites padrão usados quando a campanha não define os seus
type Alerting struct {
	MinROAS                float64 `mapstructure:"alert_min_roas"`
	MinCTR                 float64 `mapstructure:"alert_min_ctr"`
	MinImpressionsForCTR   int64   `mapstructure:"alert_min_impressions_for_ctr"`
	MaxBudgetUsage         float64 `mapstructure:"alert_max_budget_usage"`
	BudgetWarningRatio     float64 `mapstructure:"alert_budget_warning_ratio"`
	ConversionDropPercent  float64 `mapstructure:"alert_conversion_drop_percent"`
	LostImpressionSharePct float64 `mapstructure:"alert_lost_impression_share_percent"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/adsoptimizer?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_RUN_MIGRATIONS", true)

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_VERSION", "v17")
	viper.SetDefault("GOOGLE_ADS_DEVELOPER_TOKEN", "")
	viper.SetDefault("GOOGLE_ADS_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_ADS_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_ADS_REFRESH_TOKEN", "")
	viper.SetDefault("GOOGLE_ADS_LOGIN_CUSTOMER_ID", "")
	viper.SetDefault("GOOGLE_ADS_TOKEN_URL", "")
	viper.SetDefault("GOOGLE_ADS_TIMEOUT_SECONDS", 30)

	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_BASE_URL", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("OPENAI_TEMPERATURE", 0.3)
	viper.SetDefault("OPENAI_MAX_TOKENS", 1200)
	viper.SetDefault("OPENAI_TIMEOUT_SECONDS", 60)

	viper.SetDefault("REDIS_URL", "") // vazio desabilita o cache
	viper.SetDefault("REDIS_TTL", "15m")

	viper.SetDefault("RATE_LIMIT_AUTH_PER_MINUTE", 10)
	viper.SetDefault("RATE_LIMIT_AUTH_BURST", 5)
	viper.SetDefault("RATE_LIMIT_AI_PER_MINUTE", 6)
	viper.SetDefault("RATE_LIMIT_AI_BURST", 2)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	// Defaults para sincronização de métricas do Google Ads
	viper.SetDefault("METRICS_SYNC_CRON", "0 3 * * *")        // Todos os dias às 3h da manhã
	viper.SetDefault("METRICS_SYNC_LOOKBACK_DAYS", 3)         // 3 dias para cobrir conversões atrasadas
	viper.SetDefault("METRICS_SYNC_REQUEST_DELAY_SECONDS", 1) // 1 segundo entre requisições
	viper.SetDefault("METRICS_SYNC_MAX_CONCURRENT_JOBS", 3)   // 3 jobs concorrentes
	viper.SetDefault("METRICS_SYNC_ENABLED", false)

	viper.SetDefault("ALERT_ANALYSIS_CRON", "") // Vazio: roda logo após a sincronização de métricas
	viper.SetDefault("ALERT_ANALYSIS_ENABLED", false)

	viper.SetDefault("ALERT_MIN_ROAS", 2.0)
	viper.SetDefault("ALERT_MIN_CTR", 1.0)
	viper.SetDefault("ALERT_MIN_IMPRESSIONS_FOR_CTR", 100)
	viper.SetDefault("ALERT_MAX_BUDGET_USAGE", 100.0)
	viper.SetDefault("ALERT_BUDGET_WARNING_RATIO", 0.9)
	viper.SetDefault("ALERT_CONVERSION_DROP_PERCENT", 30.0)
	viper.SetDefault("ALERT_LOST_IMPRESSION_SHARE_PERCENT", 20.0)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.finalize()

	return config, nil
}

// finalize preenche os campos derivados depois do unmarshal
func (c *Config) finalize() {
	c.GoogleAds.URL = fmt.Sprintf("%s/%s", strings.TrimSuffix(c.GoogleAds.BaseURL, "/"), c.GoogleAds.Version)
	c.GoogleAds.LoginCustomerID = NormalizeCustomerID(c.GoogleAds.LoginCustomerID)

	origins := make([]string, 0, len(c.Cors.AllowedOrigins))
	for _, origin := range c.Cors.AllowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	c.Cors.AllowedOrigins = origins

	if c.Auth.TokenTTL <= 0 {
		c.Auth.TokenTTL = 24 * time.Hour
	}

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)
}

// NormalizeCustomerID remove os hífens do ID de cliente do Google Ads (123-456-7890)
func NormalizeCustomerID(id string) string {
	return strings.ReplaceAll(strings.TrimSpace(id), "-", "")
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
