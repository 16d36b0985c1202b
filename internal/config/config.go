package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/ads-insights-pipeline/internal/domain"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Meta         Meta         `mapstructure:",squash"`
	Warehouse    Warehouse    `mapstructure:",squash"`
	Pipeline     Pipeline     `mapstructure:",squash"`
	PipelineSync PipelineSync `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
}

type Meta struct {
	BaseURL           string        `mapstructure:"meta_base_url"`
	URL               string        `mapstructure:"meta_url"`
	Version           string        `mapstructure:"meta_version"`
	AppID             string        `mapstructure:"meta_app_id"`
	AppSecret         string        `mapstructure:"meta_app_secret"`
	TokenRefresh      time.Duration `mapstructure:"meta_token_refresh_window"`
	RequestTimeout    time.Duration `mapstructure:"meta_request_timeout"`
	RequestsPerSecond float64       `mapstructure:"meta_requests_per_second"`
	RequestBurst      int           `mapstructure:"meta_request_burst"`
	PageLimit         int           `mapstructure:"meta_page_limit"`
	RetryMaxAttempts  int           `mapstructure:"meta_retry_max_attempts"`
	RetryInitialDelay time.Duration `mapstructure:"meta_retry_initial_delay"`
	RetryMaxDelay     time.Duration `mapstructure:"meta_retry_max_delay"`
}

type Warehouse struct {
	Project    string `mapstructure:"warehouse_project"`
	Dataset    string `mapstructure:"warehouse_dataset"`
	SchemaFile string `mapstructure:"warehouse_schema_file"`
}

type Pipeline struct {
	MaxConcurrency int                `mapstructure:"pipeline_max_concurrency"`
	RawBreakdowns  []string           `mapstructure:"pipeline_breakdowns"`
	FailurePolicy  string             `mapstructure:"pipeline_failure_policy"`
	Breakdowns     []domain.Breakdown `mapstructure:"-"`
}

type PipelineSync struct {
	CronSchedule      string `mapstructure:"pipeline_sync_cron"`
	Source            string `mapstructure:"pipeline_sync_source"`
	MaxConcurrentRuns int    `mapstructure:"pipeline_sync_max_concurrent_runs"`
	Enabled           bool   `mapstructure:"pipeline_sync_enabled"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/insights?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 16)

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_APP_ID", "your_app_id")
	viper.SetDefault("META_APP_SECRET", "")
	viper.SetDefault("META_TOKEN_REFRESH_WINDOW", "24h") // renovar tokens que expiram em menos de 24h
	viper.SetDefault("META_REQUEST_TIMEOUT", "30s")
	viper.SetDefault("META_REQUESTS_PER_SECOND", 5) // limite local, a API aplica o seu próprio
	viper.SetDefault("META_REQUEST_BURST", 5)
	viper.SetDefault("META_PAGE_LIMIT", 500)
	viper.SetDefault("META_RETRY_MAX_ATTEMPTS", 5)
	viper.SetDefault("META_RETRY_INITIAL_DELAY", "1s")
	viper.SetDefault("META_RETRY_MAX_DELAY", "60s")

	viper.SetDefault("WAREHOUSE_PROJECT", "insights")
	viper.SetDefault("WAREHOUSE_DATASET", "meta_ads")
	viper.SetDefault("WAREHOUSE_SCHEMA_FILE", "")

	viper.SetDefault("PIPELINE_MAX_CONCURRENCY", 8)
	viper.SetDefault("PIPELINE_BREAKDOWNS", "age,gender;country;publisher_platform,platform_position;device_platform")
	viper.SetDefault("PIPELINE_FAILURE_POLICY", "fail_fast")

	viper.SetDefault("PIPELINE_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("PIPELINE_SYNC_SOURCE", string(domain.AccountSourceBusiness))
	viper.SetDefault("PIPELINE_SYNC_MAX_CONCURRENT_RUNS", 2)
	viper.SetDefault("PIPELINE_SYNC_ENABLED", false)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	viper.SetDefault("LOG_LEVEL", "debug")
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
			mapstructure.StringToSliceHookFunc(";"),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.finalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// finalize calcula os campos derivados e valida o que não pode ser corrigido em tempo de execução
func (c *Config) finalize() error {
	c.Meta.URL = fmt.Sprintf("%s/%s", c.Meta.BaseURL, c.Meta.Version)

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)

	breakdowns, err := domain.ParseBreakdowns(c.Pipeline.RawBreakdowns)
	if err != nil {
		return fmt.Errorf("PIPELINE_BREAKDOWNS inválido: %w", err)
	}
	if len(breakdowns) == 0 {
		breakdowns = domain.DefaultBreakdowns()
	}
	c.Pipeline.Breakdowns = breakdowns

	if _, err := domain.ParseAccountSource(c.PipelineSync.Source); err != nil {
		return fmt.Errorf("PIPELINE_SYNC_SOURCE inválido: %w", err)
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
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
