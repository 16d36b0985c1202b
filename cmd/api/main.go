package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-insights-pipeline/infrastructure/database/postgres"
	"github.com/vfg2006/ads-insights-pipeline/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-insights-pipeline/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-insights-pipeline/infrastructure/repository"
	"github.com/vfg2006/ads-insights-pipeline/infrastructure/warehouse"
	"github.com/vfg2006/ads-insights-pipeline/infrastructure/warehouse/schema"
	"github.com/vfg2006/ads-insights-pipeline/internal/api"
	"github.com/vfg2006/ads-insights-pipeline/internal/config"
	"github.com/vfg2006/ads-insights-pipeline/internal/domain"
	"github.com/vfg2006/ads-insights-pipeline/internal/scheduler"
	"github.com/vfg2006/ads-insights-pipeline/internal/usecases/authenticating"
	"github.com/vfg2006/ads-insights-pipeline/internal/usecases/credentialing"
	"github.com/vfg2006/ads-insights-pipeline/internal/usecases/insighting"
	"github.com/vfg2006/ads-insights-pipeline/internal/usecases/pipeline"
	"github.com/vfg2006/ads-insights-pipeline/pkg/log"
	"github.com/vfg2006/ads-insights-pipeline/pkg/parallel"
)

func main() {
	changeToSourceDir()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	transport := metaclient.NewHTTPTransport(cfg.Meta.URL, cfg.Meta.RequestTimeout)

	// Sem app secret não há como trocar tokens: eles são usados até expirar
	var exchanger credentialing.TokenExchanger
	if cfg.Meta.AppSecret != "" {
		exchanger = metaclient.NewTokenExchanger(transport, cfg.Meta.AppID, cfg.Meta.AppSecret)
	} else {
		logrus.Warn("META_APP_SECRET não configurado, renovação de tokens desabilitada")
	}

	tokenRepo := repository.NewTokenRepository(pgConn)
	tokenGate := credentialing.NewGate(tokenRepo, exchanger, cfg.Meta.TokenRefresh)

	newIntegrator := meta.NewFactory(transport, metaclient.OptionsFromConfig(cfg))
	integrators := func(token *domain.Token) pipeline.Integrator {
		return newIntegrator(token)
	}

	schemas, err := schema.Load(cfg.Warehouse.SchemaFile, domain.AllPeriods(), cfg.Pipeline.Breakdowns)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar schemas do warehouse")
	}

	failurePolicy, err := insighting.ParseFailurePolicy(cfg.Pipeline.FailurePolicy)
	if err != nil {
		logrus.WithError(err).Fatal("PIPELINE_FAILURE_POLICY inválido")
	}

	pipelineService, err := pipeline.NewService(
		tokenGate,
		integrators,
		schemas,
		warehouse.NewPostgresClient(pgConn),
		pipeline.Options{
			Periods:        domain.AllPeriods(),
			Breakdowns:     cfg.Pipeline.Breakdowns,
			MaxConcurrency: cfg.Pipeline.MaxConcurrency,
			FailurePolicy:  failurePolicy,
			Project:        cfg.Warehouse.Project,
			Dataset:        cfg.Warehouse.Dataset,
			Pool:           parallel.NewPool(cfg.Pipeline.MaxConcurrency),
		},
	)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar o pipeline")
	}

	syncService := scheduler.NewPipelineSyncService(tokenGate, pipelineService, cfg)
	if err := syncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização do pipeline")
	}

	authenticator := authenticating.NewService(cfg.Auth.Secret)

	server, err := api.New(cfg, pipelineService, authenticator, syncService, pgConn)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// changeToSourceDir permite achar o .env ao rodar com go run de qualquer diretório
func changeToSourceDir() {
	_, file, _, _ := runtime.Caller(0)
	_ = os.Chdir(path.Dir(file))
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
