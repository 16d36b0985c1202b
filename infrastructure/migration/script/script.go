package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/ads-insights-pipeline/infrastructure/database/postgres"
	"github.com/vfg2006/ads-insights-pipeline/infrastructure/migration"
	"github.com/vfg2006/ads-insights-pipeline/infrastructure/repository"
	"github.com/vfg2006/ads-insights-pipeline/infrastructure/warehouse"
	"github.com/vfg2006/ads-insights-pipeline/infrastructure/warehouse/schema"
	"github.com/vfg2006/ads-insights-pipeline/internal/config"
	"github.com/vfg2006/ads-insights-pipeline/internal/domain"
	"github.com/vfg2006/ads-insights-pipeline/pkg/log"
)

// Variáveis opcionais para cadastrar um token inicial do Meta
const (
	seedUserIDKey      = "SEED_META_USER_ID"
	seedAccessTokenKey = "SEED_META_ACCESS_TOKEN"
	seedExpiresInKey   = "SEED_META_EXPIRES_IN"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel)

	logrus.Info("Iniciando script de migração...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	logrus.Info("Conexão com o banco de dados estabelecida com sucesso")

	startTime := time.Now()

	applied, err := migration.NewMigrator(conn).Apply(ctx, migration.Migrations)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações")
	}
	logrus.WithField("applied", applied).Info("Migrações concluídas")

	provisionTables(ctx, conn, cfg)
	seedToken(ctx, conn, cfg)

	logrus.WithField("duration", time.Since(startTime).String()).Info("Script de migração concluído")
}

// provisionTables cria de antemão todas as tabelas do warehouse. O pipeline também as cria sob demanda.
func provisionTables(ctx context.Context, conn *postgres.Connection, cfg *config.Config) {
	registry, err := schema.Load(cfg.Warehouse.SchemaFile, domain.AllPeriods(), cfg.Pipeline.Breakdowns)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar schemas do warehouse")
	}

	client := warehouse.NewPostgresClient(conn)

	successCount := 0
	for _, name := range registry.Names() {
		tableSchema, _ := registry.SchemaFor(name)
		qualifiedName := domain.QualifiedTableName(cfg.Warehouse.Project, cfg.Warehouse.Dataset, name)

		if _, err := client.GetOrCreateTable(ctx, qualifiedName, tableSchema); err != nil {
			logrus.WithError(err).WithField("table", qualifiedName).Error("Erro ao criar tabela")
			continue
		}
		successCount++
	}

	logrus.WithFields(logrus.Fields{
		"tables":  successCount,
		"dataset": cfg.Warehouse.Dataset,
	}).Info("Tabelas do warehouse provisionadas")
}

func seedToken(ctx context.Context, conn *postgres.Connection, cfg *config.Config) {
	userID := viper.GetString(seedUserIDKey)
	accessToken := viper.GetString(seedAccessTokenKey)
	if userID == "" || accessToken == "" {
		logrus.Debug("Nenhum token inicial informado")
		return
	}

	token := &domain.Token{
		UserID:      userID,
		AppID:       cfg.Meta.AppID,
		AccessToken: accessToken,
	}
	if expiresIn := viper.GetDuration(seedExpiresInKey); expiresIn > 0 {
		token.ExpiresAt = time.Now().Add(expiresIn)
	}

	if err := repository.NewTokenRepository(conn).SaveToken(ctx, token); err != nil {
		logrus.WithError(err).Fatal("Erro ao salvar token inicial")
	}

	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"app_id":  cfg.Meta.AppID,
	}).Info("Token inicial salvo")
}
