// Package migration cria as tabelas operacionais do pipeline: tokens do Meta e controle de versões.
package migration

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-insights-pipeline/infrastructure/database/postgres"
)

const versionsTable = "schema_migrations"

type Migration struct {
	Version     int
	Description string
	Statements  []string
}

// Migrations em ordem de versão. Uma migração aplicada nunca deve ser alterada, só seguida por outra.
var Migrations = []Migration{
	{
		Version:     1,
		Description: "cria tabela de tokens do Meta",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS meta_tokens (
				user_id      TEXT        NOT NULL,
				app_id       TEXT        NOT NULL,
				access_token TEXT        NOT NULL,
				expires_at   TIMESTAMPTZ NULL,
				updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				PRIMARY KEY (user_id, app_id)
			)`,
		},
	},
	{
		Version:     2,
		Description: "índice de tokens por app e expiração",
		Statements: []string{
			`CREATE INDEX IF NOT EXISTS idx_meta_tokens_app_expires ON meta_tokens (app_id, expires_at)`,
		},
	},
}

type Migrator struct {
	conn postgres.Conn
	now  func() time.Time
}

func NewMigrator(conn postgres.Conn) *Migrator {
	return &Migrator{
		conn: conn,
		now:  time.Now,
	}
}

// Apply aplica as migrações pendentes, cada uma na sua transação. Devolve quantas foram aplicadas.
func (m *Migrator) Apply(ctx context.Context, migrations []Migration) (int, error) {
	_, err := m.conn.Exec(ctx, `CREATE TABLE IF NOT EXISTS `+versionsTable+` (
		version     INTEGER     PRIMARY KEY,
		description TEXT        NOT NULL,
		applied_at  TIMESTAMPTZ NOT NULL
	)`)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao criar tabela de versões")
	}

	current, err := m.currentVersion(ctx)
	if err != nil {
		return 0, err
	}

	applied := 0
	for _, migration := range migrations {
		if migration.Version <= current {
			continue
		}

		logger := logrus.WithFields(logrus.Fields{
			"version":     migration.Version,
			"description": migration.Description,
		})
		startTime := time.Now()

		err := m.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
			for _, statement := range migration.Statements {
				if _, err := tx.ExecContext(ctx, statement); err != nil {
					return err
				}
			}

			query, args, err := squirrel.
				Insert(versionsTable).
				Columns("version", "description", "applied_at").
				Values(migration.Version, migration.Description, m.now()).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return err
			}

			_, err = tx.ExecContext(ctx, query, args...)
			return err
		})
		if err != nil {
			return applied, errors.Wrapf(err, "erro ao aplicar migração %d", migration.Version)
		}

		logger.WithField("duration", time.Since(startTime).String()).Info("Migração aplicada")
		applied++
	}

	return applied, nil
}

func (m *Migrator) currentVersion(ctx context.Context) (int, error) {
	query, args, err := squirrel.
		Select("COALESCE(MAX(version), 0)").
		From(versionsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var version int
	if err := m.conn.QueryRow(ctx, query, args...).Scan(&version); err != nil {
		return 0, errors.Wrap(err, "erro ao ler versão atual")
	}

	return version, nil
}
