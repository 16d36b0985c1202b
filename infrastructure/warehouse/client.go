// Package warehouse grava os registros de insights em tabelas Postgres provisionadas sob demanda.
// O nome qualificado {project}.{dataset}.{table} vira o schema {dataset} e a tabela {table}.
package warehouse

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/ads-insights-pipeline/infrastructure/database/postgres"
	"github.com/vfg2006/ads-insights-pipeline/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Código do Postgres para criação concorrente do mesmo schema/tabela
const uniqueViolation = "23505"

type PostgresClient struct {
	conn postgres.Queryer
	now  func() time.Time
}

func NewPostgresClient(conn postgres.Queryer) *PostgresClient {
	return &PostgresClient{
		conn: conn,
		now:  time.Now,
	}
}

func (c *PostgresClient) GetOrCreateTable(ctx context.Context, qualifiedName string, schema domain.Schema) (*domain.TableHandle, error) {
	dataset, table, err := SplitQualifiedName(qualifiedName)
	if err != nil {
		return nil, err
	}

	if _, err := c.conn.Exec(ctx, CreateSchemaSQL(dataset)); err != nil && !isUniqueViolation(err) {
		return nil, errors.Wrapf(err, "erro ao criar schema %s", dataset)
	}

	if _, err := c.conn.Exec(ctx, CreateTableSQL(dataset, table, schema)); err != nil && !isUniqueViolation(err) {
		return nil, errors.Wrapf(err, "erro ao criar tabela %s", qualifiedName)
	}

	return &domain.TableHandle{QualifiedName: qualifiedName, Schema: schema}, nil
}

// Insert grava uma linha da tabela para cada linha do payload do registro, em um único INSERT.
// Registro sem linhas não gera comando.
func (c *PostgresClient) Insert(ctx context.Context, table *domain.TableHandle, record domain.InsightRecord) error {
	if len(record.Rows) == 0 {
		return nil
	}

	dataset, name, err := SplitQualifiedName(table.QualifiedName)
	if err != nil {
		return err
	}

	query, args, err := InsertQuery(dataset, name, table.Schema, record, c.now())
	if err != nil {
		return errors.Wrapf(err, "erro ao montar insert em %s", table.QualifiedName)
	}

	if _, err := c.conn.Exec(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "erro ao inserir em %s", table.QualifiedName)
	}

	return nil
}

// SplitQualifiedName aceita project.dataset.table ou dataset.table
func SplitQualifiedName(qualifiedName string) (string, string, error) {
	parts := strings.Split(qualifiedName, ".")
	switch len(parts) {
	case 3:
		return parts[1], parts[2], nil
	case 2:
		return parts[0], parts[1], nil
	default:
		return "", "", fmt.Errorf("nome qualificado inválido: %q", qualifiedName)
	}
}

func CreateSchemaSQL(dataset string) string {
	return fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", pq.QuoteIdentifier(dataset))
}

func CreateTableSQL(dataset, table string, schema domain.Schema) string {
	columns := make([]string, 0, len(schema))
	for _, column := range schema {
		columns = append(columns, fmt.Sprintf("%s %s", pq.QuoteIdentifier(column.Name), column.Type))
	}

	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s.%s (%s)",
		pq.QuoteIdentifier(dataset),
		pq.QuoteIdentifier(table),
		strings.Join(columns, ", "),
	)
}

func InsertQuery(dataset, table string, schema domain.Schema, record domain.InsightRecord, loadedAt time.Time) (string, []interface{}, error) {
	if len(record.Rows) == 0 {
		return "", nil, errors.New("registro sem linhas")
	}

	columns := make([]string, 0, len(schema))
	for _, column := range schema {
		columns = append(columns, pq.QuoteIdentifier(column.Name))
	}

	builder := squirrel.
		Insert(pq.QuoteIdentifier(dataset) + "." + pq.QuoteIdentifier(table)).
		Columns(columns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, row := range record.Rows {
		values := make([]interface{}, 0, len(schema))
		for _, column := range schema {
			value, err := ColumnValue(column, record, row, loadedAt)
			if err != nil {
				return "", nil, err
			}
			values = append(values, value)
		}
		builder = builder.Values(values...)
	}

	return builder.ToSql()
}

// ColumnValue extrai o valor de uma coluna. A identidade da unidade vem do registro, o resto vem da linha.
// Colunas sem valor ficam NULL.
func ColumnValue(column domain.Column, record domain.InsightRecord, row domain.InsightRow, loadedAt time.Time) (interface{}, error) {
	switch column.Name {
	case "user_id":
		return record.UserID, nil
	case "ad_account_id":
		return record.AdAccountID, nil
	case "ad_id":
		return record.AdID, nil
	case "period":
		return string(record.Period), nil
	case "breakdowns":
		return record.Breakdowns.Key(), nil
	case "date_start":
		return nullIfEmpty(row.DateStart), nil
	case "date_stop":
		return nullIfEmpty(row.DateStop), nil
	case "loaded_at":
		return loadedAt, nil
	}

	if value, ok := row.Dimensions[column.Name]; ok {
		return value, nil
	}

	value, ok := row.Metrics[column.Name]
	if !ok || value == nil {
		return nil, nil
	}

	switch v := value.(type) {
	case string, float64, int, int64, bool:
		if strings.EqualFold(column.Type, "JSONB") || strings.EqualFold(column.Type, "JSON") {
			return marshalJSON(v)
		}
		return v, nil
	default:
		return marshalJSON(v)
	}
}

func marshalJSON(value interface{}) (interface{}, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func nullIfEmpty(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
