package loading

import (
	"context"

	"github.com/vfg2006/ads-insights-pipeline/internal/domain"
)

// SchemaRegistry resolve o schema de colunas de uma tabela pelo nome
type SchemaRegistry interface {
	SchemaFor(tableName string) (domain.Schema, bool)
}

type WarehouseClient interface {
	GetOrCreateTable(ctx context.Context, qualifiedName string, schema domain.Schema) (*domain.TableHandle, error)
	Insert(ctx context.Context, table *domain.TableHandle, record domain.InsightRecord) error
}
