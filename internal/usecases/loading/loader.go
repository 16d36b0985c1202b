package loading

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-insights-pipeline/internal/domain"
	"github.com/vfg2006/ads-insights-pipeline/pkg/parallel"
)

// Loader grava os registros nas tabelas de destino. A gravação é só de inserção:
// carregar os mesmos registros duas vezes duplica as linhas.
type Loader struct {
	tables    *TableRegistry
	warehouse WarehouseClient
	pool      *parallel.Pool
}

func NewLoader(tables *TableRegistry, warehouse WarehouseClient, pool *parallel.Pool) *Loader {
	return &Loader{
		tables:    tables,
		warehouse: warehouse,
		pool:      pool,
	}
}

// Load devolve quantos registros foram gravados (cada um vira len(Rows) linhas), inclusive quando para no meio por erro
func (l *Loader) Load(ctx context.Context, records []domain.InsightRecord) (int64, error) {
	var inserted atomic.Int64
	start := time.Now()

	err := parallel.ForEach(ctx, l.pool, records, func(ctx context.Context, record domain.InsightRecord) error {
		table, err := l.tables.Get(ctx, record.TableName())
		if err != nil {
			return err
		}

		if err := l.warehouse.Insert(ctx, table, record); err != nil {
			return fmt.Errorf("erro ao inserir registro %s em %s: %w", record.Key(), table.QualifiedName, err)
		}

		inserted.Add(1)
		return nil
	})

	logger := logrus.WithFields(logrus.Fields{
		"records":  len(records),
		"inserted": inserted.Load(),
		"duration": time.Since(start).String(),
	})
	if err != nil {
		logger.WithError(err).Error("Carga no warehouse falhou")
		return inserted.Load(), err
	}

	logger.Info("Carga no warehouse concluída")
	return inserted.Load(), nil
}

// Tables devolve as tabelas tocadas pelas cargas deste loader
func (l *Loader) Tables() []string {
	return l.tables.Tables()
}
