package loading

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-insights-pipeline/internal/domain"
	"golang.org/x/sync/singleflight"
)

// TableRegistry memoriza as tabelas provisionadas durante uma execução.
// Pedidos concorrentes para a mesma tabela ainda não criada disparam uma única criação.
type TableRegistry struct {
	schemas   SchemaRegistry
	warehouse WarehouseClient
	project   string
	dataset   string

	group  singleflight.Group
	mu     sync.RWMutex
	tables map[string]*domain.TableHandle
}

func NewTableRegistry(schemas SchemaRegistry, warehouse WarehouseClient, project, dataset string) *TableRegistry {
	return &TableRegistry{
		schemas:   schemas,
		warehouse: warehouse,
		project:   project,
		dataset:   dataset,
		tables:    make(map[string]*domain.TableHandle),
	}
}

func (r *TableRegistry) Get(ctx context.Context, tableName string) (*domain.TableHandle, error) {
	if handle, ok := r.cached(tableName); ok {
		return handle, nil
	}

	// A criação é compartilhada entre os chamadores e não herda o cancelamento de quem a disparou.
	// Cada chamador só para de esperar pelo próprio contexto.
	shared := context.WithoutCancel(ctx)

	ch := r.group.DoChan(tableName, func() (any, error) {
		// Outro chamador pode ter concluído a criação entre a leitura acima e o Do
		if handle, ok := r.cached(tableName); ok {
			return handle, nil
		}

		schema, ok := r.schemas.SchemaFor(tableName)
		if !ok {
			return nil, &domain.UnknownSchemaError{TableName: tableName}
		}

		qualifiedName := domain.QualifiedTableName(r.project, r.dataset, tableName)
		handle, err := r.warehouse.GetOrCreateTable(shared, qualifiedName, schema)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.tables[tableName] = handle
		r.mu.Unlock()

		logrus.WithField("table", qualifiedName).Debug("Tabela do warehouse pronta")

		return handle, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*domain.TableHandle), nil
	}
}

// Tables devolve os nomes das tabelas provisionadas, em ordem alfabética
func (r *TableRegistry) Tables() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tables))
	for name := range r.tables {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func (r *TableRegistry) cached(tableName string) (*domain.TableHandle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handle, ok := r.tables[tableName]
	return handle, ok
}

// CheckSchemaCoverage confere, antes de qualquer execução, se toda combinação período × breakdown tem schema
func CheckSchemaCoverage(schemas SchemaRegistry, periods []domain.Period, combos []domain.Breakdown) error {
	var missing []error
	for _, period := range periods {
		for _, combo := range combos {
			tableName := domain.TableName(period, combo)
			if _, ok := schemas.SchemaFor(tableName); !ok {
				missing = append(missing, &domain.UnknownSchemaError{TableName: tableName})
			}
		}
	}

	return errors.Join(missing...)
}
