package insighting

import (
	"context"

	"github.com/vfg2006/ads-insights-pipeline/internal/domain"
)

// MetaInsighter executa uma unidade do fan-out no Graph
type MetaInsighter interface {
	// GetAdInsights devolve o payload da unidade embrulhado em um único registro
	GetAdInsights(ctx context.Context, req domain.InsightRequest) (domain.InsightRecord, error)
}
