package scheduler

import (
	"context"

	"github.com/vfg2006/ads-insights-pipeline/internal/domain"
)

// TokenLister lista os tokens ainda válidos de um app
type TokenLister interface {
	ListActive(ctx context.Context, appID string) ([]*domain.Token, error)
}

type PipelineRunner interface {
	Run(ctx context.Context, userID, appID string, source domain.AccountSource) (*domain.RunSummary, error)
}
