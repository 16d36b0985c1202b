package handler

import (
	"context"

	"github.com/vfg2006/ads-insights-pipeline/internal/domain"
)

type PipelineService interface {
	Run(ctx context.Context, userID, appID string, source domain.AccountSource) (*domain.RunSummary, error)
	ListAccounts(ctx context.Context, userID, appID string) ([]domain.AdAccount, error)
}

// SyncService é o agendador do pipeline visto pela API
type SyncService interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

type Pinger interface {
	Ping(ctx context.Context) error
}
