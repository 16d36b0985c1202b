package resolving

import (
	"context"

	"github.com/vfg2006/ads-insights-pipeline/internal/domain"
)

// MetaAccounts é o que a resolução de contas e anúncios precisa do Graph
type MetaAccounts interface {
	GetPersonalAdAccounts(ctx context.Context) ([]domain.AdAccount, error)
	GetBusinessIDs(ctx context.Context) ([]string, error)
	GetOwnedAdAccounts(ctx context.Context, businessID string) ([]domain.AdAccount, error)
	GetAdsByAccount(ctx context.Context, accountID string) ([]domain.Ad, error)
}
