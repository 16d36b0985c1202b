package resolving

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-insights-pipeline/internal/domain"
	"github.com/vfg2006/ads-insights-pipeline/pkg/parallel"
)

type Service struct {
	meta MetaAccounts
	pool *parallel.Pool
}

func NewService(meta MetaAccounts, pool *parallel.Pool) *Service {
	return &Service{
		meta: meta,
		pool: pool,
	}
}

// ResolveAccounts lista as contas alcançáveis pela origem escolhida.
// Business: uma chamada por business, em paralelo, sem deduplicar o resultado.
func (s *Service) ResolveAccounts(ctx context.Context, source domain.AccountSource) ([]domain.AdAccount, error) {
	switch source {
	case domain.AccountSourcePersonal:
		return s.meta.GetPersonalAdAccounts(ctx)

	case domain.AccountSourceBusiness:
		businessIDs, err := s.meta.GetBusinessIDs(ctx)
		if err != nil {
			return nil, err
		}

		logrus.WithField("businesses", len(businessIDs)).Debug("Buscando contas de anúncio dos businesses")

		return parallel.FlatMap(ctx, s.pool, businessIDs, s.meta.GetOwnedAdAccounts)

	default:
		return nil, &domain.UnknownSourceError{Source: string(source)}
	}
}

// ResolveAds lista os anúncios de cada conta em paralelo; cada anúncio carrega a conta dona
func (s *Service) ResolveAds(ctx context.Context, accounts []domain.AdAccount) ([]domain.Ad, error) {
	return parallel.FlatMap(ctx, s.pool, accounts, func(ctx context.Context, account domain.AdAccount) ([]domain.Ad, error) {
		ads, err := s.meta.GetAdsByAccount(ctx, account.ID)
		if err != nil {
			return nil, err
		}

		for i := range ads {
			if ads[i].AccountID == "" {
				ads[i].AccountID = account.ID
			}
		}

		return ads, nil
	})
}
