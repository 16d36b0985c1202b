package metaclient

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-insights-pipeline/infrastructure/integrator/meta/domain"
)

func (c *MetaClient) GetOwnedAdAccounts(ctx context.Context, businessID string) ([]metadomain.AdAccount, error) {
	params := url.Values{}
	params.Add("fields", "id,account_id,name")

	raw, err := c.CallAll(ctx, fmt.Sprintf("/%s/owned_ad_accounts", businessID), params)
	if err != nil {
		return nil, err
	}

	accounts, err := decodeAll[metadomain.AdAccount](raw)
	if err != nil {
		logrus.WithError(err).WithField("business_id", businessID).Error("Erro ao decodificar contas do business")
		return nil, err
	}

	return accounts, nil
}
