package metaclient

import (
	"context"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-insights-pipeline/infrastructure/integrator/meta/domain"
)

func (c *MetaClient) GetMyAdAccounts(ctx context.Context) ([]metadomain.AdAccount, error) {
	params := url.Values{}
	params.Add("fields", "id,account_id,name")

	raw, err := c.CallAll(ctx, "/me/adaccounts", params)
	if err != nil {
		return nil, err
	}

	accounts, err := decodeAll[metadomain.AdAccount](raw)
	if err != nil {
		logrus.WithError(err).Error("Erro ao decodificar contas de anúncio")
		return nil, err
	}

	return accounts, nil
}
