package metaclient

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-insights-pipeline/infrastructure/integrator/meta/domain"
)

func (c *MetaClient) GetAdsByAccountID(ctx context.Context, accountID string) ([]metadomain.Ad, error) {
	params := url.Values{}
	params.Add("fields", "id,account_id")

	raw, err := c.CallAll(ctx, fmt.Sprintf("/%s/ads", metadomain.AccountNode(accountID)), params)
	if err != nil {
		return nil, err
	}

	ads, err := decodeAll[metadomain.Ad](raw)
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountID).Error("Erro ao decodificar anúncios")
		return nil, err
	}

	return ads, nil
}
