package metaclient

import (
	"context"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-insights-pipeline/infrastructure/integrator/meta/domain"
)

func (c *MetaClient) GetMyBusinesses(ctx context.Context) ([]metadomain.Business, error) {
	params := url.Values{}
	params.Add("fields", "id,name")

	raw, err := c.CallAll(ctx, "/me/businesses", params)
	if err != nil {
		return nil, err
	}

	businesses, err := decodeAll[metadomain.Business](raw)
	if err != nil {
		logrus.WithError(err).Error("Erro ao decodificar businesses")
		return nil, err
	}

	return businesses, nil
}
