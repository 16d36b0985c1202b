package metaclient

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-insights-pipeline/infrastructure/integrator/meta/domain"
)

// GetAdInsights busca as linhas de insights de um anúncio. Os parâmetros (fields, breakdowns,
// time_increment) são montados por quem chama.
func (c *MetaClient) GetAdInsights(ctx context.Context, adID string, params url.Values) ([]metadomain.AdInsight, error) {
	raw, err := c.CallAll(ctx, fmt.Sprintf("/%s/insights", adID), params)
	if err != nil {
		return nil, err
	}

	rows, err := decodeAll[metadomain.AdInsight](raw)
	if err != nil {
		logrus.WithError(err).WithField("ad_id", adID).Error("Erro ao decodificar insights do anúncio")
		return nil, err
	}

	return rows, nil
}
