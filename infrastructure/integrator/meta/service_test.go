package meta

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ads-insights-pipeline/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-insights-pipeline/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-insights-pipeline/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/vfg2006/ads-insights-pipeline/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestInsightParams(t *testing.T) {
	daily := InsightParams(domain.InsightRequest{AdID: "1", Period: domain.PeriodDaily, Breakdowns: domain.Breakdown{"age", "gender"}})
	assert.Equal(t, "1", daily.Get("time_increment"))
	assert.Equal(t, "age,gender", daily.Get("breakdowns"))
	assert.Contains(t, daily.Get("fields"), "impressions")
	assert.Contains(t, daily.Get("fields"), "cost_per_action_type")

	lifetime := InsightParams(domain.InsightRequest{AdID: "1", Period: domain.PeriodLifetime})
	assert.False(t, lifetime.Has("time_increment"))
	assert.False(t, lifetime.Has("breakdowns"))
}

func TestFactoryAds_CarriesOwningAccount(t *testing.T) {
	ads := FactoryAds("act_9", []metadomain.Ad{
		{ID: "a1", AccountID: "9"},
		{ID: "a2"},
	})

	assert.Equal(t, []domain.Ad{
		{ID: "a1", AccountID: "act_9"},
		{ID: "a2", AccountID: "act_9"},
	}, ads)
}

func TestFactoryInsightRecord(t *testing.T) {
	req := domain.InsightRequest{AdID: "a1", AccountID: "act_9", Period: domain.PeriodDaily, Breakdowns: domain.Breakdown{"age", "gender"}}
	rows := []metadomain.AdInsight{
		{
			"account_id":  "9",
			"ad_id":       "a1",
			"date_start":  "2024-05-01",
			"date_stop":   "2024-05-01",
			"age":         "18-24",
			"gender":      "female",
			"impressions": "120",
			"spend":       "3.5",
			"actions":     []any{map[string]any{"action_type": "link_click", "value": "4"}},
		},
		{"age": "25-34", "gender": "male", "impressions": "80"},
	}

	record := FactoryInsightRecord(req, rows)

	assert.Equal(t, "act_9", record.AdAccountID)
	assert.Equal(t, "a1", record.AdID)
	assert.Equal(t, "ads_insights_daily_age_gender", record.TableName())
	require.Len(t, record.Rows, 2)

	first := record.Rows[0]
	assert.Equal(t, map[string]string{"age": "18-24", "gender": "female"}, first.Dimensions)
	assert.Equal(t, "2024-05-01", first.DateStart)
	assert.Equal(t, "120", first.Metrics["impressions"])
	assert.Contains(t, first.Metrics, "actions")
	assert.NotContains(t, first.Metrics, "age")
	assert.NotContains(t, first.Metrics, "ad_id")

	assert.Equal(t, map[string]string{"age": "25-34", "gender": "male"}, record.Rows[1].Dimensions)
}

func TestFactoryInsightRecord_NoRows(t *testing.T) {
	req := domain.InsightRequest{AdID: "a2", AccountID: "act_9", Period: domain.PeriodLifetime}

	record := FactoryInsightRecord(req, nil)

	assert.Equal(t, "a2", record.AdID)
	assert.Equal(t, "act_9", record.AdAccountID)
	assert.Empty(t, record.Rows)
	assert.Equal(t, "ads_insights_lifetime", record.TableName())
}

func TestMetaIntegrator_GetAdInsights(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transport := mocks.NewMockTransport(ctrl)
	transport.EXPECT().Request(gomock.Any(), "/a1/insights", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, params url.Values) ([]byte, error) {
			assert.Equal(t, "country", params.Get("breakdowns"))
			assert.False(t, params.Has("time_increment"))
			return []byte(`{"data":[
				{"account_id":"9","country":"BR","impressions":"10","date_start":"2024-01-01","date_stop":"2024-05-01"},
				{"account_id":"9","country":"PT","impressions":"3","date_start":"2024-01-01","date_stop":"2024-05-01"}
			]}`), nil
		})

	token := &domain.Token{AccessToken: "t", ExpiresAt: time.Now().Add(time.Hour)}
	integrator := NewFactory(transport, metaclient.Options{MaxAttempts: 1})(token)

	record, err := integrator.GetAdInsights(context.Background(), domain.InsightRequest{
		AdID:       "a1",
		AccountID:  "act_9",
		Period:     domain.PeriodLifetime,
		Breakdowns: domain.Breakdown{"country"},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.PeriodLifetime, record.Period)
	require.Len(t, record.Rows, 2)
	assert.Equal(t, "BR", record.Rows[0].Dimensions["country"])
	assert.Equal(t, "PT", record.Rows[1].Dimensions["country"])
}

func TestMetaIntegrator_GetAdInsightsEmptyPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transport := mocks.NewMockTransport(ctrl)
	transport.EXPECT().Request(gomock.Any(), "/a2/insights", gomock.Any()).Return([]byte(`{"data":[]}`), nil)

	token := &domain.Token{AccessToken: "t"}
	integrator := NewFactory(transport, metaclient.Options{MaxAttempts: 1})(token)

	record, err := integrator.GetAdInsights(context.Background(), domain.InsightRequest{AdID: "a2", AccountID: "act_9", Period: domain.PeriodDaily})

	require.NoError(t, err)
	assert.Equal(t, "a2", record.AdID)
	assert.Empty(t, record.Rows)
}
