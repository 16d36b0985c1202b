package meta

import (
	"context"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-insights-pipeline/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-insights-pipeline/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-insights-pipeline/internal/domain"
)

// MetaIntegrator traduz as respostas do Graph para os tipos de internal/domain
type MetaIntegrator struct {
	Client metaclient.Client
}

func New(client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		Client: client,
	}
}

// NewFactory devolve um construtor de integradores presos a um token.
// Todos os clientes criados dividem o mesmo limitador de requisições.
func NewFactory(transport metaclient.Transport, opts metaclient.Options) func(token *domain.Token) *MetaIntegrator {
	limiter := metaclient.NewLimiter(opts)
	return func(token *domain.Token) *MetaIntegrator {
		return New(metaclient.NewClientWithLimiter(transport, token, opts, limiter))
	}
}

func (s *MetaIntegrator) GetPersonalAdAccounts(ctx context.Context) ([]domain.AdAccount, error) {
	accounts, err := s.Client.GetMyAdAccounts(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar contas de anúncio pessoais")
		return nil, err
	}

	return FactoryAdAccounts(accounts), nil
}

func (s *MetaIntegrator) GetBusinessIDs(ctx context.Context) ([]string, error) {
	businesses, err := s.Client.GetMyBusinesses(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar businesses do usuário")
		return nil, err
	}

	ids := make([]string, 0, len(businesses))
	for _, business := range businesses {
		ids = append(ids, business.ID)
	}

	return ids, nil
}

func (s *MetaIntegrator) GetOwnedAdAccounts(ctx context.Context, businessID string) ([]domain.AdAccount, error) {
	accounts, err := s.Client.GetOwnedAdAccounts(ctx, businessID)
	if err != nil {
		logrus.WithError(err).WithField("business_id", businessID).Error("Erro ao buscar contas de anúncio do business")
		return nil, err
	}

	return FactoryAdAccounts(accounts), nil
}

func (s *MetaIntegrator) GetAdsByAccount(ctx context.Context, accountID string) ([]domain.Ad, error) {
	ads, err := s.Client.GetAdsByAccountID(ctx, accountID)
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountID).Error("Erro ao buscar anúncios da conta")
		return nil, err
	}

	return FactoryAds(accountID, ads), nil
}

// GetAdInsights executa uma unidade do fan-out. O payload inteiro vira um registro com a identidade da unidade.
func (s *MetaIntegrator) GetAdInsights(ctx context.Context, req domain.InsightRequest) (domain.InsightRecord, error) {
	rows, err := s.Client.GetAdInsights(ctx, req.AdID, InsightParams(req))
	if err != nil {
		return domain.InsightRecord{}, err
	}

	record := FactoryInsightRecord(req, rows)

	logrus.WithFields(logrus.Fields{
		"ad_id":      req.AdID,
		"period":     req.Period,
		"breakdowns": req.Breakdowns.Key(),
		"rows":       len(record.Rows),
	}).Debug("Insights da unidade obtidos")

	return record, nil
}

// InsightParams monta fields, breakdowns e, só para o período diário, time_increment=1
func InsightParams(req domain.InsightRequest) url.Values {
	params := url.Values{}
	params.Set("fields", strings.Join(domain.InsightFields, ","))

	if len(req.Breakdowns) > 0 {
		params.Set("breakdowns", req.Breakdowns.Param())
	}

	if increment := req.Period.TimeIncrement(); increment != "" {
		params.Set("time_increment", increment)
	}

	return params
}

func FactoryAdAccounts(accounts []metadomain.AdAccount) []domain.AdAccount {
	result := make([]domain.AdAccount, 0, len(accounts))
	for _, account := range accounts {
		id := account.ID
		if id == "" {
			id = metadomain.AccountNode(account.AccountID)
		}
		result = append(result, domain.AdAccount{ID: id, Name: account.Name})
	}
	return result
}

// FactoryAds garante que todo anúncio carregue a conta dona, mesmo quando o payload não informa
func FactoryAds(accountID string, ads []metadomain.Ad) []domain.Ad {
	result := make([]domain.Ad, 0, len(ads))
	for _, ad := range ads {
		owner := accountID
		if ad.AccountID != "" {
			owner = ad.AccountID
		}
		result = append(result, domain.Ad{ID: ad.ID, AccountID: metadomain.AccountNode(owner)})
	}
	return result
}

// FactoryInsightRecord embrulha as linhas de uma unidade. Sem linhas, o registro sai com Rows vazio.
func FactoryInsightRecord(req domain.InsightRequest, rows []metadomain.AdInsight) domain.InsightRecord {
	accountID := req.AccountID
	if accountID == "" && len(rows) > 0 && rows[0].Has("account_id") {
		accountID = metadomain.AccountNode(rows[0].String("account_id"))
	}

	insightRows := make([]domain.InsightRow, 0, len(rows))
	for _, row := range rows {
		insightRows = append(insightRows, FactoryInsightRow(req.Breakdowns, row))
	}

	return domain.InsightRecord{
		AdAccountID: accountID,
		AdID:        req.AdID,
		Period:      req.Period,
		Breakdowns:  req.Breakdowns.Clone(),
		Rows:        insightRows,
	}
}

func FactoryInsightRow(breakdowns domain.Breakdown, row metadomain.AdInsight) domain.InsightRow {
	dimensions := make(map[string]string, len(breakdowns))
	for _, dim := range breakdowns {
		dimensions[dim] = row.String(dim)
	}

	metrics := make(map[string]any)
	for _, field := range domain.MetricFields() {
		if row.Has(field) {
			metrics[field] = row[field]
		}
	}

	return domain.InsightRow{
		Dimensions: dimensions,
		DateStart:  row.String("date_start"),
		DateStop:   row.String("date_stop"),
		Metrics:    metrics,
	}
}
