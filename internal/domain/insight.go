package domain

import (
	"fmt"
)

// InsightFields é a lista fixa de campos pedida em toda consulta de insights
var InsightFields = []string{
	"account_id",
	"ad_id",
	"date_start",
	"date_stop",
	"impressions",
	"reach",
	"frequency",
	"spend",
	"clicks",
	"unique_clicks",
	"inline_link_clicks",
	"ctr",
	"cpc",
	"cpm",
	"cpp",
	"actions",
	"cost_per_action_type",
}

// identityFields são campos da resposta que não são métricas
var identityFields = map[string]struct{}{
	"account_id": {},
	"ad_id":      {},
	"date_start": {},
	"date_stop":  {},
}

// MetricFields retorna os campos de InsightFields que são métricas
func MetricFields() []string {
	metrics := make([]string, 0, len(InsightFields))
	for _, field := range InsightFields {
		if _, ok := identityFields[field]; ok {
			continue
		}
		metrics = append(metrics, field)
	}
	return metrics
}

// InsightRequest é uma unidade de trabalho do fan-out
type InsightRequest struct {
	AdID       string
	AccountID  string
	Period     Period
	Breakdowns Breakdown
}

// Key é a chave de correlação da unidade (ad, período, breakdowns)
func (r InsightRequest) Key() string {
	return fmt.Sprintf("%s|%s|%s", r.AdID, r.Period, r.Breakdowns.Key())
}

func (r InsightRequest) String() string {
	return fmt.Sprintf("ad=%s period=%s breakdowns=[%s]", r.AdID, r.Period, r.Breakdowns.Key())
}

// InsightRow é uma linha do payload de insights. Com breakdowns, uma unidade pode devolver várias linhas.
type InsightRow struct {
	// Dimensions guarda os valores das dimensões de breakdown da linha (ex: age=18-24)
	Dimensions map[string]string
	DateStart  string
	DateStop   string
	Metrics    map[string]any
}

// InsightRecord é o resultado de uma unidade do fan-out: o payload inteiro da chamada, com a
// identidade da unidade. Toda unidade gera exatamente um registro, mesmo quando Rows está vazio.
// Imutável depois de produzido.
type InsightRecord struct {
	UserID      string
	AdAccountID string
	AdID        string
	Period      Period
	Breakdowns  Breakdown
	Rows        []InsightRow
}

// Key é a chave de correlação do registro; a posição na coleção não tem significado
func (r InsightRecord) Key() string {
	return InsightRequest{AdID: r.AdID, Period: r.Period, Breakdowns: r.Breakdowns}.Key()
}

// TableName retorna a tabela de destino do registro
func (r InsightRecord) TableName() string {
	return TableName(r.Period, r.Breakdowns)
}
