package schema

import (
	"github.com/vfg2006/ads-insights-pipeline/internal/domain"
)

var identityColumns = domain.Schema{
	{Name: "user_id", Type: "TEXT"},
	{Name: "ad_account_id", Type: "TEXT"},
	{Name: "ad_id", Type: "TEXT"},
	{Name: "period", Type: "TEXT"},
	{Name: "date_start", Type: "DATE"},
	{Name: "date_stop", Type: "DATE"},
}

var metricTypes = map[string]string{
	"impressions":          "BIGINT",
	"reach":                "BIGINT",
	"frequency":            "NUMERIC",
	"spend":                "NUMERIC",
	"clicks":               "BIGINT",
	"unique_clicks":        "BIGINT",
	"inline_link_clicks":   "BIGINT",
	"ctr":                  "NUMERIC",
	"cpc":                  "NUMERIC",
	"cpm":                  "NUMERIC",
	"cpp":                  "NUMERIC",
	"actions":              "JSONB",
	"cost_per_action_type": "JSONB",
}

// DefaultSchema monta as colunas de uma tabela: identidade, dimensões do breakdown, métricas e loaded_at
func DefaultSchema(combo domain.Breakdown) domain.Schema {
	schema := append(domain.Schema{}, identityColumns...)

	for _, dim := range combo {
		schema = append(schema, domain.Column{Name: dim, Type: "TEXT"})
	}

	for _, metric := range domain.MetricFields() {
		columnType, ok := metricTypes[metric]
		if !ok {
			columnType = "TEXT"
		}
		schema = append(schema, domain.Column{Name: metric, Type: columnType})
	}

	return append(schema, domain.Column{Name: "loaded_at", Type: "TIMESTAMPTZ"})
}

// DefaultRegistry cobre todas as combinações período × breakdown configuradas
func DefaultRegistry(periods []domain.Period, combos []domain.Breakdown) (*Registry, error) {
	tables := make(map[string]domain.Schema, len(periods)*len(combos))
	for _, period := range periods {
		for _, combo := range combos {
			tables[domain.TableName(period, combo)] = DefaultSchema(combo)
		}
	}
	return NewRegistry(tables)
}

// Load lê o arquivo de schemas quando informado; sem arquivo, gera os schemas padrão
func Load(path string, periods []domain.Period, combos []domain.Breakdown) (*Registry, error) {
	if path == "" {
		return DefaultRegistry(periods, combos)
	}
	return LoadFile(path)
}
