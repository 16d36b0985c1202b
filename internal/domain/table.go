package domain

import (
	"fmt"
	"strings"
)

const tableNamePrefix = "ads_insights"

// Column é uma coluna do schema de uma tabela do warehouse
type Column struct {
	Name string `yaml:"name" json:"name"`
	Type string `yaml:"type" json:"type"`
}

type Schema []Column

func (s Schema) ColumnNames() []string {
	names := make([]string, 0, len(s))
	for _, column := range s {
		names = append(names, column.Name)
	}
	return names
}

// TableHandle representa uma tabela já provisionada para um par (período, breakdowns)
type TableHandle struct {
	QualifiedName string
	Schema        Schema
}

// TableName é uma função pura: ads_insights_{period}_{b1}_{b2}...
// A ordem das dimensões é preservada, não normalizada.
func TableName(period Period, breakdowns Breakdown) string {
	parts := make([]string, 0, len(breakdowns)+2)
	parts = append(parts, tableNamePrefix, string(period))
	parts = append(parts, breakdowns...)
	return strings.Join(parts, "_")
}

// QualifiedTableName monta {project}.{dataset}.{table}
func QualifiedTableName(project, dataset, table string) string {
	return fmt.Sprintf("%s.%s.%s", project, dataset, table)
}
