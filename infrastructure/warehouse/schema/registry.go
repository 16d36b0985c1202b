package schema

import (
	"fmt"
	"os"
	"regexp"
	"sort"

	"github.com/vfg2006/ads-insights-pipeline/internal/domain"
	"gopkg.in/yaml.v3"
)

var identifierPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// File é o formato do arquivo de schemas (WAREHOUSE_SCHEMA_FILE)
type File struct {
	Tables map[string]domain.Schema `yaml:"tables"`
}

// Registry é um mapa imutável de nome de tabela para schema
type Registry struct {
	tables map[string]domain.Schema
}

func NewRegistry(tables map[string]domain.Schema) (*Registry, error) {
	registry := &Registry{tables: make(map[string]domain.Schema, len(tables))}

	for name, schema := range tables {
		if err := validate(name, schema); err != nil {
			return nil, err
		}
		registry.tables[name] = append(domain.Schema(nil), schema...)
	}

	return registry, nil
}

func (r *Registry) SchemaFor(tableName string) (domain.Schema, bool) {
	schema, ok := r.tables[tableName]
	if !ok {
		return nil, false
	}
	return append(domain.Schema(nil), schema...), true
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tables))
	for name := range r.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler arquivo de schemas %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Registry, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("erro ao decodificar schemas: %w", err)
	}
	if len(file.Tables) == 0 {
		return nil, fmt.Errorf("arquivo de schemas sem tabelas")
	}
	return NewRegistry(file.Tables)
}

// Marshal serializa o registro no mesmo formato aceito por Parse
func (r *Registry) Marshal() ([]byte, error) {
	return yaml.Marshal(File{Tables: r.tables})
}

func validate(tableName string, schema domain.Schema) error {
	if !identifierPattern.MatchString(tableName) {
		return fmt.Errorf("nome de tabela inválido: %q", tableName)
	}
	if len(schema) == 0 {
		return fmt.Errorf("tabela %s sem colunas", tableName)
	}

	seen := make(map[string]struct{}, len(schema))
	for _, column := range schema {
		if !identifierPattern.MatchString(column.Name) {
			return fmt.Errorf("tabela %s: nome de coluna inválido %q", tableName, column.Name)
		}
		if column.Type == "" {
			return fmt.Errorf("tabela %s: coluna %s sem tipo", tableName, column.Name)
		}
		if _, ok := seen[column.Name]; ok {
			return fmt.Errorf("tabela %s: coluna %s duplicada", tableName, column.Name)
		}
		seen[column.Name] = struct{}{}
	}

	return nil
}
