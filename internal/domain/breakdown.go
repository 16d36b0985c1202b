package domain

import (
	"fmt"
	"strings"
)

// Breakdown é a sequência ordenada de dimensões aplicada a uma consulta de insights.
// A ordem é significativa: [age gender] e [gender age] geram tabelas diferentes.
type Breakdown []string

// DefaultBreakdowns são as combinações usadas quando nenhuma é configurada
func DefaultBreakdowns() []Breakdown {
	return []Breakdown{
		{"age", "gender"},
		{"country"},
		{"publisher_platform", "platform_position"},
		{"device_platform"},
	}
}

// ParseBreakdowns interpreta combinações no formato "age,gender;country"
func ParseBreakdowns(values []string) ([]Breakdown, error) {
	combos := make([]Breakdown, 0, len(values))
	seen := make(map[string]struct{})

	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}

		combo := make(Breakdown, 0)
		for _, dim := range strings.Split(value, ",") {
			dim = strings.TrimSpace(dim)
			if dim == "" {
				return nil, fmt.Errorf("dimensão vazia na combinação %q", value)
			}
			combo = append(combo, dim)
		}

		if _, ok := seen[combo.Key()]; ok {
			return nil, fmt.Errorf("combinação de breakdown duplicada: %q", value)
		}
		seen[combo.Key()] = struct{}{}
		combos = append(combos, combo)
	}

	return combos, nil
}

// Key identifica a combinação preservando a ordem das dimensões
func (b Breakdown) Key() string {
	return strings.Join(b, ",")
}

// Param é o valor do parâmetro breakdowns enviado para a API
func (b Breakdown) Param() string {
	return strings.Join(b, ",")
}

func (b Breakdown) Clone() Breakdown {
	if b == nil {
		return Breakdown{}
	}
	return append(Breakdown{}, b...)
}
