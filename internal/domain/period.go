package domain

import (
	"fmt"
	"strings"
)

// Period é a granularidade temporal de uma consulta de insights
type Period string

const (
	// PeriodDaily pede um incremento de um dia (time_increment=1)
	PeriodDaily Period = "daily"
	// PeriodLifetime agrega todo o intervalo padrão da API
	PeriodLifetime Period = "lifetime"
)

func AllPeriods() []Period {
	return []Period{PeriodDaily, PeriodLifetime}
}

func ParsePeriod(value string) (Period, error) {
	period := Period(strings.ToLower(strings.TrimSpace(value)))
	switch period {
	case PeriodDaily, PeriodLifetime:
		return period, nil
	default:
		return "", fmt.Errorf("período desconhecido: %q", value)
	}
}

func (p Period) String() string {
	return string(p)
}

// TimeIncrement retorna o valor de time_increment para o período, ou vazio quando não se aplica
func (p Period) TimeIncrement() string {
	if p == PeriodDaily {
		return "1"
	}
	return ""
}
