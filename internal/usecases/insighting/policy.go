package insighting

import (
	"fmt"
	"strings"
)

// FailurePolicy decide o que acontece quando uma unidade do fan-out falha
type FailurePolicy string

const (
	// FailFast cancela o lote na primeira falha e não devolve registros parciais
	FailFast FailurePolicy = "fail_fast"
	// ContinueOnError executa todas as unidades e devolve as falhas agregadas junto do resultado parcial.
	// Falhas de autorização continuam abortando o lote.
	ContinueOnError FailurePolicy = "continue_on_error"
)

func ParseFailurePolicy(value string) (FailurePolicy, error) {
	switch policy := FailurePolicy(strings.ToLower(strings.TrimSpace(value))); policy {
	case "", FailFast:
		return FailFast, nil
	case ContinueOnError:
		return ContinueOnError, nil
	default:
		return "", fmt.Errorf("política de falha desconhecida: %q", value)
	}
}
