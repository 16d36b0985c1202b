package metadomain

import (
	"fmt"
	"strconv"
)

// AdInsight é uma linha do endpoint /{ad_id}/insights.
// As chaves variam com os breakdowns pedidos, por isso o formato é um mapa.
type AdInsight map[string]any

func (i AdInsight) String(field string) string {
	switch v := i[field].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func (i AdInsight) Has(field string) bool {
	_, ok := i[field]
	return ok
}
