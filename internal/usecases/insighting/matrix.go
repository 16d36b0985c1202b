package insighting

import (
	"github.com/vfg2006/ads-insights-pipeline/internal/domain"
)

// BuildMatrix monta o produto cartesiano anúncios × períodos × breakdowns.
// Anúncios, períodos e combinações repetidos são colapsados antes, então cada chave aparece uma vez.
func BuildMatrix(ads []domain.Ad, periods []domain.Period, combos []domain.Breakdown) []domain.InsightRequest {
	ads = uniqueAds(ads)
	periods = uniquePeriods(periods)
	combos = uniqueCombos(combos)

	matrix := make([]domain.InsightRequest, 0, len(ads)*len(periods)*len(combos))
	for _, ad := range ads {
		for _, period := range periods {
			for _, combo := range combos {
				matrix = append(matrix, domain.InsightRequest{
					AdID:       ad.ID,
					AccountID:  ad.AccountID,
					Period:     period,
					Breakdowns: combo.Clone(),
				})
			}
		}
	}

	return matrix
}

func uniqueAds(ads []domain.Ad) []domain.Ad {
	seen := make(map[string]struct{}, len(ads))
	result := make([]domain.Ad, 0, len(ads))
	for _, ad := range ads {
		if _, ok := seen[ad.ID]; ok {
			continue
		}
		seen[ad.ID] = struct{}{}
		result = append(result, ad)
	}
	return result
}

func uniquePeriods(periods []domain.Period) []domain.Period {
	seen := make(map[domain.Period]struct{}, len(periods))
	result := make([]domain.Period, 0, len(periods))
	for _, period := range periods {
		if _, ok := seen[period]; ok {
			continue
		}
		seen[period] = struct{}{}
		result = append(result, period)
	}
	return result
}

func uniqueCombos(combos []domain.Breakdown) []domain.Breakdown {
	seen := make(map[string]struct{}, len(combos))
	result := make([]domain.Breakdown, 0, len(combos))
	for _, combo := range combos {
		if _, ok := seen[combo.Key()]; ok {
			continue
		}
		seen[combo.Key()] = struct{}{}
		result = append(result, combo)
	}
	return result
}
