package domain

// VolumeData é o resultado bruto de volume de busca por keyword retornado pela API
type VolumeData struct {
	Vol         int                   `json:"vol"`
	CPC         *float64              `json:"cpc"`
	Competition *float64              `json:"competition"`
	Monthly     []MonthlySearchVolume `json:"trend"`
}

// MonthlySearchVolume é um ponto do histórico mensal de volume
type MonthlySearchVolume struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Count int `json:"count"`
}

// TrendCounts converte o histórico mensal em uma série ordenada do mês mais
// antigo para o mais recente
func TrendCounts(monthly []MonthlySearchVolume) []int {
	if len(monthly) == 0 {
		return nil
	}

	counts := make([]int, 0, len(monthly))
	for _, m := range monthly {
		counts = append(counts, m.Count)
	}
	return counts
}

// VolumeResponse é o envelope da resposta do endpoint de volume
type VolumeResponse struct {
	Results map[string]VolumeData `json:"results"`
}
