package domain

// SuggestionData é uma sugestão de keyword retornada pelo endpoint de autocomplete
type SuggestionData struct {
	Keyword     string                `json:"string"`
	Vol         *int                  `json:"vol"`
	CPC         *float64              `json:"cpc"`
	Competition *float64              `json:"competition"`
	Monthly     []MonthlySearchVolume `json:"trend"`
}

// SuggestionResponse é o envelope da resposta do endpoint de sugestões
type SuggestionResponse struct {
	Results map[string][]SuggestionData `json:"results"`
}
