package domain

import "strings"

// Platform identifica um canal de demanda de busca suportado
type Platform string

const (
	PlatformGoogle     Platform = "google"
	PlatformYoutube    Platform = "youtube"
	PlatformTiktok     Platform = "tiktok"
	PlatformInstagram  Platform = "instagram"
	PlatformPinterest  Platform = "pinterest"
	PlatformAmazon     Platform = "amazon"
	PlatformTwitter    Platform = "twitter"
	PlatformBing       Platform = "bing"
	PlatformEbay       Platform = "ebay"
	PlatformAppStore   Platform = "app_store"
	PlatformPlayStore  Platform = "play_store"
	PlatformEtsy       Platform = "etsy"
	PlatformNaver      Platform = "naver"
	PlatformPerplexity Platform = "perplexity"
)

// AllPlatforms lista todas as plataformas suportadas, na ordem de exibição
var AllPlatforms = []Platform{
	PlatformGoogle,
	PlatformYoutube,
	PlatformTiktok,
	PlatformInstagram,
	PlatformPinterest,
	PlatformAmazon,
	PlatformTwitter,
	PlatformBing,
	PlatformEbay,
	PlatformAppStore,
	PlatformPlayStore,
	PlatformEtsy,
	PlatformNaver,
	PlatformPerplexity,
}

// DefaultPlatforms são as plataformas consultadas quando o cliente não filtra
var DefaultPlatforms = []Platform{
	PlatformGoogle,
	PlatformYoutube,
	PlatformTiktok,
	PlatformInstagram,
	PlatformAmazon,
	PlatformPinterest,
}

// ParsePlatform converte uma string em Platform, validando contra a lista suportada
func ParsePlatform(s string) (Platform, bool) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllPlatforms {
		if p == known {
			return p, true
		}
	}
	return "", false
}

// Name retorna o nome de exibição da plataforma
func (p Platform) Name() string {
	switch p {
	case PlatformAppStore:
		return "App Store"
	case PlatformPlayStore:
		return "Play Store"
	case PlatformTiktok:
		return "TikTok"
	case PlatformYoutube:
		return "YouTube"
	default:
		return strings.Title(string(p))
	}
}

const (
	TrendGrowing          = "growing"
	TrendDeclining        = "declining"
	TrendStable           = "stable"
	TrendInsufficientData = "insufficient_data"
)

// PlatformDatum contém os dados de busca de uma keyword em uma plataforma.
// Imutável após a construção.
type PlatformDatum struct {
	Platform    Platform `json:"platform"`
	Volume      int      `json:"volume"`
	Trend       []int    `json:"trend,omitempty"`
	CPC         *float64 `json:"cpc,omitempty"`
	Competition *float64 `json:"competition,omitempty"`
	IsEstimated bool     `json:"is_estimated"`
}

// TrendDirection calcula a direção da tendência a partir do histórico de 12 meses.
// Compara a média da primeira metade com a da segunda, com banda de 10%.
func (d *PlatformDatum) TrendDirection() string {
	if len(d.Trend) < 6 {
		return TrendInsufficientData
	}

	firstHalf := 0
	for _, v := range d.Trend[:6] {
		firstHalf += v
	}
	firstAvg := float64(firstHalf) / 6

	secondLen := len(d.Trend) - 6
	secondHalf := 0
	for _, v := range d.Trend[6:] {
		secondHalf += v
	}
	secondAvg := float64(secondHalf) / float64(max(secondLen, 1))

	switch {
	case secondAvg > firstAvg*1.1:
		return TrendGrowing
	case secondAvg < firstAvg*0.9:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// CrossPlatformKeyword agrega os dados de uma keyword em múltiplas plataformas.
// Os campos derivados (TotalVolume e PrimaryPlatform) são calculados na
// construção e nunca modificados depois.
type CrossPlatformKeyword struct {
	Keyword         string                      `json:"keyword"`
	Platforms       map[Platform]*PlatformDatum `json:"platforms"`
	TotalVolume     int                         `json:"total_volume"`
	PrimaryPlatform *Platform                   `json:"primary_platform,omitempty"`
}

// NewCrossPlatformKeyword monta o agregado calculando volume total e plataforma
// principal. A plataforma principal fica vazia quando todos os volumes são zero.
func NewCrossPlatformKeyword(keyword string, platforms map[Platform]*PlatformDatum) *CrossPlatformKeyword {
	kw := &CrossPlatformKeyword{
		Keyword:   keyword,
		Platforms: platforms,
	}

	var primary Platform
	maxVolume := 0
	for p, d := range platforms {
		kw.TotalVolume += d.Volume
		if d.Volume > maxVolume {
			maxVolume = d.Volume
			primary = p
		}
	}

	if maxVolume > 0 {
		kw.PrimaryPlatform = &primary
	}

	return kw
}

// VolumeOn retorna o volume da keyword na plataforma informada, ou zero se ausente
func (kw *CrossPlatformKeyword) VolumeOn(platform Platform) int {
	if d, ok := kw.Platforms[platform]; ok {
		return d.Volume
	}
	return 0
}

// KeywordSuggestion é uma sugestão de keyword retornada pelo autocomplete de uma plataforma
type KeywordSuggestion struct {
	Keyword     string   `json:"keyword"`
	Platform    Platform `json:"platform"`
	Volume      *int     `json:"volume,omitempty"`
	Trend       []int    `json:"trend,omitempty"`
	CPC         *float64 `json:"cpc,omitempty"`
	Competition *float64 `json:"competition,omitempty"`
}
