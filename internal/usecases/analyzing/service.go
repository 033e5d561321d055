package analyzing

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/vfg2006/total-search-api/internal/domain"
	"github.com/vfg2006/total-search-api/pkg/utils"
)

// Limiares da detecção de gaps entre plataformas
const (
	// MinVolumeThreshold é o volume mínimo na plataforma de origem para considerar um gap
	MinVolumeThreshold = 1000
	// GapRatioThreshold é a razão mínima alto/baixo para sinalizar um gap
	GapRatioThreshold = 5.0
	// ZeroCoverageRatio é o valor sentinela reportado quando a plataforma de destino tem volume zero
	ZeroCoverageRatio = 999.0
	// ZeroCoverageScore é o score atribuído a gaps de cobertura zero (sinal máximo)
	ZeroCoverageScore = 95.0

	maxReportGaps     = 50
	maxReportKeywords = 5
	maxReportGapTypes = 5
)

// PlatformPair é um par estratégico (origem de alto volume -> destino de baixo volume)
type PlatformPair struct {
	High domain.Platform
	Low  domain.Platform
}

// StrategicPairs são os pares de plataformas comparados na detecção de gaps
var StrategicPairs = []PlatformPair{
	{High: domain.PlatformTiktok, Low: domain.PlatformGoogle},    // Social -> Busca
	{High: domain.PlatformInstagram, Low: domain.PlatformGoogle}, // Social -> Busca
	{High: domain.PlatformYoutube, Low: domain.PlatformGoogle},   // Vídeo -> Busca
	{High: domain.PlatformTiktok, Low: domain.PlatformYoutube},   // Vídeo curto -> Vídeo longo
	{High: domain.PlatformAmazon, Low: domain.PlatformGoogle},    // Commerce -> Busca
	{High: domain.PlatformPinterest, Low: domain.PlatformGoogle}, // Visual -> Busca
}

// platformPatterns são termos que indicam conteúdo específico de uma plataforma,
// usados na classificação de keywords únicas
var platformPatterns = map[domain.Platform]map[string][]string{
	domain.PlatformTiktok: {
		"format_driven": {
			"grwm", "pov", "storytime", "ib", "fyp", "greenscreen",
			"duet", "stitch", "transition", "asmr",
		},
		"platform_slang": {
			"viral", "trending", "blew up", "went viral", "for you",
			"foryoupage", "tiktok made me",
		},
		"audience_specific": {
			"gen z", "aesthetic", "vibe", "core", "coded",
			"that girl", "clean girl", "mob wife",
		},
	},
	domain.PlatformInstagram: {
		"format_driven":     {"reels", "carousel", "story", "feed", "collab"},
		"platform_slang":    {"inspo", "ootd", "aesthetic", "flatlay"},
		"audience_specific": {"influencer", "creator", "ugc"},
	},
	domain.PlatformYoutube: {
		"format_driven": {
			"tutorial", "review", "unboxing", "haul", "vlog",
			"how to", "compilation", "reaction", "explained",
		},
		"platform_slang":    {"subscribe", "like and subscribe", "watch time"},
		"audience_specific": {},
	},
	domain.PlatformAmazon: {
		"format_driven":     {"best seller", "prime", "review", "vs"},
		"platform_slang":    {},
		"audience_specific": {"buy", "purchase", "deal", "discount", "coupon"},
	},
	domain.PlatformPinterest: {
		"format_driven":     {"pin", "board", "idea", "inspiration"},
		"platform_slang":    {"aesthetic", "moodboard"},
		"audience_specific": {"diy", "craft", "recipe"},
	},
}

// Analyzer detecta oportunidades de keywords entre plataformas:
// gaps de volume, keywords exclusivas de uma plataforma e direção de tendência.
type Analyzer interface {
	AnalyzeKeyword(kw *domain.CrossPlatformKeyword) *domain.KeywordAnalysis
	AnalyzeBatch(keywords []*domain.CrossPlatformKeyword) *domain.OpportunityReport
	FindPlatformGaps(kw *domain.CrossPlatformKeyword) []*domain.PlatformGapOpportunity
	FindPlatformUnique(kw *domain.CrossPlatformKeyword) *domain.UniqueKeyword
}

type Service struct{}

func NewService() Analyzer {
	return &Service{}
}

// AnalyzeKeyword faz a análise completa de uma keyword: gaps, tendências e score
func (s *Service) AnalyzeKeyword(kw *domain.CrossPlatformKeyword) *domain.KeywordAnalysis {
	gaps := s.FindPlatformGaps(kw)

	return &domain.KeywordAnalysis{
		Keyword:          kw.Keyword,
		TotalVolume:      kw.TotalVolume,
		PrimaryPlatform:  kw.PrimaryPlatform,
		Platforms:        kw.Platforms,
		PlatformGaps:     gaps,
		TrendAnalysis:    s.trendAnalysis(kw),
		OpportunityScore: s.opportunityScore(kw, gaps),
	}
}

// AnalyzeBatch analisa um lote de keywords e gera o relatório consolidado
func (s *Service) AnalyzeBatch(keywords []*domain.CrossPlatformKeyword) *domain.OpportunityReport {
	allGaps := make([]*domain.PlatformGapOpportunity, 0)
	uniqueByPlatform := make(map[domain.Platform][]*domain.UniqueKeyword)

	for _, kw := range keywords {
		allGaps = append(allGaps, s.FindPlatformGaps(kw)...)

		if unique := s.FindPlatformUnique(kw); unique != nil {
			uniqueByPlatform[unique.Platform] = append(uniqueByPlatform[unique.Platform], unique)
		}
	}

	// Gaps ordenados do maior para o menor score
	sort.SliceStable(allGaps, func(i, j int) bool {
		return allGaps[i].OpportunityScore > allGaps[j].OpportunityScore
	})

	seedKeyword := ""
	if len(keywords) > 0 {
		seedKeyword = keywords[0].Keyword
	}

	topGaps := allGaps
	if len(topGaps) > maxReportGaps {
		topGaps = topGaps[:maxReportGaps]
	}

	return &domain.OpportunityReport{
		SeedKeyword:           seedKeyword,
		AnalyzedAt:            time.Now().Format(time.RFC3339),
		TotalKeywordsAnalyzed: len(keywords),
		PlatformGaps:          topGaps,
		UniqueKeywords:        uniqueByPlatform,
		Summary:               s.summary(keywords, allGaps),
	}
}

// FindPlatformGaps identifica gaps de volume significativos entre os pares
// estratégicos de plataformas. O par é ignorado quando a plataforma de origem
// está ausente ou abaixo do volume mínimo; a plataforma de destino ausente
// conta como volume zero.
func (s *Service) FindPlatformGaps(kw *domain.CrossPlatformKeyword) []*domain.PlatformGapOpportunity {
	gaps := make([]*domain.PlatformGapOpportunity, 0)

	for _, pair := range StrategicPairs {
		highData, ok := kw.Platforms[pair.High]
		if !ok {
			continue
		}

		highVol := highData.Volume
		if highVol < MinVolumeThreshold {
			continue
		}

		lowVol := 0
		if lowData, ok := kw.Platforms[pair.Low]; ok {
			lowVol = lowData.Volume
		}

		var ratio, score float64
		switch {
		case lowVol == 0:
			// Plataforma de destino sem nenhuma cobertura
			ratio = ZeroCoverageRatio
			score = ZeroCoverageScore
		case float64(highVol)/float64(max(lowVol, 1)) >= GapRatioThreshold:
			ratio = float64(highVol) / float64(lowVol)
			score = min(90.0, 50+ratio*2)
		default:
			continue
		}

		gaps = append(gaps, &domain.PlatformGapOpportunity{
			Keyword:            kw.Keyword,
			OpportunityType:    domain.OpportunityPlatformGap,
			HighVolumePlatform: pair.High,
			HighVolume:         highVol,
			LowVolumePlatform:  pair.Low,
			LowVolume:          lowVol,
			VolumeRatio:        ratio,
			OpportunityScore:   score,
			Recommendation:     gapRecommendation(kw.Keyword, pair, highVol, lowVol),
		})
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].OpportunityScore > gaps[j].OpportunityScore
	})

	return gaps
}

// FindPlatformUnique identifica se a keyword tem volume relevante em apenas uma plataforma
func (s *Service) FindPlatformUnique(kw *domain.CrossPlatformKeyword) *domain.UniqueKeyword {
	var active []*domain.PlatformDatum
	for _, data := range kw.Platforms {
		if data.Volume >= MinVolumeThreshold {
			active = append(active, data)
		}
	}

	if len(active) != 1 {
		return nil
	}

	category, reason := classifyUniqueness(kw.Keyword, active[0].Platform)

	return &domain.UniqueKeyword{
		Keyword:            kw.Keyword,
		Platform:           active[0].Platform,
		Volume:             active[0].Volume,
		UniquenessCategory: category,
		Reason:             reason,
	}
}

// trendAnalysis calcula a direção de tendência por plataforma
func (s *Service) trendAnalysis(kw *domain.CrossPlatformKeyword) map[domain.Platform]*domain.PlatformTrend {
	trends := make(map[domain.Platform]*domain.PlatformTrend)

	for platform, data := range kw.Platforms {
		if len(data.Trend) < 6 {
			continue
		}

		firstSum := 0
		for _, v := range data.Trend[:6] {
			firstSum += v
		}
		firstHalf := float64(firstSum) / 6

		secondSum := 0
		for _, v := range data.Trend[6:] {
			secondSum += v
		}
		secondHalf := float64(secondSum) / float64(max(len(data.Trend)-6, 1))

		growthRate := (secondHalf - firstHalf) / max(firstHalf, 1) * 100

		trends[platform] = &domain.PlatformTrend{
			Direction:  data.TrendDirection(),
			GrowthRate: utils.RoundWithOneDecimalPlace(growthRate),
		}
	}

	return trends
}

// opportunityScore calcula o score geral de oportunidade da keyword (0-100).
// Combina o volume total, o maior gap detectado e o bônus de tendência crescente.
func (s *Service) opportunityScore(kw *domain.CrossPlatformKeyword, gaps []*domain.PlatformGapOpportunity) float64 {
	score := 0.0

	switch {
	case kw.TotalVolume > 1000000:
		score += 30
	case kw.TotalVolume > 100000:
		score += 20
	case kw.TotalVolume > 10000:
		score += 10
	}

	if len(gaps) > 0 {
		maxGapScore := gaps[0].OpportunityScore
		for _, g := range gaps[1:] {
			if g.OpportunityScore > maxGapScore {
				maxGapScore = g.OpportunityScore
			}
		}
		score += maxGapScore * 0.5
	}

	// Bônus único quando alguma plataforma cresceu mais de 20% no ano
	for _, data := range kw.Platforms {
		if len(data.Trend) >= 12 && float64(data.Trend[len(data.Trend)-1]) > float64(data.Trend[0])*1.2 {
			score += 10
			break
		}
	}

	return min(100.0, score)
}

// summary gera as estatísticas agregadas do relatório
func (s *Service) summary(keywords []*domain.CrossPlatformKeyword, gaps []*domain.PlatformGapOpportunity) *domain.OpportunitySummary {
	totalVolume := 0
	primaryCounts := make(map[domain.Platform]int)
	for _, kw := range keywords {
		totalVolume += kw.TotalVolume
		if kw.PrimaryPlatform != nil {
			primaryCounts[*kw.PrimaryPlatform]++
		}
	}

	gapCounts := make(map[string]int)
	avgScore := 0.0
	for _, gap := range gaps {
		pair := fmt.Sprintf("%s -> %s", gap.HighVolumePlatform, gap.LowVolumePlatform)
		gapCounts[pair]++
		avgScore += gap.OpportunityScore
	}
	if len(gaps) > 0 {
		avgScore /= float64(len(gaps))
	}

	// Pares mais frequentes primeiro, desempate pelo nome do par
	topGapTypes := make([]domain.GapTypeCount, 0, len(gapCounts))
	for pair, count := range gapCounts {
		topGapTypes = append(topGapTypes, domain.GapTypeCount{Type: pair, Count: count})
	}
	sort.Slice(topGapTypes, func(i, j int) bool {
		if topGapTypes[i].Count != topGapTypes[j].Count {
			return topGapTypes[i].Count > topGapTypes[j].Count
		}
		return topGapTypes[i].Type < topGapTypes[j].Type
	})
	if len(topGapTypes) > maxReportGapTypes {
		topGapTypes = topGapTypes[:maxReportGapTypes]
	}

	topKeywords := make([]string, 0, maxReportKeywords)
	for _, gap := range gaps {
		if len(topKeywords) == maxReportKeywords {
			break
		}
		topKeywords = append(topKeywords, gap.Keyword)
	}

	return &domain.OpportunitySummary{
		TotalSearchVolumeAnalyzed:   totalVolume,
		GapOpportunitiesFound:       len(gaps),
		TopGapTypes:                 topGapTypes,
		PrimaryPlatformDistribution: primaryCounts,
		HighestOpportunityKeywords:  topKeywords,
		AverageOpportunityScore:     avgScore,
	}
}

// gapRecommendation monta o texto de recomendação de um gap
func gapRecommendation(keyword string, pair PlatformPair, highVol, lowVol int) string {
	if lowVol == 0 {
		return fmt.Sprintf(
			"'%s' has %s monthly searches on %s but ZERO on %s. Create %s content to capture this untapped demand.",
			keyword, utils.FormatThousands(highVol), pair.High, pair.Low, pair.Low,
		)
	}

	ratio := float64(highVol) / float64(lowVol)
	return fmt.Sprintf(
		"'%s' has %.1fx more searches on %s (%s) vs %s (%s). Opportunity to expand %s presence.",
		keyword, ratio, pair.High, utils.FormatThousands(highVol),
		pair.Low, utils.FormatThousands(lowVol), pair.Low,
	)
}

// classifyUniqueness determina por que a keyword é exclusiva de uma plataforma
func classifyUniqueness(keyword string, platform domain.Platform) (string, string) {
	keywordLower := strings.ToLower(keyword)

	for category, terms := range platformPatterns[platform] {
		for _, term := range terms {
			if strings.Contains(keywordLower, term) {
				return category, fmt.Sprintf("Contains '%s' which is %s-specific", term, platform)
			}
		}
	}

	return "unknown", "Platform-specific for unknown reasons"
}
