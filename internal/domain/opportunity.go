package domain

// OpportunityType classifica o tipo de oportunidade detectada
type OpportunityType string

const (
	OpportunityPlatformGap      OpportunityType = "platform_gap"
	OpportunityTrendMigration   OpportunityType = "trend_migration"
	OpportunityPlatformUnique   OpportunityType = "platform_unique"
	OpportunityBrandCoverageGap OpportunityType = "brand_coverage_gap"
)

// PlatformGapOpportunity representa um gap de volume detectado entre duas
// plataformas para uma keyword. Saída derivada, nunca persistida.
type PlatformGapOpportunity struct {
	Keyword            string          `json:"keyword"`
	OpportunityType    OpportunityType `json:"opportunity_type"`
	HighVolumePlatform Platform        `json:"high_volume_platform"`
	HighVolume         int             `json:"high_volume"`
	LowVolumePlatform  Platform        `json:"low_volume_platform"`
	LowVolume          int             `json:"low_volume"`
	VolumeRatio        float64         `json:"volume_ratio"`
	OpportunityScore   float64         `json:"opportunity_score"`
	Recommendation     string          `json:"recommendation"`
}

// UniqueKeyword é uma keyword com volume relevante em apenas uma plataforma
type UniqueKeyword struct {
	Keyword            string   `json:"keyword"`
	Platform           Platform `json:"platform"`
	Volume             int      `json:"volume"`
	UniquenessCategory string   `json:"uniqueness_category"`
	Reason             string   `json:"reason"`
}

// PlatformTrend é a direção de tendência de uma keyword em uma plataforma
type PlatformTrend struct {
	Direction  string  `json:"direction"`
	GrowthRate float64 `json:"growth_rate"`
}

// KeywordAnalysis é o resultado completo da análise de uma keyword
type KeywordAnalysis struct {
	Keyword          string                     `json:"keyword"`
	TotalVolume      int                        `json:"total_volume"`
	PrimaryPlatform  *Platform                  `json:"primary_platform,omitempty"`
	Platforms        map[Platform]*PlatformDatum `json:"platforms"`
	PlatformGaps     []*PlatformGapOpportunity  `json:"platform_gaps"`
	TrendAnalysis    map[Platform]*PlatformTrend `json:"trend_analysis"`
	OpportunityScore float64                    `json:"opportunity_score"`
}

// GapTypeCount conta as ocorrências de um par de plataformas no relatório
type GapTypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// OpportunitySummary traz as estatísticas agregadas de um relatório
type OpportunitySummary struct {
	TotalSearchVolumeAnalyzed   int                `json:"total_search_volume_analyzed"`
	GapOpportunitiesFound       int                `json:"gap_opportunities_found"`
	TopGapTypes                 []GapTypeCount     `json:"top_gap_types"`
	PrimaryPlatformDistribution map[Platform]int   `json:"primary_platform_distribution"`
	HighestOpportunityKeywords  []string           `json:"highest_opportunity_keywords"`
	AverageOpportunityScore     float64            `json:"average_opportunity_score"`
}

// OpportunityReport é o relatório de oportunidades para um lote de keywords
type OpportunityReport struct {
	SeedKeyword           string                        `json:"seed_keyword"`
	AnalyzedAt            string                        `json:"analyzed_at"`
	TotalKeywordsAnalyzed int                           `json:"total_keywords_analyzed"`
	PlatformGaps          []*PlatformGapOpportunity     `json:"platform_gaps"`
	UniqueKeywords        map[Platform][]*UniqueKeyword `json:"unique_keywords"`
	Summary               *OpportunitySummary           `json:"summary"`
}
