package domain

// Flags de cobertura reportados por auditoria de keyword
const (
	CoverageMetaAds      = "meta_ads"
	CoverageGoogleAds    = "google_ads"
	CoverageTiktokAds    = "tiktok_ads"
	CoverageKeywordInAds = "keyword_in_ads"
)

// BrandCoverageAudit compara a demanda de busca de uma keyword com a presença
// de anúncios da marca. Saída derivada, nunca persistida.
type BrandCoverageAudit struct {
	BrandName          string           `json:"brand_name"`
	Keyword            string           `json:"keyword"`
	Demand             map[Platform]int `json:"demand"`
	Coverage           map[string]bool  `json:"coverage"`
	GapScore           float64          `json:"gap_score"`
	Recommendation     string           `json:"recommendation"`
	TotalDemand        int              `json:"total_demand"`
	CoveredDemand      int              `json:"covered_demand"`
	UncoveredPlatforms []string         `json:"uncovered_platforms"`
}

// AdPlatformStatus é o estado de presença da marca em uma biblioteca de anúncios
type AdPlatformStatus string

const (
	AdPlatformActive   AdPlatformStatus = "active"
	AdPlatformInactive AdPlatformStatus = "inactive"
)

// BrandAuditReport é o resultado completo de uma auditoria de cobertura de marca
type BrandAuditReport struct {
	BrandDomain   string                `json:"brand_domain"`
	AuditedAt     string                `json:"audited_at"`
	AdLibrary     *BrandAdLibrary       `json:"ad_library"`
	KeywordAudits []*BrandCoverageAudit `json:"keyword_audits"`
	Summary       *BrandSummary         `json:"summary"`
}

// BrandSummary é a visão agregada da presença de anúncios versus demanda
type BrandSummary struct {
	BrandDomain           string                          `json:"brand_domain"`
	KeywordsAnalyzed      int                             `json:"keywords_analyzed"`
	AdsByPlatform         map[AdPlatform]int              `json:"ads_by_platform"`
	TotalDemandByPlatform map[Platform]int                `json:"total_demand_by_platform"`
	CoverageStatus        map[AdPlatform]AdPlatformStatus `json:"coverage_status"`
	TopDemandPlatform     *Platform                       `json:"top_demand_platform,omitempty"`
}
