package auditing

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/total-search-api/infrastructure/integrator/adlibrary"
	"github.com/vfg2006/total-search-api/infrastructure/integrator/keywordtool"
	"github.com/vfg2006/total-search-api/internal/domain"
	"github.com/vfg2006/total-search-api/pkg/utils"
)

// Plataformas de demanda consideradas na auditoria e o produto de mídia paga
// que cobre cada uma
var coverageByPlatform = map[domain.Platform]string{
	domain.PlatformGoogle:    domain.CoverageGoogleAds,
	domain.PlatformTiktok:    domain.CoverageTiktokAds,
	domain.PlatformInstagram: domain.CoverageMetaAds,
}

// AuditPlatforms são as plataformas de demanda consultadas na auditoria
var AuditPlatforms = []domain.Platform{
	domain.PlatformGoogle,
	domain.PlatformTiktok,
	domain.PlatformInstagram,
}

// Auditor cruza a demanda de busca de keywords com a presença de anúncios da
// marca nas bibliotecas públicas.
type Auditor interface {
	AuditBrand(ctx context.Context, brandDomain string, keywords []string) (*domain.BrandAuditReport, error)
}

type Service struct {
	keywords keywordtool.Integrator
	adLib    adlibrary.Integrator
}

func NewService(keywords keywordtool.Integrator, adLib adlibrary.Integrator) Auditor {
	return &Service{
		keywords: keywords,
		adLib:    adLib,
	}
}

// AuditBrand audita a cobertura de anúncios da marca para as keywords informadas
func (s *Service) AuditBrand(ctx context.Context, brandDomain string, keywords []string) (*domain.BrandAuditReport, error) {
	logger := logrus.WithFields(logrus.Fields{
		"brand_domain": brandDomain,
		"keywords":     len(keywords),
	})
	logger.Info("audit: starting brand coverage audit")

	lib, err := s.adLib.GetAdsByDomain(ctx, brandDomain, keywords)
	if err != nil {
		logger.WithError(err).Error("audit: failed to get brand ad library")
		return nil, err
	}

	volumes, err := s.keywords.SearchVolume(ctx, keywords, AuditPlatforms)
	if err != nil {
		logger.WithError(err).Error("audit: failed to get keyword demand")
		return nil, err
	}

	audits := make([]*domain.BrandCoverageAudit, 0, len(volumes))
	for _, kw := range volumes {
		audits = append(audits, s.auditKeyword(lib, kw))
	}

	// Maiores lacunas de cobertura primeiro
	sort.SliceStable(audits, func(i, j int) bool {
		return audits[i].GapScore > audits[j].GapScore
	})

	logger.WithField("total_ads", lib.TotalAds).Info("audit: brand coverage audit finished")

	return &domain.BrandAuditReport{
		BrandDomain:   brandDomain,
		AuditedAt:     time.Now().Format(time.RFC3339),
		AdLibrary:     lib,
		KeywordAudits: audits,
		Summary:       s.summary(brandDomain, lib, volumes),
	}, nil
}

// auditKeyword compara a demanda de uma keyword com a presença de anúncios
func (s *Service) auditKeyword(lib *domain.BrandAdLibrary, kw *domain.CrossPlatformKeyword) *domain.BrandCoverageAudit {
	demand := make(map[domain.Platform]int, len(AuditPlatforms))
	for _, platform := range AuditPlatforms {
		demand[platform] = kw.VolumeOn(platform)
	}

	coverage := map[string]bool{
		domain.CoverageMetaAds:      lib.HasAdsOn(domain.AdPlatformMeta),
		domain.CoverageGoogleAds:    lib.HasAdsOn(domain.AdPlatformGoogle),
		domain.CoverageTiktokAds:    lib.HasAdsOn(domain.AdPlatformTiktok),
		domain.CoverageKeywordInAds: keywordInAds(lib, kw.Keyword),
	}

	totalDemand := 0
	coveredDemand := 0
	for platform, volume := range demand {
		totalDemand += volume
		if coverage[coverageByPlatform[platform]] {
			coveredDemand += volume
		}
	}

	// Demanda sem nenhum volume não gera gap
	gapScore := 0.0
	if totalDemand > 0 {
		gapScore = utils.RoundWithOneDecimalPlace(float64(totalDemand-coveredDemand) / float64(totalDemand) * 100)
	}

	uncovered := uncoveredPlatforms(demand, coverage)

	return &domain.BrandCoverageAudit{
		BrandName:          lib.BrandName,
		Keyword:            kw.Keyword,
		Demand:             demand,
		Coverage:           coverage,
		GapScore:           gapScore,
		Recommendation:     recommendation(kw.Keyword, demand, coverage, gapScore, uncovered),
		TotalDemand:        totalDemand,
		CoveredDemand:      coveredDemand,
		UncoveredPlatforms: uncovered,
	}
}

// summary monta a visão agregada da marca
func (s *Service) summary(brandDomain string, lib *domain.BrandAdLibrary, volumes []*domain.CrossPlatformKeyword) *domain.BrandSummary {
	adsByPlatform := make(map[domain.AdPlatform]int, len(domain.AllAdPlatforms))
	coverageStatus := make(map[domain.AdPlatform]domain.AdPlatformStatus, len(domain.AllAdPlatforms))
	for _, platform := range domain.AllAdPlatforms {
		adsByPlatform[platform] = len(lib.AdsOn(platform))
		coverageStatus[platform] = domain.AdPlatformInactive
		if adsByPlatform[platform] > 0 {
			coverageStatus[platform] = domain.AdPlatformActive
		}
	}

	demandByPlatform := make(map[domain.Platform]int, len(AuditPlatforms))
	for _, kw := range volumes {
		for _, platform := range AuditPlatforms {
			demandByPlatform[platform] += kw.VolumeOn(platform)
		}
	}

	var topPlatform *domain.Platform
	maxDemand := 0
	for _, platform := range AuditPlatforms {
		if demandByPlatform[platform] > maxDemand {
			maxDemand = demandByPlatform[platform]
			p := platform
			topPlatform = &p
		}
	}

	return &domain.BrandSummary{
		BrandDomain:           brandDomain,
		KeywordsAnalyzed:      len(volumes),
		AdsByPlatform:         adsByPlatform,
		TotalDemandByPlatform: demandByPlatform,
		CoverageStatus:        coverageStatus,
		TopDemandPlatform:     topPlatform,
	}
}

// uncoveredPlatforms lista onde existe demanda sem anúncio correspondente
func uncoveredPlatforms(demand map[domain.Platform]int, coverage map[string]bool) []string {
	uncovered := make([]string, 0)

	if demand[domain.PlatformTiktok] > 0 && !coverage[domain.CoverageTiktokAds] {
		uncovered = append(uncovered, domain.PlatformTiktok.Name())
	}
	if demand[domain.PlatformInstagram] > 0 && !coverage[domain.CoverageMetaAds] {
		uncovered = append(uncovered, domain.PlatformInstagram.Name())
	}
	if demand[domain.PlatformGoogle] > 0 && !coverage[domain.CoverageGoogleAds] {
		uncovered = append(uncovered, domain.PlatformGoogle.Name())
	} else if demand[domain.PlatformGoogle] > 0 && !coverage[domain.CoverageKeywordInAds] {
		// A marca anuncia no Google mas nenhum criativo menciona a keyword
		uncovered = append(uncovered, domain.PlatformGoogle.Name()+" (keyword gap)")
	}

	return uncovered
}

// keywordInAds verifica sobreposição por substring em qualquer direção:
// "protein" detectado nos anúncios cobre a keyword auditada "protein powder"
func keywordInAds(lib *domain.BrandAdLibrary, keyword string) bool {
	keywordLower := strings.ToLower(keyword)
	for _, kw := range lib.KeywordsInAds {
		adKeyword := strings.ToLower(kw)
		if strings.Contains(adKeyword, keywordLower) || strings.Contains(keywordLower, adKeyword) {
			return true
		}
	}
	return false
}

// recommendation monta o texto de recomendação de uma auditoria de keyword.
// Qualquer plataforma descoberta entra no texto, mesmo com gap score zero
// (caso do gap de criativo no Google).
func recommendation(keyword string, demand map[domain.Platform]int, coverage map[string]bool, gapScore float64, uncovered []string) string {
	if len(uncovered) == 0 {
		return fmt.Sprintf("'%s' is fully covered across audited platforms.", keyword)
	}

	platforms := strings.Join(uncovered, ", ")
	switch {
	case gapScore >= 70:
		largest := largestUncoveredPlatform(demand, coverage)
		return fmt.Sprintf(
			"High priority: '%s' has %s uncovered monthly searches on %s. Start with %s where demand is highest.",
			keyword, utils.FormatThousands(uncoveredVolume(demand, coverage)), platforms, largest.Name(),
		)
	case gapScore >= 30:
		return fmt.Sprintf(
			"Partial coverage for '%s'. Expand campaigns to %s to close the remaining %.1f%% demand gap.",
			keyword, platforms, gapScore,
		)
	default:
		return fmt.Sprintf("Expand paid coverage for '%s' to: %s.", keyword, platforms)
	}
}

func uncoveredVolume(demand map[domain.Platform]int, coverage map[string]bool) int {
	total := 0
	for platform, volume := range demand {
		if !coverage[coverageByPlatform[platform]] {
			total += volume
		}
	}
	return total
}

func largestUncoveredPlatform(demand map[domain.Platform]int, coverage map[string]bool) domain.Platform {
	var largest domain.Platform
	maxVolume := -1
	for _, platform := range AuditPlatforms {
		if coverage[coverageByPlatform[platform]] {
			continue
		}
		if demand[platform] > maxVolume {
			maxVolume = demand[platform]
			largest = platform
		}
	}
	return largest
}
