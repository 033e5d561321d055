package adlibrary

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/total-search-api/infrastructure/demodata"
	"github.com/vfg2006/total-search-api/infrastructure/integrator/adlibrary/adlibraryclient"
	adldomain "github.com/vfg2006/total-search-api/infrastructure/integrator/adlibrary/domain"
	"github.com/vfg2006/total-search-api/internal/config"
	"github.com/vfg2006/total-search-api/internal/domain"
)

// Integrator reúne os anúncios de uma marca nas bibliotecas públicas do Meta,
// TikTok e Google, ou nas amostras embutidas quando o modo demo está ativo.
type Integrator interface {
	GetAdsByDomain(ctx context.Context, brandDomain string, keywords []string) (*domain.BrandAdLibrary, error)
}

type AdLibraryIntegrator struct {
	cfg    *config.Config
	Client adlibraryclient.Client
	demo   *demodata.Store
}

func New(cfg *config.Config, client adlibraryclient.Client, demo *demodata.Store) *AdLibraryIntegrator {
	return &AdLibraryIntegrator{
		cfg:    cfg,
		Client: client,
		demo:   demo,
	}
}

// GetAdsByDomain consulta as três bibliotecas de anúncios e monta a visão
// consolidada da marca. Falhas em uma biblioteca não derrubam a auditoria.
// As keywords informadas são procuradas nos textos dos criativos.
func (s *AdLibraryIntegrator) GetAdsByDomain(ctx context.Context, brandDomain string, keywords []string) (*domain.BrandAdLibrary, error) {
	if s.cfg.App.DemoMode {
		return s.demoAds(brandDomain, keywords)
	}

	brandName := brandNameFromDomain(brandDomain)
	ads := make([]*domain.AdCreative, 0)

	metaAds, err := s.Client.GetMetaAds(ctx, brandName)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"brand_domain": brandDomain,
			"error":        err.Error(),
		}).Error("audit: failed to get ads from Meta Ad Library")
	} else {
		for i := range metaAds {
			ads = append(ads, convertMetaAd(&metaAds[i], keywords))
		}
	}

	tiktokAds, err := s.Client.GetTiktokAds(ctx, brandName)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"brand_domain": brandDomain,
			"error":        err.Error(),
		}).Error("audit: failed to get ads from TikTok library")
	} else {
		for i := range tiktokAds {
			ads = append(ads, convertTiktokAd(&tiktokAds[i], keywords))
		}
	}

	googleAds, err := s.Client.GetGoogleAds(ctx, brandDomain)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"brand_domain": brandDomain,
			"error":        err.Error(),
		}).Error("audit: failed to get ads from Ads Transparency Center")
	} else {
		for i := range googleAds {
			ads = append(ads, convertGoogleAd(&googleAds[i], keywords))
		}
	}

	logrus.WithFields(logrus.Fields{
		"brand_domain": brandDomain,
		"total_ads":    len(ads),
	}).Debug("audit: successfully aggregated brand ad library")

	return domain.NewBrandAdLibrary(brandName, brandDomain, ads), nil
}

// demoAds responde a partir das amostras embutidas. Marcas fora da amostra
// voltam com a biblioteca vazia.
func (s *AdLibraryIntegrator) demoAds(brandDomain string, keywords []string) (*domain.BrandAdLibrary, error) {
	lib, err := s.demo.Brand(brandDomain)
	if err != nil {
		return nil, err
	}

	if lib == nil {
		return domain.NewBrandAdLibrary(brandNameFromDomain(brandDomain), brandDomain, nil), nil
	}

	// Reavalia a detecção de keywords contra os textos dos criativos da amostra
	if len(keywords) > 0 {
		ads := make([]*domain.AdCreative, 0, len(lib.Ads))
		for _, ad := range lib.Ads {
			clone := *ad
			clone.KeywordsDetected = mergeDetected(ad.KeywordsDetected, detectKeywords(ad.Headline+" "+ad.BodyText, keywords))
			ads = append(ads, &clone)
		}
		return domain.NewBrandAdLibrary(lib.BrandName, lib.BrandDomain, ads), nil
	}

	return lib, nil
}

func convertMetaAd(ad *adldomain.MetaAd, keywords []string) *domain.AdCreative {
	headline := ""
	if len(ad.AdCreativeLinkTitles) > 0 {
		headline = ad.AdCreativeLinkTitles[0]
	}

	body := ""
	if len(ad.AdCreativeBodies) > 0 {
		body = ad.AdCreativeBodies[0]
	}

	status := "inactive"
	if ad.AdDeliveryStopTime == "" {
		status = "active"
	}

	creative := &domain.AdCreative{
		ID:               "meta-" + ad.ID,
		Platform:         domain.AdPlatformMeta,
		AdvertiserName:   ad.PageName,
		AdvertiserID:     ad.PageID,
		AdFormat:         domain.AdFormatImage,
		FirstShown:       parseAdDate(ad.AdDeliveryStartTime),
		LastShown:        parseAdDate(ad.AdDeliveryStopTime),
		Status:           status,
		Headline:         headline,
		BodyText:         body,
		KeywordsDetected: detectKeywords(headline+" "+body, keywords),
	}

	if ad.Impressions != nil {
		creative.ImpressionsRange = boundRange(ad.Impressions)
	}
	if ad.Spend != nil {
		creative.SpendRange = "$" + boundRange(ad.Spend)
	}

	return creative
}

func convertTiktokAd(ad *adldomain.TiktokAd, keywords []string) *domain.AdCreative {
	return &domain.AdCreative{
		ID:               "tiktok-" + strconv.FormatInt(ad.Ad.ID, 10),
		Platform:         domain.AdPlatformTiktok,
		AdvertiserName:   ad.Advertiser.BusinessName,
		AdvertiserID:     strconv.FormatInt(ad.Advertiser.BusinessID, 10),
		AdFormat:         domain.AdFormatVideo,
		FirstShown:       parseAdDate(ad.Ad.FirstShownDate),
		LastShown:        parseAdDate(ad.Ad.LastShownDate),
		Status:           strings.ToLower(ad.Ad.Status),
		BodyText:         ad.AdText,
		ImpressionsRange: ad.Reach.UniqueUsersSeen,
		KeywordsDetected: detectKeywords(ad.AdText, keywords),
	}
}

func convertGoogleAd(ad *adldomain.GoogleAd, keywords []string) *domain.AdCreative {
	format := domain.AdFormatText
	switch strings.ToLower(ad.Format) {
	case "video":
		format = domain.AdFormatVideo
	case "image":
		format = domain.AdFormatImage
	}

	return &domain.AdCreative{
		ID:               "google-" + ad.CreativeID,
		Platform:         domain.AdPlatformGoogle,
		AdvertiserName:   ad.AdvertiserName,
		AdvertiserID:     ad.AdvertiserID,
		AdFormat:         format,
		FirstShown:       parseAdDate(ad.FirstShown),
		LastShown:        parseAdDate(ad.LastShown),
		Status:           "active",
		Headline:         ad.Title,
		BodyText:         ad.Description,
		LandingURL:       ad.TargetDomain,
		KeywordsDetected: detectKeywords(ad.Title+" "+ad.Description, keywords),
	}
}

// detectKeywords procura as keywords auditadas no texto do criativo
func detectKeywords(text string, keywords []string) []string {
	if text == "" || len(keywords) == 0 {
		return nil
	}

	textLower := strings.ToLower(text)
	var detected []string
	for _, kw := range keywords {
		if strings.Contains(textLower, strings.ToLower(kw)) {
			detected = append(detected, kw)
		}
	}
	return detected
}

func mergeDetected(existing, detected []string) []string {
	seen := make(map[string]bool, len(existing))
	merged := make([]string, 0, len(existing)+len(detected))
	for _, kw := range existing {
		if !seen[kw] {
			seen[kw] = true
			merged = append(merged, kw)
		}
	}
	for _, kw := range detected {
		if !seen[kw] {
			seen[kw] = true
			merged = append(merged, kw)
		}
	}
	return merged
}

// brandNameFromDomain extrai um nome pesquisável do domínio da marca
func brandNameFromDomain(brandDomain string) string {
	name := strings.ToLower(strings.TrimSpace(brandDomain))
	name = strings.TrimPrefix(name, "www.")
	if idx := strings.Index(name, "."); idx > 0 {
		name = name[:idx]
	}
	return strings.ReplaceAll(name, "-", " ")
}

func parseAdDate(value string) *time.Time {
	if value == "" {
		return nil
	}

	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return &parsed
		}
	}

	return nil
}

func boundRange(pair *adldomain.BoundPair) string {
	if pair.UpperBound == "" {
		return pair.LowerBound + "+"
	}
	return pair.LowerBound + "-" + pair.UpperBound
}
