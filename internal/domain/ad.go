package domain

import "time"

// AdPlatform identifica uma biblioteca de anúncios consultada
type AdPlatform string

const (
	AdPlatformMeta   AdPlatform = "meta"
	AdPlatformTiktok AdPlatform = "tiktok"
	AdPlatformGoogle AdPlatform = "google"
)

// AllAdPlatforms lista as bibliotecas de anúncios suportadas
var AllAdPlatforms = []AdPlatform{AdPlatformMeta, AdPlatformTiktok, AdPlatformGoogle}

// ParseAdPlatform valida uma string contra as bibliotecas de anúncios suportadas
func ParseAdPlatform(s string) (AdPlatform, bool) {
	p := AdPlatform(s)
	for _, known := range AllAdPlatforms {
		if p == known {
			return p, true
		}
	}
	return "", false
}

// AdFormat é o formato do criativo
type AdFormat string

const (
	AdFormatImage    AdFormat = "image"
	AdFormatVideo    AdFormat = "video"
	AdFormatText     AdFormat = "text"
	AdFormatCarousel AdFormat = "carousel"
)

// AdCreative é um criativo individual obtido de uma biblioteca de anúncios
type AdCreative struct {
	ID               string     `json:"id"`
	Platform         AdPlatform `json:"platform"`
	AdvertiserName   string     `json:"advertiser_name"`
	AdvertiserID     string     `json:"advertiser_id,omitempty"`
	AdFormat         AdFormat   `json:"ad_format"`
	FirstShown       *time.Time `json:"first_shown,omitempty"`
	LastShown        *time.Time `json:"last_shown,omitempty"`
	Status           string     `json:"status"`
	Headline         string     `json:"headline,omitempty"`
	BodyText         string     `json:"body_text,omitempty"`
	LandingURL       string     `json:"landing_url,omitempty"`
	ImpressionsRange string     `json:"impressions_range,omitempty"`
	SpendRange       string     `json:"spend_range,omitempty"`
	TargetCountries  []string   `json:"target_countries,omitempty"`
	KeywordsDetected []string   `json:"keywords_detected,omitempty"`
}

// BrandAdLibrary reúne os anúncios de uma marca em todas as plataformas.
// Os campos agregados são calculados por NewBrandAdLibrary.
type BrandAdLibrary struct {
	BrandName        string        `json:"brand_name"`
	BrandDomain      string        `json:"brand_domain"`
	Ads              []*AdCreative `json:"ads"`
	TotalAds         int           `json:"total_ads"`
	PlatformsPresent []AdPlatform  `json:"platforms_present"`
	KeywordsInAds    []string      `json:"keywords_in_ads"`
	ActiveSince      *time.Time    `json:"active_since,omitempty"`
}

// NewBrandAdLibrary monta a biblioteca calculando os agregados: contagem,
// plataformas presentes, keywords detectadas e data do anúncio mais antigo.
func NewBrandAdLibrary(brandName, brandDomain string, ads []*AdCreative) *BrandAdLibrary {
	lib := &BrandAdLibrary{
		BrandName:   brandName,
		BrandDomain: brandDomain,
		Ads:         ads,
		TotalAds:    len(ads),
	}

	seenPlatforms := make(map[AdPlatform]bool)
	seenKeywords := make(map[string]bool)

	for _, ad := range ads {
		if !seenPlatforms[ad.Platform] {
			seenPlatforms[ad.Platform] = true
			lib.PlatformsPresent = append(lib.PlatformsPresent, ad.Platform)
		}

		for _, kw := range ad.KeywordsDetected {
			if !seenKeywords[kw] {
				seenKeywords[kw] = true
				lib.KeywordsInAds = append(lib.KeywordsInAds, kw)
			}
		}

		if ad.FirstShown != nil && (lib.ActiveSince == nil || ad.FirstShown.Before(*lib.ActiveSince)) {
			lib.ActiveSince = ad.FirstShown
		}
	}

	return lib
}

// AdsOn retorna os anúncios da marca na plataforma informada
func (lib *BrandAdLibrary) AdsOn(platform AdPlatform) []*AdCreative {
	var ads []*AdCreative
	for _, ad := range lib.Ads {
		if ad.Platform == platform {
			ads = append(ads, ad)
		}
	}
	return ads
}

// HasAdsOn indica se a marca possui ao menos um anúncio na plataforma
func (lib *BrandAdLibrary) HasAdsOn(platform AdPlatform) bool {
	for _, ad := range lib.Ads {
		if ad.Platform == platform {
			return true
		}
	}
	return false
}
