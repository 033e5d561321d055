// Package demodata carrega as amostras embutidas usadas no modo demo, quando
// nenhuma credencial de integração externa está configurada.
package demodata

import (
	"strings"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/total-search-api/internal/domain"

	_ "embed"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:embed keywords_sample.json
var keywordsRaw []byte

//go:embed ads_sample.json
var adsRaw []byte

// Plataformas com volume preciso reportado pela fonte; as demais são estimadas
var precisePlatforms = map[domain.Platform]bool{
	domain.PlatformGoogle: true,
	domain.PlatformBing:   true,
}

type sampleKeywordFile struct {
	Country  string          `json:"country"`
	Keywords []sampleKeyword `json:"keywords"`
}

type sampleKeyword struct {
	Keyword   string                    `json:"keyword"`
	Platforms map[string]samplePlatform `json:"platforms"`
}

type samplePlatform struct {
	Volume      int      `json:"volume"`
	Trend       []int    `json:"trend"`
	CPC         *float64 `json:"cpc"`
	Competition *float64 `json:"competition"`
}

type sampleAdFile struct {
	Brands []sampleBrand `json:"brands"`
}

type sampleBrand struct {
	BrandName   string     `json:"brand_name"`
	BrandDomain string     `json:"brand_domain"`
	Ads         []sampleAd `json:"ads"`
}

type sampleAd struct {
	ID               string   `json:"id"`
	Platform         string   `json:"platform"`
	AdvertiserName   string   `json:"advertiser_name"`
	AdvertiserID     string   `json:"advertiser_id"`
	AdFormat         string   `json:"ad_format"`
	FirstShown       *string  `json:"first_shown"`
	LastShown        *string  `json:"last_shown"`
	Status           string   `json:"status"`
	Headline         string   `json:"headline"`
	BodyText         string   `json:"body_text"`
	LandingURL       string   `json:"landing_url"`
	ImpressionsRange string   `json:"impressions_range"`
	SpendRange       string   `json:"spend_range"`
	TargetCountries  []string `json:"target_countries"`
	KeywordsDetected []string `json:"keywords_detected"`
}

// Store expõe as amostras embutidas já convertidas para o modelo de domínio.
// O carregamento acontece uma única vez, na primeira leitura.
type Store struct {
	loadKeywordsOnce sync.Once
	keywords         map[string]*domain.CrossPlatformKeyword
	keywordsErr      error

	loadBrandsOnce sync.Once
	brands         map[string]*domain.BrandAdLibrary
	brandsErr      error
}

func NewStore() *Store {
	return &Store{}
}

// Keywords retorna as keywords de amostra indexadas pelo termo em minúsculas
func (s *Store) Keywords() (map[string]*domain.CrossPlatformKeyword, error) {
	s.loadKeywordsOnce.Do(func() {
		var file sampleKeywordFile
		if err := json.Unmarshal(keywordsRaw, &file); err != nil {
			s.keywordsErr = errors.Wrap(err, "falha ao carregar as keywords de amostra")
			return
		}

		s.keywords = make(map[string]*domain.CrossPlatformKeyword, len(file.Keywords))
		for _, entry := range file.Keywords {
			platforms := make(map[domain.Platform]*domain.PlatformDatum, len(entry.Platforms))
			for name, data := range entry.Platforms {
				platform, ok := domain.ParsePlatform(name)
				if !ok {
					continue
				}

				platforms[platform] = &domain.PlatformDatum{
					Platform:    platform,
					Volume:      data.Volume,
					Trend:       data.Trend,
					CPC:         data.CPC,
					Competition: data.Competition,
					IsEstimated: !precisePlatforms[platform],
				}
			}

			key := strings.ToLower(entry.Keyword)
			s.keywords[key] = domain.NewCrossPlatformKeyword(entry.Keyword, platforms)
		}
	})

	return s.keywords, s.keywordsErr
}

// Brand retorna a biblioteca de anúncios de amostra para o domínio informado,
// ou nil quando a marca não está na amostra
func (s *Store) Brand(brandDomain string) (*domain.BrandAdLibrary, error) {
	s.loadBrandsOnce.Do(func() {
		var file sampleAdFile
		if err := json.Unmarshal(adsRaw, &file); err != nil {
			s.brandsErr = errors.Wrap(err, "falha ao carregar os anúncios de amostra")
			return
		}

		s.brands = make(map[string]*domain.BrandAdLibrary, len(file.Brands))
		for _, brand := range file.Brands {
			ads := make([]*domain.AdCreative, 0, len(brand.Ads))
			for _, ad := range brand.Ads {
				platform, ok := domain.ParseAdPlatform(ad.Platform)
				if !ok {
					continue
				}

				ads = append(ads, &domain.AdCreative{
					ID:               ad.ID,
					Platform:         platform,
					AdvertiserName:   ad.AdvertiserName,
					AdvertiserID:     ad.AdvertiserID,
					AdFormat:         domain.AdFormat(ad.AdFormat),
					FirstShown:       parseDate(ad.FirstShown),
					LastShown:        parseDate(ad.LastShown),
					Status:           ad.Status,
					Headline:         ad.Headline,
					BodyText:         ad.BodyText,
					LandingURL:       ad.LandingURL,
					ImpressionsRange: ad.ImpressionsRange,
					SpendRange:       ad.SpendRange,
					TargetCountries:  ad.TargetCountries,
					KeywordsDetected: ad.KeywordsDetected,
				})
			}

			s.brands[strings.ToLower(brand.BrandDomain)] = domain.NewBrandAdLibrary(brand.BrandName, brand.BrandDomain, ads)
		}
	})

	if s.brandsErr != nil {
		return nil, s.brandsErr
	}

	return s.brands[strings.ToLower(brandDomain)], nil
}

func parseDate(value *string) *time.Time {
	if value == nil {
		return nil
	}

	parsed, err := time.Parse(time.RFC3339, *value)
	if err != nil {
		return nil
	}

	return &parsed
}
