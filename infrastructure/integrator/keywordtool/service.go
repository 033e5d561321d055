package keywordtool

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/total-search-api/infrastructure/demodata"
	ktdomain "github.com/vfg2006/total-search-api/infrastructure/integrator/keywordtool/domain"
	"github.com/vfg2006/total-search-api/infrastructure/integrator/keywordtool/keywordtoolclient"
	"github.com/vfg2006/total-search-api/internal/config"
	"github.com/vfg2006/total-search-api/internal/domain"
)

// Plataformas com volume preciso do vendor; as demais retornam estimativas
var precisePlatforms = map[domain.Platform]bool{
	domain.PlatformGoogle: true,
	domain.PlatformBing:   true,
}

// Integrator busca dados de volume de keywords no vendor, ou nas amostras
// embutidas quando o modo demo está ativo.
type Integrator interface {
	SearchVolume(ctx context.Context, keywords []string, platforms []domain.Platform) ([]*domain.CrossPlatformKeyword, error)
	Suggestions(ctx context.Context, seed string, platform domain.Platform) ([]*domain.KeywordSuggestion, error)
}

type KeywordToolIntegrator struct {
	cfg    *config.Config
	Client keywordtoolclient.Client
	demo   *demodata.Store
}

func New(cfg *config.Config, client keywordtoolclient.Client, demo *demodata.Store) *KeywordToolIntegrator {
	return &KeywordToolIntegrator{
		cfg:    cfg,
		Client: client,
		demo:   demo,
	}
}

// SearchVolume agrega o volume de busca das keywords em todas as plataformas
// pedidas. Falhas em uma plataforma não derrubam a consulta inteira.
func (s *KeywordToolIntegrator) SearchVolume(ctx context.Context, keywords []string, platforms []domain.Platform) ([]*domain.CrossPlatformKeyword, error) {
	if len(platforms) == 0 {
		platforms = domain.DefaultPlatforms
	}

	if s.cfg.App.DemoMode {
		return s.demoSearchVolume(keywords, platforms)
	}

	byKeyword := make(map[string]map[domain.Platform]*domain.PlatformDatum, len(keywords))
	for _, kw := range keywords {
		byKeyword[strings.ToLower(kw)] = make(map[domain.Platform]*domain.PlatformDatum, len(platforms))
	}

	for _, platform := range platforms {
		if !s.Client.SupportsPlatform(platform) {
			logrus.WithField("platform", platform).Warn("keywords: platform not supported by vendor, skipping")
			continue
		}

		results, err := s.Client.GetSearchVolume(ctx, platform, keywords)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"platform": platform,
				"error":    err.Error(),
			}).Error("keywords: failed to get search volume from vendor")
			continue
		}

		for keyword, data := range results {
			entry, ok := byKeyword[strings.ToLower(keyword)]
			if !ok {
				continue
			}

			entry[platform] = &domain.PlatformDatum{
				Platform:    platform,
				Volume:      data.Vol,
				Trend:       ktdomain.TrendCounts(data.Monthly),
				CPC:         data.CPC,
				Competition: data.Competition,
				IsEstimated: !precisePlatforms[platform],
			}
		}
	}

	aggregated := make([]*domain.CrossPlatformKeyword, 0, len(keywords))
	for _, kw := range keywords {
		platformData := byKeyword[strings.ToLower(kw)]
		aggregated = append(aggregated, domain.NewCrossPlatformKeyword(kw, platformData))
	}

	logrus.WithFields(logrus.Fields{
		"keywords":  len(keywords),
		"platforms": len(platforms),
	}).Debug("keywords: successfully aggregated search volume")

	return aggregated, nil
}

// Suggestions busca sugestões de autocomplete para uma keyword semente
func (s *KeywordToolIntegrator) Suggestions(ctx context.Context, seed string, platform domain.Platform) ([]*domain.KeywordSuggestion, error) {
	if s.cfg.App.DemoMode {
		return s.demoSuggestions(seed, platform)
	}

	results, err := s.Client.GetSuggestions(ctx, platform, seed)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"seed":     seed,
			"platform": platform,
			"error":    err.Error(),
		}).Error("keywords: failed to get suggestions from vendor")
		return nil, err
	}

	suggestions := make([]*domain.KeywordSuggestion, 0, len(results))
	for _, data := range results {
		suggestions = append(suggestions, &domain.KeywordSuggestion{
			Keyword:     data.Keyword,
			Platform:    platform,
			Volume:      data.Vol,
			CPC:         data.CPC,
			Competition: data.Competition,
		})
	}

	return suggestions, nil
}

// demoSearchVolume responde a partir das amostras embutidas. Keywords fora da
// amostra voltam com volume zero em todas as plataformas pedidas.
func (s *KeywordToolIntegrator) demoSearchVolume(keywords []string, platforms []domain.Platform) ([]*domain.CrossPlatformKeyword, error) {
	samples, err := s.demo.Keywords()
	if err != nil {
		return nil, err
	}

	aggregated := make([]*domain.CrossPlatformKeyword, 0, len(keywords))
	for _, kw := range keywords {
		sample, ok := samples[strings.ToLower(kw)]
		if !ok {
			aggregated = append(aggregated, emptyKeyword(kw, platforms))
			continue
		}

		filtered := make(map[domain.Platform]*domain.PlatformDatum, len(platforms))
		for _, platform := range platforms {
			if data, ok := sample.Platforms[platform]; ok {
				filtered[platform] = data
			}
		}

		aggregated = append(aggregated, domain.NewCrossPlatformKeyword(sample.Keyword, filtered))
	}

	return aggregated, nil
}

// demoSuggestions deriva sugestões das amostras que contêm a semente
func (s *KeywordToolIntegrator) demoSuggestions(seed string, platform domain.Platform) ([]*domain.KeywordSuggestion, error) {
	samples, err := s.demo.Keywords()
	if err != nil {
		return nil, err
	}

	seedLower := strings.ToLower(seed)
	suggestions := make([]*domain.KeywordSuggestion, 0)
	for _, sample := range samples {
		if !strings.Contains(strings.ToLower(sample.Keyword), seedLower) {
			continue
		}

		data, ok := sample.Platforms[platform]
		if !ok {
			continue
		}

		volume := data.Volume
		suggestions = append(suggestions, &domain.KeywordSuggestion{
			Keyword:     sample.Keyword,
			Platform:    platform,
			Volume:      &volume,
			Trend:       data.Trend,
			CPC:         data.CPC,
			Competition: data.Competition,
		})
	}

	return suggestions, nil
}

func emptyKeyword(keyword string, platforms []domain.Platform) *domain.CrossPlatformKeyword {
	platformData := make(map[domain.Platform]*domain.PlatformDatum, len(platforms))
	for _, platform := range platforms {
		platformData[platform] = &domain.PlatformDatum{
			Platform:    platform,
			Volume:      0,
			IsEstimated: true,
		}
	}
	return domain.NewCrossPlatformKeyword(keyword, platformData)
}
