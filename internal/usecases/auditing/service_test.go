package auditing

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	adlibrarymocks "github.com/vfg2006/total-search-api/infrastructure/integrator/adlibrary/mocks"
	keywordtoolmocks "github.com/vfg2006/total-search-api/infrastructure/integrator/keywordtool/mocks"
	"github.com/vfg2006/total-search-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func makeKeyword(keyword string, volumes map[domain.Platform]int) *domain.CrossPlatformKeyword {
	platforms := make(map[domain.Platform]*domain.PlatformDatum, len(volumes))
	for p, v := range volumes {
		platforms[p] = &domain.PlatformDatum{Platform: p, Volume: v, IsEstimated: true}
	}
	return domain.NewCrossPlatformKeyword(keyword, platforms)
}

func makeLibrary(brandDomain string, ads []*domain.AdCreative) *domain.BrandAdLibrary {
	return domain.NewBrandAdLibrary("Optimum Nutrition", brandDomain, ads)
}

func TestAuditBrand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	firstShown := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name             string
		brandDomain      string
		keywords         []string
		library          *domain.BrandAdLibrary
		volumes          []*domain.CrossPlatformKeyword
		expectedGapScore float64
		expectedCovered  int
		expectedUncov    []string
	}{
		{
			name:        "marca com meta e google mas sem tiktok",
			brandDomain: "optimumnutrition.com",
			keywords:    []string{"whey protein isolate"},
			library: makeLibrary("optimumnutrition.com", []*domain.AdCreative{
				{
					ID:               "meta-1",
					Platform:         domain.AdPlatformMeta,
					AdvertiserName:   "Optimum Nutrition",
					FirstShown:       &firstShown,
					KeywordsDetected: []string{"whey protein isolate"},
				},
				{
					ID:             "google-1",
					Platform:       domain.AdPlatformGoogle,
					AdvertiserName: "Optimum Nutrition",
				},
			}),
			volumes: []*domain.CrossPlatformKeyword{
				makeKeyword("whey protein isolate", map[domain.Platform]int{
					domain.PlatformGoogle:    201000,
					domain.PlatformTiktok:    56000,
					domain.PlatformInstagram: 14800,
				}),
			},
			// 56000 de 271800 sem cobertura
			expectedGapScore: 20.6,
			expectedCovered:  215800,
			expectedUncov:    []string{"TikTok"},
		},
		{
			name:        "marca sem nenhum anuncio",
			brandDomain: "unknownbrand.com",
			keywords:    []string{"protein powder"},
			library:     makeLibrary("unknownbrand.com", nil),
			volumes: []*domain.CrossPlatformKeyword{
				makeKeyword("protein powder", map[domain.Platform]int{
					domain.PlatformGoogle:    500000,
					domain.PlatformTiktok:    150000,
					domain.PlatformInstagram: 60500,
				}),
			},
			expectedGapScore: 100,
			expectedCovered:  0,
			expectedUncov:    []string{"TikTok", "Instagram", "Google"},
		},
		{
			name:        "keyword sem demanda nao gera gap",
			brandDomain: "optimumnutrition.com",
			keywords:    []string{"obscure term"},
			library:     makeLibrary("optimumnutrition.com", nil),
			volumes: []*domain.CrossPlatformKeyword{
				makeKeyword("obscure term", map[domain.Platform]int{
					domain.PlatformGoogle:    0,
					domain.PlatformTiktok:    0,
					domain.PlatformInstagram: 0,
				}),
			},
			expectedGapScore: 0,
			expectedCovered:  0,
			expectedUncov:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockKeywords := keywordtoolmocks.NewMockIntegrator(ctrl)
			mockAdLib := adlibrarymocks.NewMockIntegrator(ctrl)

			mockAdLib.EXPECT().
				GetAdsByDomain(gomock.Any(), tt.brandDomain, tt.keywords).
				Return(tt.library, nil)

			mockKeywords.EXPECT().
				SearchVolume(gomock.Any(), tt.keywords, AuditPlatforms).
				Return(tt.volumes, nil)

			service := NewService(mockKeywords, mockAdLib)

			report, err := service.AuditBrand(context.Background(), tt.brandDomain, tt.keywords)
			require.NoError(t, err)

			require.Len(t, report.KeywordAudits, 1)
			audit := report.KeywordAudits[0]

			assert.Equal(t, tt.expectedGapScore, audit.GapScore)
			assert.Equal(t, tt.expectedCovered, audit.CoveredDemand)
			assert.ElementsMatch(t, tt.expectedUncov, audit.UncoveredPlatforms)
			assert.NotEmpty(t, audit.Recommendation)
		})
	}
}

func TestAuditBrandKeywordGapOnGoogle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKeywords := keywordtoolmocks.NewMockIntegrator(ctrl)
	mockAdLib := adlibrarymocks.NewMockIntegrator(ctrl)

	// Marca anuncia no Google, mas nenhum criativo menciona a keyword auditada
	library := makeLibrary("optimumnutrition.com", []*domain.AdCreative{
		{
			ID:               "google-1",
			Platform:         domain.AdPlatformGoogle,
			KeywordsDetected: []string{"creatine monohydrate"},
		},
	})

	mockAdLib.EXPECT().
		GetAdsByDomain(gomock.Any(), "optimumnutrition.com", []string{"clear whey"}).
		Return(library, nil)

	mockKeywords.EXPECT().
		SearchVolume(gomock.Any(), []string{"clear whey"}, AuditPlatforms).
		Return([]*domain.CrossPlatformKeyword{
			makeKeyword("clear whey", map[domain.Platform]int{
				domain.PlatformGoogle: 33100,
			}),
		}, nil)

	service := NewService(mockKeywords, mockAdLib)

	report, err := service.AuditBrand(context.Background(), "optimumnutrition.com", []string{"clear whey"})
	require.NoError(t, err)

	audit := report.KeywordAudits[0]
	assert.False(t, audit.Coverage[domain.CoverageKeywordInAds])
	assert.Contains(t, audit.UncoveredPlatforms, "Google (keyword gap)")
	// A demanda do Google conta como coberta, o gap é só de criativo,
	// mas a recomendação ainda aponta a plataforma descoberta
	assert.Equal(t, 0.0, audit.GapScore)
	assert.Contains(t, audit.Recommendation, "Google (keyword gap)")
	assert.NotContains(t, audit.Recommendation, "fully covered")
}

func TestAuditBrandKeywordOverlapBySubstring(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKeywords := keywordtoolmocks.NewMockIntegrator(ctrl)
	mockAdLib := adlibrarymocks.NewMockIntegrator(ctrl)

	// A sobreposição vale nas duas direções: "protein" detectado cobre
	// "protein powder" auditada, e "whey" auditada é coberta por
	// "whey protein isolate" detectada
	library := makeLibrary("optimumnutrition.com", []*domain.AdCreative{
		{
			ID:               "google-1",
			Platform:         domain.AdPlatformGoogle,
			KeywordsDetected: []string{"protein", "whey protein isolate"},
		},
	})

	keywords := []string{"protein powder", "whey"}

	mockAdLib.EXPECT().
		GetAdsByDomain(gomock.Any(), "optimumnutrition.com", keywords).
		Return(library, nil)

	mockKeywords.EXPECT().
		SearchVolume(gomock.Any(), keywords, AuditPlatforms).
		Return([]*domain.CrossPlatformKeyword{
			makeKeyword("protein powder", map[domain.Platform]int{
				domain.PlatformGoogle: 500000,
			}),
			makeKeyword("whey", map[domain.Platform]int{
				domain.PlatformGoogle: 90500,
			}),
		}, nil)

	service := NewService(mockKeywords, mockAdLib)

	report, err := service.AuditBrand(context.Background(), "optimumnutrition.com", keywords)
	require.NoError(t, err)
	require.Len(t, report.KeywordAudits, 2)

	for _, audit := range report.KeywordAudits {
		assert.True(t, audit.Coverage[domain.CoverageKeywordInAds], audit.Keyword)
		assert.Empty(t, audit.UncoveredPlatforms, audit.Keyword)
		assert.Equal(t, 0.0, audit.GapScore, audit.Keyword)
	}
}

func TestAuditBrandSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKeywords := keywordtoolmocks.NewMockIntegrator(ctrl)
	mockAdLib := adlibrarymocks.NewMockIntegrator(ctrl)

	library := makeLibrary("optimumnutrition.com", []*domain.AdCreative{
		{ID: "meta-1", Platform: domain.AdPlatformMeta},
		{ID: "meta-2", Platform: domain.AdPlatformMeta},
		{ID: "google-1", Platform: domain.AdPlatformGoogle},
	})

	keywords := []string{"protein powder", "pre workout"}

	mockAdLib.EXPECT().
		GetAdsByDomain(gomock.Any(), "optimumnutrition.com", keywords).
		Return(library, nil)

	mockKeywords.EXPECT().
		SearchVolume(gomock.Any(), keywords, AuditPlatforms).
		Return([]*domain.CrossPlatformKeyword{
			makeKeyword("protein powder", map[domain.Platform]int{
				domain.PlatformGoogle: 500000,
				domain.PlatformTiktok: 150000,
			}),
			makeKeyword("pre workout", map[domain.Platform]int{
				domain.PlatformGoogle: 301000,
				domain.PlatformTiktok: 165000,
			}),
		}, nil)

	service := NewService(mockKeywords, mockAdLib)

	report, err := service.AuditBrand(context.Background(), "optimumnutrition.com", keywords)
	require.NoError(t, err)

	summary := report.Summary
	require.NotNil(t, summary)

	assert.Equal(t, 2, summary.KeywordsAnalyzed)
	assert.Equal(t, 2, summary.AdsByPlatform[domain.AdPlatformMeta])
	assert.Equal(t, 1, summary.AdsByPlatform[domain.AdPlatformGoogle])
	assert.Equal(t, 0, summary.AdsByPlatform[domain.AdPlatformTiktok])
	assert.Equal(t, domain.AdPlatformActive, summary.CoverageStatus[domain.AdPlatformMeta])
	assert.Equal(t, domain.AdPlatformInactive, summary.CoverageStatus[domain.AdPlatformTiktok])
	assert.Equal(t, 801000, summary.TotalDemandByPlatform[domain.PlatformGoogle])
	assert.Equal(t, 315000, summary.TotalDemandByPlatform[domain.PlatformTiktok])

	require.NotNil(t, summary.TopDemandPlatform)
	assert.Equal(t, domain.PlatformGoogle, *summary.TopDemandPlatform)
}

func TestAuditBrandAdLibraryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKeywords := keywordtoolmocks.NewMockIntegrator(ctrl)
	mockAdLib := adlibrarymocks.NewMockIntegrator(ctrl)

	mockAdLib.EXPECT().
		GetAdsByDomain(gomock.Any(), "optimumnutrition.com", []string{"protein powder"}).
		Return(nil, errors.New("ad library unavailable"))

	service := NewService(mockKeywords, mockAdLib)

	report, err := service.AuditBrand(context.Background(), "optimumnutrition.com", []string{"protein powder"})
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestAuditBrandOrdering(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKeywords := keywordtoolmocks.NewMockIntegrator(ctrl)
	mockAdLib := adlibrarymocks.NewMockIntegrator(ctrl)

	// Cobertura só no Google, a keyword exclusiva do TikTok fica 100% descoberta
	library := makeLibrary("optimumnutrition.com", []*domain.AdCreative{
		{ID: "google-1", Platform: domain.AdPlatformGoogle, KeywordsDetected: []string{"whey protein isolate"}},
	})

	keywords := []string{"whey protein isolate", "grwm protein shake"}

	mockAdLib.EXPECT().
		GetAdsByDomain(gomock.Any(), "optimumnutrition.com", keywords).
		Return(library, nil)

	mockKeywords.EXPECT().
		SearchVolume(gomock.Any(), keywords, AuditPlatforms).
		Return([]*domain.CrossPlatformKeyword{
			makeKeyword("whey protein isolate", map[domain.Platform]int{
				domain.PlatformGoogle: 201000,
			}),
			makeKeyword("grwm protein shake", map[domain.Platform]int{
				domain.PlatformTiktok: 340000,
			}),
		}, nil)

	service := NewService(mockKeywords, mockAdLib)

	report, err := service.AuditBrand(context.Background(), "optimumnutrition.com", keywords)
	require.NoError(t, err)
	require.Len(t, report.KeywordAudits, 2)

	assert.Equal(t, "grwm protein shake", report.KeywordAudits[0].Keyword)
	assert.Equal(t, 100.0, report.KeywordAudits[0].GapScore)
	assert.Equal(t, 0.0, report.KeywordAudits[1].GapScore)
}
