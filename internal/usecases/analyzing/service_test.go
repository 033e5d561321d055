package analyzing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/total-search-api/internal/domain"
	"github.com/vfg2006/total-search-api/internal/usecases/analyzing"
)

func makeKeyword(keyword string, volumes map[domain.Platform]int) *domain.CrossPlatformKeyword {
	platforms := make(map[domain.Platform]*domain.PlatformDatum, len(volumes))
	for p, v := range volumes {
		platforms[p] = &domain.PlatformDatum{Platform: p, Volume: v, IsEstimated: true}
	}
	return domain.NewCrossPlatformKeyword(keyword, platforms)
}

func TestFindPlatformGaps(t *testing.T) {
	service := analyzing.NewService()

	tests := []struct {
		name          string
		keyword       *domain.CrossPlatformKeyword
		expectedGaps  int
		expectedScore float64
		expectedRatio float64
	}{
		{
			name: "gap social para busca acima do limiar",
			keyword: makeKeyword("reels protein recipe", map[domain.Platform]int{
				domain.PlatformInstagram: 340000,
				domain.PlatformGoogle:    2400,
			}),
			expectedGaps:  1,
			expectedScore: 90,
			expectedRatio: 141.7,
		},
		{
			name: "razao abaixo do limiar nao gera gap",
			keyword: makeKeyword("whey protein isolate", map[domain.Platform]int{
				domain.PlatformGoogle:    201000,
				domain.PlatformInstagram: 56000,
			}),
			expectedGaps: 0,
		},
		{
			name: "volume de origem abaixo do minimo nao gera gap",
			keyword: makeKeyword("niche term", map[domain.Platform]int{
				domain.PlatformTiktok: 900,
				domain.PlatformGoogle: 10,
			}),
			expectedGaps: 0,
		},
		{
			name: "cobertura zero recebe score maximo",
			keyword: makeKeyword("mob wife aesthetic", map[domain.Platform]int{
				domain.PlatformPinterest: 50000,
				domain.PlatformGoogle:    0,
			}),
			expectedGaps:  1,
			expectedScore: 95,
			expectedRatio: 999,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gaps := service.FindPlatformGaps(tt.keyword)

			require.Len(t, gaps, tt.expectedGaps)

			if tt.expectedGaps > 0 {
				assert.Equal(t, domain.OpportunityPlatformGap, gaps[0].OpportunityType)
				assert.Equal(t, tt.expectedScore, gaps[0].OpportunityScore)
				assert.InDelta(t, tt.expectedRatio, gaps[0].VolumeRatio, 0.1)
				assert.NotEmpty(t, gaps[0].Recommendation)
			}
		})
	}
}

func TestFindPlatformGapsOrdering(t *testing.T) {
	service := analyzing.NewService()

	// TikTok e Instagram fortes sem nenhuma cobertura de busca: múltiplos gaps
	keyword := makeKeyword("clean girl routine", map[domain.Platform]int{
		domain.PlatformTiktok:    500000,
		domain.PlatformInstagram: 120000,
		domain.PlatformGoogle:    0,
		domain.PlatformYoutube:   0,
	})

	gaps := service.FindPlatformGaps(keyword)
	require.NotEmpty(t, gaps)

	for i := 1; i < len(gaps); i++ {
		assert.GreaterOrEqual(t, gaps[i-1].OpportunityScore, gaps[i].OpportunityScore)
	}
}

func TestFindPlatformGapsMissingLowPlatform(t *testing.T) {
	service := analyzing.NewService()

	// Keyword consultada somente no TikTok: os destinos ausentes dos pares
	// estratégicos contam como volume zero
	keyword := makeKeyword("protein ice cream", map[domain.Platform]int{
		domain.PlatformTiktok: 450000,
	})

	gaps := service.FindPlatformGaps(keyword)
	require.Len(t, gaps, 2)

	lows := make([]domain.Platform, 0, len(gaps))
	for _, gap := range gaps {
		assert.Equal(t, domain.PlatformTiktok, gap.HighVolumePlatform)
		assert.Equal(t, 0, gap.LowVolume)
		assert.Equal(t, analyzing.ZeroCoverageRatio, gap.VolumeRatio)
		assert.Equal(t, analyzing.ZeroCoverageScore, gap.OpportunityScore)
		lows = append(lows, gap.LowVolumePlatform)
	}

	assert.ElementsMatch(t, []domain.Platform{domain.PlatformGoogle, domain.PlatformYoutube}, lows)
}

func TestAnalyzeKeyword(t *testing.T) {
	service := analyzing.NewService()

	t.Run("score combina volume e maior gap", func(t *testing.T) {
		keyword := makeKeyword("grwm protein shake", map[domain.Platform]int{
			domain.PlatformTiktok: 340000,
			domain.PlatformGoogle: 2400,
		})

		analysis := service.AnalyzeKeyword(keyword)

		// Volume total 342400 (+20) e maior gap com score 95 (+47.5):
		// o YouTube ausente conta como cobertura zero
		assert.Equal(t, 67.5, analysis.OpportunityScore)
		assert.Equal(t, 342400, analysis.TotalVolume)
		require.NotNil(t, analysis.PrimaryPlatform)
		assert.Equal(t, domain.PlatformTiktok, *analysis.PrimaryPlatform)
	})

	t.Run("bonus de tendencia crescente aplicado uma unica vez", func(t *testing.T) {
		growingTrend := []int{100, 110, 120, 130, 140, 150, 160, 170, 180, 190, 200, 210}
		keyword := domain.NewCrossPlatformKeyword("pilates wall workout", map[domain.Platform]*domain.PlatformDatum{
			domain.PlatformTiktok:  {Platform: domain.PlatformTiktok, Volume: 150000, Trend: growingTrend},
			domain.PlatformGoogle:  {Platform: domain.PlatformGoogle, Volume: 140000, Trend: growingTrend},
			domain.PlatformYoutube: {Platform: domain.PlatformYoutube, Volume: 130000},
		})

		analysis := service.AnalyzeKeyword(keyword)

		// Volume 420000 (+20), sem gaps, bonus de tendencia (+10)
		assert.Equal(t, 30.0, analysis.OpportunityScore)
	})

	t.Run("score limitado a 100", func(t *testing.T) {
		growingTrend := []int{100, 110, 120, 130, 140, 150, 160, 170, 180, 190, 200, 250}
		keyword := domain.NewCrossPlatformKeyword("viral protein ice cream", map[domain.Platform]*domain.PlatformDatum{
			domain.PlatformTiktok: {Platform: domain.PlatformTiktok, Volume: 2000000, Trend: growingTrend},
			domain.PlatformGoogle: {Platform: domain.PlatformGoogle, Volume: 0},
		})

		analysis := service.AnalyzeKeyword(keyword)

		// 30 + 47.5 + 10 = 87.5, abaixo do teto
		assert.Equal(t, 87.5, analysis.OpportunityScore)
		assert.LessOrEqual(t, analysis.OpportunityScore, 100.0)
	})

	t.Run("keyword sem volume tem score zero", func(t *testing.T) {
		keyword := makeKeyword("empty keyword", map[domain.Platform]int{
			domain.PlatformGoogle: 0,
		})

		analysis := service.AnalyzeKeyword(keyword)

		assert.Equal(t, 0.0, analysis.OpportunityScore)
		assert.Nil(t, analysis.PrimaryPlatform)
	})
}

func TestFindPlatformUnique(t *testing.T) {
	service := analyzing.NewService()

	tests := []struct {
		name             string
		keyword          *domain.CrossPlatformKeyword
		expectedNil      bool
		expectedPlatform domain.Platform
		expectedCategory string
	}{
		{
			name: "formato exclusivo do tiktok",
			keyword: makeKeyword("grwm morning routine", map[domain.Platform]int{
				domain.PlatformTiktok: 85000,
				domain.PlatformGoogle: 300,
			}),
			expectedPlatform: domain.PlatformTiktok,
			expectedCategory: "format_driven",
		},
		{
			name: "volume relevante em duas plataformas nao e exclusiva",
			keyword: makeKeyword("protein powder", map[domain.Platform]int{
				domain.PlatformGoogle: 500000,
				domain.PlatformTiktok: 150000,
			}),
			expectedNil: true,
		},
		{
			name: "sem padrao conhecido cai em unknown",
			keyword: makeKeyword("xyzzy supplement", map[domain.Platform]int{
				domain.PlatformAmazon: 12000,
			}),
			expectedPlatform: domain.PlatformAmazon,
			expectedCategory: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unique := service.FindPlatformUnique(tt.keyword)

			if tt.expectedNil {
				assert.Nil(t, unique)
				return
			}

			require.NotNil(t, unique)
			assert.Equal(t, tt.expectedPlatform, unique.Platform)
			assert.Equal(t, tt.expectedCategory, unique.UniquenessCategory)
		})
	}
}

func TestAnalyzeBatch(t *testing.T) {
	service := analyzing.NewService()

	keywords := []*domain.CrossPlatformKeyword{
		makeKeyword("protein powder", map[domain.Platform]int{
			domain.PlatformGoogle: 500000,
			domain.PlatformTiktok: 150000,
		}),
		makeKeyword("grwm protein shake", map[domain.Platform]int{
			domain.PlatformTiktok: 340000,
			domain.PlatformGoogle: 2400,
		}),
		makeKeyword("gym aesthetic", map[domain.Platform]int{
			domain.PlatformPinterest: 340000,
		}),
	}

	report := service.AnalyzeBatch(keywords)

	assert.Equal(t, "protein powder", report.SeedKeyword)
	assert.Equal(t, 3, report.TotalKeywordsAnalyzed)
	assert.NotEmpty(t, report.PlatformGaps)
	assert.NotEmpty(t, report.AnalyzedAt)

	require.NotNil(t, report.Summary)
	assert.Equal(t, 1332400, report.Summary.TotalSearchVolumeAnalyzed)
	assert.Equal(t, len(report.PlatformGaps), report.Summary.GapOpportunitiesFound)
	assert.Greater(t, report.Summary.AverageOpportunityScore, 0.0)

	// "gym aesthetic" so tem volume no Pinterest, entra como exclusiva
	uniques := report.UniqueKeywords[domain.PlatformPinterest]
	require.Len(t, uniques, 1)
	assert.Equal(t, "gym aesthetic", uniques[0].Keyword)
}

func TestAnalyzeBatchTopGapTypes(t *testing.T) {
	service := analyzing.NewService()

	// Dois gaps tiktok -> youtube e um tiktok -> google
	keywords := []*domain.CrossPlatformKeyword{
		makeKeyword("grwm morning routine", map[domain.Platform]int{
			domain.PlatformTiktok:  85000,
			domain.PlatformGoogle:  300,
			domain.PlatformYoutube: 0,
		}),
		makeKeyword("pov gym transformation", map[domain.Platform]int{
			domain.PlatformTiktok:  50000,
			domain.PlatformGoogle:  40000,
			domain.PlatformYoutube: 0,
		}),
	}

	report := service.AnalyzeBatch(keywords)

	require.NotNil(t, report.Summary)
	expected := []domain.GapTypeCount{
		{Type: "tiktok -> youtube", Count: 2},
		{Type: "tiktok -> google", Count: 1},
	}
	assert.Equal(t, expected, report.Summary.TopGapTypes)
}

func TestAnalyzeBatchEmpty(t *testing.T) {
	service := analyzing.NewService()

	report := service.AnalyzeBatch(nil)

	assert.Equal(t, "", report.SeedKeyword)
	assert.Equal(t, 0, report.TotalKeywordsAnalyzed)
	assert.Empty(t, report.PlatformGaps)
	assert.Equal(t, 0.0, report.Summary.AverageOpportunityScore)
}
