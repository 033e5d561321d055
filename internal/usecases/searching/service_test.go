package searching

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/total-search-api/internal/domain"
)

type stubSource struct {
	keywords map[string]*domain.CrossPlatformKeyword
	err      error
}

func (s *stubSource) Keywords() (map[string]*domain.CrossPlatformKeyword, error) {
	return s.keywords, s.err
}

func newStubSource(keywords ...string) *stubSource {
	known := make(map[string]*domain.CrossPlatformKeyword, len(keywords))
	for _, kw := range keywords {
		known[kw] = domain.NewCrossPlatformKeyword(kw, map[domain.Platform]*domain.PlatformDatum{
			domain.PlatformGoogle: {Platform: domain.PlatformGoogle, Volume: 1000},
		})
	}
	return &stubSource{keywords: known}
}

func TestLookup(t *testing.T) {
	source := newStubSource(
		"protein powder",
		"protein shake recipes",
		"whey protein isolate",
		"pre workout",
	)
	service := NewService(source)

	tests := []struct {
		name          string
		query         string
		expectedMatch string
		expectedType  string
		expectedErr   error
	}{
		{
			name:          "correspondencia exata",
			query:         "protein powder",
			expectedMatch: "protein powder",
			expectedType:  MatchExact,
		},
		{
			name:          "exata ignora maiusculas e espacos",
			query:         "  Protein Powder ",
			expectedMatch: "protein powder",
			expectedType:  MatchExact,
		},
		{
			name:          "prefixo resolve para a primeira em ordem lexicografica",
			query:         "protein",
			expectedMatch: "protein powder",
			expectedType:  MatchPrefix,
		},
		{
			name:          "prefixo em termo de palavra unica",
			query:         "whey",
			expectedMatch: "whey protein isolate",
			expectedType:  MatchPrefix,
		},
		{
			name:          "substring no meio do termo",
			query:         "workout",
			expectedMatch: "pre workout",
			expectedType:  MatchSubstring,
		},
		{
			name:        "keyword desconhecida",
			query:       "creatine",
			expectedErr: ErrKeywordNotFound,
		},
		{
			name:        "consulta vazia",
			query:       "   ",
			expectedErr: ErrKeywordNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.Lookup(tt.query)

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.query, result.Query)
			assert.Equal(t, tt.expectedType, result.MatchType)
			assert.Equal(t, tt.expectedMatch, result.Keyword.Keyword)
		})
	}
}

func TestLookupDeterministicOrdering(t *testing.T) {
	// "gym aesthetic" e "gym bag essentials" compartilham o prefixo "gym";
	// o lookup deve sempre resolver para a primeira em ordem lexicográfica
	source := newStubSource("gym bag essentials", "gym aesthetic")
	service := NewService(source)

	for i := 0; i < 10; i++ {
		result, err := service.Lookup("gym")
		require.NoError(t, err)
		assert.Equal(t, "gym aesthetic", result.Keyword.Keyword)
	}
}

func TestLookupSourceError(t *testing.T) {
	source := &stubSource{err: errors.New("fonte indisponível")}
	service := NewService(source)

	result, err := service.Lookup("protein powder")
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestAvailableKeywords(t *testing.T) {
	source := newStubSource("whey protein isolate", "creatine monohydrate", "protein powder")
	service := NewService(source)

	t.Run("ordenadas e sem limite", func(t *testing.T) {
		names, err := service.AvailableKeywords(0)
		require.NoError(t, err)
		assert.Equal(t, []string{"creatine monohydrate", "protein powder", "whey protein isolate"}, names)
	})

	t.Run("limite aplicado", func(t *testing.T) {
		names, err := service.AvailableKeywords(2)
		require.NoError(t, err)
		assert.Len(t, names, 2)
	})
}

func TestSearch(t *testing.T) {
	source := newStubSource(
		"protein powder",
		"protein shake recipes",
		"whey protein isolate",
		"pre workout",
	)
	service := NewService(source)

	t.Run("substring em qualquer posicao", func(t *testing.T) {
		results, err := service.Search("protein")
		require.NoError(t, err)

		names := make([]string, 0, len(results))
		for _, kw := range results {
			names = append(names, kw.Keyword)
		}
		assert.Equal(t, []string{"protein powder", "protein shake recipes", "whey protein isolate"}, names)
	})

	t.Run("termo vazio retorna o indice completo", func(t *testing.T) {
		results, err := service.Search("")
		require.NoError(t, err)
		assert.Len(t, results, 4)
	})

	t.Run("sem correspondencia retorna lista vazia", func(t *testing.T) {
		results, err := service.Search("xyzzy")
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}
