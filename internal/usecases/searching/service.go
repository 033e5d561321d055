package searching

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/total-search-api/internal/domain"
)

// ErrKeywordNotFound indica que nenhum tier de busca encontrou a keyword
var ErrKeywordNotFound = errors.New("keyword não encontrada")

// Tipos de correspondência do lookup, do mais forte para o mais fraco
const (
	MatchExact     = "exact"
	MatchPrefix    = "prefix"
	MatchSubstring = "substring"
)

// LookupResult é o resultado de um lookup de keyword
type LookupResult struct {
	Query     string                       `json:"query"`
	MatchType string                       `json:"match_type"`
	Keyword   *domain.CrossPlatformKeyword `json:"keyword"`
}

// KeywordSource fornece o conjunto de keywords conhecidas, indexado pelo termo
// em minúsculas. Implementado pelas amostras embutidas e pelos snapshots
// persistidos.
type KeywordSource interface {
	Keywords() (map[string]*domain.CrossPlatformKeyword, error)
}

// Searcher resolve keywords por correspondência exata, por prefixo ou por
// substring, nessa ordem de prioridade.
type Searcher interface {
	Lookup(keyword string) (*LookupResult, error)
	Search(query string) ([]*domain.CrossPlatformKeyword, error)
	AvailableKeywords(limit int) ([]string, error)
}

type Service struct {
	source KeywordSource
}

func NewService(source KeywordSource) Searcher {
	return &Service{source: source}
}

// Lookup procura a keyword nos três tiers. Dentro de cada tier o empate é
// resolvido pela ordem lexicográfica, para que a mesma consulta retorne sempre
// o mesmo resultado.
func (s *Service) Lookup(keyword string) (*LookupResult, error) {
	known, err := s.source.Keywords()
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(keyword))
	if query == "" {
		return nil, ErrKeywordNotFound
	}

	if match, ok := known[query]; ok {
		return &LookupResult{Query: keyword, MatchType: MatchExact, Keyword: match}, nil
	}

	keys := sortedKeys(known)

	for _, key := range keys {
		if strings.HasPrefix(key, query) {
			logrus.WithFields(logrus.Fields{
				"query": keyword,
				"match": key,
			}).Debug("search: resolved keyword by prefix")
			return &LookupResult{Query: keyword, MatchType: MatchPrefix, Keyword: known[key]}, nil
		}
	}

	for _, key := range keys {
		if strings.Contains(key, query) {
			logrus.WithFields(logrus.Fields{
				"query": keyword,
				"match": key,
			}).Debug("search: resolved keyword by substring")
			return &LookupResult{Query: keyword, MatchType: MatchSubstring, Keyword: known[key]}, nil
		}
	}

	return nil, ErrKeywordNotFound
}

// Search retorna todas as keywords que contêm o termo informado, em ordem
// lexicográfica. Termo vazio retorna o índice completo.
func (s *Service) Search(query string) ([]*domain.CrossPlatformKeyword, error) {
	known, err := s.source.Keywords()
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))

	results := make([]*domain.CrossPlatformKeyword, 0, len(known))
	for _, key := range sortedKeys(known) {
		if q == "" || strings.Contains(key, q) {
			results = append(results, known[key])
		}
	}

	return results, nil
}

// AvailableKeywords retorna uma amostra ordenada das keywords conhecidas,
// usada na resposta de keyword não encontrada
func (s *Service) AvailableKeywords(limit int) ([]string, error) {
	known, err := s.source.Keywords()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(known))
	for _, kw := range known {
		names = append(names, kw.Keyword)
	}
	sort.Strings(names)

	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}

	return names, nil
}

func sortedKeys(known map[string]*domain.CrossPlatformKeyword) []string {
	keys := make([]string, 0, len(known))
	for key := range known {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
