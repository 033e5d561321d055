package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/total-search-api/infrastructure/integrator/keywordtool"
	"github.com/vfg2006/total-search-api/internal/domain"
	"github.com/vfg2006/total-search-api/internal/usecases/analyzing"
	"github.com/vfg2006/total-search-api/internal/usecases/searching"
	"github.com/vfg2006/total-search-api/pkg/apiErrors"
)

// Limite de keywords por relatório de oportunidades
const maxAnalyzeKeywords = 20

// AnalyzeOpportunitiesRequest é o corpo da geração de relatório de oportunidades
type AnalyzeOpportunitiesRequest struct {
	Keywords  []string `json:"keywords"`
	Platforms []string `json:"platforms,omitempty"`
}

// AnalyzeOpportunities consulta o volume das keywords informadas e gera o
// relatório de oportunidades com gaps entre plataformas e keywords exclusivas
func AnalyzeOpportunities(volumeService keywordtool.Integrator, analyzer analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AnalyzeOpportunitiesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		keywords := cleanKeywords(req.Keywords)
		if len(keywords) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Pelo menos uma keyword é obrigatória", nil)
			return
		}

		if len(keywords) > maxAnalyzeKeywords {
			apiErrors.WriteError(w, apiErrors.ErrTooManyKeywords, "Limite de keywords por relatório excedido", map[string]any{
				"limit":    maxAnalyzeKeywords,
				"received": len(keywords),
			})
			return
		}

		platforms, err := parsePlatforms(req.Platforms)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPlatform, err.Error(), map[string]any{
				"supported": domain.AllPlatforms,
			})
			return
		}

		results, err := volumeService.SearchVolume(r.Context(), keywords, platforms)
		if err != nil {
			logrus.WithError(err).Error("opportunities: erro ao consultar volume de busca")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar volume de busca", nil)
			return
		}

		report := analyzer.AnalyzeBatch(results)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetKeywordAnalysis resolve uma keyword do índice e retorna sua análise
// individual com score de oportunidade, gaps e tendências
func GetKeywordAnalysis(searcher searching.Searcher, analyzer analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		keyword := httprouter.ParamsFromContext(r.Context()).ByName("keyword")
		if keyword == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Keyword não fornecida", nil)
			return
		}

		result, err := searcher.Lookup(keyword)
		if err != nil {
			if errors.Is(err, searching.ErrKeywordNotFound) {
				available, availErr := searcher.AvailableKeywords(10)
				if availErr != nil {
					logrus.Error(availErr)
				}
				apiErrors.WriteError(w, apiErrors.ErrKeywordNotFound, "Keyword não encontrada no índice", map[string]any{
					"query":     keyword,
					"available": available,
				})
				return
			}

			logrus.WithError(err).Error("opportunities: erro ao resolver keyword")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao resolver keyword", nil)
			return
		}

		analysis := analyzer.AnalyzeKeyword(result.Keyword)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"query":      result.Query,
			"match_type": result.MatchType,
			"analysis":   analysis,
		}); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
