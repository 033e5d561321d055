package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/total-search-api/infrastructure/integrator/keywordtool"
	"github.com/vfg2006/total-search-api/infrastructure/repository"
	"github.com/vfg2006/total-search-api/internal/domain"
	"github.com/vfg2006/total-search-api/internal/usecases/searching"
	"github.com/vfg2006/total-search-api/pkg/apiErrors"
)

// Limite de keywords aceitas por requisição de volume
const maxVolumeKeywords = 100

// SearchVolumeRequest é o corpo da consulta de volume de busca
type SearchVolumeRequest struct {
	Keywords  []string `json:"keywords"`
	Platforms []string `json:"platforms,omitempty"`
}

// SearchVolumeResponse agrega os resultados por keyword
type SearchVolumeResponse struct {
	Keywords []*domain.CrossPlatformKeyword `json:"keywords"`
	Count    int                            `json:"count"`
}

// PlatformInfo descreve uma plataforma suportada pela API
type PlatformInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	IsEstimated bool   `json:"is_estimated"`
}

// GetSearchVolume consulta o volume de busca de um lote de keywords nas
// plataformas informadas. Sem filtro de plataformas usa o conjunto padrão.
func GetSearchVolume(service keywordtool.Integrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SearchVolumeRequest
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

		if len(keywords) > maxVolumeKeywords {
			apiErrors.WriteError(w, apiErrors.ErrTooManyKeywords, "Limite de keywords por requisição excedido", map[string]any{
				"limit":    maxVolumeKeywords,
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

		results, err := service.SearchVolume(r.Context(), keywords, platforms)
		if err != nil {
			logrus.WithError(err).Error("keywords: erro ao consultar volume de busca")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar volume de busca", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(SearchVolumeResponse{
			Keywords: results,
			Count:    len(results),
		}); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// LookupKeyword resolve uma keyword do índice por correspondência exata,
// prefixo ou substring, nessa ordem
func LookupKeyword(service searching.Searcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		keyword := httprouter.ParamsFromContext(r.Context()).ByName("keyword")
		if keyword == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Keyword não fornecida", nil)
			return
		}

		result, err := service.Lookup(keyword)
		if err != nil {
			if errors.Is(err, searching.ErrKeywordNotFound) {
				available, availErr := service.AvailableKeywords(10)
				if availErr != nil {
					logrus.Error(availErr)
				}
				apiErrors.WriteError(w, apiErrors.ErrKeywordNotFound, "Keyword não encontrada no índice", map[string]any{
					"query":     keyword,
					"available": available,
				})
				return
			}

			logrus.WithError(err).Error("keywords: erro ao resolver keyword")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao resolver keyword", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// SearchKeywords lista as keywords do índice que contêm o termo da query.
// Sem termo retorna o índice completo.
func SearchKeywords(service searching.Searcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")

		results, err := service.Search(query)
		if err != nil {
			logrus.WithError(err).Error("keywords: erro ao buscar keywords")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar keywords", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"query":    query,
			"keywords": results,
			"count":    len(results),
		}); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetKeywordSuggestions retorna sugestões de autocomplete para uma keyword
// semente em uma plataforma específica
func GetKeywordSuggestions(service keywordtool.Integrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		seed := httprouter.ParamsFromContext(r.Context()).ByName("keyword")
		if seed == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Keyword não fornecida", nil)
			return
		}

		platformParam := r.URL.Query().Get("platform")
		if platformParam == "" {
			platformParam = string(domain.PlatformGoogle)
		}

		platform, ok := domain.ParsePlatform(platformParam)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPlatform, "Plataforma desconhecida: "+platformParam, map[string]any{
				"supported": domain.AllPlatforms,
			})
			return
		}

		suggestions, err := service.Suggestions(r.Context(), seed, platform)
		if err != nil {
			logrus.WithError(err).Error("keywords: erro ao buscar sugestões")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao buscar sugestões", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"seed":        seed,
			"platform":    platform,
			"suggestions": suggestions,
			"count":       len(suggestions),
		}); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// ListPlatforms retorna as plataformas suportadas. Somente Google e Bing têm
// volumes diretos do vendor, as demais são estimativas.
func ListPlatforms() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		platforms := make([]PlatformInfo, 0, len(domain.AllPlatforms))
		for _, p := range domain.AllPlatforms {
			platforms = append(platforms, PlatformInfo{
				ID:          string(p),
				Name:        p.Name(),
				IsEstimated: p != domain.PlatformGoogle && p != domain.PlatformBing,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"platforms": platforms,
			"count":     len(platforms),
		}); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// TrackKeyword adiciona uma keyword à lista acompanhada pelo agendador de snapshots
func TrackKeyword(repo repository.KeywordSnapshotRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		keyword := httprouter.ParamsFromContext(r.Context()).ByName("keyword")
		if keyword == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Keyword não fornecida", nil)
			return
		}

		if err := repo.TrackKeyword(strings.ToLower(strings.TrimSpace(keyword))); err != nil {
			logrus.WithError(err).Error("keywords: erro ao acompanhar keyword")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acompanhar keyword", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{
			"keyword": keyword,
			"status":  "tracked",
		})
	}
}

// ListTrackedKeywords retorna as keywords acompanhadas pelo agendador
func ListTrackedKeywords(repo repository.KeywordSnapshotRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tracked, err := repo.ListTrackedKeywords()
		if err != nil {
			logrus.WithError(err).Error("keywords: erro ao listar keywords acompanhadas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar keywords acompanhadas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"keywords": tracked,
			"count":    len(tracked),
		}); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// cleanKeywords remove entradas vazias e espaços das keywords recebidas
func cleanKeywords(keywords []string) []string {
	cleaned := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw != "" {
			cleaned = append(cleaned, kw)
		}
	}
	return cleaned
}

// parsePlatforms valida os filtros de plataforma da requisição
func parsePlatforms(raw []string) ([]domain.Platform, error) {
	platforms := make([]domain.Platform, 0, len(raw))
	for _, s := range raw {
		platform, ok := domain.ParsePlatform(s)
		if !ok {
			return nil, errors.Errorf("plataforma desconhecida: %s", s)
		}
		platforms = append(platforms, platform)
	}
	return platforms, nil
}
