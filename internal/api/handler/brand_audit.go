package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/total-search-api/internal/usecases/auditing"
	"github.com/vfg2006/total-search-api/pkg/apiErrors"
)

// Limite de keywords por auditoria de marca
const maxAuditKeywords = 20

// BrandAuditRequest é o corpo da auditoria de cobertura de anúncios de uma marca
type BrandAuditRequest struct {
	BrandDomain string   `json:"brand_domain"`
	Keywords    []string `json:"keywords"`
}

// AuditBrand cruza a demanda de busca das keywords informadas com os anúncios
// ativos da marca nas bibliotecas de anúncios e aponta plataformas descobertas
func AuditBrand(service auditing.Auditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BrandAuditRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		brandDomain := strings.ToLower(strings.TrimSpace(req.BrandDomain))
		if brandDomain == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Domínio da marca é obrigatório", nil)
			return
		}

		keywords := cleanKeywords(req.Keywords)
		if len(keywords) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Pelo menos uma keyword é obrigatória", nil)
			return
		}

		if len(keywords) > maxAuditKeywords {
			apiErrors.WriteError(w, apiErrors.ErrTooManyKeywords, "Limite de keywords por auditoria excedido", map[string]any{
				"limit":    maxAuditKeywords,
				"received": len(keywords),
			})
			return
		}

		report, err := service.AuditBrand(r.Context(), brandDomain, keywords)
		if err != nil {
			logrus.WithError(err).WithField("brand_domain", brandDomain).Error("audit: erro ao auditar marca")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao auditar cobertura da marca", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
