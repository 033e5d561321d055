package handler

import (
	"net/http"

	"github.com/vfg2006/total-search-api/infrastructure/integrator/keywordtool"
	"github.com/vfg2006/total-search-api/infrastructure/repository"
	"github.com/vfg2006/total-search-api/internal/api/handler/router"
	"github.com/vfg2006/total-search-api/internal/usecases/analyzing"
	"github.com/vfg2006/total-search-api/internal/usecases/auditing"
	"github.com/vfg2006/total-search-api/internal/usecases/authenticating"
	"github.com/vfg2006/total-search-api/internal/usecases/searching"
	"github.com/vfg2006/total-search-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Keywords(volumeService keywordtool.Integrator, searcher searching.Searcher) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/keywords/volume",
			Method:      http.MethodPost,
			Handler:     GetSearchVolume(volumeService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/keywords",
			Method:      http.MethodGet,
			Handler:     SearchKeywords(searcher),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/keywords/:keyword",
			Method:      http.MethodGet,
			Handler:     LookupKeyword(searcher),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/keywords/:keyword/suggestions",
			Method:      http.MethodGet,
			Handler:     GetKeywordSuggestions(volumeService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/platforms",
			Method:      http.MethodGet,
			Handler:     ListPlatforms(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// TrackedKeywords retorna as rotas de acompanhamento de keywords pelo
// agendador. Registradas somente quando o banco de dados está habilitado.
func TrackedKeywords(repo repository.KeywordSnapshotRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/tracked-keywords/:keyword",
			Method:      http.MethodPost,
			Handler:     TrackKeyword(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/tracked-keywords",
			Method:      http.MethodGet,
			Handler:     ListTrackedKeywords(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Opportunities(volumeService keywordtool.Integrator, analyzer analyzing.Analyzer, searcher searching.Searcher) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/opportunities/analyze",
			Method:      http.MethodPost,
			Handler:     AnalyzeOpportunities(volumeService, analyzer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/keywords/:keyword/analysis",
			Method:      http.MethodGet,
			Handler:     GetKeywordAnalysis(searcher, analyzer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func BrandAudit(service auditing.Auditor) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/brands/audit",
			Method:      http.MethodPost,
			Handler:     AuditBrand(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
