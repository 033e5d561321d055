package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/total-search-api/internal/domain"
	"github.com/vfg2006/total-search-api/internal/usecases/authenticating"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

func AuthMiddleware(authService authenticating.Authenticator, demoMode bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/v1/login" || r.URL.Path == "/healthcheck" || r.URL.Path == "/v1/register" {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")

			// Em modo demo requisições sem token recebem um perfil de
			// administrador de demonstração
			if demoMode && authHeader == "" {
				ctx := context.WithValue(r.Context(), ContextKeyUser, demoClaims())
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			if authHeader == "" {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				http.Error(w, "Bearer token is required", http.StatusUnauthorized)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func demoClaims() *domain.Claims {
	return &domain.Claims{
		UserName:   "Demo",
		UserEmail:  "demo@localhost",
		UserActive: true,
		UserRoleID: domain.RoleAdmin,
	}
}
