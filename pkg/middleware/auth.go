package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/vfg2006/budget-guard-api/internal/domain"
	"github.com/vfg2006/budget-guard-api/internal/usecases/authenticating"
	"github.com/vfg2006/budget-guard-api/pkg/apiErrors"
)

type contextKey string

const (
	ContextKeyOperator contextKey = "operator"
)

var publicPaths = map[string]bool{
	"/healthcheck": true,
}

// anonymousOperator stands in for every caller when token auth is disabled.
var anonymousOperator = &domain.Claims{
	OperatorName: "anonymous",
	Role:         domain.RoleAdmin,
}

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			if !authService.Enabled() {
				next.ServeHTTP(w, r.WithContext(WithOperator(r.Context(), anonymousOperator)))
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Authorization header is required", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Bearer token is required", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				code := apiErrors.ErrInvalidToken
				if errors.Is(err, authenticating.ErrExpiredToken) {
					code = apiErrors.ErrExpiredToken
				}
				apiErrors.WriteError(w, code, "Invalid token", nil)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithOperator(r.Context(), claims)))
		})
	}
}

func WithOperator(ctx context.Context, claims *domain.Claims) context.Context {
	return context.WithValue(ctx, ContextKeyOperator, claims)
}

func OperatorFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyOperator).(*domain.Claims)
	return claims, ok
}
