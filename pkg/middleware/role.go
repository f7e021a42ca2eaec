package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-guard-api/internal/domain"
	"github.com/vfg2006/budget-guard-api/pkg/apiErrors"
)

// RoleMiddleware restricts a route to the given operator roles.
func RoleMiddleware(allowedRoles []domain.OperatorRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := OperatorFromContext(r.Context())
			if !ok {
				logrus.Warning("Access attempt without authentication")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "operator not authenticated", nil)
				return
			}

			isAllowed := false
			for _, role := range allowedRoles {
				if claims.Role == role {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				logrus.WithFields(logrus.Fields{
					"operator": claims.OperatorName,
					"role":     claims.Role,
					"path":     r.URL.Path,
				}).Warning("Access denied")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "operator role cannot access this resource", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly guards destructive administration.
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]domain.OperatorRole{domain.RoleAdmin})
}

// AdminOrOperator guards writes and manual enforcement runs.
func AdminOrOperator() func(http.Handler) http.Handler {
	return RoleMiddleware([]domain.OperatorRole{domain.RoleAdmin, domain.RoleOperator})
}

func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]domain.OperatorRole{domain.RoleAdmin, domain.RoleOperator, domain.RoleViewer})
}
