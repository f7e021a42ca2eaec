package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/budget-guard-api/internal/domain"
	"github.com/vfg2006/budget-guard-api/internal/usecases/authenticating"
	"github.com/vfg2006/budget-guard-api/pkg/apiErrors"
	"github.com/vfg2006/budget-guard-api/pkg/middleware"
)

type IssueTokenRequest struct {
	OperatorName string              `json:"operator_name"`
	Role         domain.OperatorRole `json:"role"`
}

// IssueToken lets an admin mint a token for another operator.
func IssueToken(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req IssueTokenRequest
		if !decodeBody(w, r, &req) {
			return
		}

		token, err := service.IssueToken(req.OperatorName, req.Role)
		if err != nil {
			var authErr *authenticating.AuthError
			if errors.As(err, &authErr) {
				apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to issue token", nil)
			return
		}

		writeJSON(w, http.StatusCreated, map[string]string{
			"token": token,
		})
	}
}

// GetMe returns the claims of the calling operator.
func GetMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.OperatorFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "operator not authenticated", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"operator_name": claims.OperatorName,
			"role":          claims.Role,
		})
	}
}
