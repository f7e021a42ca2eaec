package apiErrors

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-guard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Authentication codes
const (
	ErrInvalidToken          = "AUTH_006"
	ErrExpiredToken          = "AUTH_007"
	ErrInsufficientPrivilege = "AUTH_008"
)

// Validation codes
const (
	ErrInvalidRequest      = "VAL_001"
	ErrMissingRequiredData = "VAL_002"
	ErrInvalidFormat       = "VAL_003"
	ErrNotFound            = "VAL_004"
	ErrConflict            = "VAL_005"
	ErrMethodNotAllowed    = "VAL_006"
)

// Server codes
const (
	ErrInternalServer     = "SRV_001"
	ErrDatabaseOperation  = "SRV_002"
	ErrJobAlreadyRunning  = "SRV_003"
	ErrStorageUnavailable = "SRV_004"
)

var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrNotFound:              http.StatusNotFound,
	ErrConflict:              http.StatusConflict,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrJobAlreadyRunning:     http.StatusConflict,
	ErrStorageUnavailable:    http.StatusServiceUnavailable,
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// StatusFor returns the HTTP status bound to code, or 500 for unknown codes.
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	if err := json.NewEncoder(w).Encode(apiErr); err != nil {
		logrus.WithError(err).Error("Failed to encode error response")
	}
}

// WriteDomainError resolves err to a *domain.Error and writes it. Anything
// else is logged and reported as an internal error.
func WriteDomainError(w http.ResponseWriter, err error) {
	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		WriteError(w, domainErr.Code, domainErr.Error(), nil)
		return
	}

	logrus.WithError(err).Error("Unhandled error")
	WriteError(w, ErrInternalServer, "internal server error", nil)
}
