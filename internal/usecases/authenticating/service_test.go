package authenticating

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/budget-guard-api/internal/config"
	"github.com/vfg2006/budget-guard-api/internal/domain"
)

func TestService_IssueAndValidate(t *testing.T) {
	service := NewService(config.Auth{Secret: "test-secret", TokenTTL: time.Hour})

	token, err := service.IssueToken("ops", domain.RoleOperator)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.OperatorName)
	assert.Equal(t, domain.RoleOperator, claims.Role)
}

func TestService_ValidateToken(t *testing.T) {
	issuedAt := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		token   func(t *testing.T) string
		now     time.Time
		wantErr error
	}{
		{
			name: "Expired token",
			token: func(t *testing.T) string {
				s := NewService(config.Auth{Secret: "test-secret", TokenTTL: time.Hour})
				s.now = func() time.Time { return issuedAt }
				token, err := s.IssueToken("ops", domain.RoleAdmin)
				require.NoError(t, err)
				return token
			},
			now:     issuedAt.Add(2 * time.Hour),
			wantErr: ErrExpiredToken,
		},
		{
			name: "Signed with another secret",
			token: func(t *testing.T) string {
				s := NewService(config.Auth{Secret: "other-secret", TokenTTL: time.Hour})
				s.now = func() time.Time { return issuedAt }
				token, err := s.IssueToken("ops", domain.RoleAdmin)
				require.NoError(t, err)
				return token
			},
			now:     issuedAt,
			wantErr: ErrInvalidToken,
		},
		{
			name:    "Garbage",
			token:   func(t *testing.T) string { return "not-a-jwt" },
			now:     issuedAt,
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewService(config.Auth{Secret: "test-secret", TokenTTL: time.Hour})
			service.now = func() time.Time { return tt.now }

			claims, err := service.ValidateToken(tt.token(t))
			assert.Nil(t, claims)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestService_IssueTokenValidation(t *testing.T) {
	disabled := NewService(config.Auth{})
	assert.False(t, disabled.Enabled())
	_, err := disabled.IssueToken("ops", domain.RoleAdmin)
	assert.Error(t, err)

	service := NewService(config.Auth{Secret: "test-secret"})
	_, err = service.IssueToken("", domain.RoleAdmin)
	assert.True(t, errors.Is(err, ErrMissingRequiredData))

	_, err = service.IssueToken("ops", domain.OperatorRole(9))
	assert.True(t, errors.Is(err, ErrInvalidRole))
}
