package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-insights-pipeline/internal/domain"
)

func TestService_IssueAndValidate(t *testing.T) {
	service := NewService("segredo")

	token, err := service.IssueToken("u1", "app", domain.RoleAdmin, time.Hour)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "app", claims.AppID)
	assert.True(t, claims.IsAdmin())
}

func TestService_ValidateToken(t *testing.T) {
	issuedAt := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		token    func(t *testing.T) string
		expected error
	}{
		{
			name: "token expirado",
			token: func(t *testing.T) string {
				issuer := NewService("segredo")
				issuer.now = func() time.Time { return issuedAt.Add(-2 * time.Hour) }
				token, err := issuer.IssueToken("u1", "app", domain.RoleOperator, time.Hour)
				require.NoError(t, err)
				return token
			},
			expected: ErrExpiredToken,
		},
		{
			name: "assinado com outro segredo",
			token: func(t *testing.T) string {
				token, err := NewService("outro").IssueToken("u1", "app", domain.RoleOperator, 0)
				require.NoError(t, err)
				return token
			},
			expected: ErrInvalidToken,
		},
		{
			name: "emissor diferente",
			token: func(t *testing.T) string {
				claims := domain.Claims{UserID: "u1", Role: domain.RoleAdmin, RegisteredClaims: jwt.RegisteredClaims{Issuer: "outro"}}
				token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("segredo"))
				require.NoError(t, err)
				return token
			},
			expected: ErrInvalidToken,
		},
		{
			name:     "lixo",
			token:    func(t *testing.T) string { return "abc.def.ghi" },
			expected: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewService("segredo")
			service.now = func() time.Time { return issuedAt }

			_, err := service.ValidateToken(tt.token(t))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expected)
			assert.True(t, IsAuthorizationError(err))
		})
	}
}

func TestService_IssueTokenValidation(t *testing.T) {
	service := NewService("segredo")

	_, err := service.IssueToken("", "app", domain.RoleAdmin, 0)
	assert.ErrorIs(t, err, ErrMissingRequiredData)

	_, err = service.IssueToken("u1", "app", "root", 0)
	assert.Error(t, err)
}
