package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

// Claims são as informações do usuário carregadas no JWT da API
type Claims struct {
	UserID string `json:"user_id"`
	AppID  string `json:"app_id,omitempty"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) IsAdmin() bool {
	return c != nil && c.Role == RoleAdmin
}
