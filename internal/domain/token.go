package domain

import "time"

// Token é a credencial de acesso de um usuário para um app do Meta.
// Pertence ao TokenGate externo; o pipeline nunca o altera.
type Token struct {
	UserID      string    `json:"user_id"`
	AppID       string    `json:"app_id"`
	AccessToken string    `json:"-"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Valid indica se o token está dentro da janela de validade. ExpiresAt zero significa sem expiração.
func (t *Token) Valid(now time.Time) bool {
	if t == nil || t.AccessToken == "" {
		return false
	}
	if t.ExpiresAt.IsZero() {
		return true
	}
	return now.Before(t.ExpiresAt)
}
