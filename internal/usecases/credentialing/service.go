// Package credentialing entrega tokens do Meta ao pipeline, renovando os que estão perto de expirar.
package credentialing

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-insights-pipeline/infrastructure/repository"
	"github.com/vfg2006/ads-insights-pipeline/internal/domain"
)

type TokenExchanger interface {
	Exchange(ctx context.Context, token *domain.Token) (*domain.Token, error)
}

type Gate struct {
	tokens        repository.TokenRepository
	exchanger     TokenExchanger
	refreshWindow time.Duration
	now           func() time.Time
}

// NewGate cria o gate. Com exchanger nil os tokens são entregues como estão no banco.
func NewGate(tokens repository.TokenRepository, exchanger TokenExchanger, refreshWindow time.Duration) *Gate {
	return &Gate{
		tokens:        tokens,
		exchanger:     exchanger,
		refreshWindow: refreshWindow,
		now:           time.Now,
	}
}

func (g *Gate) FetchToken(ctx context.Context, userID, appID string) (*domain.Token, error) {
	token, err := g.tokens.FetchToken(ctx, userID, appID)
	if err != nil {
		return nil, err
	}

	if !g.needsRefresh(token) {
		return token, nil
	}

	logger := logrus.WithFields(logrus.Fields{
		"user_id":    userID,
		"app_id":     appID,
		"expires_at": token.ExpiresAt.Format(time.RFC3339),
	})
	logger.Info("Token expira em breve. Renovando proativamente...")

	refreshed, err := g.exchanger.Exchange(ctx, token)
	if err != nil {
		// O token atual ainda vale; quem usar depois da expiração recebe AuthorizationError
		logger.WithError(err).Warn("Falha ao renovar token, usando o token atual")
		return token, nil
	}

	if err := g.tokens.SaveToken(ctx, refreshed); err != nil {
		logger.WithError(err).Error("Token renovado mas não foi possível persistir")
	}

	return refreshed, nil
}

// ListActive lista os tokens ainda válidos de um app
func (g *Gate) ListActive(ctx context.Context, appID string) ([]*domain.Token, error) {
	return g.tokens.ListActive(ctx, appID, g.now())
}

// needsRefresh: só tokens ainda válidos podem ser trocados por um de longa duração
func (g *Gate) needsRefresh(token *domain.Token) bool {
	if g.exchanger == nil || token.ExpiresAt.IsZero() {
		return false
	}

	now := g.now()
	return token.Valid(now) && token.ExpiresAt.Sub(now) < g.refreshWindow
}
