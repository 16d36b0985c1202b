package pipeline

import (
	"context"

	"github.com/vfg2006/ads-insights-pipeline/internal/domain"
	"github.com/vfg2006/ads-insights-pipeline/internal/usecases/insighting"
	"github.com/vfg2006/ads-insights-pipeline/internal/usecases/resolving"
)

// TokenGate entrega o token de um usuário para um app. Token inexistente: *domain.TokenNotFoundError.
type TokenGate interface {
	FetchToken(ctx context.Context, userID, appID string) (*domain.Token, error)
}

// Integrator é a API do Meta já autenticada com o token de uma execução
type Integrator interface {
	resolving.MetaAccounts
	insighting.MetaInsighter
}

// IntegratorFactory cria um Integrator preso ao token informado
type IntegratorFactory func(token *domain.Token) Integrator
