package metaclient

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-insights-pipeline/internal/domain"
)

// TokenResponse representa a resposta da API do Meta ao trocar um token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// TokenExchanger troca tokens pelo fluxo fb_exchange_token, obtendo um token de longa duração
type TokenExchanger struct {
	transport Transport
	appID     string
	appSecret string
	now       func() time.Time
}

func NewTokenExchanger(transport Transport, appID, appSecret string) *TokenExchanger {
	return &TokenExchanger{
		transport: transport,
		appID:     appID,
		appSecret: appSecret,
		now:       time.Now,
	}
}

func (e *TokenExchanger) Exchange(ctx context.Context, token *domain.Token) (*domain.Token, error) {
	if token == nil || token.AccessToken == "" {
		return nil, errors.New("token de acesso não pode ser vazio")
	}
	if e.appSecret == "" {
		return nil, errors.New("app secret do Meta não configurado")
	}

	params := url.Values{}
	params.Add("grant_type", "fb_exchange_token")
	params.Add("client_id", e.appID)
	params.Add("client_secret", e.appSecret)
	params.Add("fb_exchange_token", token.AccessToken)

	body, err := e.transport.Request(ctx, "/oauth/access_token", params)
	if err != nil {
		return nil, fmt.Errorf("erro ao obter token de longa duração: %w", err)
	}

	var tokenResp TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta: %w", err)
	}

	if tokenResp.AccessToken == "" {
		return nil, errors.New("token retornado pela API é vazio")
	}

	logrus.WithField("user_id", token.UserID).
		Infof("Token de longa duração obtido com sucesso. Expira em %s.", FormatDuration(tokenResp.ExpiresIn))

	return &domain.Token{
		UserID:      token.UserID,
		AppID:       token.AppID,
		AccessToken: tokenResp.AccessToken,
		ExpiresAt:   CalculateTokenExpiration(e.now(), tokenResp.ExpiresIn),
	}, nil
}

// FormatDuration formata a duração em segundos para um formato legível
func FormatDuration(seconds int64) string {
	duration := time.Duration(seconds) * time.Second
	days := duration / (24 * time.Hour)
	hours := (duration % (24 * time.Hour)) / time.Hour
	minutes := (duration % time.Hour) / time.Minute

	return fmt.Sprintf("%d dias, %d horas e %d minutos", days, hours, minutes)
}

// CalculateTokenExpiration converte expires_in em instante absoluto; zero significa token sem expiração
func CalculateTokenExpiration(now time.Time, expiresIn int64) time.Time {
	if expiresIn <= 0 {
		return time.Time{}
	}
	return now.Add(time.Duration(expiresIn) * time.Second)
}
