package handler

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-insights-pipeline/internal/domain"
	"github.com/vfg2006/ads-insights-pipeline/internal/usecases/authenticating"
	"github.com/vfg2006/ads-insights-pipeline/pkg/apiErrors"
	"github.com/vfg2006/ads-insights-pipeline/pkg/middleware"
)

type IssueTokenRequest struct {
	UserID   string `json:"user_id"`
	AppID    string `json:"app_id"`
	Role     string `json:"role"`
	TTLHours int    `json:"ttl_hours"`
}

// GetMe retorna as claims do token usado na requisição
func GetMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"user_id": claims.UserID,
			"app_id":  claims.AppID,
			"role":    claims.Role,
		})
	}
}

// IssueToken emite um token da API para um operador
func IssueToken(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req IssueTokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", nil)
			return
		}

		if req.Role == "" {
			req.Role = domain.RoleOperator
		}

		token, err := service.IssueToken(req.UserID, req.AppID, req.Role, time.Duration(req.TTLHours)*time.Hour)
		if err != nil {
			logrus.WithError(errors.Wrap(err, "issue token")).Warn("Erro ao emitir token")

			var authErr *authenticating.AuthError
			if errors.As(err, &authErr) {
				apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao emitir token", nil)
			return
		}

		writeJSON(w, http.StatusCreated, map[string]string{
			"token": token,
		})
	}
}
