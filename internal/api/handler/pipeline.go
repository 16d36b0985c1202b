package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-insights-pipeline/internal/domain"
	"github.com/vfg2006/ads-insights-pipeline/pkg/apiErrors"
	"github.com/vfg2006/ads-insights-pipeline/pkg/log"
	"github.com/vfg2006/ads-insights-pipeline/pkg/middleware"
)

// Defaults completa as requisições que não informam app ou origem
type Defaults struct {
	AppID  string
	Source domain.AccountSource
}

type RunPipelineRequest struct {
	UserID string `json:"user_id"`
	AppID  string `json:"app_id"`
	Source string `json:"source"`
}

// RunPipeline executa o pipeline de forma síncrona e devolve o resumo da execução.
// Só administradores podem executar para outro usuário.
func RunPipeline(service PipelineService, defaults Defaults) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req RunPipelineRequest
		if r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", nil)
				return
			}
		}

		userID := claims.UserID
		if req.UserID != "" && req.UserID != claims.UserID {
			if !claims.IsAdmin() {
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar para outro usuário", nil)
				return
			}
			userID = req.UserID
		}

		source := defaults.Source
		if req.Source != "" {
			parsed, err := domain.ParseAccountSource(req.Source)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
				return
			}
			source = parsed
		}

		appID := resolveAppID(req.AppID, claims, defaults)

		logger := log.ForContext(r.Context()).WithFields(log.Fields{"user_id": userID, "app_id": appID})

		summary, err := service.Run(r.Context(), userID, appID, source)
		if err != nil {
			logger.WithError(err).Error("Execução do pipeline falhou")

			apiErr := apiErrors.FromError(err)
			if summary != nil {
				apiErr.Details = partialDetails(apiErr.Details, summary)
			}
			apiErrors.WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

// ListAccounts devolve as contas pessoais e de business do usuário autenticado
func ListAccounts(service PipelineService, defaults Defaults) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		appID := resolveAppID(r.URL.Query().Get("app_id"), claims, defaults)

		accounts, err := service.ListAccounts(r.Context(), claims.UserID, appID)
		if err != nil {
			log.ForContext(r.Context()).WithError(errors.Wrap(err, "list accounts")).Error("Erro ao listar contas")
			apiErrors.WriteFromError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"data":  accounts,
			"total": len(accounts),
		})
	}
}

func resolveAppID(requested string, claims *domain.Claims, defaults Defaults) string {
	switch {
	case requested != "":
		return requested
	case claims.AppID != "":
		return claims.AppID
	default:
		return defaults.AppID
	}
}

func partialDetails(details any, summary *domain.RunSummary) map[string]any {
	merged := map[string]any{"summary": summary}
	if existing, ok := details.(map[string]any); ok {
		for k, v := range existing {
			merged[k] = v
		}
	}
	return merged
}
