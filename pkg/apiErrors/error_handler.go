package apiErrors

import (
	"context"
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ads-insights-pipeline/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de autenticação (1000-1999)
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes
	ErrMetaTokenNotFound     = "AUTH_011" // Usuário sem token do Meta cadastrado
	ErrMetaAuthorization     = "AUTH_012" // Token do Meta expirado ou revogado

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrNotFound            = "VAL_004" // Rota inexistente
	ErrMethodNotAllowed    = "VAL_005" // Método não suportado pela rota

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
	ErrWarehouseSchema   = "SRV_005" // Tabela sem schema registrado
	ErrSyncRunning       = "SRV_006" // Sincronização já em andamento
)

var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrMetaTokenNotFound:     http.StatusNotFound,
	ErrMetaAuthorization:     http.StatusUnauthorized,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrNotFound:              http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrCommunication:         http.StatusServiceUnavailable,
	ErrWarehouseSchema:       http.StatusInternalServerError,
	ErrSyncRunning:           http.StatusConflict,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError traduz um erro do pipeline para o código de API correspondente.
// Para *domain.StageError os detalhes carregam a etapa e o id da execução.
func FromError(err error) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	apiErr := APIError{Code: codeFor(err), Message: err.Error()}

	var stageErr *domain.StageError
	if errors.As(err, &stageErr) {
		apiErr.Details = map[string]any{
			"run_id": stageErr.RunID,
			"stage":  stageErr.Stage,
		}
	}

	return apiErr
}

// WriteFromError escreve a resposta de erro de um erro do pipeline
func WriteFromError(w http.ResponseWriter, err error) {
	apiErr := FromError(err)
	WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
}

func codeFor(err error) string {
	var (
		fanoutErr  *domain.FanoutError
		summaryErr *domain.FanoutSummaryError
		remoteErr  *domain.RemoteError
	)

	switch {
	case errors.Is(err, domain.ErrTokenNotFound):
		return ErrMetaTokenNotFound
	case domain.IsAuthorization(err):
		return ErrMetaAuthorization
	case errors.Is(err, domain.ErrUnknownSource):
		return ErrInvalidRequest
	case errors.Is(err, domain.ErrUnknownSchema):
		return ErrWarehouseSchema
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return ErrCommunication
	case errors.Is(err, domain.ErrRemoteTransient),
		errors.As(err, &fanoutErr),
		errors.As(err, &summaryErr),
		errors.As(err, &remoteErr):
		return ErrExternalService
	default:
		return ErrInternalServer
	}
}
