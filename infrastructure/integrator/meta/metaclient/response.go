package metaclient

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-insights-pipeline/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-insights-pipeline/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxErrorBody = 512

// Response é o envelope padrão das listagens do Graph
type Response struct {
	Data   []jsoniter.RawMessage `json:"data"`
	Paging *metadomain.Paging    `json:"paging,omitempty"`
}

func (r *Response) HasNext() bool {
	return r != nil && r.Paging.HasNext()
}

// ParseErrorResponse tenta parsear um erro da API do Meta
func ParseErrorResponse(body []byte) (*metadomain.ErrorResponse, error) {
	var errorResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err != nil {
		return nil, err
	}
	return &errorResp, nil
}

// HandleResponse lê o corpo e converte respostas de erro na taxonomia de domain
func HandleResponse(path string, resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransientRemoteError{
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    "erro ao ler resposta",
			Err:        err,
		}
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	return nil, classifyError(path, resp.StatusCode, body)
}

func classifyError(path string, statusCode int, body []byte) error {
	errorResp, parseErr := ParseErrorResponse(body)
	if parseErr != nil || errorResp.Empty() {
		return classifyRawError(path, statusCode, truncate(string(body)))
	}

	details := errorResp.Error
	logrus.WithFields(logrus.Fields{
		"path":       path,
		"status":     statusCode,
		"code":       details.Code,
		"subcode":    details.ErrorSubcode,
		"fbtrace_id": details.FBTraceID,
	}).Debug("Erro retornado pela API do Meta")

	switch {
	case errorResp.IsAuthorization() || statusCode == http.StatusUnauthorized:
		return &domain.AuthorizationError{
			Path:    path,
			Code:    details.Code,
			Subcode: details.ErrorSubcode,
			Message: details.Message,
		}
	case errorResp.IsTransient() || isTransientStatus(statusCode):
		return &domain.TransientRemoteError{
			Path:       path,
			StatusCode: statusCode,
			Code:       details.Code,
			Message:    details.Message,
		}
	default:
		return &domain.RemoteError{
			Path:       path,
			StatusCode: statusCode,
			Code:       details.Code,
			Subcode:    details.ErrorSubcode,
			Message:    details.Message,
		}
	}
}

// classifyRawError trata corpos que não seguem o formato de erro do Graph (proxies, HTML, etc.)
func classifyRawError(path string, statusCode int, body string) error {
	switch {
	case statusCode == http.StatusUnauthorized || containsTokenExpirationMessage(body):
		return &domain.AuthorizationError{Path: path, Message: body}
	case isTransientStatus(statusCode):
		return &domain.TransientRemoteError{Path: path, StatusCode: statusCode, Message: body}
	default:
		return &domain.RemoteError{Path: path, StatusCode: statusCode, Message: body}
	}
}

func isTransientStatus(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= http.StatusInternalServerError
}

// containsTokenExpirationMessage verifica se a mensagem contém indicação de token expirado
func containsTokenExpirationMessage(message string) bool {
	return strings.Contains(message, "Error validating access token") ||
		strings.Contains(message, "Session has expired") ||
		strings.Contains(message, "The session has been invalidated")
}

func truncate(body string) string {
	if len(body) <= maxErrorBody {
		return body
	}
	return fmt.Sprintf("%s... (%d bytes)", body[:maxErrorBody], len(body))
}
