package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Erros sentinela para uso com errors.Is
var (
	ErrTokenExpired    = errors.New("token expired")
	ErrTokenNotFound   = errors.New("token not found")
	ErrUnknownSource   = errors.New("unknown account source")
	ErrUnknownSchema   = errors.New("unknown warehouse schema")
	ErrRemoteTransient = errors.New("transient remote error")
)

// TransientRemoteError é uma falha temporária da API remota (rede, rate limit, 5xx).
// É a única categoria repetida pelo cliente.
type TransientRemoteError struct {
	Path       string
	StatusCode int
	Code       int
	Message    string
	Err        error
}

func (e *TransientRemoteError) Error() string {
	msg := fmt.Sprintf("transient remote error on %s", e.Path)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d", e.StatusCode)
		if e.Code != 0 {
			msg += fmt.Sprintf(", code %d", e.Code)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *TransientRemoteError) Unwrap() error {
	return e.Err
}

func (e *TransientRemoteError) Is(target error) bool {
	return target == ErrRemoteTransient
}

func (e *TransientRemoteError) IsRetryable() bool {
	return true
}

// AuthorizationError indica token inválido ou expirado. Nunca é repetido pelo cliente:
// quem chama deve obter um token novo no TokenGate.
type AuthorizationError struct {
	Path    string
	Code    int
	Subcode int
	Message string
	Err     error
}

func (e *AuthorizationError) Error() string {
	msg := "authorization failed"
	if e.Path != "" {
		msg += " on " + e.Path
	}
	if e.Code != 0 {
		msg += fmt.Sprintf(" (code %d, subcode %d)", e.Code, e.Subcode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *AuthorizationError) Unwrap() error {
	return e.Err
}

func (e *AuthorizationError) IsRetryable() bool {
	return false
}

// RemoteError é uma falha permanente da API remota (parâmetros inválidos, permissão, etc.)
type RemoteError struct {
	Path       string
	StatusCode int
	Code       int
	Subcode    int
	Message    string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote error on %s (status %d, code %d, subcode %d): %s",
		e.Path, e.StatusCode, e.Code, e.Subcode, e.Message)
}

func (e *RemoteError) IsRetryable() bool {
	return false
}

type UnknownSourceError struct {
	Source string
}

func (e *UnknownSourceError) Error() string {
	return fmt.Sprintf("unknown account source %q (expected %q or %q)", e.Source, AccountSourcePersonal, AccountSourceBusiness)
}

func (e *UnknownSourceError) Is(target error) bool {
	return target == ErrUnknownSource
}

// UnknownSchemaError indica que não há schema registrado para a tabela calculada.
// Aponta um desencontro entre os breakdowns/períodos configurados e os schemas registrados.
type UnknownSchemaError struct {
	TableName string
}

func (e *UnknownSchemaError) Error() string {
	return fmt.Sprintf("no warehouse schema registered for table %q", e.TableName)
}

func (e *UnknownSchemaError) Is(target error) bool {
	return target == ErrUnknownSchema
}

// FanoutError carrega a unidade do fan-out que esgotou as tentativas
type FanoutError struct {
	Request InsightRequest
	Cause   error
}

func (e *FanoutError) Error() string {
	return fmt.Sprintf("insights fan-out failed for %s: %v", e.Request, e.Cause)
}

func (e *FanoutError) Unwrap() error {
	return e.Cause
}

// FanoutSummaryError agrega as falhas de um fan-out executado com política de continuar
type FanoutSummaryError struct {
	Units    int
	Failures []*FanoutError
}

func (e *FanoutSummaryError) Error() string {
	requests := make([]string, 0, len(e.Failures))
	for _, failure := range e.Failures {
		requests = append(requests, failure.Request.String())
	}
	return fmt.Sprintf("insights fan-out finished with %d/%d failed units: %s",
		len(e.Failures), e.Units, strings.Join(requests, "; "))
}

func (e *FanoutSummaryError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures))
	for _, failure := range e.Failures {
		errs = append(errs, failure)
	}
	return errs
}

type TokenNotFoundError struct {
	UserID string
	AppID  string
}

func (e *TokenNotFoundError) Error() string {
	return fmt.Sprintf("no token found for user %q and app %q", e.UserID, e.AppID)
}

func (e *TokenNotFoundError) Is(target error) bool {
	return target == ErrTokenNotFound
}

// StageError informa em qual etapa do pipeline a execução foi abortada
type StageError struct {
	RunID string
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("pipeline run %s failed at stage %s: %v", e.RunID, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// IsAuthorization indica se err contém uma falha de autorização
func IsAuthorization(err error) bool {
	var authErr *AuthorizationError
	return errors.As(err, &authErr)
}
