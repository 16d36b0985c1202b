package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-insights-pipeline/internal/api/handler/mocks"
	"github.com/vfg2006/ads-insights-pipeline/internal/domain"
	"github.com/vfg2006/ads-insights-pipeline/internal/usecases/authenticating"
	"github.com/vfg2006/ads-insights-pipeline/pkg/apiErrors"
	"github.com/vfg2006/ads-insights-pipeline/pkg/middleware"
	"go.uber.org/mock/gomock"
)

var defaults = Defaults{AppID: "default-app", Source: domain.AccountSourceBusiness}

func withClaims(req *http.Request, claims *domain.Claims) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	var body apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRunPipeline(t *testing.T) {
	operator := &domain.Claims{UserID: "u1", AppID: "app", Role: domain.RoleOperator}
	admin := &domain.Claims{UserID: "adm", Role: domain.RoleAdmin}

	tests := []struct {
		name           string
		claims         *domain.Claims
		body           string
		setup          func(*mocks.MockPipelineService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "operador executa para si com a origem padrão",
			claims: operator,
			body:   "",
			setup: func(s *mocks.MockPipelineService) {
				s.EXPECT().Run(gomock.Any(), "u1", "app", domain.AccountSourceBusiness).
					Return(&domain.RunSummary{RunID: "r1", RecordCount: 4, TableCount: 2}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "admin executa para outro usuário",
			claims: admin,
			body:   `{"user_id":"u9","source":"personal"}`,
			setup: func(s *mocks.MockPipelineService) {
				s.EXPECT().Run(gomock.Any(), "u9", "default-app", domain.AccountSourcePersonal).
					Return(&domain.RunSummary{RunID: "r2"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "operador não executa para outro usuário",
			claims:         operator,
			body:           `{"user_id":"u9"}`,
			setup:          func(s *mocks.MockPipelineService) {},
			expectedStatus: http.StatusForbidden,
			expectedCode:   apiErrors.ErrInsufficientPrivilege,
		},
		{
			name:           "origem desconhecida",
			claims:         operator,
			body:           `{"source":"agency"}`,
			setup:          func(s *mocks.MockPipelineService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name:           "corpo inválido",
			claims:         operator,
			body:           `{`,
			setup:          func(s *mocks.MockPipelineService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:   "token do Meta expirado",
			claims: operator,
			body:   `{}`,
			setup: func(s *mocks.MockPipelineService) {
				s.EXPECT().Run(gomock.Any(), "u1", "app", domain.AccountSourceBusiness).
					Return(nil, &domain.StageError{RunID: "r3", Stage: domain.StageToken, Err: &domain.AuthorizationError{Err: domain.ErrTokenExpired}})
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrMetaAuthorization,
		},
		{
			name:   "falha no fan-out",
			claims: operator,
			body:   `{}`,
			setup: func(s *mocks.MockPipelineService) {
				s.EXPECT().Run(gomock.Any(), "u1", "app", domain.AccountSourceBusiness).
					Return(nil, &domain.StageError{Stage: domain.StageInsights, Err: &domain.FanoutError{Cause: errors.New("boom")}})
			},
			expectedStatus: http.StatusBadGateway,
			expectedCode:   apiErrors.ErrExternalService,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mocks.NewMockPipelineService(ctrl)
			tt.setup(service)

			req := withClaims(httptest.NewRequest(http.MethodPost, "/v1/pipeline/run", bytes.NewBufferString(tt.body)), tt.claims)
			rec := httptest.NewRecorder()

			RunPipeline(service, defaults).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestRunPipeline_PartialSummaryInDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockPipelineService(ctrl)
	service.EXPECT().Run(gomock.Any(), "u1", "app", domain.AccountSourceBusiness).
		Return(&domain.RunSummary{RunID: "r1", RecordCount: 3}, &domain.StageError{RunID: "r1", Stage: domain.StageLoad, Err: errors.New("boom")})

	req := withClaims(httptest.NewRequest(http.MethodPost, "/v1/pipeline/run", nil), &domain.Claims{UserID: "u1", AppID: "app", Role: domain.RoleOperator})
	rec := httptest.NewRecorder()

	RunPipeline(service, defaults).ServeHTTP(rec, req)

	body := decodeError(t, rec)
	details, ok := body.Details.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "load", details["stage"])
	assert.Contains(t, details, "summary")
}

func TestListAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockPipelineService(ctrl)
	service.EXPECT().ListAccounts(gomock.Any(), "u1", "other-app").
		Return([]domain.AdAccount{{ID: "act_1", Name: "Loja"}}, nil)

	req := withClaims(httptest.NewRequest(http.MethodGet, "/v1/accounts?app_id=other-app", nil), &domain.Claims{UserID: "u1", Role: domain.RoleOperator})
	rec := httptest.NewRecorder()

	ListAccounts(service, defaults).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[{"id":"act_1","name":"Loja"}],"total":1}`, rec.Body.String())
}

func TestListAccounts_TokenNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockPipelineService(ctrl)
	service.EXPECT().ListAccounts(gomock.Any(), "u1", "default-app").
		Return(nil, &domain.TokenNotFoundError{UserID: "u1", AppID: "default-app"})

	req := withClaims(httptest.NewRequest(http.MethodGet, "/v1/accounts", nil), &domain.Claims{UserID: "u1", Role: domain.RoleOperator})
	rec := httptest.NewRecorder()

	ListAccounts(service, defaults).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrMetaTokenNotFound, decodeError(t, rec).Code)
}

func TestRunPipelineSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sync := mocks.NewMockSyncService(ctrl)
	sync.EXPECT().TriggerManualSync().Return(true)
	sync.EXPECT().TriggerManualSync().Return(false)

	rec := httptest.NewRecorder()
	RunPipelineSync(sync).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cron/pipeline/run", nil))
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec = httptest.NewRecorder()
	RunPipelineSync(sync).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cron/pipeline/run", nil))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetCronStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sync := mocks.NewMockSyncService(ctrl)
	sync.EXPECT().GetStatus().Return(map[string]any{"sync_enabled": true})

	rec := httptest.NewRecorder()
	GetCronStatus(sync).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"pipeline":{"sync_enabled":true}}`, rec.Body.String())
}

func TestHealthcheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db := mocks.NewMockPinger(ctrl)
	db.EXPECT().Ping(gomock.Any()).Return(nil)
	db.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))

	rec := httptest.NewRecorder()
	HealthcheckHandler(db).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	HealthcheckHandler(db).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestIssueToken(t *testing.T) {
	auth := authenticating.NewService("segredo")

	rec := httptest.NewRecorder()
	IssueToken(auth).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/tokens", bytes.NewBufferString(`{"user_id":"u1","app_id":"app","ttl_hours":1}`)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	claims, err := auth.ValidateToken(body["token"])
	require.NoError(t, err)
	assert.Equal(t, domain.RoleOperator, claims.Role)

	rec = httptest.NewRecorder()
	IssueToken(auth).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/tokens", bytes.NewBufferString(`{"app_id":"app"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
