package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-insights-pipeline/internal/config"
	"github.com/vfg2006/ads-insights-pipeline/internal/domain"
	"github.com/vfg2006/ads-insights-pipeline/internal/scheduler/mocks"
	"go.uber.org/mock/gomock"
)

func newTestConfig() *config.Config {
	return &config.Config{
		Meta: config.Meta{AppID: "app"},
		PipelineSync: config.PipelineSync{
			CronSchedule:      "0 3 * * *",
			Source:            "business",
			MaxConcurrentRuns: 2,
		},
	}
}

func TestPipelineSyncService_SyncAll(t *testing.T) {
	tests := []struct {
		name             string
		setup            func(*mocks.MockTokenLister, *mocks.MockPipelineRunner)
		expectedRuns     int
		expectedFailures int
		expectedRecords  int64
	}{
		{
			name: "falha de um usuário não interrompe os demais",
			setup: func(tokens *mocks.MockTokenLister, runner *mocks.MockPipelineRunner) {
				tokens.EXPECT().ListActive(gomock.Any(), "app").Return([]*domain.Token{
					{UserID: "u1", AppID: "app", AccessToken: "a"},
					{UserID: "u2", AppID: "app", AccessToken: "b"},
				}, nil)

				runner.EXPECT().Run(gomock.Any(), "u1", "app", domain.AccountSourceBusiness).
					Return(&domain.RunSummary{RecordCount: 12}, nil)
				runner.EXPECT().Run(gomock.Any(), "u2", "app", domain.AccountSourceBusiness).
					Return(nil, &domain.StageError{Stage: domain.StageToken, Err: domain.ErrTokenExpired})
			},
			expectedRuns:     2,
			expectedFailures: 1,
			expectedRecords:  12,
		},
		{
			name: "nenhum token ativo",
			setup: func(tokens *mocks.MockTokenLister, runner *mocks.MockPipelineRunner) {
				tokens.EXPECT().ListActive(gomock.Any(), "app").Return(nil, nil)
			},
		},
		{
			name: "execução parcial conta os registros gravados",
			setup: func(tokens *mocks.MockTokenLister, runner *mocks.MockPipelineRunner) {
				tokens.EXPECT().ListActive(gomock.Any(), "app").Return([]*domain.Token{{UserID: "u1", AppID: "app", AccessToken: "a"}}, nil)
				runner.EXPECT().Run(gomock.Any(), "u1", "app", domain.AccountSourceBusiness).
					Return(&domain.RunSummary{RecordCount: 3}, &domain.StageError{Stage: domain.StageLoad, Err: errors.New("boom")})
			},
			expectedRuns:     1,
			expectedFailures: 1,
			expectedRecords:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tokens := mocks.NewMockTokenLister(ctrl)
			runner := mocks.NewMockPipelineRunner(ctrl)
			tt.setup(tokens, runner)

			service := NewPipelineSyncService(tokens, runner, newTestConfig())
			service.syncAll(context.Background())

			status := service.GetStatus()
			assert.Equal(t, tt.expectedRuns, status["last_sync_runs"])
			assert.Equal(t, tt.expectedFailures, status["last_sync_failures"])
			assert.Equal(t, tt.expectedRecords, status["last_sync_records"])
			assert.Equal(t, false, status["sync_running"])
			assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
		})
	}
}

func TestPipelineSyncService_ListFailureKeepsPreviousStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokens := mocks.NewMockTokenLister(ctrl)
	runner := mocks.NewMockPipelineRunner(ctrl)
	tokens.EXPECT().ListActive(gomock.Any(), "app").Return(nil, errors.New("db down"))

	service := NewPipelineSyncService(tokens, runner, newTestConfig())
	service.syncAll(context.Background())

	status := service.GetStatus()
	assert.True(t, status["last_sync_completed_at"].(time.Time).IsZero())
	assert.False(t, status["last_sync_started_at"].(time.Time).IsZero())
}

func TestPipelineSyncService_TriggerManualSyncWhileRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewPipelineSyncService(mocks.NewMockTokenLister(ctrl), mocks.NewMockPipelineRunner(ctrl), newTestConfig())
	service.syncRunning = true

	assert.False(t, service.TriggerManualSync())
}

func TestPipelineSyncService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewPipelineSyncService(mocks.NewMockTokenLister(ctrl), mocks.NewMockPipelineRunner(ctrl), newTestConfig())

	assert.NoError(t, service.Start(context.Background()))
	assert.Equal(t, false, service.GetStatus()["sync_enabled"])
}
