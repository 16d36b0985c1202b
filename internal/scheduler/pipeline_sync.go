package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-insights-pipeline/internal/config"
	"github.com/vfg2006/ads-insights-pipeline/internal/domain"
)

// PipelineSyncConfig representa a configuração do agendador do pipeline
type PipelineSyncConfig struct {
	CronSchedule      string
	AppID             string
	Source            domain.AccountSource
	MaxConcurrentRuns int
	SyncEnabled       bool
}

// PipelineSyncService executa o pipeline periodicamente para todos os usuários com token ativo
type PipelineSyncService struct {
	scheduler *gocron.Scheduler
	config    PipelineSyncConfig
	tokens    TokenLister
	pipeline  PipelineRunner

	baseCtx             context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncRuns        int
	lastSyncFailures    int
	lastSyncRecords     int64
}

func NewPipelineSyncService(tokens TokenLister, pipeline PipelineRunner, appConfig *config.Config) *PipelineSyncService {
	// A origem já foi validada ao carregar a configuração
	source, _ := domain.ParseAccountSource(appConfig.PipelineSync.Source)

	syncConfig := PipelineSyncConfig{
		CronSchedule:      appConfig.PipelineSync.CronSchedule,
		AppID:             appConfig.Meta.AppID,
		Source:            source,
		MaxConcurrentRuns: appConfig.PipelineSync.MaxConcurrentRuns,
		SyncEnabled:       appConfig.PipelineSync.Enabled,
	}
	if syncConfig.MaxConcurrentRuns <= 0 {
		syncConfig.MaxConcurrentRuns = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"source":              syncConfig.Source,
		"max_concurrent_runs": syncConfig.MaxConcurrentRuns,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador do pipeline carregada")

	return &PipelineSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		tokens:    tokens,
		pipeline:  pipeline,
		baseCtx:   context.Background(),
	}
}

// Start inicia o agendador. O contexto também é usado pelas execuções disparadas manualmente.
func (s *PipelineSyncService) Start(ctx context.Context) error {
	s.baseCtx = ctx

	if !s.config.SyncEnabled {
		logrus.Info("Sincronização do pipeline desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização do pipeline")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAll(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização do pipeline: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização do pipeline")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAll roda o pipeline para cada token ativo. A falha de um usuário não interrompe os demais.
func (s *PipelineSyncService) syncAll(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do pipeline já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização do pipeline para todos os tokens ativos")

	tokens, err := s.tokens.ListActive(ctx, s.config.AppID)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar tokens para sincronização do pipeline")
		return
	}

	if len(tokens) == 0 {
		logrus.Info("Nenhum token ativo encontrado para sincronização do pipeline")
		s.finish(0, 0, 0)
		return
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		failures int
		records  int64
	)
	semaphore := make(chan struct{}, s.config.MaxConcurrentRuns)

	for _, token := range tokens {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(token *domain.Token) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			summary, err := s.pipeline.Run(ctx, token.UserID, token.AppID, s.config.Source)

			mu.Lock()
			defer mu.Unlock()

			if summary != nil {
				records += summary.RecordCount
			}
			if err != nil {
				failures++
				logrus.WithError(err).WithField("user_id", token.UserID).Error("Erro na execução agendada do pipeline")
			}
		}(token)
	}

	wg.Wait()

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"runs":     len(tokens),
		"failures": failures,
		"records":  records,
	}).Info("Sincronização do pipeline concluída")

	s.finish(len(tokens), failures, records)
}

func (s *PipelineSyncService) finish(runs, failures int, records int64) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.lastSyncCompletedAt = time.Now()
	s.lastSyncRuns = runs
	s.lastSyncFailures = failures
	s.lastSyncRecords = records
}

// TriggerManualSync inicia uma sincronização em segundo plano. Retorna false se já houver uma em andamento.
func (s *PipelineSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do pipeline já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual do pipeline")
	go s.syncAll(s.baseCtx)

	return true
}

// GetStatus retorna o status atual do agendador
func (s *PipelineSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_source":            s.config.Source,
		"sync_max_concurrent":    s.config.MaxConcurrentRuns,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_runs":         s.lastSyncRuns,
		"last_sync_failures":     s.lastSyncFailures,
		"last_sync_records":      s.lastSyncRecords,
	}
}
