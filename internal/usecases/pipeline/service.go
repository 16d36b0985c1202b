// Package pipeline orquestra uma execução completa: token, contas, anúncios, insights e carga.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-insights-pipeline/internal/domain"
	"github.com/vfg2006/ads-insights-pipeline/internal/usecases/insighting"
	"github.com/vfg2006/ads-insights-pipeline/internal/usecases/loading"
	"github.com/vfg2006/ads-insights-pipeline/internal/usecases/resolving"
	"github.com/vfg2006/ads-insights-pipeline/pkg/parallel"
	"github.com/vfg2006/ads-insights-pipeline/pkg/utils"
)

type Options struct {
	Periods        []domain.Period
	Breakdowns     []domain.Breakdown
	MaxConcurrency int
	FailurePolicy  insighting.FailurePolicy
	Project        string
	Dataset        string
	// Pool compartilhado entre serviços e execuções; sem ele o serviço cria o seu com MaxConcurrency
	Pool *parallel.Pool
}

type Service struct {
	tokens      TokenGate
	integrators IntegratorFactory
	schemas     loading.SchemaRegistry
	warehouse   loading.WarehouseClient
	opts        Options
	pool        *parallel.Pool

	now      func() time.Time
	newRunID func() (string, error)
}

// NewService falha quando alguma combinação período × breakdown configurada não tem schema registrado
func NewService(
	tokens TokenGate,
	integrators IntegratorFactory,
	schemas loading.SchemaRegistry,
	warehouse loading.WarehouseClient,
	opts Options,
) (*Service, error) {
	if len(opts.Periods) == 0 {
		opts.Periods = domain.AllPeriods()
	}
	if len(opts.Breakdowns) == 0 {
		opts.Breakdowns = domain.DefaultBreakdowns()
	}
	if opts.FailurePolicy == "" {
		opts.FailurePolicy = insighting.FailFast
	}
	if opts.Pool == nil {
		opts.Pool = parallel.NewPool(opts.MaxConcurrency)
	}

	if err := loading.CheckSchemaCoverage(schemas, opts.Periods, opts.Breakdowns); err != nil {
		return nil, fmt.Errorf("schemas do warehouse incompletos: %w", err)
	}

	return &Service{
		tokens:      tokens,
		integrators: integrators,
		schemas:     schemas,
		warehouse:   warehouse,
		opts:        opts,
		pool:        opts.Pool,
		now:         time.Now,
		newRunID:    utils.NewRunID,
	}, nil
}

// Run executa o pipeline para um usuário. Qualquer falha é devolvida como *domain.StageError.
// Com ContinueOnError, falhas de unidades do fan-out não impedem a carga dos registros obtidos:
// o resumo parcial volta junto com o erro. O mesmo vale para uma carga interrompida no meio.
func (s *Service) Run(ctx context.Context, userID, appID string, source domain.AccountSource) (*domain.RunSummary, error) {
	runID, err := s.newRunID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id da execução: %w", err)
	}

	summary := &domain.RunSummary{
		RunID:     runID,
		UserID:    userID,
		AppID:     appID,
		Source:    source,
		StartedAt: s.now(),
	}

	logger := logrus.WithFields(logrus.Fields{
		"run_id":  runID,
		"user_id": userID,
		"app_id":  appID,
		"source":  source,
	})
	logger.Info("Iniciando execução do pipeline")

	fail := func(stage domain.Stage, err error) (*domain.RunSummary, error) {
		logger.WithError(err).WithField("stage", stage).Error("Execução do pipeline abortada")
		return nil, &domain.StageError{RunID: runID, Stage: stage, Err: err}
	}

	if err := source.Validate(); err != nil {
		return fail(domain.StageAccounts, err)
	}

	integrator, err := s.authorize(ctx, userID, appID)
	if err != nil {
		return fail(domain.StageToken, err)
	}

	resolver := resolving.NewService(integrator, s.pool)

	accounts, err := resolver.ResolveAccounts(ctx, source)
	if err != nil {
		return fail(domain.StageAccounts, err)
	}
	summary.Accounts = len(accounts)
	logger.WithField("accounts", len(accounts)).Info("Contas resolvidas")

	ads, err := resolver.ResolveAds(ctx, accounts)
	if err != nil {
		return fail(domain.StageAds, err)
	}
	summary.Ads = len(ads)
	logger.WithField("ads", len(ads)).Info("Anúncios resolvidos")

	engine := insighting.NewEngine(integrator, s.pool, s.opts.FailurePolicy)
	result, fanoutErr := engine.Fanout(ctx, userID, ads, s.opts.Periods, s.opts.Breakdowns)
	if fanoutErr != nil && result == nil {
		return fail(domain.StageInsights, fanoutErr)
	}
	summary.Units = result.Units

	tables := loading.NewTableRegistry(s.schemas, s.warehouse, s.opts.Project, s.opts.Dataset)
	loader := loading.NewLoader(tables, s.warehouse, s.pool)

	inserted, loadErr := loader.Load(ctx, result.Records)
	summary.RecordCount = inserted
	summary.Tables = loader.Tables()
	summary.TableCount = len(summary.Tables)
	summary.FinishedAt = s.now()

	if loadErr != nil {
		logger.WithError(loadErr).WithField("inserted", inserted).Error("Execução do pipeline interrompida na carga")
		return summary, &domain.StageError{RunID: runID, Stage: domain.StageLoad, Err: loadErr}
	}

	if fanoutErr != nil {
		logger.WithError(fanoutErr).WithField("inserted", inserted).Warn("Execução do pipeline concluída com falhas no fan-out")
		return summary, &domain.StageError{RunID: runID, Stage: domain.StageInsights, Err: fanoutErr}
	}

	logger.WithFields(logrus.Fields{
		"units":    summary.Units,
		"records":  summary.RecordCount,
		"tables":   summary.TableCount,
		"duration": summary.FinishedAt.Sub(summary.StartedAt).String(),
	}).Info("Execução do pipeline concluída")

	return summary, nil
}

// ListAccounts resolve as contas pessoais e de business em paralelo e junta as duas listas,
// pessoais primeiro, sem repetir contas.
func (s *Service) ListAccounts(ctx context.Context, userID, appID string) ([]domain.AdAccount, error) {
	integrator, err := s.authorize(ctx, userID, appID)
	if err != nil {
		return nil, err
	}

	resolver := resolving.NewService(integrator, s.pool)
	sources := domain.AccountSources()
	lists := make([][]domain.AdAccount, len(sources))

	indexes := make([]int, len(sources))
	for i := range indexes {
		indexes[i] = i
	}

	err = parallel.ForEach(ctx, s.pool, indexes, func(ctx context.Context, i int) error {
		accounts, err := resolver.ResolveAccounts(ctx, sources[i])
		if err != nil {
			return fmt.Errorf("erro ao listar contas (%s): %w", sources[i], err)
		}
		lists[i] = accounts
		return nil
	})
	if err != nil {
		return nil, err
	}

	return domain.MergeAdAccounts(lists...), nil
}

// authorize busca o token e cria o integrador da execução. Token fora da validade nunca chega à API.
func (s *Service) authorize(ctx context.Context, userID, appID string) (Integrator, error) {
	token, err := s.tokens.FetchToken(ctx, userID, appID)
	if err != nil {
		return nil, err
	}

	if !token.Valid(s.now()) {
		return nil, &domain.AuthorizationError{Err: domain.ErrTokenExpired}
	}

	return s.integrators(token), nil
}
