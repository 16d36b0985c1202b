package insighting

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-insights-pipeline/internal/domain"
	"github.com/vfg2006/ads-insights-pipeline/pkg/parallel"
)

type FanoutResult struct {
	Records []domain.InsightRecord
	// Units é o tamanho da matriz executada: anúncios × períodos × combinações
	Units int
}

// Engine executa a matriz de insights com concorrência limitada
type Engine struct {
	meta   MetaInsighter
	pool   *parallel.Pool
	policy FailurePolicy
}

func NewEngine(meta MetaInsighter, pool *parallel.Pool, policy FailurePolicy) *Engine {
	if policy == "" {
		policy = FailFast
	}

	return &Engine{
		meta:   meta,
		pool:   pool,
		policy: policy,
	}
}

// Fanout faz uma chamada de insights por elemento da matriz e gera um registro por unidade: sem falhas,
// len(Records) == Units e cada registro tem uma chave (ad, período, breakdowns) distinta.
// A ordem dos registros não é garantida.
func (e *Engine) Fanout(ctx context.Context, userID string, ads []domain.Ad, periods []domain.Period, combos []domain.Breakdown) (*FanoutResult, error) {
	matrix := BuildMatrix(ads, periods, combos)
	start := time.Now()

	logger := logrus.WithFields(logrus.Fields{
		"user_id":     userID,
		"units":       len(matrix),
		"concurrency": e.pool.Limit(),
		"policy":      e.policy,
	})
	logger.Info("Iniciando fan-out de insights")

	var (
		result *FanoutResult
		err    error
	)
	switch e.policy {
	case ContinueOnError:
		result, err = e.fanoutContinue(ctx, userID, matrix)
	default:
		result, err = e.fanoutFailFast(ctx, userID, matrix)
	}

	if err != nil {
		logger.WithError(err).WithField("duration", time.Since(start).String()).Error("Fan-out de insights falhou")
		return result, err
	}

	logger.WithFields(logrus.Fields{
		"records":  len(result.Records),
		"rows":     countRows(result.Records),
		"duration": time.Since(start).String(),
	}).Info("Fan-out de insights concluído")

	return result, nil
}

func (e *Engine) fanoutFailFast(ctx context.Context, userID string, matrix []domain.InsightRequest) (*FanoutResult, error) {
	records, err := parallel.FlatMap(ctx, e.pool, matrix, func(ctx context.Context, req domain.InsightRequest) ([]domain.InsightRecord, error) {
		record, err := e.runUnit(ctx, userID, req)
		if err != nil {
			return nil, err
		}
		return []domain.InsightRecord{record}, nil
	})
	if err != nil {
		return nil, err
	}

	return &FanoutResult{Records: records, Units: len(matrix)}, nil
}

func (e *Engine) fanoutContinue(ctx context.Context, userID string, matrix []domain.InsightRequest) (*FanoutResult, error) {
	var (
		mu       sync.Mutex
		records  = make([]domain.InsightRecord, 0, len(matrix))
		failures []*domain.FanoutError
	)

	err := parallel.ForEach(ctx, e.pool, matrix, func(ctx context.Context, req domain.InsightRequest) error {
		record, err := e.runUnit(ctx, userID, req)
		if err != nil {
			// Token inválido vale para todas as unidades, não adianta continuar
			if domain.IsAuthorization(err) || ctx.Err() != nil {
				return err
			}

			var fanoutErr *domain.FanoutError
			if !errors.As(err, &fanoutErr) {
				return err
			}

			logrus.WithError(fanoutErr.Cause).WithField("request", req.String()).Warn("Unidade do fan-out falhou, seguindo com as demais")

			mu.Lock()
			failures = append(failures, fanoutErr)
			mu.Unlock()
			return nil
		}

		mu.Lock()
		records = append(records, record)
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &FanoutResult{Records: records, Units: len(matrix)}
	if len(failures) == 0 {
		return result, nil
	}

	sort.Slice(failures, func(i, j int) bool {
		return failures[i].Request.Key() < failures[j].Request.Key()
	})

	return result, &domain.FanoutSummaryError{Units: len(matrix), Failures: failures}
}

// runUnit sobrescreve a identidade devolvida pelo integrador com a da unidade
func (e *Engine) runUnit(ctx context.Context, userID string, req domain.InsightRequest) (domain.InsightRecord, error) {
	record, err := e.meta.GetAdInsights(ctx, req)
	if err != nil {
		return domain.InsightRecord{}, &domain.FanoutError{Request: req, Cause: err}
	}

	record.UserID = userID
	record.AdID = req.AdID
	record.Period = req.Period
	record.Breakdowns = req.Breakdowns.Clone()
	if record.AdAccountID == "" {
		record.AdAccountID = req.AccountID
	}

	return record, nil
}

func countRows(records []domain.InsightRecord) int {
	total := 0
	for _, record := range records {
		total += len(record.Rows)
	}
	return total
}
