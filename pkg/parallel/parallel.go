// Package parallel é o executor com concorrência limitada usado em todo fan-out do pipeline.
package parallel

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

const DefaultLimit = 8

// Pool limita quantas unidades ficam em execução ao mesmo tempo, somando todos os lotes que o
// compartilham: lotes concorrentes e lotes aninhados disputam o mesmo semáforo.
type Pool struct {
	limit int
	sem   *semaphore.Weighted
}

func NewPool(limit int) *Pool {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Pool{
		limit: limit,
		sem:   semaphore.NewWeighted(int64(limit)),
	}
}

func (p *Pool) Limit() int {
	if p == nil || p.limit <= 0 {
		return DefaultLimit
	}
	return p.limit
}

type slotKey struct{}

// slot é a vaga ocupada por uma unidade em execução, guardada no contexto passado a fn
type slot struct {
	pool *Pool
	lent atomic.Bool
}

// lend devolve ao pool a vaga da unidade chamadora enquanto ela só espera um lote aninhado.
// A função retornada retoma a vaga antes de a unidade voltar a trabalhar.
func (p *Pool) lend(ctx context.Context) func() {
	s, ok := ctx.Value(slotKey{}).(*slot)
	if !ok || s.pool != p || !s.lent.CompareAndSwap(false, true) {
		return func() {}
	}

	p.sem.Release(1)
	return func() {
		// Sem cancelamento: a unidade precisa da vaga de volta para liberar no fim
		_ = p.sem.Acquire(context.WithoutCancel(ctx), 1)
		s.lent.Store(false)
	}
}

// ForEach executa fn para cada item com no máximo Limit unidades em andamento no pool inteiro.
// O primeiro erro cancela o contexto das demais; unidades ainda não iniciadas não chamam fn.
// Chamado de dentro de uma unidade do mesmo pool, o lote aninhado usa a vaga da unidade chamadora.
func ForEach[T any](ctx context.Context, pool *Pool, items []T, fn func(ctx context.Context, item T) error) error {
	if pool == nil || pool.sem == nil {
		pool = NewPool(pool.Limit())
	}

	reclaim := pool.lend(ctx)
	defer reclaim()

	g, gctx := errgroup.WithContext(ctx)
	// Mantém a ordem de início dos itens do lote; o teto global fica com o semáforo
	g.SetLimit(pool.Limit())

	for _, item := range items {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := pool.sem.Acquire(gctx, 1); err != nil {
				return err
			}

			s := &slot{pool: pool}
			defer func() {
				if !s.lent.Load() {
					pool.sem.Release(1)
				}
			}()

			return fn(context.WithValue(gctx, slotKey{}, s), item)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	// O laço pode ter parado pelo cancelamento do contexto pai sem nenhuma unidade falhar
	return ctx.Err()
}

// FlatMap aplica fn a cada item em paralelo e achata os resultados.
// A ordem do resultado não é garantida. Em caso de erro nenhum resultado parcial é retornado.
func FlatMap[T, R any](ctx context.Context, pool *Pool, items []T, fn func(ctx context.Context, item T) ([]R, error)) ([]R, error) {
	var (
		mu      sync.Mutex
		results = make([]R, 0, len(items))
	)

	err := ForEach(ctx, pool, items, func(ctx context.Context, item T) error {
		out, err := fn(ctx, item)
		if err != nil {
			return err
		}

		mu.Lock()
		results = append(results, out...)
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}
