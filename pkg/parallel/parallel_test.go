package parallel

import (
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatMap_FlattensAllResults(t *testing.T) {
	items := []int{1, 2, 3, 4}

	results, err := FlatMap(context.Background(), NewPool(2), items, func(ctx context.Context, item int) ([]int, error) {
		return []int{item, item * 10}, nil
	})

	require.NoError(t, err)
	sort.Ints(results)
	assert.Equal(t, []int{1, 2, 3, 4, 10, 20, 30, 40}, results)
}

// inFlight mede o pico de unidades trabalhando ao mesmo tempo
type inFlight struct {
	current, peak int32
}

func (f *inFlight) work() {
	current := atomic.AddInt32(&f.current, 1)
	for {
		observed := atomic.LoadInt32(&f.peak)
		if current <= observed || atomic.CompareAndSwapInt32(&f.peak, observed, current) {
			break
		}
	}
	time.Sleep(2 * time.Millisecond)
	atomic.AddInt32(&f.current, -1)
}

func (f *inFlight) Peak() int32 {
	return atomic.LoadInt32(&f.peak)
}

// waitOrFail falha o teste se fn não terminar a tempo
func waitOrFail(t *testing.T, fn func()) {
	t.Helper()

	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("lote não terminou: possível deadlock no pool")
	}
}

func TestForEach_RespectsLimit(t *testing.T) {
	const limit = 3
	gauge := &inFlight{}

	items := make([]int, 30)
	err := ForEach(context.Background(), NewPool(limit), items, func(ctx context.Context, _ int) error {
		gauge.work()
		return nil
	})

	require.NoError(t, err)
	assert.LessOrEqual(t, gauge.Peak(), int32(limit))
	assert.Greater(t, gauge.Peak(), int32(0))
}

func TestForEach_NestedBatchesShareLimit(t *testing.T) {
	for _, limit := range []int{1, 2} {
		pool := NewPool(limit)
		gauge := &inFlight{}
		var leaves int32

		var err error
		waitOrFail(t, func() {
			err = ForEach(context.Background(), pool, []int{0, 1}, func(ctx context.Context, outer int) error {
				if outer == 0 {
					for i := 0; i < 3; i++ {
						gauge.work()
						atomic.AddInt32(&leaves, 1)
					}
					return nil
				}

				return ForEach(ctx, pool, []int{0, 1, 2}, func(ctx context.Context, _ int) error {
					gauge.work()
					atomic.AddInt32(&leaves, 1)
					return nil
				})
			})
		})

		require.NoError(t, err)
		assert.Equal(t, int32(6), atomic.LoadInt32(&leaves))
		assert.LessOrEqual(t, gauge.Peak(), int32(limit), "limite %d", limit)
	}
}

func TestForEach_ConcurrentBatchesShareLimit(t *testing.T) {
	const limit = 2
	pool := NewPool(limit)
	gauge := &inFlight{}

	waitOrFail(t, func() {
		var wg sync.WaitGroup
		for batch := 0; batch < 3; batch++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := ForEach(context.Background(), pool, make([]int, 10), func(ctx context.Context, _ int) error {
					gauge.work()
					return nil
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()
	})

	assert.LessOrEqual(t, gauge.Peak(), int32(limit))
}

func TestFlatMap_NestedUnderSingleSlotPool(t *testing.T) {
	pool := NewPool(1)

	var (
		results []int
		err     error
	)
	waitOrFail(t, func() {
		results, err = FlatMap(context.Background(), pool, []int{1, 2}, func(ctx context.Context, item int) ([]int, error) {
			return FlatMap(ctx, pool, []int{item * 10, item * 100}, func(ctx context.Context, v int) ([]int, error) {
				return []int{v}, nil
			})
		})
	})

	require.NoError(t, err)
	sort.Ints(results)
	assert.Equal(t, []int{10, 20, 100, 200}, results)
}

func TestFlatMap_FailFast(t *testing.T) {
	boom := errors.New("boom")
	var calls int32

	results, err := FlatMap(context.Background(), NewPool(1), []int{1, 2, 3, 4, 5}, func(ctx context.Context, item int) ([]int, error) {
		atomic.AddInt32(&calls, 1)
		if item == 2 {
			return nil, boom
		}
		return []int{item}, nil
	})

	assert.ErrorIs(t, err, boom)
	assert.Nil(t, results)
	// Com limite 1 as unidades rodam em sequência: nada depois da falha é chamado
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestForEach_ParentContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls int32
	err := ForEach(ctx, NewPool(2), []int{1, 2, 3}, func(ctx context.Context, _ int) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestNewPool_DefaultLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, NewPool(0).Limit())
	assert.Equal(t, 5, NewPool(5).Limit())

	var nilPool *Pool
	assert.Equal(t, DefaultLimit, nilPool.Limit())
}
