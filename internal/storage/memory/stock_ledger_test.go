package memory_test

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/storage/memory"
)

func TestStockLedger_AddReduceScenario(t *testing.T) {
	ctx := context.Background()
	ledger := memory.NewStockLedger()

	qty, err := ledger.GetQuantity(ctx, 1, 42)
	require.NoError(t, err)
	require.Zero(t, qty)

	require.NoError(t, ledger.Add(ctx, 1, 42, 3, 1500))

	left, err := ledger.Reduce(ctx, 1, 42, 2)
	require.NoError(t, err)
	require.Equal(t, 1, left)

	_, err = ledger.Reduce(ctx, 1, 42, 2)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	require.Equal(t, 2, stockErr.Requested)
	require.Equal(t, 1, stockErr.Available)

	qty, err = ledger.GetQuantity(ctx, 1, 42)
	require.NoError(t, err)
	require.Equal(t, 1, qty, "failed reduce must not mutate")
}

func TestStockLedger_InvalidAmounts(t *testing.T) {
	ctx := context.Background()
	ledger := memory.NewStockLedger()

	require.ErrorIs(t, ledger.Add(ctx, 1, 42, -1, 0), domain.ErrInvalidAmount)
	require.ErrorIs(t, ledger.Add(ctx, 1, 42, 1, -5), domain.ErrInvalidAmount)
	_, err := ledger.Reduce(ctx, 1, 42, 0)
	require.ErrorIs(t, err, domain.ErrInvalidAmount)
	require.ErrorIs(t, ledger.Set(ctx, 1, 42, -1, 0), domain.ErrInvalidAmount)

	// Нулевое оприходование создаёт запись без изменения количества.
	require.NoError(t, ledger.Add(ctx, 1, 43, 0, 100))
	quantities, err := ledger.Quantities(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, map[int]int{43: 0}, quantities)
}

func TestStockLedger_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	ledger := memory.NewStockLedger()

	require.NoError(t, ledger.Add(ctx, 5, 40, 10, 100))
	require.NoError(t, ledger.Set(ctx, 5, 40, 4, 120))

	qty, err := ledger.GetQuantity(ctx, 5, 40)
	require.NoError(t, err)
	require.Equal(t, 4, qty)
}

func TestStockLedger_NeverNegativeUnderRandomOps(t *testing.T) {
	ctx := context.Background()
	ledger := memory.NewStockLedger()
	rnd := rand.New(rand.NewSource(7))

	for i := 0; i < 2000; i++ {
		amount := rnd.Intn(5) + 1
		if rnd.Intn(2) == 0 {
			require.NoError(t, ledger.Add(ctx, 9, 41, amount, 0))
		} else {
			_, err := ledger.Reduce(ctx, 9, 41, amount)
			if err != nil {
				require.ErrorIs(t, err, domain.ErrInsufficientStock)
			}
		}
		qty, err := ledger.GetQuantity(ctx, 9, 41)
		require.NoError(t, err)
		require.GreaterOrEqual(t, qty, 0)
	}
}

func TestStockLedger_ConcurrentReduceLastUnit(t *testing.T) {
	ctx := context.Background()
	ledger := memory.NewStockLedger()
	require.NoError(t, ledger.Add(ctx, 1, 42, 1, 0))

	const workers = 64
	var (
		wg           sync.WaitGroup
		succeeded    atomic.Int32
		insufficient atomic.Int32
		start        = make(chan struct{})
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := ledger.Reduce(ctx, 1, 42, 1)
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, domain.ErrInsufficientStock):
				insufficient.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	require.EqualValues(t, 1, succeeded.Load())
	require.EqualValues(t, workers-1, insufficient.Load())

	qty, err := ledger.GetQuantity(ctx, 1, 42)
	require.NoError(t, err)
	require.Zero(t, qty)
}

func TestStockLedger_ReduceForOrderIsJournaled(t *testing.T) {
	ctx := context.Background()
	ledger := memory.NewStockLedger()
	require.NoError(t, ledger.Add(ctx, 1, 42, 3, 0))

	require.NoError(t, ledger.ReduceForOrder(ctx, "ORDER001", 0, 1, 42))
	require.NoError(t, ledger.ReduceForOrder(ctx, "ORDER001", 1, 1, 42))
	// Повтор той же единицы не списывает второй раз.
	require.NoError(t, ledger.ReduceForOrder(ctx, "ORDER001", 1, 1, 42))

	qty, _ := ledger.GetQuantity(ctx, 1, 42)
	require.Equal(t, 1, qty)

	units, err := ledger.CommittedUnits(ctx, "ORDER001")
	require.NoError(t, err)
	require.Equal(t, 2, units)

	restored, err := ledger.ReleaseOrder(ctx, "ORDER001")
	require.NoError(t, err)
	require.Equal(t, 2, restored)

	restored, err = ledger.ReleaseOrder(ctx, "ORDER001")
	require.NoError(t, err)
	require.Zero(t, restored, "release must be applied once")

	qty, _ = ledger.GetQuantity(ctx, 1, 42)
	require.Equal(t, 3, qty)

	require.ErrorIs(t, ledger.ReduceForOrder(ctx, "ORDER001", 0, 1, 42), domain.ErrStockReleased)
}

func TestStockLedger_ReduceForOrderInsufficient(t *testing.T) {
	ctx := context.Background()
	ledger := memory.NewStockLedger()

	err := ledger.ReduceForOrder(ctx, "ORDER002", 0, 1, 42)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	units, err := ledger.CommittedUnits(ctx, "ORDER002")
	require.NoError(t, err)
	require.Zero(t, units)
}
