package postgres

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

func TestStockLedger_PostgresAddReduceSet(t *testing.T) {
	store := integrationStore(t)
	ledger := NewStockLedger(store)
	ctx := context.Background()

	qty, err := ledger.GetQuantity(ctx, 7, 42)
	require.NoError(t, err)
	require.Zero(t, qty)

	require.NoError(t, ledger.Add(ctx, 7, 42, 3, 1000))
	require.NoError(t, ledger.Add(ctx, 7, 42, 2, 1200))

	qty, err = ledger.GetQuantity(ctx, 7, 42)
	require.NoError(t, err)
	require.Equal(t, 5, qty)

	left, err := ledger.Reduce(ctx, 7, 42, 4)
	require.NoError(t, err)
	require.Equal(t, 1, left)

	_, err = ledger.Reduce(ctx, 7, 42, 2)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	var insufficient *domain.InsufficientStockError
	require.True(t, errors.As(err, &insufficient))
	require.Equal(t, 1, insufficient.Available)

	require.NoError(t, ledger.Set(ctx, 7, 43, 9, 1500))
	quantities, err := ledger.Quantities(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, map[int]int{42: 1, 43: 9}, quantities)

	require.ErrorIs(t, ledger.Add(ctx, 7, 42, -1, 0), domain.ErrInvalidAmount)
	_, err = ledger.Reduce(ctx, 7, 42, 0)
	require.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestStockLedger_PostgresOrderJournal(t *testing.T) {
	store := integrationStore(t)
	ledger := NewStockLedger(store)
	ctx := context.Background()

	require.NoError(t, ledger.Add(ctx, 1, 40, 3, 500))

	require.NoError(t, ledger.ReduceForOrder(ctx, "JOURNAL1", 0, 1, 40))
	require.NoError(t, ledger.ReduceForOrder(ctx, "JOURNAL1", 1, 1, 40))
	// Повтор той же единицы не списывает второй раз.
	require.NoError(t, ledger.ReduceForOrder(ctx, "JOURNAL1", 1, 1, 40))

	qty, err := ledger.GetQuantity(ctx, 1, 40)
	require.NoError(t, err)
	require.Equal(t, 1, qty)

	units, err := ledger.CommittedUnits(ctx, "JOURNAL1")
	require.NoError(t, err)
	require.Equal(t, 2, units)

	restored, err := ledger.ReleaseOrder(ctx, "JOURNAL1")
	require.NoError(t, err)
	require.Equal(t, 2, restored)

	restored, err = ledger.ReleaseOrder(ctx, "JOURNAL1")
	require.NoError(t, err)
	require.Zero(t, restored)

	qty, err = ledger.GetQuantity(ctx, 1, 40)
	require.NoError(t, err)
	require.Equal(t, 3, qty)

	require.ErrorIs(t, ledger.ReduceForOrder(ctx, "JOURNAL1", 0, 1, 40), domain.ErrStockReleased)
}

func TestStockLedger_PostgresLastUnitRace(t *testing.T) {
	store := integrationStore(t)
	ledger := NewStockLedger(store)
	ctx := context.Background()

	require.NoError(t, ledger.Add(ctx, 5, 38, 1, 700))

	const workers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := ledger.Reduce(ctx, 5, 38, 1); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, succeeded)
	qty, err := ledger.GetQuantity(ctx, 5, 38)
	require.NoError(t, err)
	require.Zero(t, qty)
}
