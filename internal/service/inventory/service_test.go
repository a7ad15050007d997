package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/storage/memory"
)

func newTestService(t *testing.T) (*Service, domain.StockLedger) {
	t.Helper()

	sizes, err := domain.NewSizeSet(40, 41, 42)
	require.NoError(t, err)
	catalog := memory.NewCatalog(domain.Product{ID: 1, Name: "Кеды", PriceMinor: 5000, Sizes: sizes})
	ledger := memory.NewStockLedger()

	svc, err := NewService(ledger, catalog, domain.AvailabilityThresholds{}, nil)
	require.NoError(t, err)
	return svc, ledger
}

func TestService_AvailabilityIgnoresUnsellableSizes(t *testing.T) {
	ctx := context.Background()
	svc, ledger := newTestService(t)

	// Размер 43 не продаётся, его остаток не учитывается.
	require.NoError(t, ledger.Add(ctx, 1, 43, 10, 100))

	status, err := svc.Availability(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, domain.AvailabilityOutOfStock, status)

	require.NoError(t, svc.ReceiveStock(ctx, 1, 40, 2, 100))
	require.NoError(t, svc.ReceiveStock(ctx, 1, 41, 2, 100))
	status, err = svc.Availability(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, domain.AvailabilityLowStock, status)

	require.NoError(t, svc.ReceiveStock(ctx, 1, 42, 1, 100))
	status, err = svc.Availability(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, domain.AvailabilityInStock, status)

	quantities, err := svc.SizeQuantities(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, map[int]int{40: 2, 41: 2, 42: 1}, quantities)

	again, err := svc.SizeQuantities(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, quantities, again)
}

func TestService_CheckStockValidatesSize(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	qty, err := svc.CheckStock(ctx, 1, 40)
	require.NoError(t, err)
	require.Zero(t, qty)

	_, err = svc.CheckStock(ctx, 1, 39)
	require.ErrorIs(t, err, domain.ErrInvalidSize)

	_, err = svc.CheckStock(ctx, 2, 40)
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestService_AdminOperations(t *testing.T) {
	ctx := context.Background()
	svc, ledger := newTestService(t)

	require.ErrorIs(t, svc.ReceiveStock(ctx, 1, 40, -1, 100), domain.ErrInvalidAmount)
	require.ErrorIs(t, svc.ReceiveStock(ctx, 1, 50, 1, 100), domain.ErrInvalidSize)

	require.NoError(t, svc.SetStock(ctx, 1, 40, 7, 300))
	qty, err := ledger.GetQuantity(ctx, 1, 40)
	require.NoError(t, err)
	require.Equal(t, 7, qty)

	left, err := svc.WriteOff(ctx, 1, 40, 3)
	require.NoError(t, err)
	require.Equal(t, 4, left)

	_, err = svc.WriteOff(ctx, 1, 40, 5)
	var insufficient *domain.InsufficientStockError
	require.True(t, errors.As(err, &insufficient))
	require.Equal(t, 4, insufficient.Available)
	require.Equal(t, 5, insufficient.Requested)
}

func TestNewService_CustomThresholds(t *testing.T) {
	_, err := NewService(memory.NewStockLedger(), memory.NewCatalog(), domain.AvailabilityThresholds{LowStock: 3, InStock: 2}, nil)
	require.Error(t, err)

	svc, err := NewService(memory.NewStockLedger(), memory.NewCatalog(), domain.AvailabilityThresholds{LowStock: 2, InStock: 10}, nil)
	require.NoError(t, err)
	require.Equal(t, 10, svc.Thresholds().InStock)
}
