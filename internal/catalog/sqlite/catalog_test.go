package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

func openTestCatalog(t *testing.T) *Catalog {
	t.Helper()

	catalog, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = catalog.Close() })
	return catalog
}

func TestCatalog_PutAndProduct(t *testing.T) {
	catalog := openTestCatalog(t)
	ctx := context.Background()

	sizes, err := domain.NewSizeSet(1, 40, 64)
	require.NoError(t, err)

	require.NoError(t, catalog.Put(ctx, domain.Product{
		ID:         10,
		Name:       "Кроссовки",
		PriceMinor: 799000,
		ImagePath:  "/img/10.jpg",
		Sizes:      sizes,
	}))

	got, err := catalog.Product(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, "Кроссовки", got.Name)
	require.EqualValues(t, 799000, got.PriceMinor)
	require.True(t, got.Sizes.Has(64))
	require.True(t, got.Sizes.Has(1))
	require.False(t, got.Sizes.Has(41))

	_, err = catalog.Product(ctx, 11)
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestCatalog_PutReplacesAndLists(t *testing.T) {
	catalog := openTestCatalog(t)
	ctx := context.Background()

	require.NoError(t, catalog.Put(ctx, domain.Product{ID: 2, Name: "old", PriceMinor: 100}))
	require.NoError(t, catalog.Put(ctx, domain.Product{ID: 1, Name: "first", PriceMinor: 50}))
	require.NoError(t, catalog.Put(ctx, domain.Product{ID: 2, Name: "new", PriceMinor: 150}))
	require.ErrorIs(t, catalog.Put(ctx, domain.Product{ID: 3, PriceMinor: -1}), domain.ErrInvalidAmount)

	products, err := catalog.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	require.EqualValues(t, 1, products[0].ID)
	require.Equal(t, "new", products[1].Name)
	require.EqualValues(t, 150, products[1].PriceMinor)
}
