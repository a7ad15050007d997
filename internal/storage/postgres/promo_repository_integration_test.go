package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

func TestPromoRepository_PostgresLifecycle(t *testing.T) {
	store := integrationStore(t)
	repo := NewPromoRepository(store)
	ctx := context.Background()
	now := time.Now().UTC()

	limit := 2
	maxDiscount := int64(50000)
	promo := domain.PromoCode{
		Code:             "SPRING10",
		DiscountPercent:  decimal.NewFromInt(10),
		MaxDiscountMinor: &maxDiscount,
		Active:           true,
		UsageLimit:       &limit,
	}
	require.NoError(t, repo.Create(ctx, promo))
	require.ErrorIs(t, repo.Create(ctx, promo), domain.ErrPromoAlreadyExists)

	got, err := repo.Get(ctx, "SPRING10")
	require.NoError(t, err)
	require.True(t, got.DiscountPercent.Equal(decimal.NewFromInt(10)))
	require.NotNil(t, got.MaxDiscountMinor)
	require.Equal(t, maxDiscount, *got.MaxDiscountMinor)

	redeemed, err := repo.Redeem(ctx, "SPRING10", now)
	require.NoError(t, err)
	require.Equal(t, 1, redeemed.UsageCount)

	_, err = repo.Redeem(ctx, "SPRING10", now)
	require.NoError(t, err)
	_, err = repo.Redeem(ctx, "SPRING10", now)
	require.ErrorIs(t, err, domain.ErrCodeExhausted)

	require.NoError(t, repo.Release(ctx, "SPRING10"))
	got, err = repo.Get(ctx, "SPRING10")
	require.NoError(t, err)
	require.Equal(t, 1, got.UsageCount)

	require.NoError(t, repo.SetActive(ctx, "SPRING10", false))
	_, err = repo.Redeem(ctx, "SPRING10", now)
	require.ErrorIs(t, err, domain.ErrCodeInactive)

	_, err = repo.Get(ctx, "MISSING")
	require.ErrorIs(t, err, domain.ErrPromoNotFound)
	require.ErrorIs(t, repo.Release(ctx, "MISSING"), domain.ErrPromoNotFound)
}

func TestPromoRepository_PostgresExpired(t *testing.T) {
	store := integrationStore(t)
	repo := NewPromoRepository(store)
	ctx := context.Background()

	expiresAt := time.Now().UTC().Add(-time.Hour)
	require.NoError(t, repo.Create(ctx, domain.PromoCode{
		Code:            "OLD",
		DiscountPercent: decimal.NewFromInt(5),
		Active:          true,
		ExpiresAt:       &expiresAt,
	}))

	_, err := repo.Redeem(ctx, "OLD", time.Now().UTC())
	require.ErrorIs(t, err, domain.ErrCodeExpired)
}

func TestPromoRepository_PostgresConcurrentRedeemRespectsLimit(t *testing.T) {
	store := integrationStore(t)
	repo := NewPromoRepository(store)
	ctx := context.Background()

	limit := 3
	require.NoError(t, repo.Create(ctx, domain.PromoCode{
		Code:            "RUSH",
		DiscountPercent: decimal.NewFromInt(15),
		Active:          true,
		UsageLimit:      &limit,
	}))

	const workers = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.Redeem(ctx, "RUSH", time.Now().UTC()); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, limit, succeeded)
	got, err := repo.Get(ctx, "RUSH")
	require.NoError(t, err)
	require.Equal(t, limit, got.UsageCount)
}
