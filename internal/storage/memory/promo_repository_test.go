package memory_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/storage/memory"
)

func limitedPromo(code string, limit int) domain.PromoCode {
	return domain.PromoCode{
		Code:            code,
		DiscountPercent: decimal.NewFromInt(10),
		Active:          true,
		UsageLimit:      &limit,
	}
}

func TestPromoRepository_RedeemUntilExhausted(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewPromoRepository()
	require.NoError(t, repo.Create(ctx, limitedPromo("TEST10", 1)))
	require.ErrorIs(t, repo.Create(ctx, limitedPromo("TEST10", 1)), domain.ErrPromoAlreadyExists)

	redeemed, err := repo.Redeem(ctx, "TEST10", time.Now())
	require.NoError(t, err)
	require.Equal(t, 1, redeemed.UsageCount)

	_, err = repo.Redeem(ctx, "TEST10", time.Now())
	require.ErrorIs(t, err, domain.ErrCodeExhausted)

	stored, err := repo.Get(ctx, "TEST10")
	require.NoError(t, err)
	require.Equal(t, 1, stored.UsageCount)

	require.NoError(t, repo.Release(ctx, "TEST10"))
	require.NoError(t, repo.Release(ctx, "TEST10"))
	stored, _ = repo.Get(ctx, "TEST10")
	require.Zero(t, stored.UsageCount, "release must not go below zero")
}

func TestPromoRepository_RejectionsDoNotMutate(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewPromoRepository()

	expired := limitedPromo("OLD", 5)
	past := time.Now().Add(-time.Hour)
	expired.ExpiresAt = &past
	require.NoError(t, repo.Create(ctx, expired))

	_, err := repo.Redeem(ctx, "OLD", time.Now())
	require.ErrorIs(t, err, domain.ErrCodeExpired)

	require.NoError(t, repo.SetActive(ctx, "OLD", false))
	_, err = repo.Redeem(ctx, "OLD", time.Now())
	require.ErrorIs(t, err, domain.ErrCodeInactive)

	_, err = repo.Redeem(ctx, "MISSING", time.Now())
	require.ErrorIs(t, err, domain.ErrPromoNotFound)

	stored, err := repo.Get(ctx, "OLD")
	require.NoError(t, err)
	require.Zero(t, stored.UsageCount)
}

func TestPromoRepository_ConcurrentRedeemRespectsLimit(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewPromoRepository()
	require.NoError(t, repo.Create(ctx, limitedPromo("FLASH", 3)))

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		exhausted atomic.Int32
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Redeem(ctx, "FLASH", time.Now())
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, domain.ErrCodeExhausted):
				exhausted.Add(1)
			}
		}()
	}
	wg.Wait()

	require.EqualValues(t, 3, succeeded.Load())
	require.EqualValues(t, 47, exhausted.Load())

	stored, err := repo.Get(ctx, "FLASH")
	require.NoError(t, err)
	require.Equal(t, 3, stored.UsageCount)
}

func TestPromoRepository_CreateValidates(t *testing.T) {
	repo := memory.NewPromoRepository()
	bad := limitedPromo("THIS-CODE-IS-WAY-TOO-LONG", 1)
	require.ErrorIs(t, repo.Create(context.Background(), bad), domain.ErrInvalidPromo)
}
