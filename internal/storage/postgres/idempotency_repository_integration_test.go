package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

func TestIdempotencyRepository_PostgresClaimAndComplete(t *testing.T) {
	repo := NewIdempotencyRepository(integrationStore(t))
	ctx := context.Background()
	ttl := time.Now().UTC().Add(2 * time.Hour).Round(time.Second)

	created, err := repo.CreateProcessing(ctx, " checkout-key-1 ", "hash-1", ttl)
	require.NoError(t, err)
	require.Equal(t, "checkout-key-1", created.Key)
	require.Equal(t, domain.IdempotencyStatusProcessing, created.Status)

	require.NoError(t, repo.MarkDone(ctx, "checkout-key-1", []byte(`{"order_number":"K7M2QX9P"}`), 201))

	got, err := repo.Get(ctx, "checkout-key-1")
	require.NoError(t, err)
	require.Equal(t, domain.IdempotencyStatusDone, got.Status)
	require.Equal(t, 201, got.HTTPStatus)
	require.JSONEq(t, `{"order_number":"K7M2QX9P"}`, string(got.ResponseBody))
	require.True(t, got.TTLAt.Equal(ttl), "ttl mismatch: expected %s, got %s", ttl, got.TTLAt)

	require.ErrorIs(t, repo.MarkFailed(ctx, "missing", nil, 409), domain.ErrIdempotencyKeyNotFound)
	_, err = repo.Get(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrIdempotencyKeyNotFound)
	_, err = repo.CreateProcessing(ctx, "", "hash", ttl)
	require.ErrorIs(t, err, domain.ErrIdempotencyKeyRequired)
}

func TestIdempotencyRepository_PostgresConflictReturnsExistingRecord(t *testing.T) {
	repo := NewIdempotencyRepository(integrationStore(t))
	ctx := context.Background()
	ttl := time.Now().UTC().Add(time.Hour)

	_, err := repo.CreateProcessing(ctx, "checkout-key-2", "hash-a", ttl)
	require.NoError(t, err)
	require.NoError(t, repo.MarkFailed(ctx, "checkout-key-2", []byte(`{"kind":"insufficient_stock"}`), 409))

	existing, err := repo.CreateProcessing(ctx, "checkout-key-2", "hash-a", ttl)
	require.ErrorIs(t, err, domain.ErrIdempotencyKeyAlreadyExists)
	require.Equal(t, domain.IdempotencyStatusFailed, existing.Status)
	require.Equal(t, 409, existing.HTTPStatus)

	_, err = repo.CreateProcessing(ctx, "checkout-key-2", "hash-b", ttl)
	require.ErrorIs(t, err, domain.ErrIdempotencyHashMismatch)
}

func TestIdempotencyRepository_PostgresReusesExpiredKey(t *testing.T) {
	repo := NewIdempotencyRepository(integrationStore(t))
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := repo.CreateProcessing(ctx, "checkout-key-stale", "hash-old", now.Add(-time.Minute))
	require.NoError(t, err)
	require.NoError(t, repo.MarkDone(ctx, "checkout-key-stale", []byte(`{"order_number":"OLD"}`), 201))

	created, err := repo.CreateProcessing(ctx, "checkout-key-stale", "hash-new", now.Add(time.Hour))
	require.NoError(t, err)
	require.Equal(t, domain.IdempotencyStatusProcessing, created.Status)

	got, err := repo.Get(ctx, "checkout-key-stale")
	require.NoError(t, err)
	require.Equal(t, "hash-new", got.RequestHash)
	require.Empty(t, got.ResponseBody)
	require.Zero(t, got.HTTPStatus)
}

func TestIdempotencyRepository_PostgresDeleteReleasesKey(t *testing.T) {
	repo := NewIdempotencyRepository(integrationStore(t))
	ctx := context.Background()
	ttl := time.Now().UTC().Add(time.Hour)

	_, err := repo.CreateProcessing(ctx, "checkout-key-release", "hash-a", ttl)
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, "checkout-key-release"))

	_, err = repo.Get(ctx, "checkout-key-release")
	require.ErrorIs(t, err, domain.ErrIdempotencyKeyNotFound)

	again, err := repo.CreateProcessing(ctx, "checkout-key-release", "hash-a", ttl)
	require.NoError(t, err)
	require.Equal(t, domain.IdempotencyStatusProcessing, again.Status)

	require.ErrorIs(t, repo.Delete(ctx, "missing"), domain.ErrIdempotencyKeyNotFound)
	require.ErrorIs(t, repo.Delete(ctx, " "), domain.ErrIdempotencyKeyRequired)
}

func TestIdempotencyRepository_PostgresDeleteExpiredOldestFirst(t *testing.T) {
	repo := NewIdempotencyRepository(integrationStore(t))
	ctx := context.Background()
	now := time.Now().UTC()

	keys := []struct {
		key string
		ttl time.Duration
	}{
		{"oldest", -5 * time.Minute},
		{"older", -4 * time.Minute},
		{"recent", -3 * time.Minute},
		{"active", time.Hour},
	}
	for _, k := range keys {
		_, err := repo.CreateProcessing(ctx, k.key, "h", now.Add(k.ttl))
		require.NoError(t, err)
	}

	removed, err := repo.DeleteExpired(ctx, now, 2)
	require.NoError(t, err)
	require.Equal(t, 2, removed)

	_, err = repo.Get(ctx, "oldest")
	require.ErrorIs(t, err, domain.ErrIdempotencyKeyNotFound)
	_, err = repo.Get(ctx, "recent")
	require.NoError(t, err)

	removed, err = repo.DeleteExpired(ctx, now, 0)
	require.NoError(t, err)
	require.Equal(t, 1, removed)

	_, err = repo.Get(ctx, "active")
	require.NoError(t, err)
}
