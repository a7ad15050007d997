package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/storage/memory"
)

func TestIdempotencyRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewIdempotencyRepository()
	ttl := time.Now().UTC().Add(2 * time.Hour).Round(time.Second)

	created, err := repo.CreateProcessing(ctx, "  checkout-key-1 ", "hash-1", ttl)
	require.NoError(t, err)
	require.Equal(t, "checkout-key-1", created.Key)
	require.Equal(t, domain.IdempotencyStatusProcessing, created.Status)

	got, err := repo.Get(ctx, "checkout-key-1")
	require.NoError(t, err)
	require.Equal(t, "hash-1", got.RequestHash)
	require.True(t, got.TTLAt.Equal(ttl))

	_, err = repo.Get(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrIdempotencyKeyNotFound)
	_, err = repo.Get(ctx, " ")
	require.ErrorIs(t, err, domain.ErrIdempotencyKeyRequired)
}

func TestIdempotencyRepository_DefaultTTL(t *testing.T) {
	repo := memory.NewIdempotencyRepository()

	created, err := repo.CreateProcessing(context.Background(), "checkout-key-ttl", "hash", time.Time{})
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(domain.DefaultIdempotencyTTL), created.TTLAt, time.Minute)
}

func TestIdempotencyRepository_ConflictReturnsExistingRecord(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewIdempotencyRepository()
	ttl := time.Now().UTC().Add(time.Hour)

	_, err := repo.CreateProcessing(ctx, "checkout-key-2", "hash-a", ttl)
	require.NoError(t, err)
	require.NoError(t, repo.MarkDone(ctx, "checkout-key-2", []byte(`{"order_number":"K7M2QX9P"}`), 201))

	existing, err := repo.CreateProcessing(ctx, "checkout-key-2", "hash-a", ttl)
	require.ErrorIs(t, err, domain.ErrIdempotencyKeyAlreadyExists)
	require.Equal(t, domain.IdempotencyStatusDone, existing.Status)
	require.JSONEq(t, `{"order_number":"K7M2QX9P"}`, string(existing.ResponseBody))

	_, err = repo.CreateProcessing(ctx, "checkout-key-2", "hash-b", ttl)
	require.ErrorIs(t, err, domain.ErrIdempotencyHashMismatch)
}

func TestIdempotencyRepository_ExpiredKeyCanBeReused(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewIdempotencyRepository()

	_, err := repo.CreateProcessing(ctx, "checkout-key-3", "hash-old", time.Now().UTC().Add(-time.Second))
	require.NoError(t, err)
	require.NoError(t, repo.MarkFailed(ctx, "checkout-key-3", []byte(`{"kind":"insufficient_stock"}`), 409))

	reused, err := repo.CreateProcessing(ctx, "checkout-key-3", "hash-new", time.Now().UTC().Add(time.Hour))
	require.NoError(t, err)
	require.Equal(t, domain.IdempotencyStatusProcessing, reused.Status)
	require.Empty(t, reused.ResponseBody)
	require.Zero(t, reused.HTTPStatus)
}

func TestIdempotencyRepository_DeleteReleasesKey(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewIdempotencyRepository()
	ttl := time.Now().UTC().Add(time.Hour)

	_, err := repo.CreateProcessing(ctx, "checkout-key-release", "hash-a", ttl)
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, " checkout-key-release "))

	_, err = repo.Get(ctx, "checkout-key-release")
	require.ErrorIs(t, err, domain.ErrIdempotencyKeyNotFound)

	again, err := repo.CreateProcessing(ctx, "checkout-key-release", "hash-a", ttl)
	require.NoError(t, err)
	require.Equal(t, domain.IdempotencyStatusProcessing, again.Status)

	require.ErrorIs(t, repo.Delete(ctx, "missing"), domain.ErrIdempotencyKeyNotFound)
	require.ErrorIs(t, repo.Delete(ctx, ""), domain.ErrIdempotencyKeyRequired)
}

func TestIdempotencyRepository_MarkFailedStoresCopy(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewIdempotencyRepository()

	_, err := repo.CreateProcessing(ctx, "checkout-key-4", "hash", time.Now().UTC().Add(time.Hour))
	require.NoError(t, err)

	body := []byte(`{"kind":"code_exhausted"}`)
	require.NoError(t, repo.MarkFailed(ctx, "checkout-key-4", body, 422))
	body[2] = 'X'

	got, err := repo.Get(ctx, "checkout-key-4")
	require.NoError(t, err)
	require.Equal(t, domain.IdempotencyStatusFailed, got.Status)
	require.Equal(t, 422, got.HTTPStatus)
	require.JSONEq(t, `{"kind":"code_exhausted"}`, string(got.ResponseBody))

	require.ErrorIs(t, repo.MarkDone(ctx, "unknown", nil, 201), domain.ErrIdempotencyKeyNotFound)
}

func TestIdempotencyRepository_DeleteExpiredOldestFirst(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewIdempotencyRepository()
	now := time.Now().UTC()

	_, err := repo.CreateProcessing(ctx, "oldest", "h1", now.Add(-3*time.Hour))
	require.NoError(t, err)
	_, err = repo.CreateProcessing(ctx, "older", "h2", now.Add(-2*time.Hour))
	require.NoError(t, err)
	_, err = repo.CreateProcessing(ctx, "recent", "h3", now.Add(-time.Minute))
	require.NoError(t, err)
	_, err = repo.CreateProcessing(ctx, "active", "h4", now.Add(time.Hour))
	require.NoError(t, err)

	removed, err := repo.DeleteExpired(ctx, now, 2)
	require.NoError(t, err)
	require.Equal(t, 2, removed)

	_, err = repo.Get(ctx, "oldest")
	require.ErrorIs(t, err, domain.ErrIdempotencyKeyNotFound)
	_, err = repo.Get(ctx, "older")
	require.ErrorIs(t, err, domain.ErrIdempotencyKeyNotFound)
	_, err = repo.Get(ctx, "recent")
	require.NoError(t, err)

	removed, err = repo.DeleteExpired(ctx, time.Time{}, 0)
	require.NoError(t, err)
	require.Equal(t, 1, removed)

	_, err = repo.Get(ctx, "active")
	require.NoError(t, err)
}
