package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func requireSchemaVersion(t *testing.T, store *Store, wantVersion int64, wantCount int) {
	t.Helper()

	version, count, err := store.MigrationStatus(context.Background())
	require.NoError(t, err)
	require.Equal(t, wantVersion, version)
	require.Equal(t, wantCount, count)
}

func TestMigrator_PostgresUpDownCycle(t *testing.T) {
	store := rawIntegrationStore(t)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	require.NoError(t, store.MigrateDown(ctx, 100))
	requireSchemaVersion(t, store, 0, 0)

	pending, err := store.PendingMigrations(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"0001_stock_and_promo", "0002_orders", "0003_messaging"}, pending)

	require.NoError(t, store.MigrateUp(ctx, 1))
	requireSchemaVersion(t, store, 1, 1)

	require.NoError(t, store.MigrateUp(ctx, 0))
	requireSchemaVersion(t, store, 3, 3)

	// Повторный up ничего не меняет.
	require.NoError(t, store.MigrateUp(ctx, 0))
	requireSchemaVersion(t, store, 3, 3)
	pending, err = store.PendingMigrations(ctx)
	require.NoError(t, err)
	require.Empty(t, pending)

	require.NoError(t, store.MigrateDown(ctx, 0))
	requireSchemaVersion(t, store, 2, 2)

	require.NoError(t, store.MigrateDown(ctx, 2))
	requireSchemaVersion(t, store, 0, 0)
	require.NoError(t, store.MigrateDown(ctx, 1), "down on empty schema is a no-op")

	require.NoError(t, store.MigrateUp(ctx, 0))
}

func TestMigrator_PostgresDetectsDrift(t *testing.T) {
	store := integrationStore(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := store.DB().ExecContext(ctx, `UPDATE schema_migrations SET checksum = 'edited' WHERE version = 1`)
	require.NoError(t, err)
	t.Cleanup(func() {
		plan, err := parseMigrations(embeddedMigrations)
		if err == nil {
			_, _ = store.DB().Exec(`UPDATE schema_migrations SET checksum = $1 WHERE version = 1`, plan[0].checksum)
		}
	})

	require.ErrorIs(t, store.MigrateUp(ctx, 0), ErrMigrationDrift)
}
