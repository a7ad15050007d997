package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/storefront/internal/app"
	"github.com/vladislavdragonenkov/storefront/internal/storage/postgres"
)

type fakeMigrator struct {
	upSteps   []int
	downSteps []int
	pending   []string
	version   int64
	applied   int
	err       error
}

func (f *fakeMigrator) MigrateUp(_ context.Context, steps int) error {
	f.upSteps = append(f.upSteps, steps)
	return f.err
}

func (f *fakeMigrator) MigrateDown(_ context.Context, steps int) error {
	f.downSteps = append(f.downSteps, steps)
	return f.err
}

func (f *fakeMigrator) MigrationStatus(context.Context) (int64, int, error) {
	return f.version, f.applied, nil
}

func (f *fakeMigrator) PendingMigrations(context.Context) ([]string, error) {
	return f.pending, f.err
}

func envOf(values map[string]string) app.EnvLookup {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestParseOptions(t *testing.T) {
	opts, err := parseOptions([]string{"-direction", " DOWN ", "-steps", "2"}, envOf(map[string]string{
		app.EnvPostgresDSN: " postgres://shop@localhost/shop ",
	}))
	require.NoError(t, err)
	require.Equal(t, "down", opts.direction)
	require.Equal(t, 2, opts.steps)
	require.Equal(t, "postgres://shop@localhost/shop", opts.dsn)
	require.Equal(t, defaultTimeout, opts.timeout)

	opts, err = parseOptions([]string{"-dsn", "postgres://flag", "-timeout", "5s"}, envOf(map[string]string{
		app.EnvPostgresDSN: "postgres://env",
	}))
	require.NoError(t, err)
	require.Equal(t, "postgres://flag", opts.dsn, "flag wins over environment")
	require.Equal(t, 5*time.Second, opts.timeout)
}

func TestParseOptions_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{name: "missing dsn", args: nil},
		{name: "negative steps", args: []string{"-dsn", "x", "-steps", "-1"}},
		{name: "unknown direction", args: []string{"-dsn", "x", "-direction", "sideways"}},
		{name: "unknown flag", args: []string{"-dsn", "x", "-force"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseOptions(tt.args, envOf(tt.env))
			require.Error(t, err)
		})
	}
}

func TestExecute(t *testing.T) {
	t.Run("up applies requested steps", func(t *testing.T) {
		m := &fakeMigrator{version: 3, applied: 3}
		var out bytes.Buffer
		require.NoError(t, execute(context.Background(), m, options{direction: "up"}, &out))
		require.Equal(t, []int{0}, m.upSteps)
		require.Equal(t, "migrate up ok: version=3 applied=3\n", out.String())
	})

	t.Run("down defaults to one step", func(t *testing.T) {
		m := &fakeMigrator{version: 2, applied: 2}
		var out bytes.Buffer
		require.NoError(t, execute(context.Background(), m, options{direction: "down"}, &out))
		require.Equal(t, []int{1}, m.downSteps)
	})

	t.Run("status only reports", func(t *testing.T) {
		m := &fakeMigrator{version: 4, applied: 4}
		var out bytes.Buffer
		require.NoError(t, execute(context.Background(), m, options{direction: "status"}, &out))
		require.Empty(t, m.upSteps)
		require.Empty(t, m.downSteps)
		require.Contains(t, out.String(), "version=4")
	})

	t.Run("pending lists names", func(t *testing.T) {
		m := &fakeMigrator{pending: []string{"0004_promo_codes", "0005_baskets"}}
		var out bytes.Buffer
		require.NoError(t, execute(context.Background(), m, options{direction: "pending"}, &out))
		require.Equal(t, "0004_promo_codes\n0005_baskets\n", out.String())

		out.Reset()
		require.NoError(t, execute(context.Background(), &fakeMigrator{}, options{direction: "pending"}, &out))
		require.Equal(t, "no pending migrations\n", out.String())
	})

	t.Run("errors are wrapped", func(t *testing.T) {
		boom := errors.New("boom")
		err := execute(context.Background(), &fakeMigrator{err: boom}, options{direction: "up"}, &bytes.Buffer{})
		require.ErrorIs(t, err, boom)
	})
}

func TestExecute_Postgres(t *testing.T) {
	dsn := strings.TrimSpace(os.Getenv("SHOP_POSTGRES_TEST_DSN"))
	if dsn == "" {
		t.Skip("postgres dsn is not available")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := postgres.Open(ctx, dsn)
	if err != nil {
		t.Skipf("postgres is not available: %v", err)
	}
	defer store.Close()

	var out bytes.Buffer
	require.NoError(t, execute(ctx, store, options{direction: "up"}, &out))
	require.Contains(t, out.String(), "migrate up ok")

	out.Reset()
	require.NoError(t, execute(ctx, store, options{direction: "pending"}, &out))
	require.Equal(t, "no pending migrations\n", out.String())
}
