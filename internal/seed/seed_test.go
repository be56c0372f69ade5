package seed_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/podstudio/internal/db"
	"github.com/nikolayk812/podstudio/internal/seed"
	"github.com/nikolayk812/podstudio/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_invalidOptions(t *testing.T) {
	tests := []struct {
		name      string
		opts      seed.Options
		wantError string
	}{
		{
			name:      "designs without designers: error",
			opts:      seed.Options{Designs: 1},
			wantError: "designs need at least one designer",
		},
		{
			name:      "reviews without customers: error",
			opts:      seed.Options{Designers: 1, Reviews: 1},
			wantError: "reviews need at least one customer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// validation happens before any query
			_, err := seed.Run(t.Context(), db.New(nil), tt.opts)
			require.EqualError(t, err, tt.wantError)
		})
	}
}

func TestRun(t *testing.T) {
	ctx := t.Context()

	container, err := testdb.Start(ctx)
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, container.Terminate())
	})

	pool, err := pgxpool.New(ctx, container.ConnStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	opts := seed.DefaultOptions()

	first := runAndRollback(ctx, t, pool, opts)
	assert.Equal(t, 6, first.Categories)
	assert.Len(t, first.Products, 7)
	assert.Len(t, first.Designers, opts.Designers)
	assert.Len(t, first.Customers, opts.Customers)
	assert.Len(t, first.Designs, opts.Designs)
	assert.Equal(t, opts.Reviews, first.Reviews)

	second := runAndRollback(ctx, t, pool, opts)
	assert.Equal(t, first, second, "same seed must produce the same data")

	opts.Seed++
	third := runAndRollback(ctx, t, pool, opts)
	assert.NotEqual(t, first.Designs, third.Designs)
}

func runAndRollback(ctx context.Context, t *testing.T, pool *pgxpool.Pool, opts seed.Options) seed.Result {
	t.Helper()

	tx, err := pool.Begin(ctx)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, tx.Rollback(ctx))
	}()

	result, err := seed.Run(ctx, db.New(tx), opts)
	require.NoError(t, err)

	return result
}
