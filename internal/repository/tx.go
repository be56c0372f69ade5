package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/podstudio/internal/db"
)

// withTx runs fn against queries bound to a new transaction on pool at the given isolation
// level. A repository built from an outer transaction has a nil pool, in which case fn joins
// that transaction and keeps its isolation level.
func withTx[T any](
	ctx context.Context,
	pool *pgxpool.Pool,
	q *db.Queries,
	isoLevel pgx.TxIsoLevel,
	fn func(q *db.Queries) (T, error),
) (_ T, txErr error) {
	var zero T

	if pool == nil {
		return fn(q)
	}

	tx, err := pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: isoLevel})
	if err != nil {
		return zero, fmt.Errorf("pool.BeginTx: %w", err)
	}

	defer func() {
		if txErr == nil {
			return
		}
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			txErr = errors.Join(txErr, fmt.Errorf("tx.Rollback: %w", rollbackErr))
		}
	}()

	result, err := fn(q.WithTx(tx))
	if err != nil {
		return zero, err
	}

	if err := tx.Commit(ctx); err != nil {
		return zero, fmt.Errorf("tx.Commit: %w", err)
	}

	return result, nil
}
