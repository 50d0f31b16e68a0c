package db

import (
	"context"

	"gearup/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TxRunner wraps a unit of work in one transaction. fn receives the
// transaction as DBTX so repositories join it transparently.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(tx DBTX) error) error
}

type poolTxRunner struct {
	pool *pgxpool.Pool
}

func NewTxRunner(pool *pgxpool.Pool) TxRunner {
	return &poolTxRunner{pool: pool}
}

func (r *poolTxRunner) WithinTx(ctx context.Context, fn func(tx DBTX) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return errs.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Wrap(err, "failed to commit transaction")
	}
	return nil
}
