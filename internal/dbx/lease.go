// Package dbx runs the Postgres lot store's lease transaction. In that store a lot's
// exclusive lease is its row lock, so the lease lives exactly as long as the transaction
// that took it: WithLease bounds lock waits with a transaction-local lock_timeout and
// ends the lease by committing fn's writes or rolling all of them back.
package dbx

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// DBTX is the subset of database/sql used by the stores.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SetLocalLockTimeout limits how long statements in tx wait for row locks. The setting
// is dropped when tx ends. A non-positive d leaves the server default in place.
func SetLocalLockTimeout(ctx context.Context, tx DBTX, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	ms := d.Milliseconds()
	if ms == 0 {
		ms = 1
	}
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", ms)); err != nil {
		return fmt.Errorf("set lock timeout: %w", err)
	}
	return nil
}

// WithLease begins a transaction, applies lockTimeout to it and runs fn. fn's writes are
// committed when it returns nil and rolled back otherwise; a failed rollback is joined to
// fn's error. A panic inside fn rolls back and is rethrown.
//
//	err := dbx.WithLease(ctx, db, 2*time.Second, func(ctx context.Context, tx dbx.DBTX) error {
//	    row := tx.QueryRowContext(ctx, "SELECT ... FROM lots WHERE id = $1 FOR UPDATE", lotID)
//	    ...
//	})
func WithLease(ctx context.Context, db *sql.DB, lockTimeout time.Duration, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil && !errors.Is(rerr, sql.ErrTxDone) {
				err = errors.Join(err, fmt.Errorf("rollback tx: %w", rerr))
			}
			return
		}
		if cerr := tx.Commit(); cerr != nil {
			err = fmt.Errorf("commit tx: %w", cerr)
		}
	}()

	if err = SetLocalLockTimeout(ctx, tx, lockTimeout); err != nil {
		return err
	}
	err = fn(ctx, tx)
	return err
}
