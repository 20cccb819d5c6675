package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	"github.com/alextm0/identity-shift-sub002/internal/db"
)

// FailingWriteUoW runs the callback in a real transaction but makes the
// FailOn-th write (ExecContext, counted from 1) return Err. Reads are not
// counted. Used to prove multi-write operations roll back as a unit.
type FailingWriteUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

func (u *FailingWriteUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := &failingWrites{DBTX: tx, failOn: u.FailOn, err: u.Err}
	if err := fn(ctx, wrapped); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type failingWrites struct {
	db.DBTX
	writes atomic.Int32
	failOn int32
	err    error
}

func (f *failingWrites) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.writes.Add(1) == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
