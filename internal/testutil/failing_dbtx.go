package testutil

import (
	"context"
	"database/sql"
	"sync/atomic"

	"github.com/alexanderramin/wallplanner/internal/db"
)

// FailingDBTX wraps a DBTX and injects faults underneath a repository, to
// simulate a full disk or an unreadable database.
//
// ExecErr is returned from every ExecContext call after the first FailAfter
// calls. FailReads makes QueryRowContext run with a cancelled context, so
// Scan reports context.Canceled.
type FailingDBTX struct {
	db.DBTX
	ExecErr   error
	FailAfter int32
	FailReads bool

	execCalls atomic.Int32
}

func (f *FailingDBTX) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	n := f.execCalls.Add(1)
	if f.ExecErr != nil && n > f.FailAfter {
		return nil, f.ExecErr
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}

func (f *FailingDBTX) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	if f.FailReads {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		return f.DBTX.QueryRowContext(cancelled, query, args...)
	}
	return f.DBTX.QueryRowContext(ctx, query, args...)
}

// ExecCalls reports how many ExecContext calls were made.
func (f *FailingDBTX) ExecCalls() int32 {
	return f.execCalls.Load()
}
