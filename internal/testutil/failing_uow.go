package testutil

import (
	"context"
	"database/sql"
	"strings"
	"sync/atomic"

	"github.com/alexanderramin/earthmove/internal/db"
)

// FailingUoW runs the callback in a real transaction and fails one write
// with Err. The failing write is the first whose SQL contains Match, or the
// FailOn-th write (counting from 1) when Match is empty. Reads are never
// failed or counted.
//
// Adding a movement writes, in order: coordinates, volume, terrain, audit,
// movement. Editing writes volume, terrain, coordinates, movement, audit.
type FailingUoW struct {
	DB     *sql.DB
	Match  string
	FailOn int32
	Err    error
}

func (u *FailingUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return db.NewSQLiteUnitOfWork(u.DB).WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &failingExec{DBTX: tx, match: u.Match, failOn: u.FailOn, err: u.Err})
	})
}

type failingExec struct {
	db.DBTX
	count  atomic.Int32
	match  string
	failOn int32
	err    error
}

func (f *failingExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	n := f.count.Add(1)
	if f.match != "" && strings.Contains(query, f.match) {
		return nil, f.err
	}
	if f.match == "" && n == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
