package repository

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"staff-match/internal/database"

	"github.com/google/uuid"
)

type call struct {
	query string
	args  []any
}

// fakeDB records statements; QueryRow scans a fresh uuid unless rowErr is set.
type fakeDB struct {
	mu        sync.Mutex
	calls     []call
	rowErr    error
	commits   int
	rollbacks int
}

func (f *fakeDB) record(q string, args []any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{query: q, args: args})
}

func (f *fakeDB) Exec(_ context.Context, q string, args ...any) (int64, error) {
	f.record(q, args)
	return 1, nil
}

func (f *fakeDB) Query(_ context.Context, q string, args ...any) (database.Rows, error) {
	f.record(q, args)
	return emptyRows{}, nil
}

func (f *fakeDB) QueryRow(_ context.Context, q string, args ...any) database.Row {
	f.record(q, args)
	return fakeRow{err: f.rowErr}
}

func (f *fakeDB) Ping(context.Context) error { return nil }
func (f *fakeDB) Close() error               { return nil }
func (f *fakeDB) SQLDB() *sql.DB             { return nil }

func (f *fakeDB) Begin(context.Context) (database.Tx, error) {
	return &fakeTx{db: f}, nil
}

type fakeTx struct {
	db   *fakeDB
	done bool
}

func (t *fakeTx) Exec(ctx context.Context, q string, args ...any) (int64, error) {
	return t.db.Exec(ctx, q, args...)
}

func (t *fakeTx) Query(ctx context.Context, q string, args ...any) (database.Rows, error) {
	return t.db.Query(ctx, q, args...)
}

func (t *fakeTx) QueryRow(ctx context.Context, q string, args ...any) database.Row {
	return t.db.QueryRow(ctx, q, args...)
}

func (t *fakeTx) Commit(context.Context) error {
	t.done = true
	t.db.commits++
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	if t.done {
		return nil
	}
	t.done = true
	t.db.rollbacks++
	return nil
}

type fakeRow struct {
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for _, d := range dest {
		switch v := d.(type) {
		case *uuid.UUID:
			*v = uuid.New()
		case *int:
			*v = 1
		default:
			return errors.New("fakeRow: unsupported scan target")
		}
	}
	return nil
}

type emptyRows struct{}

func (emptyRows) Close()            {}
func (emptyRows) Next() bool        { return false }
func (emptyRows) Scan(...any) error { return nil }
func (emptyRows) Err() error        { return nil }
