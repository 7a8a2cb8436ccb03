package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"gym-dashboard-service/internal/activity/core/domain"
)

// fakeResult implements sql.Result for tests.
type fakeResult struct {
	rowsAffected int64
}

func (f *fakeResult) LastInsertId() (int64, error) {
	return 0, errors.New("not implemented")
}

func (f *fakeResult) RowsAffected() (int64, error) {
	return f.rowsAffected, nil
}

// fakeRowScanner implements RowScanner for tests.
type fakeRowScanner struct {
	rows [][]any
	i    int
	err  error
}

func (f *fakeRowScanner) Next() bool {
	return f.i < len(f.rows)
}

func (f *fakeRowScanner) Scan(dest ...any) error {
	if f.i >= len(f.rows) {
		return errors.New("no more rows")
	}
	row := f.rows[f.i]
	if len(dest) != len(row) {
		return errors.New("dest length mismatch")
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case *int64:
			*d = row[i].(int64)
		case *string:
			*d = row[i].(string)
		case *time.Time:
			*d = row[i].(time.Time)
		default:
			return errors.New("unsupported dest type")
		}
	}
	f.i++
	return nil
}

func (f *fakeRowScanner) Err() error {
	return f.err
}

func (f *fakeRowScanner) Close() error {
	return nil
}

// fakeDB implements DB interface for tests.
type fakeDB struct {
	ExecFn    func(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryFn   func(ctx context.Context, query string, args ...any) (RowScanner, error)
	lastQuery string
	lastArgs  []any
}

func (f *fakeDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.lastQuery = query
	f.lastArgs = args
	if f.ExecFn != nil {
		return f.ExecFn(ctx, query, args...)
	}
	return &fakeResult{rowsAffected: 1}, nil
}

func (f *fakeDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	f.lastQuery = query
	f.lastArgs = args
	if f.QueryFn != nil {
		return f.QueryFn(ctx, query, args...)
	}
	return &fakeRowScanner{}, nil
}

// ------------------------------------------------------------
// INSERT
// ------------------------------------------------------------

func TestActivityRepository_Insert(t *testing.T) {
	db := &fakeDB{}
	repo := NewActivityRepository(db)

	e := &domain.LogEntry{
		Username: "user_1",
		Activity: "Logged out",
		Date:     time.Now().UTC(),
	}

	if err := repo.Insert(context.Background(), e); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(db.lastQuery, "INSERT INTO activity_logs") {
		t.Fatalf("unexpected query: %s", db.lastQuery)
	}
	if len(db.lastArgs) != 3 {
		t.Fatalf("expected 3 args, got %d", len(db.lastArgs))
	}
}

func TestActivityRepository_Insert_Error(t *testing.T) {
	db := &fakeDB{
		ExecFn: func(ctx context.Context, query string, args ...any) (sql.Result, error) {
			return nil, errors.New("db error")
		},
	}
	repo := NewActivityRepository(db)

	err := repo.Insert(context.Background(), &domain.LogEntry{Username: "u", Activity: "a", Date: time.Now()})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// ------------------------------------------------------------
// RECENT
// ------------------------------------------------------------

func TestActivityRepository_Recent(t *testing.T) {
	now := time.Now().UTC()
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			if !strings.Contains(query, "ORDER BY activity_date DESC") {
				t.Fatalf("expected newest-first ordering, query: %s", query)
			}
			if !strings.Contains(query, "LIMIT $1") {
				t.Fatalf("expected parameterized limit, query: %s", query)
			}
			return &fakeRowScanner{rows: [][]any{
				{int64(2), "admin", "Logged in successfully (Role: admin)", now},
				{int64(1), "user_1", "Logged out", now.Add(-time.Minute)},
			}}, nil
		},
	}
	repo := NewActivityRepository(db)

	entries, err := repo.Recent(context.Background(), 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != 2 || entries[0].Username != "admin" {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if db.lastArgs[0] != 50 {
		t.Fatalf("expected limit arg 50, got %v", db.lastArgs[0])
	}
}

func TestActivityRepository_Recent_RowsErr(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{err: errors.New("cursor error")}, nil
		},
	}
	repo := NewActivityRepository(db)

	if _, err := repo.Recent(context.Background(), 10); err == nil {
		t.Fatal("expected error, got nil")
	}
}
