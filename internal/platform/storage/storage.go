// Package storage is a namespaced key-value store on SQLite. Values are JSON
// documents; every write is one transaction so a read-modify-write through
// Update is atomic even across processes sharing the same database file.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SyncArea mirrors the extension's synced storage area, where stats, settings
// and install bookkeeping live under their own keys.
const SyncArea = "sync"

type DB struct {
	db *sql.DB
}

func Open(dbPath string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	dsn := "file:" + dbPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_txlock=immediate"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &DB{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *DB) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS kv (
  area TEXT NOT NULL,
  key TEXT NOT NULL,
  value TEXT NOT NULL,
  updated_at TEXT NOT NULL,
  PRIMARY KEY (area, key)
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create kv table: %w", err)
	}
	return nil
}

func (s *DB) Close() error {
	return s.db.Close()
}

// Area returns the key space named area.
func (s *DB) Area(area string) *Area {
	return &Area{db: s.db, area: area}
}

type Area struct {
	db   *sql.DB
	area string
}

// Get decodes key into dst and reports whether the key exists.
func (a *Area) Get(ctx context.Context, key string, dst any) (bool, error) {
	raw, found, err := a.read(ctx, a.db, key)
	if err != nil || !found {
		return found, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return true, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// Set writes every entry of values in one transaction. Last write wins.
func (a *Area) Set(ctx context.Context, values map[string]any) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin set: %w", err)
	}
	defer func() { _ = tx.Rollback() }()
	for key, value := range values {
		payload, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encode %s: %w", key, err)
		}
		if err := a.write(ctx, tx, key, payload); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit set: %w", err)
	}
	return nil
}

// Has reports whether key exists.
func (a *Area) Has(ctx context.Context, key string) (bool, error) {
	_, found, err := a.read(ctx, a.db, key)
	return found, err
}

func (a *Area) Remove(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		if _, err := a.db.ExecContext(ctx, `DELETE FROM kv WHERE area = ? AND key = ?`, a.area, key); err != nil {
			return fmt.Errorf("remove %s: %w", key, err)
		}
	}
	return nil
}

// Update runs fn against the current value of key inside one write
// transaction and stores what fn returns.
func Update[T any](ctx context.Context, a *Area, key string, fn func(current T, found bool) (T, error)) (T, error) {
	var zero T
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return zero, fmt.Errorf("begin update: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	raw, found, err := a.read(ctx, tx, key)
	if err != nil {
		return zero, err
	}
	var current T
	if found {
		if err := json.Unmarshal(raw, &current); err != nil {
			return zero, fmt.Errorf("decode %s: %w", key, err)
		}
	}
	next, err := fn(current, found)
	if err != nil {
		return zero, err
	}
	payload, err := json.Marshal(next)
	if err != nil {
		return zero, fmt.Errorf("encode %s: %w", key, err)
	}
	if err := a.write(ctx, tx, key, payload); err != nil {
		return zero, err
	}
	if err := tx.Commit(); err != nil {
		return zero, fmt.Errorf("commit update: %w", err)
	}
	return next, nil
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (a *Area) read(ctx context.Context, q queryer, key string) ([]byte, bool, error) {
	var value string
	err := q.QueryRowContext(ctx, `SELECT value FROM kv WHERE area = ? AND key = ?`, a.area, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", key, err)
	}
	return []byte(value), true, nil
}

func (a *Area) write(ctx context.Context, e execer, key string, payload []byte) error {
	const stmt = `
INSERT INTO kv (area, key, value, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(area, key) DO UPDATE SET
  value=excluded.value,
  updated_at=excluded.updated_at;
`
	if _, err := e.ExecContext(ctx, stmt, a.area, key, string(payload), time.Now().UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
