// Package sqlite implements the persistent store and the resume repository
// on an embedded SQLite database. The database file is the durable binary
// snapshot: the store runs in WAL mode and checkpoints the log back into the
// main file after every mutation, so the snapshot on disk is always current.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"go-resume-builder/internal/repository/sqlite/migrations"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Store owns the SQLite connection. It is single-owner by contract: exactly
// one process opens the file, and callers serialize writes above this layer.
type Store struct {
	db   *sql.DB
	path string
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// Open loads the database file at path, creating it (and its directory) when
// absent, and applies all pending schema migrations. It is idempotent: every
// migration runs once, recorded in goose's version table. An error here is
// fatal to the application.
func Open(ctx context.Context, path string) (*Store, error) {
	s := &Store{path: path}
	if err := s.open(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) open(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	dsn := "file:" + s.path +
		"?_pragma=foreign_keys(1)" +
		"&_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(FULL)" +
		"&_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	// One connection: the schema is tiny and SQLite writes are serialized
	// anyway, so a pool only invites SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if err := s.migrate(ctx, db); err != nil {
		db.Close()
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	s.db = db
	return nil
}

func (s *Store) migrate(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}

// Exec runs a mutating statement. All inputs must be bound parameters.
func (s *Store) Exec(ctx context.Context, stmt string, args ...any) (sql.Result, error) {
	return s.db.ExecContext(ctx, stmt, args...)
}

// Query runs a read statement with bound parameters.
func (s *Store) Query(ctx context.Context, stmt string, args ...any) (*sql.Rows, error) {
	return s.db.QueryContext(ctx, stmt, args...)
}

// QueryRow runs a single-row read with bound parameters.
func (s *Store) QueryRow(ctx context.Context, stmt string, args ...any) *sql.Row {
	return s.db.QueryRowContext(ctx, stmt, args...)
}

// Begin starts a transaction. The repository wraps each collection save in
// one so a failed save leaves the previously committed rows authoritative.
func (s *Store) Begin(ctx context.Context) (*sql.Tx, error) {
	return s.db.BeginTx(ctx, nil)
}

// Persist checkpoints the write-ahead log into the database file. The
// repository calls it after every mutating operation: write-through, no
// batching. Write rates are form-filling slow, so durability wins.
func (s *Store) Persist(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "PRAGMA wal_checkpoint(TRUNCATE);"); err != nil {
		return fmt.Errorf("failed to checkpoint database: %w", err)
	}
	return nil
}

// Reset destroys the durable snapshot and reinitializes an empty schema.
func (s *Store) Reset(ctx context.Context) error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	for _, f := range []string{s.path, s.path + "-wal", s.path + "-shm"} {
		if err := os.Remove(f); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove %s: %w", f, err)
		}
	}
	return s.open(ctx)
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	return s.db.Close()
}
