// Package storage implements the offline row cache on SQLite. Fetched
// rows are cached per resource and viewer so listing keeps working with
// --offline and export-all has a fallback when the API is unreachable.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/paydesk/paydesk/internal/service"
)

const schema = `
CREATE TABLE IF NOT EXISTS cached_rows (
	resource   TEXT NOT NULL,
	subject_id TEXT NOT NULL,
	row_id     TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL,
	payload    BLOB NOT NULL,
	PRIMARY KEY (resource, subject_id, row_id)
);
CREATE TABLE IF NOT EXISTS sync_state (
	resource   TEXT NOT NULL,
	subject_id TEXT NOT NULL,
	synced_at  TIMESTAMP NOT NULL,
	PRIMARY KEY (resource, subject_id)
);
`

// SQLiteCache implements service.RowCache using SQLite.
type SQLiteCache struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteCache opens (and if needed creates) the cache database.
func NewSQLiteCache(dbPath string) (*SQLiteCache, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("dbPath cannot be empty")
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping cache database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create cache schema: %w", err)
	}

	return &SQLiteCache{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *SQLiteCache) Close() error {
	return s.db.Close()
}

// ReplaceRows swaps the cached set for a resource/viewer pair in one
// transaction and records the sync time.
func (s *SQLiteCache) ReplaceRows(ctx context.Context, resource, subjectID string, rows []service.CachedRow) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM cached_rows WHERE resource = ? AND subject_id = ?`,
		resource, subjectID); err != nil {
		return fmt.Errorf("failed to clear cached rows: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO cached_rows (resource, subject_id, row_id, created_at, payload) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx, resource, subjectID, row.ID, row.CreatedAt.UTC(), row.Payload); err != nil {
			return fmt.Errorf("failed to insert cached row %s: %w", row.ID, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO sync_state (resource, subject_id, synced_at) VALUES (?, ?, ?)
		 ON CONFLICT (resource, subject_id) DO UPDATE SET synced_at = excluded.synced_at`,
		resource, subjectID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to record sync time: %w", err)
	}

	return tx.Commit()
}

// Rows loads the cached set for a resource/viewer pair, newest first,
// along with the last sync time. A never-synced pair returns no rows and
// a zero time.
func (s *SQLiteCache) Rows(ctx context.Context, resource, subjectID string) ([]service.CachedRow, time.Time, error) {
	var syncedAt time.Time
	err := s.db.QueryRowContext(ctx,
		`SELECT synced_at FROM sync_state WHERE resource = ? AND subject_id = ?`,
		resource, subjectID).Scan(&syncedAt)
	if err == sql.ErrNoRows {
		return nil, time.Time{}, nil
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to read sync state: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT row_id, created_at, payload FROM cached_rows
		 WHERE resource = ? AND subject_id = ?
		 ORDER BY created_at DESC`,
		resource, subjectID)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to query cached rows: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var cached []service.CachedRow
	for rows.Next() {
		var row service.CachedRow
		if err := rows.Scan(&row.ID, &row.CreatedAt, &row.Payload); err != nil {
			return nil, time.Time{}, fmt.Errorf("failed to scan cached row: %w", err)
		}
		cached = append(cached, row)
	}
	if err := rows.Err(); err != nil {
		return nil, time.Time{}, err
	}

	return cached, syncedAt, nil
}
