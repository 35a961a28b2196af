package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"addressregistry/internal/domain/address"
	"addressregistry/internal/domain/snapshot"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
	CREATE TABLE IF NOT EXISTS snapshots (
		id TEXT PRIMARY KEY,
		created_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS snapshot_entries (
		snapshot_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		symbol TEXT NOT NULL,
		value TEXT NOT NULL,
		kind TEXT NOT NULL,
		PRIMARY KEY (snapshot_id, symbol),
		FOREIGN KEY (snapshot_id) REFERENCES snapshots(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_snapshots_created_at ON snapshots(created_at);
	CREATE INDEX IF NOT EXISTS idx_snapshot_entries_value ON snapshot_entries(value);
`

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// InitSchema creates the snapshot tables if they do not exist
func (r *SQLiteRepository) InitSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Save writes the snapshot and all of its entries in one transaction
func (r *SQLiteRepository) Save(ctx context.Context, s *snapshot.Snapshot) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	createdAt := s.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO snapshots (id, created_at) VALUES (?, ?)`,
		s.ID, createdAt.UnixNano(),
	); err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO snapshot_entries (snapshot_id, position, symbol, value, kind)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare entry insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range s.Entries {
		if _, err := stmt.ExecContext(ctx, s.ID, i, e.Symbol, e.Value, string(e.Kind)); err != nil {
			return fmt.Errorf("failed to insert entry %s: %w", e.Symbol, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}

	return nil
}

// Latest returns the most recently created snapshot with its entries
func (r *SQLiteRepository) Latest(ctx context.Context) (*snapshot.Snapshot, error) {
	query := `
		SELECT id, created_at
		FROM snapshots
		ORDER BY created_at DESC
		LIMIT 1
	`

	var s snapshot.Snapshot
	var createdAtNanos int64

	err := r.db.QueryRowContext(ctx, query).Scan(&s.ID, &createdAtNanos)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, snapshot.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get latest snapshot: %w", err)
	}

	s.CreatedAt = time.Unix(0, createdAtNanos).UTC()

	entries, err := r.loadEntries(ctx, s.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}
	s.Entries = entries

	return &s, nil
}

func (r *SQLiteRepository) loadEntries(ctx context.Context, snapshotID string) ([]address.Address, error) {
	query := `
		SELECT symbol, value, kind
		FROM snapshot_entries
		WHERE snapshot_id = ?
		ORDER BY position
	`

	rows, err := r.db.QueryContext(ctx, query, snapshotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]address.Address, 0)
	for rows.Next() {
		var e address.Address
		var kind string
		if err := rows.Scan(&e.Symbol, &e.Value, &kind); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		e.Kind = address.Kind(kind)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
