// Package sqlite provides a SQLite-backed implementation of the history
// repository port. It is only wired in when a database path is configured;
// the default install keeps no on-disk state.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // driver registration

	"github.com/OCNGill/what-do-those-song-lyrics-mean-gui/internal/core/domain"
	"github.com/OCNGill/what-do-those-song-lyrics-mean-gui/internal/core/ports"
)

// Adapter implements the history repository port for SQLite.
type Adapter struct {
	db *sql.DB
}

var _ ports.HistoryRepository = (*Adapter)(nil)

// NewAdapter creates a connection and runs the schema migration.
func NewAdapter(storagePath string) (*Adapter, error) {
	db, err := sql.Open("sqlite3", storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping sqlite db: %w", err)
	}

	adapter := &Adapter{db: db}

	if err := adapter.migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return adapter, nil
}

// Close ensures the DB connection is closed gracefully.
func (a *Adapter) Close() error {
	return a.db.Close()
}

func (a *Adapter) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS interpretations (
		id              TEXT PRIMARY KEY,
		query           TEXT NOT NULL,
		artist          TEXT NOT NULL DEFAULT '',
		title           TEXT NOT NULL DEFAULT '',
		source          TEXT NOT NULL,
		lyrics          TEXT NOT NULL,
		interpretation  TEXT NOT NULL,
		backend         TEXT NOT NULL,
		created_at      TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_interpretations_created_at
		ON interpretations (created_at DESC);
	`
	if _, err := a.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Save persists one completed interpretation. A missing ID or timestamp is
// filled in here so callers can stay oblivious to storage details.
func (a *Adapter) Save(ctx context.Context, rec domain.InterpretationRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := a.db.ExecContext(ctx, `
		INSERT INTO interpretations
			(id, query, artist, title, source, lyrics, interpretation, backend, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Query, rec.Artist, rec.Title, string(rec.Source), rec.Lyrics, rec.Interpretation, string(rec.Backend), rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save interpretation: %w", err)
	}
	return nil
}

// ListRecent returns the newest interpretations first.
func (a *Adapter) ListRecent(ctx context.Context, limit int) ([]domain.InterpretationRecord, error) {
	if limit < 1 {
		limit = 20
	}

	rows, err := a.db.QueryContext(ctx, `
		SELECT id, query, artist, title, source, lyrics, interpretation, backend, created_at
		FROM interpretations
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	records := []domain.InterpretationRecord{}
	for rows.Next() {
		var rec domain.InterpretationRecord
		var source, backend string
		if err := rows.Scan(
			&rec.ID,
			&rec.Query,
			&rec.Artist,
			&rec.Title,
			&source,
			&rec.Lyrics,
			&rec.Interpretation,
			&backend,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		rec.Source = domain.LyricSourceTag(source)
		rec.Backend = domain.Backend(backend)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history rows: %w", err)
	}

	return records, nil
}
