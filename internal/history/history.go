// Package history records generated documents in a local SQLite database so
// `docket history` can list what was created, when and where.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"
)

// timeLayout is fixed width so created_at sorts correctly as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Record is one generated document.
type Record struct {
	ID           string    `json:"id"`
	Kind         string    `json:"kind"`
	Filename     string    `json:"filename"`
	Location     string    `json:"location"`
	Jurisdiction string    `json:"jurisdiction"`
	CreatedAt    time.Time `json:"created_at"`
}

// Store persists records in SQLite.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at dbPath.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate history db: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS generations (
		id           TEXT PRIMARY KEY,
		kind         TEXT NOT NULL,
		filename     TEXT NOT NULL,
		location     TEXT NOT NULL,
		jurisdiction TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_generations_created ON generations(created_at DESC);
	`)
	return err
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores r. ID and CreatedAt are filled in when empty.
// Returns the stored record.
func (s *Store) Record(ctx context.Context, r Record) (Record, error) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	r.CreatedAt = r.CreatedAt.UTC()
	if r.ID == "" {
		r.ID = ulid.MustNew(ulid.Timestamp(r.CreatedAt), ulid.DefaultEntropy()).String()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO generations (id, kind, filename, location, jurisdiction, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.Kind, r.Filename, r.Location, r.Jurisdiction, r.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return Record{}, fmt.Errorf("insert generation: %w", err)
	}
	return r, nil
}

// List returns up to limit records, newest first. A limit <= 0 returns all.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	query := `SELECT id, kind, filename, location, jurisdiction, created_at
		FROM generations ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query generations: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var created string
		if err := rows.Scan(&r.ID, &r.Kind, &r.Filename, &r.Location, &r.Jurisdiction, &created); err != nil {
			return nil, fmt.Errorf("scan generation: %w", err)
		}
		r.CreatedAt, err = time.Parse(timeLayout, created)
		if err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", created, err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
