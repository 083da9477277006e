// Package history records comparison run summaries in a local SQLite
// database. Only verdict-level data is stored; occurrences themselves are
// derived fresh on every run and never persisted.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// RunRecord is one recorded comparison run.
type RunRecord struct {
	ID        int64
	StartedAt time.Time
	Family    string
	RefPath   string
	CandPath  string
	Verdict   string
	RefCount  int
	CandCount int
	Missing   int // distinct missing keys
	Extra     int // distinct extra keys
}

type Store struct {
	db *sql.DB
}

// Open creates or opens the run history database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		started_at TIMESTAMP NOT NULL,
		family TEXT NOT NULL,
		ref_path TEXT NOT NULL,
		cand_path TEXT NOT NULL,
		verdict TEXT NOT NULL,
		ref_count INTEGER NOT NULL,
		cand_count INTEGER NOT NULL,
		missing INTEGER NOT NULL,
		extra INTEGER NOT NULL
	)`)
	return err
}

// Record inserts one run summary and fills in the assigned id.
func (s *Store) Record(ctx context.Context, rec *RunRecord) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (started_at, family, ref_path, cand_path, verdict, ref_count, cand_count, missing, extra)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.StartedAt, rec.Family, rec.RefPath, rec.CandPath, rec.Verdict,
		rec.RefCount, rec.CandCount, rec.Missing, rec.Extra)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	rec.ID, err = res.LastInsertId()
	return err
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]RunRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, family, ref_path, cand_path, verdict, ref_count, cand_count, missing, extra
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var rec RunRecord
		if err := rows.Scan(&rec.ID, &rec.StartedAt, &rec.Family, &rec.RefPath, &rec.CandPath,
			&rec.Verdict, &rec.RefCount, &rec.CandCount, &rec.Missing, &rec.Extra); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
