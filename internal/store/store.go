package store

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"worklog_report/worklog"
)

// Store wraps SQLite access for the ingest archive. It keeps raw loaded
// records and per-run load summaries; analysis output is never written.
type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			run_id TEXT PRIMARY KEY,
			source_path TEXT,
			loaded INTEGER,
			rejected INTEGER,
			created_at TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS records (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT,
			entry_date TEXT,
			module TEXT,
			duration REAL,
			status TEXT,
			summary TEXT
		);`,
		`CREATE INDEX IF NOT EXISTS idx_records_run ON records(run_id);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// RunSummary is the load outcome archived for one pipeline pass.
type RunSummary struct {
	RunID      string
	SourcePath string
	Loaded     int
	Rejected   int
	CreatedAt  time.Time
}

// ArchiveRun stores a run summary plus its validated records in one
// transaction.
func (s *Store) ArchiveRun(ctx context.Context, runID, sourcePath string, records []worklog.Record, rejected int, ts time.Time) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs(run_id, source_path, loaded, rejected, created_at) VALUES(?,?,?,?,?)`,
		runID, sourcePath, len(records), rejected, ts,
	); err != nil {
		return err
	}
	for _, r := range records {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO records(run_id, entry_date, module, duration, status, summary) VALUES(?,?,?,?,?,?)`,
			runID, r.Date.Format("2006-01-02"), r.Module, r.Duration, r.Status, r.Summary,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// RunSummary loads the archived summary row for one run.
func (s *Store) RunSummary(ctx context.Context, runID string) (RunSummary, error) {
	var out RunSummary
	err := s.db.QueryRowContext(ctx,
		`SELECT run_id, source_path, loaded, rejected, created_at FROM runs WHERE run_id = ?`, runID,
	).Scan(&out.RunID, &out.SourcePath, &out.Loaded, &out.Rejected, &out.CreatedAt)
	return out, err
}

// RecordCount reports how many records one run archived.
func (s *Store) RecordCount(ctx context.Context, runID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM records WHERE run_id = ?`, runID,
	).Scan(&n)
	return n, err
}
