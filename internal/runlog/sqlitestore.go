package runlog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Jvryan92/StategyDECK/internal/generate"
	"github.com/Jvryan92/StategyDECK/internal/paths"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (or creates) a SQLite database at path and creates
// tables and indexes.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), paths.DirPerm); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Set PRAGMAs before any DDL.
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlite pragma: %w", err)
		}
	}

	ddl := `
CREATE TABLE IF NOT EXISTS runs (
    id         TEXT    PRIMARY KEY,
    started    TEXT    NOT NULL,
    elapsed_ms INTEGER NOT NULL DEFAULT 0,
    csv_path   TEXT    NOT NULL DEFAULT '',
    generated  INTEGER NOT NULL DEFAULT 0,
    pngs       INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS artifacts (
    id      INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id  TEXT    NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    path    TEXT    NOT NULL,
    kind    TEXT    NOT NULL,
    mode    TEXT    NOT NULL DEFAULT '',
    finish  TEXT    NOT NULL DEFAULT '',
    size_px INTEGER NOT NULL DEFAULT 0,
    context TEXT    NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_runs_started    ON runs(started DESC);
CREATE INDEX IF NOT EXISTS idx_artifacts_run   ON artifacts(run_id);
`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Record(run Run, files []generate.Artifact) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO runs (id, started, elapsed_ms, csv_path, generated, pngs)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.Started.Format(time.RFC3339), run.Elapsed.Milliseconds(),
		run.CSVPath, run.Generated, run.PNGs,
	); err != nil {
		return err
	}

	for _, f := range files {
		if _, err := tx.Exec(
			`INSERT INTO artifacts (run_id, path, kind, mode, finish, size_px, context)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			run.ID, f.Path, f.Kind, string(f.Mode), f.Finish, f.SizePx, f.Context,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) Runs(limit int) ([]Run, error) {
	query := `SELECT id, started, elapsed_ms, csv_path, generated, pngs
		FROM runs ORDER BY started DESC, id`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var started string
		var elapsedMS int64
		if err := rows.Scan(&r.ID, &started, &elapsedMS, &r.CSVPath, &r.Generated, &r.PNGs); err != nil {
			return nil, err
		}
		ts, err := time.Parse(time.RFC3339, started)
		if err != nil {
			continue
		}
		r.Started = ts
		r.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func (s *SQLiteStore) Artifacts(runID string) ([]Artifact, error) {
	rows, err := s.db.Query(
		`SELECT run_id, path, kind, mode, finish, size_px, context
		 FROM artifacts WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var artifacts []Artifact
	for rows.Next() {
		var a Artifact
		if err := rows.Scan(&a.RunID, &a.Path, &a.Kind, &a.Mode, &a.Finish, &a.SizePx, &a.Context); err != nil {
			return nil, err
		}
		artifacts = append(artifacts, a)
	}
	return artifacts, rows.Err()
}

func (s *SQLiteStore) Clean(days int) (int, error) {
	cutoff := DayCutoff(days).Format(time.RFC3339)
	res, err := s.db.Exec(`DELETE FROM runs WHERE started < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func (s *SQLiteStore) Clear() error {
	_, err := s.db.Exec(`DELETE FROM runs`)
	return err
}

func (s *SQLiteStore) Path() string {
	return s.path
}
