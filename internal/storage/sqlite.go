// Package storage provides SQLite-based persistence for config load history
// and creature stats snapshots.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// LoadReport records the outcome of loading one config file.
type LoadReport struct {
	ID int64
	// Run groups the reports written by one load of the install tree.
	Run       string
	File      string
	Model     int
	OK        bool
	Warnings  int
	Error     string
	CreatedAt time.Time
}

// Snapshot is a YAML dump of one creature's stats.
type Snapshot struct {
	ID        int64
	Model     int
	Name      string
	YAML      string
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS load_reports (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run TEXT NOT NULL,
			file TEXT NOT NULL,
			model INTEGER NOT NULL DEFAULT 0,
			ok INTEGER NOT NULL,
			warnings INTEGER NOT NULL DEFAULT 0,
			error TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_load_reports_run ON load_reports(run);
		CREATE INDEX IF NOT EXISTS idx_load_reports_file ON load_reports(file);

		CREATE TABLE IF NOT EXISTS stats_snapshots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			model INTEGER NOT NULL,
			name TEXT NOT NULL,
			yaml TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_stats_snapshots_model ON stats_snapshots(model);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// parseTime handles both time.Time and string datetimes.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// SaveReport records a load report.
// Returns the ID of the inserted record.
func (s *Store) SaveReport(r LoadReport) (int64, error) {
	var errText sql.NullString
	if r.Error != "" {
		errText = sql.NullString{String: r.Error, Valid: true}
	}
	result, err := s.db.Exec(
		`INSERT INTO load_reports (run, file, model, ok, warnings, error)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.Run, r.File, r.Model, r.OK, r.Warnings, errText,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save load report: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentReports retrieves the most recent load reports, newest first.
func (s *Store) RecentReports(limit int) ([]LoadReport, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryReports(
		`SELECT id, run, file, model, ok, warnings, error, created_at
		 FROM load_reports
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

// FileHistory retrieves the load reports of one file, newest first.
func (s *Store) FileHistory(file string, limit int) ([]LoadReport, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryReports(
		`SELECT id, run, file, model, ok, warnings, error, created_at
		 FROM load_reports
		 WHERE file = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		file, limit,
	)
}

func (s *Store) queryReports(query string, args ...any) ([]LoadReport, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query load reports: %w", err)
	}
	defer rows.Close()

	var reports []LoadReport
	for rows.Next() {
		var r LoadReport
		var errText sql.NullString
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Run, &r.File, &r.Model, &r.OK, &r.Warnings, &errText, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if errText.Valid {
			r.Error = errText.String
		}
		r.CreatedAt = parseTime(createdAt)
		reports = append(reports, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return reports, nil
}

// SaveSnapshot records a stats snapshot.
// Returns the ID of the inserted record.
func (s *Store) SaveSnapshot(snap Snapshot) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO stats_snapshots (model, name, yaml) VALUES (?, ?, ?)",
		snap.Model, snap.Name, snap.YAML,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save snapshot: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// LatestSnapshot returns the newest snapshot of a model, or nil if there is
// none.
func (s *Store) LatestSnapshot(model int) (*Snapshot, error) {
	var snap Snapshot
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, model, name, yaml, created_at
		 FROM stats_snapshots
		 WHERE model = ?
		 ORDER BY id DESC
		 LIMIT 1`,
		model,
	).Scan(&snap.ID, &snap.Model, &snap.Name, &snap.YAML, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query snapshot: %w", err)
	}

	snap.CreatedAt = parseTime(createdAt)
	return &snap, nil
}

// RunSummary aggregates the reports of one run.
type RunSummary struct {
	Run      string
	Files    int
	Failed   int
	Warnings int
	Started  time.Time
}

// RecentRuns summarises the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT run, COUNT(*), SUM(CASE WHEN ok THEN 0 ELSE 1 END), SUM(warnings), MIN(created_at)
		 FROM load_reports
		 GROUP BY run
		 ORDER BY MAX(id) DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var r RunSummary
		var started any
		if err := rows.Scan(&r.Run, &r.Files, &r.Failed, &r.Warnings, &started); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		r.Started = parseTime(started)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}
