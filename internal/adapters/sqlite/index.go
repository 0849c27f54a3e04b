package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"recaudit/internal/domain"
	"recaudit/internal/ports"

	_ "modernc.org/sqlite"
)

// Index implements ports.AuditIndex using SQLite
type Index struct {
	db     *sql.DB
	dbPath string
}

// Ensure Index implements AuditIndex
var _ ports.AuditIndex = (*Index)(nil)

// NewIndex creates a new SQLite audit index
func NewIndex() *Index {
	return &Index{}
}

// Open initializes the index database at the given path
func (idx *Index) Open(dbPath string) error {
	idx.dbPath = dbPath

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	idx.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS sweeps (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			subject TEXT NOT NULL,
			checked_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS checks (
			sweep_id INTEGER NOT NULL REFERENCES sweeps(id),
			subject TEXT NOT NULL,
			date TEXT NOT NULL,
			file_type TEXT NOT NULL,
			path TEXT NOT NULL,
			matching INTEGER NOT NULL,
			missing INTEGER NOT NULL,
			passed INTEGER NOT NULL,
			checked_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_checks_subject ON checks(subject, checked_at);
		CREATE INDEX IF NOT EXISTS idx_sweeps_subject ON sweeps(subject, checked_at);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	return nil
}

// Close closes the database connection
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// RecordSweep stores one verification sweep atomically
func (idx *Index) RecordSweep(results []domain.CheckResult) error {
	if len(results) == 0 {
		return nil
	}
	now := time.Now().Unix()

	tx, err := idx.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	res, err := tx.Exec(`INSERT INTO sweeps (subject, checked_at) VALUES (?, ?)`,
		results[0].Subject, now)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to insert sweep: %w", err)
	}
	sweepID, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to read sweep id: %w", err)
	}

	for _, r := range results {
		_, err := tx.Exec(`
			INSERT INTO checks (sweep_id, subject, date, file_type, path, matching, missing, passed, checked_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, sweepID, r.Subject, r.Date, r.FileType.String(), r.PathName,
			len(r.Matching), len(r.Missing), r.Passed(), now)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert check: %w", err)
		}
	}

	return tx.Commit()
}

// History returns a subject's recorded checks, newest first
func (idx *Index) History(subject string) ([]domain.CheckRecord, error) {
	rows, err := idx.db.Query(`
		SELECT subject, date, file_type, path, matching, missing, passed, checked_at
		FROM checks
		WHERE subject = ?
		ORDER BY checked_at DESC, file_type, path
	`, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	return scanChecks(rows)
}

// LatestFailures returns the failing checks from a subject's most recent sweep
func (idx *Index) LatestFailures(subject string) ([]domain.CheckRecord, error) {
	rows, err := idx.db.Query(`
		SELECT subject, date, file_type, path, matching, missing, passed, checked_at
		FROM checks
		WHERE passed = 0 AND sweep_id = (
			SELECT id FROM sweeps WHERE subject = ? ORDER BY checked_at DESC, id DESC LIMIT 1
		)
		ORDER BY file_type, path
	`, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to query failures: %w", err)
	}
	defer rows.Close()

	return scanChecks(rows)
}

func scanChecks(rows *sql.Rows) ([]domain.CheckRecord, error) {
	var records []domain.CheckRecord
	for rows.Next() {
		var r domain.CheckRecord
		var checkedAt int64
		if err := rows.Scan(&r.Subject, &r.Date, &r.FileType, &r.PathName,
			&r.MatchingCount, &r.MissingCount, &r.Passed, &checkedAt); err != nil {
			return nil, fmt.Errorf("failed to scan check row: %w", err)
		}
		r.CheckedAt = time.Unix(checkedAt, 0)
		records = append(records, r)
	}
	return records, rows.Err()
}
