package ports

import "recaudit/internal/domain"

// AuditIndex persists verification sweeps for later querying. All query
// operations go through the database, not the filesystem.
type AuditIndex interface {
	// Lifecycle
	Open(dbPath string) error
	Close() error

	// RecordSweep stores the results of one verification sweep
	RecordSweep(results []domain.CheckResult) error

	// History returns a subject's recorded checks, newest first
	History(subject string) ([]domain.CheckRecord, error)

	// LatestFailures returns the failing checks from a subject's most
	// recent sweep
	LatestFailures(subject string) ([]domain.CheckRecord, error)
}
