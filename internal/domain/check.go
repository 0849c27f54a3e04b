package domain

import "time"

// AllDates labels check results for file types that are not split by date
const AllDates = "all dates"

// CheckResult is the outcome of reconciling one (file type, path) pair
type CheckResult struct {
	Subject  string
	Date     string // session date, or AllDates
	FileType FileType
	PathName string
	Matching []string // expected names with a corresponding actual file
	Missing  []string // expected names with no actual file
}

// Passed reports whether every expected file was found
func (c CheckResult) Passed() bool {
	return len(c.Missing) == 0
}

// CheckRecord is one persisted verification sweep entry
type CheckRecord struct {
	Subject       string
	Date          string
	FileType      string
	PathName      string
	MatchingCount int
	MissingCount  int
	Passed        bool
	CheckedAt     time.Time
}
