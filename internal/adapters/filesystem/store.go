package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"recaudit/internal/domain"
	"recaudit/internal/ports"
)

// Store implements ports.DataStore against a local data root
type Store struct {
	layout domain.Layout
}

// Ensure Store implements DataStore
var _ ports.DataStore = (*Store)(nil)

// NewStore creates a filesystem store rooted at the given data directory
func NewStore(root string) *Store {
	// Expand ~ to home directory
	if strings.HasPrefix(root, "~") {
		home, _ := os.UserHomeDir()
		root = filepath.Join(home, root[1:])
	}
	return &Store{layout: domain.Layout{Root: root}}
}

// Layout returns the store's path layout
func (s *Store) Layout() domain.Layout {
	return s.layout
}

// ListSubjects returns the subject directory names under the data root
func (s *Store) ListSubjects() ([]string, error) {
	entries, err := os.ReadDir(s.layout.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to read data root: %w", err)
	}

	var subjects []string
	for _, entry := range entries {
		if entry.IsDir() {
			subjects = append(subjects, entry.Name())
		}
	}
	sort.Strings(subjects)
	return subjects, nil
}

// ListSessionDates returns a subject's session date directories, sorted.
// Only directories whose names are valid 8-digit dates are included.
func (s *Store) ListSessionDates(subject string) ([]string, error) {
	sessionsPath := s.layout.SessionsPath(subject)
	entries, err := os.ReadDir(sessionsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read sessions directory: %w", err)
	}

	var dates []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if domain.ValidateDate(entry.Name()) != nil {
			continue
		}
		dates = append(dates, entry.Name())
	}
	sort.Strings(dates)
	return dates, nil
}

// ListFileNames returns the base names of regular files in a directory.
// Subdirectories are skipped; a missing directory is an error.
func (s *Store) ListFileNames(pathName string) ([]string, error) {
	entries, err := os.ReadDir(pathName)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}
