package application

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"

	"recaudit/internal/domain"
	"recaudit/internal/ports"
)

// recPattern counts one epoch per acquisition file in a raw date directory
const recPattern = `^.*\.rec$`

// Inventory reconciles the expected file name set for a subject's recording
// sessions against the file names actually on disk. Each instance owns its
// cached tables exclusively: accessors refresh them on first use, and
// Update recomputes every table as a unit. Instances are not safe for
// concurrent use.
type Inventory struct {
	scheme domain.Scheme
	layout domain.Layout
	store  ports.DataStore

	allDates bool // dates were derived, so Update re-derives them
	dates    []string
	epochs   []int // epoch count per date

	fresh    bool
	paths    []domain.PathRecord
	actual   domain.RecordSet
	expected domain.RecordSet
	matching domain.RecordSet
	missing  domain.RecordSet
}

// NewInventory validates the subject and dates and derives per-date epoch
// counts. A nil dates slice selects every session date found for the
// subject. Validation failures abort construction.
func NewInventory(scheme domain.Scheme, layout domain.Layout, store ports.DataStore, dates []string) (*Inventory, error) {
	inv := &Inventory{
		scheme:   scheme,
		layout:   layout,
		store:    store,
		allDates: dates == nil,
		dates:    dates,
	}
	if err := inv.reload(); err != nil {
		return nil, err
	}
	return inv, nil
}

// Subject returns the subject name
func (inv *Inventory) Subject() string {
	return inv.scheme.Subject()
}

// Dates returns the session dates covered by the inventory
func (inv *Inventory) Dates() []string {
	return append([]string(nil), inv.dates...)
}

// EpochCounts returns the per-date epoch counts, aligned with Dates
func (inv *Inventory) EpochCounts() []int {
	return append([]int(nil), inv.epochs...)
}

// Scheme returns the naming scheme in use
func (inv *Inventory) Scheme() domain.Scheme {
	return inv.scheme
}

// reload revalidates the subject and dates and re-derives epoch counts
func (inv *Inventory) reload() error {
	if err := inv.validateSubject(); err != nil {
		return err
	}
	if inv.allDates {
		dates, err := inv.store.ListSessionDates(inv.Subject())
		if err != nil {
			return err
		}
		inv.dates = dates
	}
	if err := inv.validateDates(inv.dates); err != nil {
		return err
	}
	return inv.countEpochs()
}

func (inv *Inventory) validateSubject() error {
	subjects, err := inv.store.ListSubjects()
	if err != nil {
		return err
	}
	for _, name := range subjects {
		if name == inv.Subject() {
			return nil
		}
	}
	return &ArgumentError{
		Field:   "subject",
		Message: fmt.Sprintf("no subject named %q found among the names %v", inv.Subject(), subjects),
	}
}

func (inv *Inventory) validateDates(dates []string) error {
	seen := make(map[string]struct{}, len(dates))
	for _, date := range dates {
		if err := domain.ValidateDate(date); err != nil {
			return &ArgumentError{Field: "dates", Message: err.Error()}
		}
		if _, ok := seen[date]; ok {
			return &ArgumentError{Field: "dates", Message: fmt.Sprintf("duplicate date %q in dates list", date)}
		}
		seen[date] = struct{}{}
	}

	valid, err := inv.store.ListSessionDates(inv.Subject())
	if err != nil {
		return err
	}
	validSet := make(map[string]struct{}, len(valid))
	for _, date := range valid {
		validSet[date] = struct{}{}
	}
	var unknown []string
	for _, date := range dates {
		if _, ok := validSet[date]; !ok {
			unknown = append(unknown, date)
		}
	}
	if len(unknown) > 0 {
		return &ArgumentError{
			Field:   "dates",
			Message: fmt.Sprintf("no data found for subject %q on the dates %v", inv.Subject(), unknown),
		}
	}
	return nil
}

// countEpochs counts the .rec files in each raw date directory
func (inv *Inventory) countEpochs() error {
	epochs := make([]int, len(inv.dates))
	for i, date := range inv.dates {
		names, err := inv.store.ListFileNames(inv.layout.RawPath(inv.Subject(), date))
		if err != nil {
			return err
		}
		matched, err := filterNames(names, recPattern, true)
		if err != nil {
			return err
		}
		epochs[i] = len(matched)
	}
	inv.epochs = epochs
	return nil
}

// Update revalidates the subject and dates, re-derives epoch counts, and
// recomputes the path, actual, expected, and matching/missing tables as a
// unit. A failed Update leaves the previous tables in place.
func (inv *Inventory) Update() error {
	if err := inv.reload(); err != nil {
		return err
	}
	paths := inv.buildPaths()
	expected, err := inv.buildExpected()
	if err != nil {
		return err
	}
	actual, err := inv.buildActual()
	if err != nil {
		return err
	}
	matching, missing, err := inv.reconcile(expected, actual)
	if err != nil {
		return err
	}

	inv.paths = paths
	inv.expected = expected
	inv.actual = actual
	inv.matching = matching
	inv.missing = missing
	inv.fresh = true
	return nil
}

func (inv *Inventory) ensureFresh() error {
	if inv.fresh {
		return nil
	}
	return inv.Update()
}

// PathNames returns one record per (file type, containing directory)
func (inv *Inventory) PathNames() ([]domain.PathRecord, error) {
	if err := inv.ensureFresh(); err != nil {
		return nil, err
	}
	return append([]domain.PathRecord(nil), inv.paths...), nil
}

// ExpectedFileNames returns the expected file name table
func (inv *Inventory) ExpectedFileNames() (domain.RecordSet, error) {
	if err := inv.ensureFresh(); err != nil {
		return nil, err
	}
	return inv.expected, nil
}

// ActualFileNames returns the table of file names found on disk
func (inv *Inventory) ActualFileNames() (domain.RecordSet, error) {
	if err := inv.ensureFresh(); err != nil {
		return nil, err
	}
	return inv.actual, nil
}

// MatchingFileNames returns the expected names that have an actual file
func (inv *Inventory) MatchingFileNames() (domain.RecordSet, error) {
	if err := inv.ensureFresh(); err != nil {
		return nil, err
	}
	return inv.matching, nil
}

// MissingFileNames returns the expected names with no actual file
func (inv *Inventory) MissingFileNames() (domain.RecordSet, error) {
	if err := inv.ensureFresh(); err != nil {
		return nil, err
	}
	return inv.missing, nil
}

// SearchFileNames filters the actual file name table by each pattern in turn
func (inv *Inventory) SearchFileNames(patterns ...string) (domain.RecordSet, error) {
	rs, err := inv.ActualFileNames()
	if err != nil {
		return nil, err
	}
	return rs.Search(patterns...)
}

// SearchExpectedFileNames filters the expected file name table
func (inv *Inventory) SearchExpectedFileNames(patterns ...string) (domain.RecordSet, error) {
	rs, err := inv.ExpectedFileNames()
	if err != nil {
		return nil, err
	}
	return rs.Search(patterns...)
}

// SearchMatchingFileNames filters the matching file name table
func (inv *Inventory) SearchMatchingFileNames(patterns ...string) (domain.RecordSet, error) {
	rs, err := inv.MatchingFileNames()
	if err != nil {
		return nil, err
	}
	return rs.Search(patterns...)
}

// SearchMissingFileNames filters the missing file name table
func (inv *Inventory) SearchMissingFileNames(patterns ...string) (domain.RecordSet, error) {
	rs, err := inv.MissingFileNames()
	if err != nil {
		return nil, err
	}
	return rs.Search(patterns...)
}

func (inv *Inventory) buildPaths() []domain.PathRecord {
	var paths []domain.PathRecord
	for _, t := range domain.FileTypes {
		for _, p := range inv.layout.PathsForType(t, inv.Subject(), inv.dates) {
			paths = append(paths, domain.PathRecord{PathName: p, FileType: t})
		}
	}
	return paths
}

func (inv *Inventory) buildExpected() (domain.RecordSet, error) {
	var rs domain.RecordSet
	for _, t := range domain.FileTypes {
		paths := inv.layout.PathsForType(t, inv.Subject(), inv.dates)
		switch t {
		case domain.FileTypeRaw:
			// One directory per date
			for i, date := range inv.dates {
				names, err := inv.scheme.ExpectedNames(t, date, inv.epochs[i])
				if err != nil {
					return nil, err
				}
				rs = appendRecords(rs, paths[i], names, t)
			}
		case domain.FileTypeMetadata:
			names, err := inv.scheme.ExpectedNames(t, "", 0)
			if err != nil {
				return nil, err
			}
			rs = appendRecords(rs, paths[0], names, t)
		default:
			for i, date := range inv.dates {
				names, err := inv.scheme.ExpectedNames(t, date, inv.epochs[i])
				if err != nil {
					return nil, err
				}
				rs = appendRecords(rs, paths[0], names, t)
			}
		}
	}
	return rs, nil
}

func (inv *Inventory) buildActual() (domain.RecordSet, error) {
	var rs domain.RecordSet
	for _, t := range domain.FileTypes {
		paths := inv.layout.PathsForType(t, inv.Subject(), inv.dates)
		switch t {
		case domain.FileTypeRaw:
			for i, date := range inv.dates {
				pattern := "^" + inv.scheme.SessionPrefix(date) + ".*"
				matched, err := inv.scanDir(paths[i], pattern)
				if err != nil {
					return nil, err
				}
				rs = appendRecords(rs, paths[i], matched, t)
			}
		case domain.FileTypeMetadata:
			matched, err := inv.scanDir(paths[0], `.*`)
			if err != nil {
				return nil, err
			}
			rs = appendRecords(rs, paths[0], matched, t)
		default:
			names, err := inv.store.ListFileNames(paths[0])
			if err != nil {
				return nil, err
			}
			for _, date := range inv.dates {
				matched, err := filterNames(names, inv.actualPattern(t, date), true)
				if err != nil {
					return nil, err
				}
				rs = appendRecords(rs, paths[0], matched, t)
			}
		}
	}
	return rs, nil
}

// actualPattern is the per-date scan pattern for the single-directory types
func (inv *Inventory) actualPattern(t domain.FileType, date string) string {
	switch t {
	case domain.FileTypeYML:
		return "^" + inv.scheme.SessionPrefix(date) + `.*\.yml$`
	case domain.FileTypeNWB:
		return "^" + inv.Subject() + "_" + date + `.*\.nwb$`
	default: // video
		return "^" + inv.scheme.SessionPrefix(date) + `.*\.h264$`
	}
}

func (inv *Inventory) scanDir(pathName, pattern string) ([]string, error) {
	names, err := inv.store.ListFileNames(pathName)
	if err != nil {
		return nil, err
	}
	return filterNames(names, pattern, true)
}

// reconcile computes the matching/missing partition per (file type, path)
func (inv *Inventory) reconcile(expected, actual domain.RecordSet) (domain.RecordSet, domain.RecordSet, error) {
	var matching, missing domain.RecordSet
	for _, t := range domain.FileTypes {
		for _, path := range inv.layout.PathsForType(t, inv.Subject(), inv.dates) {
			exp := expected.WhereType(t).WherePath(path).FullNames()
			act := actual.WhereType(t).WherePath(path).FullNames()
			matchingNames, missingNames, err := CompareFileNames(act, exp)
			if err != nil {
				return nil, nil, err
			}
			matching = appendFullNameRecords(matching, matchingNames, t)
			missing = appendFullNameRecords(missing, missingNames, t)
		}
	}
	return matching, missing, nil
}

// CompareFileNames partitions the expected names into those with and without
// a corresponding actual name. Both lists must be duplicate-free; a repeat
// name is a fatal integrity error, never silently deduplicated.
func CompareFileNames(actual, expected []string) (matching, missing []string, err error) {
	if dup, ok := findDuplicate(expected); ok {
		return nil, nil, &IntegrityError{List: "expected", Name: dup}
	}
	if dup, ok := findDuplicate(actual); ok {
		return nil, nil, &IntegrityError{List: "actual", Name: dup}
	}

	actualSet := make(map[string]struct{}, len(actual))
	for _, name := range actual {
		actualSet[name] = struct{}{}
	}
	for _, name := range expected {
		if _, ok := actualSet[name]; ok {
			matching = append(matching, name)
		} else {
			missing = append(missing, name)
		}
	}
	sort.Strings(matching)
	sort.Strings(missing)
	return matching, missing, nil
}

func findDuplicate(names []string) (string, bool) {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			return name, true
		}
		seen[name] = struct{}{}
	}
	return "", false
}

// filterNames keeps the names matching a regular expression pattern. With
// fullMatch the whole name must match; otherwise a partial match suffices.
func filterNames(names []string, pattern string, fullMatch bool) ([]string, error) {
	if fullMatch {
		pattern = `\A(?:` + pattern + `)\z`
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid file name pattern %q: %w", pattern, err)
	}
	var matched []string
	for _, name := range names {
		if fullMatch {
			if re.MatchString(name) {
				matched = append(matched, name)
			}
		} else if re.FindStringIndex(name) != nil {
			matched = append(matched, name)
		}
	}
	return matched, nil
}

func appendRecords(rs domain.RecordSet, pathName string, names []string, t domain.FileType) domain.RecordSet {
	for _, name := range names {
		rs = append(rs, domain.FileRecord{
			PathName: pathName,
			FileName: name,
			FullName: filepath.Join(pathName, name),
			FileType: t,
		})
	}
	return rs
}

func appendFullNameRecords(rs domain.RecordSet, fullNames []string, t domain.FileType) domain.RecordSet {
	for _, fullName := range fullNames {
		dir, name := filepath.Split(fullName)
		rs = append(rs, domain.FileRecord{
			PathName: filepath.Clean(dir),
			FileName: name,
			FullName: fullName,
			FileType: t,
		})
	}
	return rs
}
