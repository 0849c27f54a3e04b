package domain

import (
	"fmt"
	"regexp"
	"sort"
)

// PathRecord names one directory that holds files of a given type
type PathRecord struct {
	PathName string
	FileType FileType
}

// FileRecord is the uniform record shape shared by every file name table
type FileRecord struct {
	PathName string
	FileName string
	FullName string
	FileType FileType
}

// RecordSet is an in-memory table of file records. Filtering methods return
// derived sets and never mutate the receiver.
type RecordSet []FileRecord

// WhereType returns the records of one file type
func (rs RecordSet) WhereType(t FileType) RecordSet {
	var out RecordSet
	for _, r := range rs {
		if r.FileType == t {
			out = append(out, r)
		}
	}
	return out
}

// WherePath returns the records under one containing path
func (rs RecordSet) WherePath(pathName string) RecordSet {
	var out RecordSet
	for _, r := range rs {
		if r.PathName == pathName {
			out = append(out, r)
		}
	}
	return out
}

// Search successively filters the set by each pattern, keeping records whose
// file name contains a match (AND across patterns). Patterns that match
// nothing yield an empty set, not an error.
func (rs RecordSet) Search(patterns ...string) (RecordSet, error) {
	out := rs
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid search pattern %q: %w", pattern, err)
		}
		var filtered RecordSet
		for _, r := range out {
			if re.FindStringIndex(r.FileName) != nil {
				filtered = append(filtered, r)
			}
		}
		out = filtered
	}
	return out, nil
}

// FileNames returns the file name column, sorted
func (rs RecordSet) FileNames() []string {
	names := make([]string, len(rs))
	for i, r := range rs {
		names[i] = r.FileName
	}
	sort.Strings(names)
	return names
}

// FullNames returns the full name column, sorted
func (rs RecordSet) FullNames() []string {
	names := make([]string, len(rs))
	for i, r := range rs {
		names[i] = r.FullName
	}
	sort.Strings(names)
	return names
}

// Duplicate returns the first full name that appears more than once, if any
func (rs RecordSet) Duplicate() (string, bool) {
	seen := make(map[string]struct{}, len(rs))
	for _, r := range rs {
		if _, ok := seen[r.FullName]; ok {
			return r.FullName, true
		}
		seen[r.FullName] = struct{}{}
	}
	return "", false
}
