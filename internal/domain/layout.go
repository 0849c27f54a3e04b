package domain

import "path/filepath"

// Layout resolves the directory that holds each file type underneath a data
// root. The directory structure is a precondition of the pipeline, so the
// layout only constructs paths; existence checks belong to the caller.
//
//	<root>/<subject>/raw/<date>   raw acquisition files
//	<root>/<subject>/metadata     subject-level metadata
//	<root>/<subject>/metadata/yml per-session metadata documents
//	<root>/<subject>/nwb/raw      standardized container files
//	<root>/<subject>/nwb/video    per-epoch camera files
type Layout struct {
	Root string
}

func (l Layout) SubjectPath(subject string) string {
	return filepath.Join(l.Root, subject)
}

// SessionsPath is the directory whose subdirectories are session dates
func (l Layout) SessionsPath(subject string) string {
	return filepath.Join(l.Root, subject, "raw")
}

func (l Layout) RawPath(subject, date string) string {
	return filepath.Join(l.Root, subject, "raw", date)
}

func (l Layout) MetadataPath(subject string) string {
	return filepath.Join(l.Root, subject, "metadata")
}

func (l Layout) YMLPath(subject string) string {
	return filepath.Join(l.Root, subject, "metadata", "yml")
}

func (l Layout) NWBPath(subject string) string {
	return filepath.Join(l.Root, subject, "nwb", "raw")
}

func (l Layout) VideoPath(subject string) string {
	return filepath.Join(l.Root, subject, "nwb", "video")
}

// PathsForType returns the containing directories for a file type. Raw files
// live in one directory per date; every other type has a single directory.
func (l Layout) PathsForType(t FileType, subject string, dates []string) []string {
	switch t {
	case FileTypeRaw:
		paths := make([]string, len(dates))
		for i, date := range dates {
			paths[i] = l.RawPath(subject, date)
		}
		return paths
	case FileTypeMetadata:
		return []string{l.MetadataPath(subject)}
	case FileTypeYML:
		return []string{l.YMLPath(subject)}
	case FileTypeNWB:
		return []string{l.NWBPath(subject)}
	case FileTypeVideo:
		return []string{l.VideoPath(subject)}
	default:
		return nil
	}
}
