package ports

// DataStore lists the subjects, session dates, and file names that exist on
// disk. Listing a directory that does not exist is an error, never an empty
// result. Implementations must not recurse into subdirectories.
type DataStore interface {
	// ListSubjects returns the subject directory names under the data root
	ListSubjects() ([]string, error)

	// ListSessionDates returns a subject's session date directories, sorted
	ListSessionDates(subject string) ([]string, error)

	// ListFileNames returns the base names of regular files in a directory
	ListFileNames(pathName string) ([]string, error)
}
