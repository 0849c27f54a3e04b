package ports

// Reporter renders verification output. Verbose-only detail lines go through
// Matching/Missing; summary lines are always shown.
type Reporter interface {
	// Header introduces a section of the sweep
	Header(lines ...string)

	// Text prints plain summary lines
	Text(lines ...string)

	// Matching prints expected names that have a corresponding actual file
	Matching(names []string)

	// Missing prints expected names with no actual file
	Missing(names []string)

	// Pass and Fail print the per-check verdict line
	Pass(msg string)
	Fail(msg string)
}
