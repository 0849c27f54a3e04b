package report

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"recaudit/internal/ports"
)

var (
	header = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#60A5FA")) // Blue

	passBadge = lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.Color("#10B981")) // Green

	failBadge = lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.Color("#EF4444")) // Red

	matchText = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981"))

	missText = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#EF4444"))
)

// Console renders verification output to a terminal. Matching and missing
// name listings are only shown when Verbose is set; headers, counts, and
// verdicts are always shown.
type Console struct {
	Out     io.Writer
	Verbose bool
}

// Ensure Console implements Reporter
var _ ports.Reporter = (*Console)(nil)

// NewConsole creates a reporter writing to stdout
func NewConsole(verbose bool) *Console {
	return &Console{Out: os.Stdout, Verbose: verbose}
}

func (c *Console) Header(lines ...string) {
	for _, line := range lines {
		fmt.Fprintln(c.Out, header.Render(line))
	}
}

func (c *Console) Text(lines ...string) {
	for _, line := range lines {
		fmt.Fprintln(c.Out, line)
	}
}

func (c *Console) Matching(names []string) {
	if !c.Verbose {
		return
	}
	for _, name := range names {
		fmt.Fprintln(c.Out, matchText.Render(name))
	}
}

func (c *Console) Missing(names []string) {
	if !c.Verbose {
		return
	}
	for _, name := range names {
		fmt.Fprintln(c.Out, missText.Render(name))
	}
}

func (c *Console) Pass(msg string) {
	fmt.Fprintln(c.Out, passBadge.Render(msg))
	fmt.Fprintln(c.Out)
}

func (c *Console) Fail(msg string) {
	fmt.Fprintln(c.Out, failBadge.Render(msg))
	fmt.Fprintln(c.Out)
}

// Capture records reporter calls for assertions in tests
type Capture struct {
	Headers  []string
	Lines    []string
	Matched  []string
	Missed   []string
	Passes   []string
	Failures []string
}

var _ ports.Reporter = (*Capture)(nil)

func (c *Capture) Header(lines ...string)    { c.Headers = append(c.Headers, lines...) }
func (c *Capture) Text(lines ...string)      { c.Lines = append(c.Lines, lines...) }
func (c *Capture) Matching(names []string)   { c.Matched = append(c.Matched, names...) }
func (c *Capture) Missing(names []string)    { c.Missed = append(c.Missed, names...) }
func (c *Capture) Pass(msg string)           { c.Passes = append(c.Passes, msg) }
func (c *Capture) Fail(msg string)           { c.Failures = append(c.Failures, msg) }
