package metadata

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"recaudit/internal/application"
	"recaudit/internal/domain"
)

// EpochDocument describes one epoch in a session metadata document
type EpochDocument struct {
	Index  int    `yaml:"index"`
	Number string `yaml:"number"`
	Name   string `yaml:"name"`
	Camera string `yaml:"camera"`
}

// SessionDocument is the per-date metadata document written alongside the
// raw data. Raw file listings come from the reconciliation tables, so a
// document reflects what is actually on disk at write time.
type SessionDocument struct {
	Subject      string          `yaml:"subject"`
	Date         string          `yaml:"date"`
	Epochs       []EpochDocument `yaml:"epochs"`
	RawFiles     []string        `yaml:"raw_files"`
	MissingFiles []string        `yaml:"missing_files,omitempty"`
}

// Writer creates session metadata documents in the subject's yml directory
type Writer struct {
	inv       *application.Inventory
	overwrite bool
}

// NewWriter creates a metadata writer. Existing documents are only replaced
// when overwrite is set.
func NewWriter(inv *application.Inventory, overwrite bool) *Writer {
	return &Writer{inv: inv, overwrite: overwrite}
}

// WriteAll writes one document per inventory date and returns the paths
func (w *Writer) WriteAll() ([]string, error) {
	var written []string
	for _, date := range w.inv.Dates() {
		path, err := w.Write(date)
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

// Write builds and writes the metadata document for one session date,
// returning the document's full path
func (w *Writer) Write(date string) (string, error) {
	doc, err := w.buildDocument(date)
	if err != nil {
		return "", err
	}

	fullName, err := w.documentPath(date)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(fullName); err == nil && !w.overwrite {
		return "", fmt.Errorf("file %q already exists and overwriting is disabled", fullName)
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to marshal session document: %w", err)
	}
	if err := os.WriteFile(fullName, out, 0644); err != nil {
		return "", fmt.Errorf("failed to write session document: %w", err)
	}
	return fullName, nil
}

func (w *Writer) buildDocument(date string) (*SessionDocument, error) {
	dateIdx := -1
	for i, d := range w.inv.Dates() {
		if d == date {
			dateIdx = i
			break
		}
	}
	if dateIdx < 0 {
		return nil, &application.ArgumentError{
			Field:   "date",
			Message: fmt.Sprintf("date %q is not covered by the inventory", date),
		}
	}

	scheme := w.inv.Scheme()
	nEpochs := w.inv.EpochCounts()[dateIdx]
	epochs := make([]EpochDocument, nEpochs)
	for idx := 1; idx <= nEpochs; idx++ {
		info, err := scheme.EpochInfo(idx)
		if err != nil {
			return nil, err
		}
		epochs[idx-1] = EpochDocument{
			Index:  idx,
			Number: info.Number,
			Name:   info.Name,
			Camera: info.Camera,
		}
	}

	matching, err := w.inv.SearchMatchingFileNames(date)
	if err != nil {
		return nil, err
	}
	missing, err := w.inv.SearchMissingFileNames(date)
	if err != nil {
		return nil, err
	}

	return &SessionDocument{
		Subject:      w.inv.Subject(),
		Date:         date,
		Epochs:       epochs,
		RawFiles:     matching.WhereType(domain.FileTypeRaw).FileNames(),
		MissingFiles: missing.WhereType(domain.FileTypeRaw).FileNames(),
	}, nil
}

// documentPath resolves the expected yml file name for the date
func (w *Writer) documentPath(date string) (string, error) {
	records, err := w.inv.SearchExpectedFileNames(date + `.*\.yml`)
	if err != nil {
		return "", err
	}
	ymlRecords := records.WhereType(domain.FileTypeYML)
	if len(ymlRecords) == 0 {
		return "", fmt.Errorf("no expected yml file name for date %s: %w", date, application.ErrNotFound)
	}
	return filepath.Clean(ymlRecords[0].FullName), nil
}
