package metadata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"recaudit/internal/adapters/filesystem"
	"recaudit/internal/application"
	"recaudit/internal/domain"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create %s: %v", name, err)
	}
}

func setupSession(t *testing.T) (string, func()) {
	t.Helper()

	root, err := os.MkdirTemp("", "recaudit-metadata-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	rawPath := filepath.Join(root, "rat1", "raw", "20230101")
	metadataPath := filepath.Join(root, "rat1", "metadata")
	ymlPath := filepath.Join(metadataPath, "yml")
	nwbPath := filepath.Join(root, "rat1", "nwb", "raw")
	videoPath := filepath.Join(root, "rat1", "nwb", "video")
	for _, dir := range []string{rawPath, ymlPath, nwbPath, videoPath} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("failed to create %s: %v", dir, err)
		}
	}

	for _, name := range []string{
		"20230101_rat1.trodesconf",
		"20230101_rat1_01_run0.rec",
		"20230101_rat1_01_run0.stateScriptLog",
		"20230101_rat1_01_run0.1.h264",
		"20230101_rat1_01_run0.1.videoPositionTracking",
	} {
		touch(t, rawPath, name)
	}

	return root, func() { os.RemoveAll(root) }
}

func newInventory(t *testing.T, root string) *application.Inventory {
	t.Helper()

	scheme, err := domain.NewScheme("rat1", []string{"sleep", "run"}, []string{"0", "1"})
	if err != nil {
		t.Fatalf("NewScheme failed: %v", err)
	}
	store := filesystem.NewStore(root)
	inv, err := application.NewInventory(scheme, store.Layout(), store, nil)
	if err != nil {
		t.Fatalf("NewInventory failed: %v", err)
	}
	return inv
}

func TestWrite_CreatesSessionDocument(t *testing.T) {
	root, cleanup := setupSession(t)
	defer cleanup()

	writer := NewWriter(newInventory(t, root), false)
	path, err := writer.Write("20230101")
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if filepath.Base(path) != "20230101_rat1.yml" {
		t.Errorf("expected document name 20230101_rat1.yml, got %s", filepath.Base(path))
	}
	if !strings.Contains(path, filepath.Join("metadata", "yml")) {
		t.Errorf("document written outside the yml directory: %s", path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read document: %v", err)
	}
	var doc SessionDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("failed to unmarshal document: %v", err)
	}

	if doc.Subject != "rat1" || doc.Date != "20230101" {
		t.Errorf("unexpected header: subject %q date %q", doc.Subject, doc.Date)
	}
	if len(doc.Epochs) != 1 {
		t.Fatalf("expected one epoch, got %d", len(doc.Epochs))
	}
	if doc.Epochs[0].Name != "run0" || doc.Epochs[0].Number != "01" || doc.Epochs[0].Camera != "1" {
		t.Errorf("unexpected epoch: %+v", doc.Epochs[0])
	}
	if len(doc.RawFiles) != 5 {
		t.Errorf("expected 5 raw files on disk, got %v", doc.RawFiles)
	}
	// The cameraHWSync file is not on disk in this fixture
	if len(doc.MissingFiles) != 1 || !strings.HasSuffix(doc.MissingFiles[0], ".videoTimeStamps.cameraHWSync") {
		t.Errorf("expected the cameraHWSync file missing, got %v", doc.MissingFiles)
	}
}

func TestWrite_RefusesOverwrite(t *testing.T) {
	root, cleanup := setupSession(t)
	defer cleanup()

	inv := newInventory(t, root)

	writer := NewWriter(inv, false)
	if _, err := writer.Write("20230101"); err != nil {
		t.Fatalf("first Write failed: %v", err)
	}
	if _, err := writer.Write("20230101"); err == nil {
		t.Error("expected error when overwriting without the overwrite flag")
	}

	forced := NewWriter(inv, true)
	if _, err := forced.Write("20230101"); err != nil {
		t.Errorf("Write with overwrite failed: %v", err)
	}
}

func TestWrite_UnknownDate(t *testing.T) {
	root, cleanup := setupSession(t)
	defer cleanup()

	writer := NewWriter(newInventory(t, root), false)
	if _, err := writer.Write("20991231"); err == nil {
		t.Error("expected error for a date outside the inventory")
	}
}

func TestWriteAll_OneDocumentPerDate(t *testing.T) {
	root, cleanup := setupSession(t)
	defer cleanup()

	second := filepath.Join(root, "rat1", "raw", "20230102")
	if err := os.MkdirAll(second, 0755); err != nil {
		t.Fatalf("failed to create second date dir: %v", err)
	}
	touch(t, second, "20230102_rat1.trodesconf")

	writer := NewWriter(newInventory(t, root), false)
	paths, err := writer.WriteAll()
	if err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(paths))
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("document %s not written: %v", path, err)
		}
	}
}
