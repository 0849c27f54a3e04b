package domain

import (
	"reflect"
	"testing"
)

func testScheme(t *testing.T) Scheme {
	t.Helper()

	scheme, err := NewScheme("rat1", []string{"sleep", "run"}, []string{"0", "1"})
	if err != nil {
		t.Fatalf("NewScheme failed: %v", err)
	}
	return scheme
}

func TestNewScheme_RequiresParallelLists(t *testing.T) {
	if _, err := NewScheme("rat1", []string{"sleep", "run"}, []string{"0"}); err == nil {
		t.Error("expected error for mismatched list lengths")
	}
	if _, err := NewScheme("rat1", nil, nil); err == nil {
		t.Error("expected error for empty epoch type list")
	}
	if _, err := NewScheme("", []string{"run"}, []string{"0"}); err == nil {
		t.Error("expected error for empty subject")
	}
}

func TestEpochInfo_CyclicDerivation(t *testing.T) {
	scheme := testScheme(t)

	tests := []struct {
		idx    int
		number string
		name   string
		camera string
	}{
		{1, "01", "run0", "1"},
		{2, "02", "sleep1", "0"},
		{3, "03", "run1", "1"},
		{4, "04", "sleep2", "0"},
		// The single-leading-zero convention produces a three-digit
		// number from index 10 on
		{10, "010", "sleep5", "0"},
		{11, "011", "run5", "1"},
	}

	for _, tt := range tests {
		info, err := scheme.EpochInfo(tt.idx)
		if err != nil {
			t.Fatalf("EpochInfo(%d) failed: %v", tt.idx, err)
		}
		if info.Number != tt.number || info.Name != tt.name || info.Camera != tt.camera {
			t.Errorf("EpochInfo(%d) = %+v, want number=%s name=%s camera=%s",
				tt.idx, info, tt.number, tt.name, tt.camera)
		}
	}
}

func TestEpochInfo_Idempotent(t *testing.T) {
	scheme := testScheme(t)

	first, err := scheme.EpochInfo(3)
	if err != nil {
		t.Fatalf("EpochInfo failed: %v", err)
	}
	second, err := scheme.EpochInfo(3)
	if err != nil {
		t.Fatalf("EpochInfo failed: %v", err)
	}
	if first != second {
		t.Errorf("EpochInfo(3) not stable: %+v then %+v", first, second)
	}
}

func TestEpochInfo_RejectsNonPositiveIndex(t *testing.T) {
	scheme := testScheme(t)

	for _, idx := range []int{0, -1, -7} {
		if _, err := scheme.EpochInfo(idx); err == nil {
			t.Errorf("EpochInfo(%d) should fail", idx)
		}
	}
}

func TestFileNamePrefix_SessionLevel(t *testing.T) {
	scheme := testScheme(t)

	prefix, err := scheme.FileNamePrefix("20230101", PrefixOptions{})
	if err != nil {
		t.Fatalf("FileNamePrefix failed: %v", err)
	}
	if prefix != "20230101_rat1" {
		t.Errorf("expected 20230101_rat1, got %s", prefix)
	}
}

func TestFileNamePrefix_WithEpochIndex(t *testing.T) {
	scheme := testScheme(t)

	prefix, err := scheme.FileNamePrefix("20230101", PrefixOptions{EpochIndex: 3})
	if err != nil {
		t.Fatalf("FileNamePrefix failed: %v", err)
	}
	if prefix != "20230101_rat1_03_run1.1" {
		t.Errorf("expected 20230101_rat1_03_run1.1, got %s", prefix)
	}
}

func TestFileNamePrefix_WithExplicitEpochInfo(t *testing.T) {
	scheme := testScheme(t)

	prefix, err := scheme.FileNamePrefix("20230101", PrefixOptions{
		EpochNumber: "02",
		EpochName:   "sleep1",
	})
	if err != nil {
		t.Fatalf("FileNamePrefix failed: %v", err)
	}
	if prefix != "20230101_rat1_02_sleep1" {
		t.Errorf("expected 20230101_rat1_02_sleep1, got %s", prefix)
	}
}

func TestFileNamePrefix_ContradictoryArguments(t *testing.T) {
	scheme := testScheme(t)

	tests := []struct {
		name string
		opt  PrefixOptions
	}{
		{"index with explicit camera", PrefixOptions{EpochIndex: 1, CameraName: "0"}},
		{"index with explicit number and name", PrefixOptions{EpochIndex: 1, EpochNumber: "01", EpochName: "run0"}},
		{"number without name", PrefixOptions{EpochNumber: "01"}},
		{"name without number", PrefixOptions{EpochName: "run0"}},
		{"camera without epoch info", PrefixOptions{CameraName: "0"}},
	}

	for _, tt := range tests {
		if _, err := scheme.FileNamePrefix("20230101", tt.opt); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestExpectedNames_YMLDegeneratesToDefaultPrefix(t *testing.T) {
	scheme := testScheme(t)

	names, err := scheme.ExpectedNames(FileTypeYML, "20230101", 0)
	if err != nil {
		t.Fatalf("ExpectedNames failed: %v", err)
	}
	want := []string{"20230101_rat1.yml"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("expected %v, got %v", want, names)
	}
}

func TestExpectedNames_NWBReversesPrefixOrder(t *testing.T) {
	scheme := testScheme(t)

	names, err := scheme.ExpectedNames(FileTypeNWB, "20230101", 0)
	if err != nil {
		t.Fatalf("ExpectedNames failed: %v", err)
	}
	want := []string{"rat1_20230101.nwb"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("expected %v, got %v", want, names)
	}
}

func TestExpectedNames_RawSingleEpoch(t *testing.T) {
	scheme := testScheme(t)

	names, err := scheme.ExpectedNames(FileTypeRaw, "20230101", 1)
	if err != nil {
		t.Fatalf("ExpectedNames failed: %v", err)
	}
	want := []string{
		"20230101_rat1.trodesconf",
		"20230101_rat1_01_run0.1.h264",
		"20230101_rat1_01_run0.1.videoPositionTracking",
		"20230101_rat1_01_run0.1.videoTimeStamps.cameraHWSync",
		"20230101_rat1_01_run0.rec",
		"20230101_rat1_01_run0.stateScriptLog",
	}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("expected %v, got %v", want, names)
	}
}

func TestExpectedNames_RawUnionsAcrossEpochs(t *testing.T) {
	scheme := testScheme(t)

	names, err := scheme.ExpectedNames(FileTypeRaw, "20230101", 2)
	if err != nil {
		t.Fatalf("ExpectedNames failed: %v", err)
	}
	// Five epoch-specific names per epoch plus one shared .trodesconf entry
	if len(names) != 11 {
		t.Errorf("expected 11 names, got %d: %v", len(names), names)
	}
	found := false
	for _, name := range names {
		if name == "20230101_rat1_02_sleep1.0.h264" {
			found = true
		}
	}
	if !found {
		t.Errorf("second epoch h264 name missing from %v", names)
	}
}

func TestExpectedNames_MetadataSubjectPrefix(t *testing.T) {
	scheme := testScheme(t)

	names, err := scheme.ExpectedNames(FileTypeMetadata, "", 0)
	if err != nil {
		t.Fatalf("ExpectedNames failed: %v", err)
	}
	want := []string{
		"rat1_cannula_diagram.svg",
		"rat1_dio_events.csv",
		"rat1_electrode_arrangement.svg",
		"rat1_electrode_info.csv",
		"rat1_session_info.csv",
		"rat1_subject_info.csv",
		"tetrode_12.5.yml",
	}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("expected %v, got %v", want, names)
	}
}

func TestExpectedNames_VideoPerEpoch(t *testing.T) {
	scheme := testScheme(t)

	names, err := scheme.ExpectedNames(FileTypeVideo, "20230101", 2)
	if err != nil {
		t.Fatalf("ExpectedNames failed: %v", err)
	}
	want := []string{
		"20230101_rat1_01_run0.1.h264",
		"20230101_rat1_02_sleep1.0.h264",
	}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("expected %v, got %v", want, names)
	}
}

func TestExpectedNames_ZeroEpochsYieldEmptySet(t *testing.T) {
	scheme := testScheme(t)

	for _, ft := range []FileType{FileTypeRaw, FileTypeVideo} {
		names, err := scheme.ExpectedNames(ft, "20230101", 0)
		if err != nil {
			t.Fatalf("ExpectedNames(%s) failed: %v", ft, err)
		}
		if len(names) != 0 {
			t.Errorf("expected empty set for %s with zero epochs, got %v", ft, names)
		}
	}
}

func TestExpectedNames_UnknownFileType(t *testing.T) {
	scheme := testScheme(t)

	if _, err := scheme.ExpectedNames(FileTypeUnknown, "20230101", 1); err == nil {
		t.Error("expected error for unknown file type")
	}
}
