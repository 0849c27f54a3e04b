package domain

import (
	"fmt"
	"sort"
	"strconv"
)

// Fragment association keys. Prefix fragments come before infix fragments
// when names are assembled; suffix fragments would come last.
const (
	fragSubject = "subject"
	fragEpoch   = "epoch"
	fragCamera  = "camera"
)

// fragmentAssoc declares which extensions a named fragment applies to.
type fragmentAssoc struct {
	key        string
	extensions []string
}

// nameTable is the declarative naming rule for one file type: the full
// extension list and the fragment associations, in assembly order.
type nameTable struct {
	extensions []string
	assocs     []fragmentAssoc
}

var nameTables = map[FileType]nameTable{
	FileTypeRaw: {
		extensions: []string{
			".trodesconf",
			".rec",
			".stateScriptLog",
			".h264",
			".videoPositionTracking",
			".videoTimeStamps.cameraHWSync",
		},
		assocs: []fragmentAssoc{
			{key: fragEpoch, extensions: []string{
				".rec",
				".h264",
				".stateScriptLog",
				".videoPositionTracking",
				".videoTimeStamps.cameraHWSync",
			}},
			{key: fragCamera, extensions: []string{
				".h264",
				".videoPositionTracking",
				".videoTimeStamps.cameraHWSync",
			}},
		},
	},
	FileTypeMetadata: {
		extensions: []string{
			"tetrode_12.5.yml",
			"_cannula_diagram.svg",
			"_electrode_arrangement.svg",
			"_dio_events.csv",
			"_electrode_info.csv",
			"_session_info.csv",
			"_subject_info.csv",
		},
		assocs: []fragmentAssoc{
			{key: fragSubject, extensions: []string{
				"_cannula_diagram.svg",
				"_electrode_arrangement.svg",
				"_dio_events.csv",
				"_electrode_info.csv",
				"_session_info.csv",
				"_subject_info.csv",
			}},
		},
	},
	FileTypeYML:   {extensions: []string{".yml"}},
	FileTypeNWB:   {extensions: []string{".nwb"}},
	FileTypeVideo: {extensions: []string{".h264"}},
}

// EpochInfo holds the derived naming fragments for one epoch
type EpochInfo struct {
	Number string // zero-padded epoch number, e.g. "03"
	Name   string // epoch type plus cycle count, e.g. "run1"
	Camera string // camera token for the epoch type
}

// Scheme derives canonical file names from a subject and the configured
// epoch-type/camera cycling lists. Schemes are immutable value objects;
// every derivation is a pure function of the scheme and its arguments.
type Scheme struct {
	subject    string
	epochTypes []string
	cameras    []string
}

// NewScheme builds a naming scheme. The epoch-type and camera lists must be
// non-empty and the same length.
func NewScheme(subject string, epochTypes, cameras []string) (Scheme, error) {
	if subject == "" {
		return Scheme{}, fmt.Errorf("subject name is required")
	}
	if len(epochTypes) == 0 {
		return Scheme{}, fmt.Errorf("epoch type list is empty")
	}
	if len(epochTypes) != len(cameras) {
		return Scheme{}, fmt.Errorf("epoch type list (%d) and camera list (%d) must be the same length",
			len(epochTypes), len(cameras))
	}
	return Scheme{
		subject:    subject,
		epochTypes: append([]string(nil), epochTypes...),
		cameras:    append([]string(nil), cameras...),
	}, nil
}

// Subject returns the scheme's subject name
func (s Scheme) Subject() string {
	return s.subject
}

// EpochInfo derives the epoch number, epoch name, and camera name for a
// positive epoch index. The epoch type cycles through the configured list:
// index mod len(list) selects the type, index div len(list) counts cycles.
// The epoch number keeps the original single-leading-zero convention, so
// indices of 10 and above produce a three-digit number.
func (s Scheme) EpochInfo(idx int) (EpochInfo, error) {
	if idx <= 0 {
		return EpochInfo{}, fmt.Errorf("epoch index must be a positive integer, got %d", idx)
	}
	typeIdx := idx % len(s.epochTypes)
	cycle := idx / len(s.epochTypes)
	return EpochInfo{
		Number: "0" + strconv.Itoa(idx),
		Name:   s.epochTypes[typeIdx] + strconv.Itoa(cycle),
		Camera: s.cameras[typeIdx],
	}, nil
}

// PrefixOptions selects how much epoch information a file name prefix
// carries. Either EpochIndex or the explicit fields may be set, not both.
type PrefixOptions struct {
	EpochIndex  int
	EpochNumber string
	EpochName   string
	CameraName  string
}

// SessionPrefix returns the session-level default prefix, date + "_" + subject
func (s Scheme) SessionPrefix(date string) string {
	return date + "_" + s.subject
}

// FileNamePrefix assembles a file name prefix for a session date. With no
// options this is the session prefix; epoch information appends the epoch
// infix, and a camera name additionally appends the camera infix.
func (s Scheme) FileNamePrefix(date string, opt PrefixOptions) (string, error) {
	if opt.EpochIndex != 0 && (opt.EpochNumber != "" || opt.EpochName != "" || opt.CameraName != "") {
		return "", fmt.Errorf("both an epoch index and explicit epoch information were specified")
	}
	if (opt.EpochNumber != "") != (opt.EpochName != "") {
		return "", fmt.Errorf("an epoch number and an epoch name must be specified together")
	}
	if opt.CameraName != "" && (opt.EpochNumber == "" || opt.EpochName == "") {
		return "", fmt.Errorf("an epoch number and name must be specified when a camera name is specified")
	}

	number, name, camera := opt.EpochNumber, opt.EpochName, opt.CameraName
	if opt.EpochIndex != 0 {
		info, err := s.EpochInfo(opt.EpochIndex)
		if err != nil {
			return "", err
		}
		number, name, camera = info.Number, info.Name, info.Camera
	}

	prefix := s.SessionPrefix(date)
	if number != "" && name != "" {
		prefix += epochInfix(number, name)
	}
	if number != "" && name != "" && camera != "" {
		prefix += cameraInfix(camera)
	}
	return prefix, nil
}

// epochInfix is the per-epoch file name fragment, "_" + number + "_" + name
func epochInfix(number, name string) string {
	return "_" + number + "_" + name
}

// cameraInfix is the per-camera file name fragment, "." + camera
func cameraInfix(camera string) string {
	return "." + camera
}

// ExpectedNames derives the expected file name set for a file type on one
// session date. Raw and video names are unioned across epochs 1..epochs;
// the other types ignore the epoch count. The result is deduplicated and
// sorted, so callers must not read meaning into its order.
func (s Scheme) ExpectedNames(t FileType, date string, epochs int) ([]string, error) {
	switch t {
	case FileTypeRaw:
		return s.expectedRawNames(date, epochs)
	case FileTypeMetadata:
		return s.expectedMetadataNames(), nil
	case FileTypeYML:
		return assembleNames(nameTables[FileTypeYML], s.SessionPrefix(date), nil), nil
	case FileTypeNWB:
		// Container files reverse the usual order: subject + "_" + date
		return assembleNames(nameTables[FileTypeNWB], s.subject+"_"+date, nil), nil
	case FileTypeVideo:
		return s.expectedVideoNames(date, epochs)
	default:
		return nil, fmt.Errorf("no name generation rule for file type %q", t)
	}
}

func (s Scheme) expectedRawNames(date string, epochs int) ([]string, error) {
	names := make(map[string]struct{})
	for idx := 1; idx <= epochs; idx++ {
		info, err := s.EpochInfo(idx)
		if err != nil {
			return nil, err
		}
		fragments := map[string]string{
			fragEpoch:  epochInfix(info.Number, info.Name),
			fragCamera: cameraInfix(info.Camera),
		}
		for _, name := range assembleNames(nameTables[FileTypeRaw], s.SessionPrefix(date), fragments) {
			names[name] = struct{}{}
		}
	}
	return sortedSet(names), nil
}

func (s Scheme) expectedMetadataNames() []string {
	fragments := map[string]string{fragSubject: s.subject}
	return assembleNames(nameTables[FileTypeMetadata], "", fragments)
}

func (s Scheme) expectedVideoNames(date string, epochs int) ([]string, error) {
	names := make(map[string]struct{})
	for idx := 1; idx <= epochs; idx++ {
		prefix, err := s.FileNamePrefix(date, PrefixOptions{EpochIndex: idx})
		if err != nil {
			return nil, err
		}
		for _, name := range assembleNames(nameTables[FileTypeVideo], prefix, nil) {
			names[name] = struct{}{}
		}
	}
	return sortedSet(names), nil
}

// assembleNames builds one expected name per extension: the default prefix,
// then each fragment whose association list contains the extension (in the
// table's declared order), then the extension itself. Identical assembled
// names collapse to one entry.
func assembleNames(table nameTable, defaultPrefix string, fragments map[string]string) []string {
	names := make(map[string]struct{}, len(table.extensions))
	for _, ext := range table.extensions {
		name := defaultPrefix
		for _, assoc := range table.assocs {
			fragment, ok := fragments[assoc.key]
			if !ok {
				continue
			}
			for _, match := range assoc.extensions {
				if match == ext {
					name += fragment
					break
				}
			}
		}
		names[name+ext] = struct{}{}
	}
	return sortedSet(names)
}

func sortedSet(set map[string]struct{}) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
