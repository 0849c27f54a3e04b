package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// FileType identifies one class of session data file
type FileType int

const (
	FileTypeUnknown  FileType = iota
	FileTypeRaw               // acquisition files under raw/<date>
	FileTypeMetadata          // subject-level spreadsheets and diagrams
	FileTypeYML               // per-session metadata documents
	FileTypeNWB               // standardized container files
	FileTypeVideo             // per-epoch camera files
)

// FileTypes lists every concrete file type in reconciliation order
var FileTypes = []FileType{FileTypeRaw, FileTypeMetadata, FileTypeYML, FileTypeNWB, FileTypeVideo}

func (t FileType) String() string {
	switch t {
	case FileTypeRaw:
		return "raw"
	case FileTypeMetadata:
		return "metadata"
	case FileTypeYML:
		return "yml"
	case FileTypeNWB:
		return "nwb"
	case FileTypeVideo:
		return "video"
	default:
		return "unknown"
	}
}

// ParseFileType maps a type name back to its FileType
func ParseFileType(name string) FileType {
	switch strings.TrimSpace(strings.ToLower(name)) {
	case "raw":
		return FileTypeRaw
	case "metadata":
		return FileTypeMetadata
	case "yml":
		return FileTypeYML
	case "nwb":
		return FileTypeNWB
	case "video":
		return FileTypeVideo
	default:
		return FileTypeUnknown
	}
}

var dateRegex = regexp.MustCompile(`^[0-9]{8}$`)

// ValidateDate checks that a session date is an 8-digit calendar string
func ValidateDate(date string) error {
	if !dateRegex.MatchString(date) {
		return fmt.Errorf("invalid session date: %q", date)
	}
	return nil
}
