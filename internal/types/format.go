package types

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/simonhull/krc/internal/binary"
)

// Format represents the detected lyrics format
type Format int

const (
	// FormatUnknown represents an unknown or unsupported format.
	FormatUnknown Format = iota // Unknown
	// FormatKRC represents Kugou KRC karaoke lyrics.
	FormatKRC // KRC
)

// HeaderSize is the length of the ignorable KRC file header.
const HeaderSize = 4

// krcMagic is the header written by every KRC producer seen in the wild.
// The decoder never requires it; it only helps detection.
var krcMagic = []byte("krc1")

// String returns the display name of the format.
func (f Format) String() string {
	switch f {
	case FormatKRC:
		return "KRC"
	case FormatUnknown:
		return "Unknown"
	default:
		return "Unknown"
	}
}

// Extensions returns common file extensions for this format.
func (f Format) Extensions() []string {
	switch f {
	case FormatKRC:
		return []string{".krc"}
	case FormatUnknown:
		return nil
	default:
		return nil
	}
}

// Ext returns the bare file extension used in decoded documents ("krc").
func (f Format) Ext() string {
	exts := f.Extensions()
	if len(exts) == 0 {
		return ""
	}
	return strings.TrimPrefix(exts[0], ".")
}

// DetectFormat determines the lyrics file format.
//
// The header magic is checked first. Because the KRC header is formally
// ignorable, a file with an unexpected header is still accepted when its
// extension is ".krc".
func DetectFormat(r io.ReaderAt, size int64, path string) (Format, error) {
	byExt := formatFromExt(path)

	if size < HeaderSize {
		if byExt != FormatUnknown {
			return byExt, nil
		}
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: "file too small",
		}
	}

	sr := binary.NewSafeReader(r, size, path)

	magic := make([]byte, HeaderSize)
	if err := sr.ReadAt(magic, 0, "file magic bytes"); err != nil {
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: "failed to read file header",
		}
	}

	if string(magic) == string(krcMagic) {
		return FormatKRC, nil
	}

	if byExt != FormatUnknown {
		return byExt, nil
	}

	return FormatUnknown, &UnsupportedFormatError{
		Path:   path,
		Reason: "unsupported file format",
	}
}

func formatFromExt(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	for _, f := range []Format{FormatKRC} {
		for _, e := range f.Extensions() {
			if e == ext {
				return f
			}
		}
	}
	return FormatUnknown
}
