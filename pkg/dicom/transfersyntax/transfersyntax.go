// Package transfersyntax defines the closed set of DICOM transfer syntaxes
// this module recognizes.
package transfersyntax

import "errors"

// Syntax is a recognized DICOM transfer syntax.
type Syntax int

// The transfer syntaxes named in the external UID table.
const (
	Unknown Syntax = iota
	ImplicitVRLittleEndian
	ExplicitVRLittleEndian
	ExplicitVRBigEndian
	JPEGBaseline
	JPEGLossless
	JPEG2000Lossless
	JPEG2000
	RLELossless
)

// ErrUnsupportedTransferSyntax is returned for an unrecognized UID.
var ErrUnsupportedTransferSyntax = errors.New("transfersyntax: unsupported transfer syntax")

var byUID = map[string]Syntax{
	"1.2.840.10008.1.2":      ImplicitVRLittleEndian,
	"1.2.840.10008.1.2.1":    ExplicitVRLittleEndian,
	"1.2.840.10008.1.2.2":    ExplicitVRBigEndian,
	"1.2.840.10008.1.2.4.50": JPEGBaseline,
	"1.2.840.10008.1.2.4.70": JPEGLossless,
	"1.2.840.10008.1.2.4.90": JPEG2000Lossless,
	"1.2.840.10008.1.2.4.91": JPEG2000,
	"1.2.840.10008.1.2.5":    RLELossless,
}

var toUID = map[Syntax]string{
	ImplicitVRLittleEndian: "1.2.840.10008.1.2",
	ExplicitVRLittleEndian: "1.2.840.10008.1.2.1",
	ExplicitVRBigEndian:    "1.2.840.10008.1.2.2",
	JPEGBaseline:           "1.2.840.10008.1.2.4.50",
	JPEGLossless:           "1.2.840.10008.1.2.4.70",
	JPEG2000Lossless:       "1.2.840.10008.1.2.4.90",
	JPEG2000:               "1.2.840.10008.1.2.4.91",
	RLELossless:            "1.2.840.10008.1.2.5",
}

// FromUID parses a UID, trimming trailing spaces/NULs first.
func FromUID(uid string) (Syntax, error) {
	uid = trimPadding(uid)
	s, ok := byUID[uid]
	if !ok {
		return Unknown, ErrUnsupportedTransferSyntax
	}
	return s, nil
}

// ToUID is the inverse of FromUID.
func (s Syntax) ToUID() string {
	return toUID[s]
}

// IsExplicitVR reports whether the main dataset uses explicit VR encoding.
func (s Syntax) IsExplicitVR() bool {
	return s != ImplicitVRLittleEndian
}

// IsLittleEndian reports whether the main dataset is little-endian.
func (s Syntax) IsLittleEndian() bool {
	return s != ExplicitVRBigEndian
}

// IsEncapsulated reports whether pixel data is delivered as compressed items.
func (s Syntax) IsEncapsulated() bool {
	switch s {
	case JPEGBaseline, JPEGLossless, JPEG2000Lossless, JPEG2000, RLELossless:
		return true
	default:
		return false
	}
}

// IsRefused reports whether this is a recognized-but-unsupported encapsulated
// transfer syntax (JPEG 2000 or RLE).
func (s Syntax) IsRefused() bool {
	switch s {
	case JPEG2000Lossless, JPEG2000, RLELossless:
		return true
	default:
		return false
	}
}

// Name returns a human-readable label, used for CLI/log output.
func (s Syntax) Name() string {
	switch s {
	case ImplicitVRLittleEndian:
		return "Implicit VR Little Endian"
	case ExplicitVRLittleEndian:
		return "Explicit VR Little Endian"
	case ExplicitVRBigEndian:
		return "Explicit VR Big Endian"
	case JPEGBaseline:
		return "JPEG Baseline"
	case JPEGLossless:
		return "JPEG Lossless, First-Order Prediction"
	case JPEG2000Lossless:
		return "JPEG 2000 Lossless"
	case JPEG2000:
		return "JPEG 2000"
	case RLELossless:
		return "RLE Lossless"
	default:
		return "Unknown"
	}
}

func trimPadding(s string) string {
	start, end := 0, len(s)
	for end > start && (s[end-1] == ' ' || s[end-1] == 0) {
		end--
	}
	for start < end && (s[start] == ' ' || s[start] == 0) {
		start++
	}
	return s[start:end]
}
