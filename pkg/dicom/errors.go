package dicom

import (
	"errors"

	"github.com/quillhealth/dcmjpeg/pkg/bitio"
	"github.com/quillhealth/dcmjpeg/pkg/dicom/transfersyntax"
	"github.com/quillhealth/dcmjpeg/pkg/dicom/vr"
)

// Flat error kinds for the DICOM container parser, matching the taxonomy
// used across the decoding pipeline.
var (
	ErrInvalidPreamble         = errors.New("dicom: input shorter than the 132-byte preamble+prefix")
	ErrInvalidPrefix           = errors.New("dicom: missing DICM prefix")
	ErrInvalidFileMeta         = errors.New("dicom: required file-meta field missing or malformed")
	ErrInvalidLength           = errors.New("dicom: implausible element length or sequence structure")
	ErrPixelDataNotFound       = errors.New("dicom: pixel data element not present")
	ErrInvalidPixelData        = errors.New("dicom: pixel data geometry missing or no frames extracted")
	ErrUnexpectedEndOfData     = bitio.ErrUnexpectedEndOfData
	ErrInvalidVR               = vr.ErrInvalidVR
	ErrUnsupportedTransferSyntax = transfersyntax.ErrUnsupportedTransferSyntax
)

// Kind identifies an error category without requiring string matching,
// letting a host boundary layer classify a failure.
type Kind int

// The flat error kinds raised by this module's container and pixel-data path.
const (
	KindUnknown Kind = iota
	KindInvalidPreamble
	KindInvalidPrefix
	KindInvalidFileMeta
	KindUnexpectedEndOfData
	KindInvalidVR
	KindInvalidLength
	KindUnsupportedTransferSyntax
	KindPixelDataNotFound
	KindInvalidPixelData
)

// KindOf classifies err into one of this package's Kinds, or KindUnknown.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrInvalidPreamble):
		return KindInvalidPreamble
	case errors.Is(err, ErrInvalidPrefix):
		return KindInvalidPrefix
	case errors.Is(err, ErrInvalidFileMeta):
		return KindInvalidFileMeta
	case errors.Is(err, ErrUnexpectedEndOfData):
		return KindUnexpectedEndOfData
	case errors.Is(err, ErrInvalidVR):
		return KindInvalidVR
	case errors.Is(err, ErrInvalidLength):
		return KindInvalidLength
	case errors.Is(err, ErrUnsupportedTransferSyntax):
		return KindUnsupportedTransferSyntax
	case errors.Is(err, ErrPixelDataNotFound):
		return KindPixelDataNotFound
	case errors.Is(err, ErrInvalidPixelData):
		return KindInvalidPixelData
	default:
		return KindUnknown
	}
}
