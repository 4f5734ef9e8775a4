// Package hostbridge adapts the core decoding pipeline to the abstract,
// pointer/length-oriented contract spec.md §6 describes for an in-browser or
// scripted host runtime: the host hands over raw DICOM bytes and reads back
// one typed result plus a status.
//
// A Bridge is scoped to the call sequence of a single host-side decode
// invocation; nothing here is shared across distinct decode operations.
package hostbridge

import (
	"encoding/json"

	"github.com/quillhealth/dcmjpeg/pkg/dicom"
	"github.com/quillhealth/dcmjpeg/pkg/dicomimage"
	"github.com/quillhealth/dcmjpeg/pkg/metadata"
)

// Bridge holds the last error from the most recent operation, for
// GetLastError. Construct one per decode call; do not share across
// concurrent host calls.
type Bridge struct {
	baseline dicomimage.BaselineDecoder
	lastErr  error
}

// New returns a Bridge. baseline may be nil if the host never expects to
// decode JPEG Baseline frames; a nil baseline decoder on an actual JPEG
// Baseline frame surfaces as ErrNoBaselineDecoder via GetLastError.
func New(baseline dicomimage.BaselineDecoder) *Bridge {
	return &Bridge{baseline: baseline}
}

// ExtractMetadata implements extract_metadata(dicom) -> json-bytes.
func (b *Bridge) ExtractMetadata(dicomBytes []byte) ([]byte, bool) {
	_, ds, err := dicom.Parse(dicomBytes)
	if err != nil {
		b.lastErr = err
		return nil, false
	}
	record := metadata.Project(ds)
	out, err := json.Marshal(record)
	if err != nil {
		b.lastErr = err
		return nil, false
	}
	b.lastErr = nil
	return out, true
}

// GetDimensions implements get_dimensions(dicom) -> (width, height).
func (b *Bridge) GetDimensions(dicomBytes []byte) (width, height int, ok bool) {
	_, ds, err := dicom.Parse(dicomBytes)
	if err != nil {
		b.lastErr = err
		return 0, 0, false
	}
	info, err := dicomimage.ExtractPixelDataInfo(ds)
	if err != nil {
		b.lastErr = err
		return 0, 0, false
	}
	b.lastErr = nil
	return info.Columns, info.Rows, true
}

// DecodeToRGB implements decode_to_rgb(dicom) -> (rgb8-bytes, width, height).
func (b *Bridge) DecodeToRGB(dicomBytes []byte) (rgb []byte, width, height int, ok bool) {
	_, ds, err := dicom.Parse(dicomBytes)
	if err != nil {
		b.lastErr = err
		return nil, 0, 0, false
	}
	result, err := dicomimage.Normalize(ds, b.baseline)
	if err != nil {
		b.lastErr = err
		return nil, 0, 0, false
	}
	b.lastErr = nil
	return result.RGB, result.Width, result.Height, true
}

// GetLastError implements get_last_error() -> utf-8 bytes: a human-readable
// message for the most recent failed operation on this Bridge, or "" if the
// last operation succeeded.
func (b *Bridge) GetLastError() string {
	if b.lastErr == nil {
		return ""
	}
	return b.lastErr.Error()
}
