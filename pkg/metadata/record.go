// Package metadata projects a parsed Dataset into the keyed JSON record
// described in spec.md §6: a flat set of clinically relevant tags, each
// omitted entirely when absent rather than emitted as a zero value.
package metadata

import (
	"strconv"
	"strings"

	"github.com/quillhealth/dcmjpeg/pkg/dicom"
	"github.com/quillhealth/dcmjpeg/pkg/dicom/tag"
)

// Record is the JSON shape spec.md §6 names. Numeric fields use pointers so
// encoding/json's omitempty drops them when the source tag was absent,
// rather than emitting a misleading zero.
type Record struct {
	PatientName               string   `json:"patientName,omitempty"`
	PatientID                 string   `json:"patientId,omitempty"`
	PatientBirthDate           string   `json:"patientBirthDate,omitempty"`
	PatientSex                string   `json:"patientSex,omitempty"`
	StudyInstanceUID           string   `json:"studyInstanceUid,omitempty"`
	StudyDate                 string   `json:"studyDate,omitempty"`
	StudyTime                 string   `json:"studyTime,omitempty"`
	StudyDescription          string   `json:"studyDescription,omitempty"`
	Rows                      *int     `json:"rows,omitempty"`
	Columns                   *int     `json:"columns,omitempty"`
	BitsAllocated             *int     `json:"bitsAllocated,omitempty"`
	BitsStored                *int     `json:"bitsStored,omitempty"`
	SamplesPerPixel           *int     `json:"samplesPerPixel,omitempty"`
	PhotometricInterpretation string   `json:"photometricInterpretation,omitempty"`
	RescaleIntercept          *float64 `json:"rescaleIntercept,omitempty"`
	RescaleSlope              *float64 `json:"rescaleSlope,omitempty"`
	WindowCenter              *float64 `json:"windowCenter,omitempty"`
	WindowWidth               *float64 `json:"windowWidth,omitempty"`
}

// Project builds a Record from ds, applying SpecificCharacterSet-aware
// decoding to the string-valued patient/study tags.
func Project(ds *dicom.Dataset) *Record {
	r := &Record{}

	r.PatientName = decodedString(ds, tag.PatientName)
	r.PatientID = decodedString(ds, tag.PatientID)
	r.PatientBirthDate = decodedString(ds, tag.PatientBirthDate)
	r.PatientSex = decodedString(ds, tag.PatientSex)
	r.StudyInstanceUID = decodedString(ds, tag.StudyInstanceUID)
	r.StudyDate = decodedString(ds, tag.StudyDate)
	r.StudyTime = decodedString(ds, tag.StudyTime)
	r.StudyDescription = decodedString(ds, tag.StudyDescription)
	r.PhotometricInterpretation = decodedString(ds, tag.PhotometricInterpretation)

	r.Rows = uint16Ptr(ds, tag.Rows)
	r.Columns = uint16Ptr(ds, tag.Columns)
	r.BitsAllocated = uint16Ptr(ds, tag.BitsAllocated)
	r.BitsStored = uint16Ptr(ds, tag.BitsStored)
	r.SamplesPerPixel = uint16Ptr(ds, tag.SamplesPerPixel)

	r.RescaleIntercept = decimalStringPtr(ds, tag.RescaleIntercept)
	r.RescaleSlope = decimalStringPtr(ds, tag.RescaleSlope)
	r.WindowCenter = decimalStringPtr(ds, tag.WindowCenter)
	r.WindowWidth = decimalStringPtr(ds, tag.WindowWidth)

	return r
}

func decodedString(ds *dicom.Dataset, t tag.Tag) string {
	s, ok := ds.GetString(t)
	if !ok {
		return ""
	}
	return ds.DecodeString(s)
}

func uint16Ptr(ds *dicom.Dataset, t tag.Tag) *int {
	v, ok := ds.GetUint16(t)
	if !ok {
		return nil
	}
	n := int(v)
	return &n
}

// decimalStringPtr parses a DS (decimal string) VR value, taking only the
// first backslash-separated component — DS elements are sometimes
// multi-valued (e.g. window center/width pairs), but the record shape names
// a single scalar per field.
func decimalStringPtr(ds *dicom.Dataset, t tag.Tag) *float64 {
	s, ok := ds.GetString(t)
	if !ok {
		return nil
	}
	first := strings.SplitN(s, "\\", 2)[0]
	f, err := strconv.ParseFloat(strings.TrimSpace(first), 64)
	if err != nil {
		return nil
	}
	return &f
}
