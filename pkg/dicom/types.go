// Package dicom parses DICOM container files into a non-owning element
// index: a Dataset never copies element values, it only records byte ranges
// into the caller-supplied buffer.
package dicom

import (
	"strings"

	"github.com/quillhealth/dcmjpeg/pkg/dicom/tag"
	"github.com/quillhealth/dcmjpeg/pkg/dicom/transfersyntax"
	"github.com/quillhealth/dcmjpeg/pkg/dicom/vr"
)

// DataElement is a non-owning view into the original input buffer: it
// records where its value lives rather than copying it. The indexing
// Dataset's Buf field must outlive any DataElement derived from it.
type DataElement struct {
	Tag         tag.Tag
	VR          vr.VR
	ValueLength uint32
	ValueOffset int
}

// FileMeta holds the parsed file-meta group (0002). Unlike DataElement, its
// string fields are owned copies — they may outlive the source buffer.
type FileMeta struct {
	Preamble                []byte
	TransferSyntaxUID       string
	SOPClassUID             string
	SOPInstanceUID          string
	ImplementationClassUID  string
	GroupLength             uint32
	DataSetStartOffset      int
}

// Dataset is an ordered sequence of DataElements over a shared buffer.
// Elements appear in stream order.
type Dataset struct {
	Buf            []byte
	Elements       []DataElement
	TransferSyntax transfersyntax.Syntax
	LittleEndian   bool
}

// FindByTag returns the first element matching t, if any.
func (ds *Dataset) FindByTag(t tag.Tag) (DataElement, bool) {
	for _, e := range ds.Elements {
		if e.Tag.Equals(t) {
			return e, true
		}
	}
	return DataElement{}, false
}

// Value returns the element's raw, non-owning byte range.
func (ds *Dataset) Value(e DataElement) []byte {
	return ds.Buf[e.ValueOffset : e.ValueOffset+int(e.ValueLength)]
}

// GetString returns the element's value trimmed of trailing space/NUL.
func (ds *Dataset) GetString(t tag.Tag) (string, bool) {
	e, ok := ds.FindByTag(t)
	if !ok {
		return "", false
	}
	return trimPadding(ds.Value(e)), true
}

// GetUint16 decodes a two-byte element in the dataset's endianness.
func (ds *Dataset) GetUint16(t tag.Tag) (uint16, bool) {
	e, ok := ds.FindByTag(t)
	if !ok || e.ValueLength < 2 {
		return 0, false
	}
	v := ds.Value(e)
	if ds.LittleEndian {
		return uint16(v[0]) | uint16(v[1])<<8, true
	}
	return uint16(v[1]) | uint16(v[0])<<8, true
}

// GetUint32 decodes a four-byte element in the dataset's endianness.
func (ds *Dataset) GetUint32(t tag.Tag) (uint32, bool) {
	e, ok := ds.FindByTag(t)
	if !ok || e.ValueLength < 4 {
		return 0, false
	}
	v := ds.Value(e)
	if ds.LittleEndian {
		return uint32(v[0]) | uint32(v[1])<<8 | uint32(v[2])<<16 | uint32(v[3])<<24, true
	}
	return uint32(v[3]) | uint32(v[2])<<8 | uint32(v[1])<<16 | uint32(v[0])<<24, true
}

func trimPadding(b []byte) string {
	s := string(b)
	return strings.TrimRight(s, " \x00")
}
