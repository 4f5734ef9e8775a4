package dicom

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhealth/dcmjpeg/pkg/dicom/tag"
	"github.com/quillhealth/dcmjpeg/pkg/dicom/transfersyntax"
	"github.com/quillhealth/dcmjpeg/pkg/dicom/vr"
)

// buildExplicitElement appends one explicit-VR little-endian element.
func buildExplicitElement(buf []byte, t tag.Tag, v vr.VR, value []byte) []byte {
	buf = binary.LittleEndian.AppendUint16(buf, t.Group)
	buf = binary.LittleEndian.AppendUint16(buf, t.Element)
	buf = append(buf, v.ToBytes()[0], v.ToBytes()[1])
	if v.UsesLongLengthField() {
		buf = append(buf, 0, 0) // reserved
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(value)))
	} else {
		buf = binary.LittleEndian.AppendUint16(buf, uint16(len(value)))
	}
	return append(buf, value...)
}

func minimalExplicitVRLEFile(t *testing.T) []byte {
	buf := make([]byte, 128)
	buf = append(buf, []byte("DICM")...)

	ts := "1.2.840.10008.1.2.1\x00"
	sopClass := "1.2.840.10008.5.1.4.1.1.7\x00"
	sopInstance := "1.2.3.4.5.6.7\x00"

	buf = buildExplicitElement(buf, tag.TransferSyntaxUID, vr.UI, []byte(ts))
	buf = buildExplicitElement(buf, tag.MediaStorageSOPClassUID, vr.UI, []byte(sopClass))
	buf = buildExplicitElement(buf, tag.MediaStorageSOPInstanceUID, vr.UI, []byte(sopInstance))

	// Main dataset: one Rows element.
	buf = buildExplicitElement(buf, tag.Rows, vr.US, binary.LittleEndian.AppendUint16(nil, 64))
	return buf
}

func TestParse_MinimalExplicitVRLEFile(t *testing.T) {
	buf := minimalExplicitVRLEFile(t)

	meta, ds, err := Parse(buf)
	require.NoError(t, err)
	assert.Equal(t, transfersyntax.ExplicitVRLittleEndian, ds.TransferSyntax)
	assert.Equal(t, "1.2.840.10008.1.2.1", meta.TransferSyntaxUID)

	rows, ok := ds.GetUint16(tag.Rows)
	require.True(t, ok)
	assert.Equal(t, uint16(64), rows)
}

func TestParse_InvalidPreamble(t *testing.T) {
	_, _, err := Parse(make([]byte, 10))
	assert.ErrorIs(t, err, ErrInvalidPreamble)
}

func TestParse_InvalidPrefix(t *testing.T) {
	buf := make([]byte, 140)
	copy(buf[128:132], "XXXX")
	_, _, err := Parse(buf)
	assert.ErrorIs(t, err, ErrInvalidPrefix)
}

func TestParse_UnsupportedTransferSyntax(t *testing.T) {
	buf := make([]byte, 128)
	buf = append(buf, []byte("DICM")...)
	// JPEG-LS Lossless: absent from the recognized transfer-syntax table.
	// Recognized-but-refused syntaxes (JPEG 2000, RLE) parse successfully and
	// are refused later by dicomimage.Normalize.
	buf = buildExplicitElement(buf, tag.TransferSyntaxUID, vr.UI, []byte("1.2.840.10008.1.2.4.80\x00"))
	buf = buildExplicitElement(buf, tag.MediaStorageSOPClassUID, vr.UI, []byte("1.2\x00"))
	buf = buildExplicitElement(buf, tag.MediaStorageSOPInstanceUID, vr.UI, []byte("1.3\x00"))

	_, _, err := Parse(buf)
	assert.ErrorIs(t, err, ErrUnsupportedTransferSyntax)
}

func TestParse_ElementsWithinBufferBounds(t *testing.T) {
	buf := minimalExplicitVRLEFile(t)
	_, ds, err := Parse(buf)
	require.NoError(t, err)

	for _, e := range ds.Elements {
		assert.GreaterOrEqual(t, e.ValueOffset, 0)
		assert.LessOrEqual(t, e.ValueOffset+int(e.ValueLength), len(buf))
	}
}

func TestDataset_FindByTag_FirstMatch(t *testing.T) {
	buf := minimalExplicitVRLEFile(t)
	_, ds, err := Parse(buf)
	require.NoError(t, err)

	_, ok := ds.FindByTag(tag.Columns)
	assert.False(t, ok)

	e, ok := ds.FindByTag(tag.Rows)
	require.True(t, ok)
	assert.Equal(t, tag.Rows, e.Tag)
}
