package metadata

import (
	"encoding/binary"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhealth/dcmjpeg/pkg/dicom"
	"github.com/quillhealth/dcmjpeg/pkg/dicom/tag"
	"github.com/quillhealth/dcmjpeg/pkg/dicom/vr"
)

func buildExplicitElement(buf []byte, t tag.Tag, v vr.VR, value []byte) []byte {
	buf = binary.LittleEndian.AppendUint16(buf, t.Group)
	buf = binary.LittleEndian.AppendUint16(buf, t.Element)
	buf = append(buf, v.ToBytes()[0], v.ToBytes()[1])
	if v.UsesLongLengthField() {
		buf = append(buf, 0, 0)
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(value)))
	} else {
		buf = binary.LittleEndian.AppendUint16(buf, uint16(len(value)))
	}
	return append(buf, value...)
}

func TestProject_OmitsAbsentFields(t *testing.T) {
	buf := make([]byte, 128)
	buf = append(buf, []byte("DICM")...)
	buf = buildExplicitElement(buf, tag.TransferSyntaxUID, vr.UI, []byte("1.2.840.10008.1.2.1\x00"))
	buf = buildExplicitElement(buf, tag.MediaStorageSOPClassUID, vr.UI, []byte("1.2\x00"))
	buf = buildExplicitElement(buf, tag.MediaStorageSOPInstanceUID, vr.UI, []byte("1.3\x00"))

	buf = buildExplicitElement(buf, tag.PatientName, vr.PN, []byte("Doe^Jane\x00"))
	buf = buildExplicitElement(buf, tag.Rows, vr.US, binary.LittleEndian.AppendUint16(nil, 512))
	buf = buildExplicitElement(buf, tag.WindowCenter, vr.DS, []byte("40.0\\400.0"))

	_, ds, err := dicom.Parse(buf)
	require.NoError(t, err)

	rec := Project(ds)
	assert.Equal(t, "Doe^Jane", rec.PatientName)
	require.NotNil(t, rec.Rows)
	assert.Equal(t, 512, *rec.Rows)
	require.NotNil(t, rec.WindowCenter)
	assert.Equal(t, 40.0, *rec.WindowCenter)
	assert.Nil(t, rec.Columns)
	assert.Empty(t, rec.StudyInstanceUID)

	j, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.NotContains(t, string(j), "columns")
	assert.NotContains(t, string(j), "studyInstanceUid")
	assert.Contains(t, string(j), `"patientName":"Doe^Jane"`)
}
