package dicom

import (
	"fmt"

	"github.com/quillhealth/dcmjpeg/pkg/bitio"
	"github.com/quillhealth/dcmjpeg/pkg/dicom/tag"
	"github.com/quillhealth/dcmjpeg/pkg/dicom/transfersyntax"
	"github.com/quillhealth/dcmjpeg/pkg/dicom/vr"
)

const fileMetaIterationCap = 100

// Parse reads the file-meta prefix and the main dataset from buf. buf must
// outlive every DataElement in the returned Dataset.
func Parse(buf []byte) (*FileMeta, *Dataset, error) {
	if len(buf) < 132 {
		return nil, nil, ErrInvalidPreamble
	}
	if string(buf[128:132]) != "DICM" {
		return nil, nil, ErrInvalidPrefix
	}

	meta := &FileMeta{Preamble: append([]byte(nil), buf[:128]...)}

	r := bitio.NewByteReader(buf, true)
	if err := r.SetPos(132); err != nil {
		return nil, nil, err
	}

	var haveTSUID, haveSOPClass, haveSOPInstance bool
	for i := 0; i < fileMetaIterationCap; i++ {
		if r.Remaining() < 8 {
			break
		}
		startPos := r.Pos()
		group, err := r.ReadU16()
		if err != nil {
			return nil, nil, err
		}
		if group != 0x0002 {
			// Roll back the 2-byte group already consumed so the
			// main-dataset loop re-reads the whole tag.
			if err := r.SetPos(startPos); err != nil {
				return nil, nil, err
			}
			break
		}
		element, err := r.ReadU16()
		if err != nil {
			return nil, nil, err
		}
		t := tag.New(group, element)

		_, length, err := readExplicitVRHeader(r)
		if err != nil {
			return nil, nil, err
		}

		if length == 0xFFFFFFFF {
			return nil, nil, ErrInvalidFileMeta
		}
		valBytes, err := r.ReadBytes(int(length))
		if err != nil {
			return nil, nil, err
		}

		switch t {
		case tag.FileMetaInformationGroupLength:
			meta.GroupLength = decodeU32LE(valBytes)
		case tag.TransferSyntaxUID:
			meta.TransferSyntaxUID = trimPadding(valBytes)
			haveTSUID = true
		case tag.MediaStorageSOPClassUID:
			meta.SOPClassUID = trimPadding(valBytes)
			haveSOPClass = true
		case tag.MediaStorageSOPInstanceUID:
			meta.SOPInstanceUID = trimPadding(valBytes)
			haveSOPInstance = true
		case tag.ImplementationClassUID:
			meta.ImplementationClassUID = trimPadding(valBytes)
		}
	}

	if !haveTSUID || !haveSOPClass || !haveSOPInstance {
		return nil, nil, ErrInvalidFileMeta
	}

	meta.DataSetStartOffset = r.Pos()

	ts, err := transfersyntax.FromUID(meta.TransferSyntaxUID)
	if err != nil {
		return nil, nil, err
	}

	ds := &Dataset{
		Buf:            buf,
		TransferSyntax: ts,
		LittleEndian:   ts.IsLittleEndian(),
	}

	if err := parseMainDataset(ds, r.Pos()); err != nil {
		return nil, nil, err
	}

	return meta, ds, nil
}

func parseMainDataset(ds *Dataset, start int) error {
	r := bitio.NewByteReader(ds.Buf, ds.LittleEndian)
	if err := r.SetPos(start); err != nil {
		return err
	}

	explicit := ds.TransferSyntax.IsExplicitVR()

	for {
		if r.Remaining() < 8 {
			break
		}
		prevPos := r.Pos()

		group, err := r.ReadU16()
		if err != nil {
			return err
		}
		element, err := r.ReadU16()
		if err != nil {
			return err
		}
		t := tag.New(group, element)
		if t.Equals(tag.Zero) {
			break
		}

		var elemVR vr.VR
		var length uint32
		if explicit {
			elemVR, length, err = readExplicitVRHeader(r)
		} else {
			elemVR = vr.UN
			length, err = r.ReadU32()
		}
		if err != nil {
			return err
		}

		var de DataElement
		if length == 0xFFFFFFFF {
			valueOffset := r.Pos()
			valueLength, err := scanUndefinedLength(r)
			if err != nil {
				return err
			}
			de = DataElement{Tag: t, VR: elemVR, ValueOffset: valueOffset, ValueLength: valueLength}
		} else {
			valueOffset := r.Pos()
			if err := r.Skip(int(length)); err != nil {
				return err
			}
			de = DataElement{Tag: t, VR: elemVR, ValueOffset: valueOffset, ValueLength: length}
		}
		ds.Elements = append(ds.Elements, de)

		if r.Pos() == prevPos {
			return fmt.Errorf("dicom: no progress parsing element at offset %d: %w", prevPos, ErrInvalidLength)
		}
	}

	return nil
}

// readExplicitVRHeader reads the 2-byte VR and its length field per the
// explicit-VR encoding rules (long form: 2 reserved bytes + u32 length;
// short form: u16 length).
func readExplicitVRHeader(r *bitio.ByteReader) (vr.VR, uint32, error) {
	b0, err := r.ReadU8()
	if err != nil {
		return "", 0, err
	}
	b1, err := r.ReadU8()
	if err != nil {
		return "", 0, err
	}
	v, err := vr.FromBytes(b0, b1)
	if err != nil {
		return "", 0, err
	}
	if v.UsesLongLengthField() {
		if _, err := r.ReadU16(); err != nil { // reserved
			return "", 0, err
		}
		length, err := r.ReadU32()
		if err != nil {
			return "", 0, err
		}
		return v, length, nil
	}
	length, err := r.ReadU16()
	if err != nil {
		return "", 0, err
	}
	return v, uint32(length), nil
}

// scanUndefinedLength walks an undefined-length element's item sequence
// until the sequence delimiter (FFFE,E0DD), returning the byte length of the
// enclosed span. Nested sequence structure is not interpreted — this is a
// flat item scan, sufficient for pixel data and any other undefined-length
// element this module encounters.
func scanUndefinedLength(r *bitio.ByteReader) (uint32, error) {
	start := r.Pos()
	for {
		if r.Remaining() < 8 {
			return 0, ErrUnexpectedEndOfData
		}
		itemStart := r.Pos()
		group, err := r.ReadU16()
		if err != nil {
			return 0, err
		}
		element, err := r.ReadU16()
		if err != nil {
			return 0, err
		}
		itemTag := tag.New(group, element)
		itemLength, err := r.ReadU32()
		if err != nil {
			return 0, err
		}

		switch itemTag {
		case tag.SequenceDelimitationItem:
			return uint32(itemStart - start), nil
		case tag.Item:
			if itemLength == 0xFFFFFFFF {
				return 0, ErrInvalidLength
			}
			if err := r.Skip(int(itemLength)); err != nil {
				return 0, err
			}
		default:
			return 0, ErrInvalidLength
		}
	}
}

func decodeU32LE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
