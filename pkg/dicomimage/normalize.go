package dicomimage

import (
	"fmt"

	"github.com/quillhealth/dcmjpeg/pkg/dicom"
	"github.com/quillhealth/dcmjpeg/pkg/dicom/tag"
	"github.com/quillhealth/dcmjpeg/pkg/pixelframe"
)

// ExtractPixelDataInfo pulls geometry tags and the PixelData value range out
// of ds, applying the defaults spec.md §4.7 calls for when a tag is absent.
func ExtractPixelDataInfo(ds *dicom.Dataset) (*PixelDataInfo, error) {
	e, ok := ds.FindByTag(tag.PixelData)
	if !ok {
		return nil, dicom.ErrPixelDataNotFound
	}

	info := &PixelDataInfo{
		BitsAllocated:             16,
		SamplesPerPixel:           1,
		PhotometricInterpretation: "MONOCHROME2",
		Value:                     ds.Value(e),
	}
	if rows, ok := ds.GetUint16(tag.Rows); ok {
		info.Rows = int(rows)
	}
	if cols, ok := ds.GetUint16(tag.Columns); ok {
		info.Columns = int(cols)
	}
	if ba, ok := ds.GetUint16(tag.BitsAllocated); ok {
		info.BitsAllocated = int(ba)
	}
	info.BitsStored = info.BitsAllocated
	if bs, ok := ds.GetUint16(tag.BitsStored); ok {
		info.BitsStored = int(bs)
	}
	if spp, ok := ds.GetUint16(tag.SamplesPerPixel); ok {
		info.SamplesPerPixel = int(spp)
	}
	if pi, ok := ds.GetString(tag.PhotometricInterpretation); ok && pi != "" {
		info.PhotometricInterpretation = pi
	}
	return info, nil
}

// Normalize decodes ds's pixel data (delegating encapsulated JPEG Baseline
// frames to baseline, which may be nil if the caller never expects one) and
// converts the result to both 8-bit grayscale and RGB.
func Normalize(ds *dicom.Dataset, baseline BaselineDecoder) (*Result, error) {
	info, err := ExtractPixelDataInfo(ds)
	if err != nil {
		return nil, err
	}

	var (
		raw      []byte
		width    = info.Columns
		height   = info.Rows
		channels = info.SamplesPerPixel
	)

	if ds.TransferSyntax.IsEncapsulated() {
		if ds.TransferSyntax.IsRefused() {
			return nil, dicom.ErrUnsupportedTransferSyntax
		}
		frames, err := pixelframe.ExtractFrames(info.Value)
		if err != nil {
			return nil, err
		}
		decode, ok := codecsBySyntax[ds.TransferSyntax]
		if !ok {
			return nil, dicom.ErrUnsupportedTransferSyntax
		}
		decoded, err := decode(frames[0], baseline)
		if err != nil {
			return nil, fmt.Errorf("dicomimage: decoding frame 0: %w", err)
		}
		info.BitsAllocated = 8
		raw = decoded.Data
		width = decoded.Width
		height = decoded.Height
		channels = decoded.Channels
	} else {
		raw = info.Value
	}

	gray, err := toGrayscale(raw, width, height, channels, info.BitsAllocated, info.PhotometricInterpretation)
	if err != nil {
		return nil, err
	}

	return &Result{
		Width:  width,
		Height: height,
		Gray:   gray,
		RGB:    toRGB(gray),
		Info:   *info,
	}, nil
}
