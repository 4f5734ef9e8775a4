package dicom

import (
	"fmt"
	"strings"

	"github.com/quillhealth/dcmjpeg/pkg/dicom/tag"
)

// stringElement formats one element as "[Tag] VR Name: value", matching the CLI's
// text output mode.
func (ds *Dataset) stringElement(e DataElement) string {
	name := e.Tag.LookupName()
	if name != "" {
		name = " " + name
	}

	var valStr string
	switch {
	case e.Tag.Equals(tag.PixelData):
		valStr = fmt.Sprintf("Pixel Data (%d bytes)", e.ValueLength)
	case e.VR.IsString():
		valStr = ds.DecodeString(trimPadding(ds.Value(e)))
	case e.ValueLength > 20:
		valStr = fmt.Sprintf("Binary Data (%d bytes)", e.ValueLength)
	default:
		valStr = fmt.Sprintf("%v", ds.Value(e))
	}

	return fmt.Sprintf("[%s] %s%s: %s", e.Tag, e.VR, name, valStr)
}

// String returns a line-per-element text rendering of the dataset in stream
// order.
func (ds *Dataset) String() string {
	if ds == nil {
		return "<nil>"
	}
	var b strings.Builder
	for _, e := range ds.Elements {
		b.WriteString(ds.stringElement(e))
		b.WriteString("\n")
	}
	return b.String()
}
