package dicom

import (
	"fmt"

	"github.com/quillhealth/dcmjpeg/pkg/dicom/tag"
)

// QuickValidate performs a structural sanity check: required identifying
// tags and pixel-geometry tags must be present. It does not validate VR
// conformance or value content — a full VR interpreter is out of scope.
func QuickValidate(ds *Dataset) []error {
	var errs []error

	required := []tag.Tag{tag.SOPClassUID, tag.SOPInstanceUID}
	for _, t := range required {
		if _, ok := ds.FindByTag(t); !ok {
			errs = append(errs, fmt.Errorf("dicom: missing required tag %s", t))
		}
	}

	if _, ok := ds.FindByTag(tag.PixelData); ok {
		geometry := []tag.Tag{tag.Rows, tag.Columns}
		for _, t := range geometry {
			if _, ok := ds.FindByTag(t); !ok {
				errs = append(errs, fmt.Errorf("dicom: pixel data present but missing %s", t))
			}
		}
	}

	return errs
}
