package dicomimage

import "errors"

var (
	ErrUnsupportedSampleLayout = errors.New("dicomimage: unsupported bits-allocated/samples-per-pixel combination")
	ErrNoBaselineDecoder       = errors.New("dicomimage: JPEG Baseline frame requires a baseline decoder")
)
