package dicomimage

import (
	"github.com/quillhealth/dcmjpeg/pkg/dicom/transfersyntax"
	"github.com/quillhealth/dcmjpeg/pkg/jpeglossless"
)

// BaselineDecoder is the documented external seam for JPEG Baseline frames.
// The core never implements baseline decoding itself; a caller wires in a
// real image codec (e.g. stdlib image/jpeg) by supplying one of these.
type BaselineDecoder func(data []byte) (*jpeglossless.DecodedImage, error)

// frameDecoder decodes one encapsulated compressed frame into the shared
// DecodedImage shape used by both the lossless decoder and any baseline
// delegate.
type frameDecoder func(data []byte, baseline BaselineDecoder) (*jpeglossless.DecodedImage, error)

// codecsBySyntax maps each encapsulated transfer syntax to the decoder that
// handles it. JPEG2000/RLE/JPEG2000Lossless are intentionally absent: they
// are refused per transfersyntax.Syntax.IsRefused, not decoded.
var codecsBySyntax = map[transfersyntax.Syntax]frameDecoder{
	transfersyntax.JPEGLossless: func(data []byte, _ BaselineDecoder) (*jpeglossless.DecodedImage, error) {
		return jpeglossless.Decode(data)
	},
	transfersyntax.JPEGBaseline: func(data []byte, baseline BaselineDecoder) (*jpeglossless.DecodedImage, error) {
		if baseline == nil {
			return nil, ErrNoBaselineDecoder
		}
		return baseline(data)
	},
}
