package dicom

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/quillhealth/dcmjpeg/pkg/dicom/tag"
)

// charsetByDefinedTerm maps a SpecificCharacterSet (0008,0005) defined term
// to the encoding it names. Only the single-byte extensions relevant to
// PN/LO/SH string decoding are covered; ISO 2022 code-extension techniques
// are out of scope for metadata projection.
var charsetByDefinedTerm = map[string]encoding.Encoding{
	"ISO_IR 100": charmap.ISO8859_1,
	"ISO_IR 101": charmap.ISO8859_2,
	"ISO_IR 109": charmap.ISO8859_3,
	"ISO_IR 110": charmap.ISO8859_4,
	"ISO_IR 144": charmap.ISO8859_5,
	"ISO_IR 127": charmap.ISO8859_6,
	"ISO_IR 126": charmap.ISO8859_7,
	"ISO_IR 138": charmap.ISO8859_8,
	"ISO_IR 148": charmap.ISO8859_9,
	"ISO_IR 13":  charmap.ISO8859_1, // approximation; true JIS X 0201 not covered
	"ISO_IR 166": charmap.Windows874,
}

// DecodeString applies the dataset's SpecificCharacterSet (if any and if
// recognized) to a raw string element value, returning UTF-8. Unknown or
// absent character sets pass the bytes through unchanged — this is
// projection-time enrichment, not a parser-level requirement; the parser
// itself never interprets bytes.
func (ds *Dataset) DecodeString(raw string) string {
	term, ok := ds.GetString(tag.SpecificCharacterSet)
	if !ok {
		return raw
	}
	term = strings.TrimSpace(term)
	enc, ok := charsetByDefinedTerm[term]
	if !ok || term == "" || term == "ISO_IR 6" {
		return raw
	}
	out, err := enc.NewDecoder().String(raw)
	if err != nil {
		return raw
	}
	return out
}
